/*
 * ChessCore - a bitboard UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2023-2026 knightkmv
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search.
type searchConfiguration struct {
	// Ponder
	UsePonder bool

	// Iterative deepening strategy
	UseAspiration bool
	UseMTDf       bool

	// Quiescence search
	UseQuiescence bool
	UseQSStandpat bool
	UseSEE        bool
	UseQFP        bool

	// Move ordering
	UsePVS            bool
	UseKiller         bool
	UseCounterMoves   bool
	UseHistoryCounter bool
	UseIID            bool
	IIDDepth          int
	IIDReduction      int

	// Transposition Table
	UseTT      bool
	TTSize     int
	UseTTMove  bool
	UseTTValue bool
	UseQSTT    bool
	UseEvalTT  bool

	// Prunings pre move gen
	UseMDP       bool
	UseRFP       bool
	UseNullMove  bool
	NmpDepth     int
	NmpReduction int
	UseRazoring  bool
	RazorMargin  int16

	// extensions of search depth
	UseExt         bool
	UseCheckExt    bool
	UseThreatExt   bool
	UseExtAddDepth bool

	// prunings after move generation but before making move
	UseFP            bool
	UseLmp           bool
	UseLmr           bool
	LmrDepth         int
	LmrMovesSearched int

	// Contempt: the base centipawn offset added to the draw score from the
	// side-to-move's perspective, scaled by game phase and Rating before
	// use. Positive avoids draws, negative seeks them.
	Contempt int16

	// Rating is an estimate of engine playing strength (Elo), used only
	// to scale the dynamic contempt formula - higher rated play leans
	// further into the base contempt value.
	Rating int

	// UseProbCut enables a shallow-search cutoff above beta for
	// promising captures in non-PV nodes.
	UseProbCut    bool
	ProbCutDepth  int
	ProbCutMargin int16

	// UseSingular enables singular extension: if the TT move scores far
	// above every alternative in a reduced search, it is forced and
	// extended by one ply.
	UseSingular    bool
	SingularDepth  int
	SingularMargin int16

	// UseRecaptureExt extends a move that recaptures on the immediately
	// preceding move's destination square.
	UseRecaptureExt bool

	// UsePawnPushExt extends a pawn push that reaches the 6th rank or
	// beyond (the 3rd rank or nearer for Black).
	UsePawnPushExt bool

	// UseHistoryPruning skips shallow, low-depth quiet moves whose
	// history score falls below a depth-scaled threshold.
	UseHistoryPruning bool
	HistoryPruningDepth int

	// Threads is advisory only - the core search is single-threaded;
	// a host dispatching a parallel root-split search reads this value.
	Threads int

	// TbPath is an opaque path string forwarded to an external tablebase
	// probe, never interpreted by the core.
	TbPath string
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UsePonder = true

	Settings.Search.UseAspiration = true
	Settings.Search.UseMTDf = false

	Settings.Search.UseQuiescence = true
	Settings.Search.UseQSStandpat = true
	Settings.Search.UseSEE = true
	Settings.Search.UseQFP = true

	Settings.Search.UsePVS = true
	Settings.Search.UseKiller = true
	Settings.Search.UseCounterMoves = true
	Settings.Search.UseHistoryCounter = true
	Settings.Search.UseIID = true
	Settings.Search.IIDDepth = 6
	Settings.Search.IIDReduction = 2

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 128
	Settings.Search.UseTTMove = true
	Settings.Search.UseTTValue = true
	Settings.Search.UseQSTT = true
	Settings.Search.UseEvalTT = false

	Settings.Search.UseMDP = true
	Settings.Search.UseRFP = false
	Settings.Search.UseNullMove = true
	Settings.Search.NmpDepth = 3
	Settings.Search.NmpReduction = 2
	Settings.Search.UseRazoring = true
	Settings.Search.RazorMargin = 600

	Settings.Search.UseExt = true
	Settings.Search.UseCheckExt = true
	Settings.Search.UseThreatExt = false
	Settings.Search.UseExtAddDepth = true

	Settings.Search.UseFP = false
	Settings.Search.UseLmp = true
	Settings.Search.UseLmr = true
	Settings.Search.LmrDepth = 3
	Settings.Search.LmrMovesSearched = 3

	Settings.Search.Contempt = 0
	Settings.Search.Rating = 2500
	Settings.Search.Threads = 1
	Settings.Search.TbPath = ""

	Settings.Search.UseProbCut = true
	Settings.Search.ProbCutDepth = 4
	Settings.Search.ProbCutMargin = 100

	Settings.Search.UseSingular = true
	Settings.Search.SingularDepth = 8
	Settings.Search.SingularMargin = 50

	Settings.Search.UseRecaptureExt = true
	Settings.Search.UsePawnPushExt = true

	Settings.Search.UseHistoryPruning = true
	Settings.Search.HistoryPruningDepth = 4
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {

}
