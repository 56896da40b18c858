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

package search

import (
	"github.com/knightkmv/chesscore/internal/moveslice"
	. "github.com/knightkmv/chesscore/internal/types"
)

// Statistics collects per-search counters for every pruning, extension
// and cache mechanism. None of them influence the search result; they
// exist to judge how well each heuristic earns its keep when tuning.
type Statistics struct {
	// root iteration
	BestMoveChange       uint64
	AspirationResearches uint64
	MTDfResearches       uint64

	// cut quality
	BetaCuts    uint64
	BetaCuts1st uint64

	// prunings
	Mdp             uint64
	RfpPrunings     uint64
	FpPrunings      uint64
	QFpPrunings     uint64
	LmpCuts         uint64
	RazorCuts       uint64
	HistoryPrunings uint64
	ProbCutCuts     uint64
	NullMoveCuts    uint64
	NMPMateAlpha    uint64
	NMPMateBeta     uint64
	StandpatCuts    uint64

	// reductions
	LmrReductions uint64
	LmrResearches uint64

	// extensions
	CheckExtension     uint64
	CheckInQS          uint64
	ThreatExtension    uint64
	SingularExtensions uint64
	RecaptureExtension uint64
	PawnPushExtension  uint64

	// evaluation and TT
	Evaluations       uint64
	EvaluationsFromTT uint64
	TTHit             uint64
	TTMiss            uint64
	TTMoveUsed        uint64
	NoTTMove          uint64
	TTCuts            uint64
	TTNoCuts          uint64

	// internal iterative deepening
	IIDmoves    uint64
	IIDsearches uint64

	// terminal nodes and re-searches
	LeafPositionsEvaluated uint64
	Checkmates             uint64
	Stalemates             uint64
	RootPvsResearches      uint64
	PvsResearches          uint64

	// live progress snapshot for UCI info output
	CurrentIterationDepth    int
	CurrentSearchDepth       int
	CurrentExtraSearchDepth  int
	CurrentVariation         moveslice.MoveSlice
	CurrentRootMoveIndex     int
	CurrentRootMove          Move
	CurrentBestRootMove      Move
	CurrentBestRootMoveValue Value
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
