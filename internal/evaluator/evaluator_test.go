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

package evaluator

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	"github.com/knightkmv/chesscore/internal/config"
	"github.com/knightkmv/chesscore/internal/position"
	. "github.com/knightkmv/chesscore/internal/types"
)

// swapCase flips the case of every letter - turning white pieces into
// black pieces and vice versa in FEN fields.
func swapCase(s string) string {
	var sb strings.Builder
	for _, ch := range s {
		switch {
		case unicode.IsUpper(ch):
			sb.WriteRune(unicode.ToLower(ch))
		case unicode.IsLower(ch):
			sb.WriteRune(unicode.ToUpper(ch))
		default:
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// mirrorFen swaps colors and ranks of a FEN: pieces change color, the
// board flips vertically, side to move, castling rights and the en
// passant rank flip accordingly. The mirrored position is the exact
// color-reversed twin of the original.
func mirrorFen(fen string) string {
	parts := strings.Fields(fen)

	ranks := strings.Split(parts[0], "/")
	mirrored := make([]string, 8)
	for i, r := range ranks {
		mirrored[7-i] = swapCase(r)
	}
	board := strings.Join(mirrored, "/")

	side := "w"
	if parts[1] == "w" {
		side = "b"
	}

	castling := "-"
	if len(parts) > 2 && parts[2] != "-" {
		swapped := swapCase(parts[2])
		var sb strings.Builder
		for _, ch := range "KQkq" {
			if strings.ContainsRune(swapped, ch) {
				sb.WriteRune(ch)
			}
		}
		castling = sb.String()
	}

	ep := "-"
	if len(parts) > 3 && parts[3] != "-" {
		file := parts[3][0]
		rank := parts[3][1]
		ep = string(file) + string('1'+'8'-rank)
	}

	rest := "0 1"
	if len(parts) >= 6 {
		rest = parts[4] + " " + parts[5]
	}
	return board + " " + side + " " + castling + " " + ep + " " + rest
}

// enableAllEvalTerms switches on every optional evaluation term and
// returns a restore function for the previous settings.
func enableAllEvalTerms() func() {
	saved := config.Settings.Eval
	config.Settings.Eval.UseLazyEval = false
	config.Settings.Eval.UsePawnEval = true
	config.Settings.Eval.UsePawnCache = false
	config.Settings.Eval.UseAttacksInEval = true
	config.Settings.Eval.UseMobility = true
	config.Settings.Eval.UseAdvancedPieceEval = true
	config.Settings.Eval.UseKingEval = true
	config.Settings.Eval.UseTropism = true
	config.Settings.Eval.UseOutposts = true
	config.Settings.Eval.UseSpace = true
	config.Settings.Eval.UseEndgameKnowledge = true
	config.Settings.Eval.UseNN = false
	return func() { config.Settings.Eval = saved }
}

// the full evaluation must be color symmetric: a position and its
// color/rank-mirrored twin score identically from the respective side
// to move's point of view. A sign error in any single term (mobility,
// king safety, tropism, outposts, space, pawns) breaks this.
func TestEvaluateMirrorSymmetry(t *testing.T) {
	restore := enableAllEvalTerms()
	defer restore()

	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r1bq1rk1/pp2ppbp/2np1np1/8/3NP3/2N1BP2/PPPQ2PP/R3KB1R w KQ - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"8/5pk1/6p1/7p/8/6P1/5PKP/8 w - - 0 1",
		"2r1r1k1/pb3pp1/1p1qpn2/4n1p1/2PP4/6KP/P2Q1PP1/3RR3 b - - 0 1",
	}

	e := NewEvaluator()
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		assert.NoError(t, err, fen)
		m, err := position.NewPositionFen(mirrorFen(fen))
		assert.NoError(t, err, mirrorFen(fen))
		assert.Equal(t, e.Evaluate(p), e.Evaluate(m), "mirror asymmetry for %s", fen)
	}
}

func TestEvaluateStartPositionTempoOnly(t *testing.T) {
	restore := enableAllEvalTerms()
	defer restore()

	// the start position is symmetric - all terms cancel, only the
	// tempo bonus for the side to move remains (scaled by full phase)
	e := NewEvaluator()
	p := position.NewPosition()
	assert.EqualValues(t, config.Settings.Eval.Tempo, e.Evaluate(p))
}

func TestEvaluateInsufficientMaterialIsDraw(t *testing.T) {
	e := NewEvaluator()
	p := position.NewPosition("8/3k4/8/8/8/2B5/4K3/8 w - - 0 1")
	assert.EqualValues(t, ValueDraw, e.Evaluate(p))
}

func TestEndgameKnowledgeKPK(t *testing.T) {
	e := NewEvaluator()

	// far advanced pawn shepherded by its king: clearly winning for the
	// pawn's side...
	p := position.NewPosition("8/4P3/4K3/8/8/8/8/6k1 w - - 0 1")
	value := e.Evaluate(p)
	assert.Greater(t, int(value), 100)

	// ...and clearly lost from the defender's point of view
	p = position.NewPosition("8/4P3/4K3/8/8/8/8/6k1 b - - 0 1")
	assert.Less(t, int(e.Evaluate(p)), -100)
}

func TestEndgameKnowledgeKBNK(t *testing.T) {
	e := NewEvaluator()

	// bishop and knight force mate - never a material draw. The
	// defender's king already sits in the mating corner of the
	// white-squared bishop.
	p := position.NewPosition("k7/8/8/8/8/8/8/KBN5 w - - 0 1")
	value := e.Evaluate(p)
	assert.Greater(t, int(value), 1000)

	// driving the king away from the corner lowers the score
	p2 := position.NewPosition("8/8/8/3k4/8/8/8/KBN5 w - - 0 1")
	assert.Greater(t, int(value), int(e.Evaluate(p2)))
}

func TestEndgameKnowledgeKRKP(t *testing.T) {
	e := NewEvaluator()

	// rook against a far advanced pawn: still good for the rook's side
	p := position.NewPosition("8/8/8/8/8/7R/1p2K3/1k6 w - - 0 1")
	assert.Greater(t, int(e.Evaluate(p)), 0)

	// a rook already behind the pawn on its file scores higher
	p2 := position.NewPosition("8/8/8/8/8/5R2/1p2K3/1k6 w - - 0 1")
	behind := position.NewPosition("1R6/8/8/8/8/8/1p2K3/1k6 w - - 0 1")
	assert.Greater(t, int(e.Evaluate(behind)), int(e.Evaluate(p2)))
}

// constNN is a stub network evaluator returning a fixed score.
type constNN struct{ v Value }

func (n constNN) Evaluate(*position.Position) Value { return n.v }

func TestEvaluateNNBlend(t *testing.T) {
	savedNN := config.Settings.Eval.UseNN
	savedBlend := config.Settings.Eval.NNBlend
	defer func() {
		config.Settings.Eval.UseNN = savedNN
		config.Settings.Eval.NNBlend = savedBlend
	}()

	e := NewEvaluator()
	e.SetNNEvaluator(constNN{v: 500})
	config.Settings.Eval.UseNN = true
	config.Settings.Eval.NNBlend = 100

	// a pawn-only position has game phase 0: with full blend weight the
	// NN score replaces the classical score entirely
	p := position.NewPosition("4k3/pppp4/8/8/8/8/PPPP4/4K3 w - - 0 1")
	assert.EqualValues(t, 500, e.Evaluate(p))

	// without the NN installed the classical evaluation stands
	e.SetNNEvaluator(nil)
	assert.NotEqualValues(t, 500, e.Evaluate(p))
}
