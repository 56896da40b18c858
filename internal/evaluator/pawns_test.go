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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/knightkmv/chesscore/internal/config"
	"github.com/knightkmv/chesscore/internal/position"
)

func TestEvaluatePawnsCache(t *testing.T) {
	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = true

	e := NewEvaluator()
	p := position.NewPosition()
	e.InitEval(p)

	assert.EqualValues(t, 0, e.pawnCache.len())

	// first evaluation misses and fills the cache
	first := *e.evaluatePawns()
	assert.EqualValues(t, 1, e.pawnCache.len())
	assert.EqualValues(t, 0, e.pawnCache.hits)
	assert.EqualValues(t, 1, e.pawnCache.misses)

	// second evaluation hits and reproduces the same score
	second := *e.evaluatePawns()
	assert.EqualValues(t, 1, e.pawnCache.len())
	assert.EqualValues(t, 1, e.pawnCache.hits)
	assert.EqualValues(t, 1, e.pawnCache.misses)
	assert.Equal(t, first, second)

	Settings.Eval.UsePawnCache = false
}

// the start position pawn structure is symmetric and must cancel to zero
func TestEvaluatePawnsSymmetric(t *testing.T) {
	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = false

	e := NewEvaluator()
	p := position.NewPosition()
	e.InitEval(p)

	score := e.evaluatePawns()
	assert.EqualValues(t, 0, score.MidGameValue)
	assert.EqualValues(t, 0, score.EndGameValue)
}

func TestEvaluatePawnsStructures(t *testing.T) {
	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = false
	e := NewEvaluator()

	// White has doubled isolated c-pawns, Black a healthy chain - the
	// pawn score must favor Black
	p := position.NewPosition("4k3/5ppp/8/8/8/2P5/2P5/4K3 w - - 0 1")
	e.InitEval(p)
	score := *e.evaluatePawns()
	assert.Less(t, score.MidGameValue, int16(0))
	assert.Less(t, score.EndGameValue, int16(0))

	// White has a far advanced passed pawn - the pawn score must favor
	// White strongly in the endgame term
	p = position.NewPosition("4k3/8/P7/8/8/8/5ppp/4K3 w - - 0 1")
	e.InitEval(p)
	passers := *e.evaluatePawns()
	p2 := position.NewPosition("4k3/8/8/8/8/P7/5ppp/4K3 w - - 0 1")
	e.InitEval(p2)
	homePawn := *e.evaluatePawns()
	assert.Greater(t, passers.EndGameValue, homePawn.EndGameValue,
		"a further advanced passer must score higher")
}
