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
	"math"

	"github.com/knightkmv/chesscore/internal/types"
)

// Precomputed search parameter tables - values too structured to live in
// the runtime search configuration.

// lmr holds the base late move reduction per (depth, moves searched):
// floor(0.68 + ln(depth)*ln(moves)/2.1), a log-log surface that grows
// slowly in both dimensions. The search adds situational plies on top
// (not improving, cut node, hopeless history) and clamps the result.
var lmr [32][64]int

// LmrReduction returns the base depth reduction for a late move at the
// given depth after the given number of searched moves. Out-of-range
// inputs clamp to the table edge.
func LmrReduction(depth int, movesSearched int) int {
	if depth >= 32 || movesSearched >= 64 {
		return lmr[31][63]
	}
	return lmr[depth][movesSearched]
}

func init() {
	for d := 1; d < 32; d++ {
		for m := 1; m < 64; m++ {
			r := int(math.Floor(0.68 + math.Log(float64(d))*math.Log(float64(m))/2.1))
			if r < 0 {
				r = 0
			}
			lmr[d][m] = r
		}
	}
}

// lmp holds the late move pruning threshold per depth: quiet moves past
// this count at low depth are not searched at all. Formula after Crafty.
var lmp [16]int

func init() {
	for d := 1; d < 16; d++ {
		lmp[d] = 6 + int(math.Pow(float64(d)+0.5, 1.3))
	}
}

// LmpMovesSearched returns the move count threshold for late move
// pruning at the given depth.
func LmpMovesSearched(depth int) int {
	if depth >= 16 {
		return lmp[15]
	}
	return lmp[depth]
}

// fp holds the futility margin per remaining depth: a quiet move whose
// static eval plus this margin cannot reach alpha is skipped.
var fp = [7]types.Value{0, 100, 200, 300, 500, 900, 1200}

// rfp holds the reverse futility margin per remaining depth.
var rfp = [4]types.Value{0, 200, 400, 800}

// aspirationSteps are the widening steps for the aspiration window
// around the previous iteration's value; the last step opens the window
// completely.
var aspirationSteps = []types.Value{50, 200, types.ValueMax}
