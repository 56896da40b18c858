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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosValues(t *testing.T) {
	assert.Equal(t, Value(-30), PosMidValue(WhitePawn, SqE2))
	assert.Equal(t, Value(10), PosEndValue(WhitePawn, SqE2))
	assert.Equal(t, Value(-30), PosValue(WhitePawn, SqE2, 24))
	assert.Equal(t, Value(10), PosValue(WhitePawn, SqE2, 0))
	assert.Equal(t, Value(-10), PosValue(WhitePawn, SqE2, 12))
}

// the tables must be color symmetric: a black pawn on e7 scores what a
// white pawn on e2 scores, in every phase
func TestPosValuesMirrored(t *testing.T) {
	assert.Equal(t, PosMidValue(WhitePawn, SqE2), PosMidValue(BlackPawn, SqE7))
	assert.Equal(t, PosEndValue(WhitePawn, SqE2), PosEndValue(BlackPawn, SqE7))
	for gp := 0; gp <= GamePhaseMax; gp++ {
		assert.Equal(t, PosValue(WhitePawn, SqE2, gp), PosValue(BlackPawn, SqE7, gp))
		assert.Equal(t, PosValue(WhiteKnight, SqG1, gp), PosValue(BlackKnight, SqG8, gp))
		assert.Equal(t, PosValue(WhiteKing, SqE1, gp), PosValue(BlackKing, SqE8, gp))
	}
}
