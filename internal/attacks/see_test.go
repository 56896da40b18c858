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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knightkmv/chesscore/internal/position"
	. "github.com/knightkmv/chesscore/internal/types"
)

func TestLeastValuableAttacker(t *testing.T) {
	p := position.NewPosition("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3")
	attackers := pieceAttacksTo(p, SqE5, Black)
	assert.EqualValues(t, 2339760743907840, attackers)

	// cheapest first: knight g6, then knight d7, bishop b2, queen e6,
	// then nothing
	expected := []Square{SqG6, SqD7, SqB2, SqE6, SqNone}
	for _, want := range expected {
		lva := leastValuableAttacker(p, attackers, Black)
		assert.EqualValues(t, want, lva)
		if lva == SqNone {
			break
		}
		attackers.PopSquare(lva)
	}
}

func TestSeeValues(t *testing.T) {
	cases := []struct {
		name     string
		fen      string
		move     Move
		expected Value
	}{
		{
			// exd5 - the knight c6 does not reach d5, so no recapture
			// follows and White wins a pawn
			"pawn takes pawn, no recapture",
			"4k3/8/2n5/3p4/4P3/2N5/8/4K3 w - - 0 1",
			CreateMove(SqE4, SqD5, Normal, PtNone),
			100,
		},
		{
			// Nxd5 exd5 - knight for a defended pawn
			"knight takes defended pawn",
			"4k3/8/4p3/3p4/8/2N5/8/4K3 w - - 0 1",
			CreateMove(SqC3, SqD5, Normal, PtNone),
			100 - 320,
		},
		{
			// undefended pawn is a clean win
			"rook takes undefended pawn",
			"1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - -",
			CreateMove(SqE1, SqE5, Normal, PtNone),
			100,
		},
	}
	for _, tc := range cases {
		p := position.NewPosition(tc.fen)
		assert.EqualValues(t, tc.expected, See(p, tc.move), tc.name)
	}
}

func TestSeeEnPassantAlwaysWinning(t *testing.T) {
	p := position.NewPosition("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	move := CreateMove(SqE5, SqD6, EnPassant, PtNone)
	assert.EqualValues(t, Value(100), See(p, move))
}
