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
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPopCount(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected int
	}{
		{BbZero, 0},
		{BbAll, 64},
		{BbOne, 1},
		{Bitboard(128), 1},
		{Bitboard(7), 3},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, bits.OnesCount64(uint64(tc.value)), "popcount of %d", tc.value)
		assert.Equal(t, tc.expected, tc.value.PopCount())
	}
}

func TestBitboardString(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected string
	}{
		{BbZero, "0000000000000000000000000000000000000000000000000000000000000000"},
		{BbAll, "1111111111111111111111111111111111111111111111111111111111111111"},
		{BbOne, "0000000000000000000000000000000000000000000000000000000000000001"},
		{FileA_Bb, "0000000100000001000000010000000100000001000000010000000100000001"},
		{Rank1_Bb, "0000000000000000000000000000000000000000000000000000000011111111"},
		{FileH_Bb, "1000000010000000100000001000000010000000100000001000000010000000"},
		{Rank8_Bb, "1111111100000000000000000000000000000000000000000000000000000000"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.value.String())
	}

	assert.Equal(t, "10000000.00000000.00000000.00000000.00000000.00000000.00000000.00000000 (1)", BbOne.StringGrouped())
}

func TestPushPopSquare(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected string
	}{
		{SqA1.bitboard(), "0000000000000000000000000000000000000000000000000000000000000001"},
		{SqH8.bitboard(), "1000000000000000000000000000000000000000000000000000000000000000"},
		{PushSquare(BbZero, SqA1), "0000000000000000000000000000000000000000000000000000000000000001"},
		{PushSquare(BbZero, SqH8), "1000000000000000000000000000000000000000000000000000000000000000"},
		{PushSquare(BbZero, SqE5), "0000000000000000000000000001000000000000000000000000000000000000"},
		{PushSquare(BbZero, SqE4), "0000000000000000000000000000000000010000000000000000000000000000"},
		{PopSquare(PushSquare(BbZero, SqE4), SqE4), "0000000000000000000000000000000000000000000000000000000000000000"},
		{PopSquare(PushSquare(BbZero, SqA1), SqA1), "0000000000000000000000000000000000000000000000000000000000000000"},
		{PopSquare(BbZero, SqA1), "0000000000000000000000000000000000000000000000000000000000000000"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.value.String())
	}
}

func TestDiagonalConstants(t *testing.T) {
	assert.Equal(t, "10000000.01000000.00100000.00010000."+
		"00001000.00000100.00000010.00000001 (9241421688590303745)", DiagUpA1.StringGrouped())
	assert.Equal(t, "00000010.00000001.00000000.00000000."+
		"00000000.00000000.00000000.00000000 (32832)", DiagUpG1.StringGrouped())
	assert.Equal(t, "00000000.10000000.01000000.00100000."+
		"00010000.00001000.00000100.00000010 (4620710844295151872)", DiagUpA2.StringGrouped())
	assert.Equal(t, "00000000.00000000.00000000.00000000."+
		"00000000.00000000.10000000.01000000 (144396663052566528)", DiagUpA7.StringGrouped())

	assert.Equal(t, "00000001.00000010.00000100.00001000."+
		"00010000.00100000.01000000.10000000 (72624976668147840)", DiagDownH1.StringGrouped())
	assert.Equal(t, "00000000.00000000.00000000.00000000."+
		"00000000.00000001.00000010.00000100 (2323998145211531264)", DiagDownH6.StringGrouped())
	assert.Equal(t, "00000100.00001000.00010000.00100000."+
		"01000000.10000000.00000000.00000000 (1108169199648)", DiagDownF1.StringGrouped())
	assert.Equal(t, "01000000.10000000.00000000.00000000."+
		"00000000.00000000.00000000.00000000 (258)", DiagDownB1.StringGrouped())
}

func TestLsbMsb(t *testing.T) {
	tests := []struct {
		bitboard Bitboard
		lsb      Square
		msb      Square
	}{
		{BbZero, SqNone, SqNone},
		{SqA1.Bb(), SqA1, SqA1},
		{SqH8.Bb(), SqH8, SqH8},
		{SqE5.Bb(), SqE5, SqE5},
		{DiagUpA2, SqA2, SqG8},
		{DiagDownH3, SqH3, SqC8},
		{FileB_Bb, SqB1, SqB8},
		{Rank3_Bb, SqA3, SqH3},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.lsb, tc.bitboard.Lsb(), "lsb of %s", tc.bitboard.String())
		assert.Equal(t, tc.msb, tc.bitboard.Msb(), "msb of %s", tc.bitboard.String())
	}
}

func TestPopLsb(t *testing.T) {
	tests := []struct {
		bbIn   Bitboard
		bbOut  Bitboard
		square Square
	}{
		{SqA1.Bb(), BbZero, SqA1},
		{SqH8.Bb(), BbZero, SqH8},
		{DiagUpA2, PopSquare(DiagUpA2, SqA2), SqA2},
	}
	for _, tc := range tests {
		got := tc.bbIn.PopLsb()
		assert.Equal(t, tc.square, got)
		assert.Equal(t, tc.bbOut, tc.bbIn)
	}

	// draining a bitboard visits every set bit exactly once
	count := 0
	b := DiagDownH3
	for sq := b.PopLsb(); sq != SqNone; sq = b.PopLsb() {
		count++
	}
	assert.Equal(t, 6, count)
	assert.Equal(t, BbZero, b)
}

func TestShiftBitboard(t *testing.T) {
	tests := []struct {
		preShift  Bitboard
		shift     Direction
		postShift Bitboard
	}{
		// vertical and horizontal shifts of whole diagonals
		{DiagUpA2, North, DiagUpA3},
		{DiagUpA3, North, DiagUpA4},
		{DiagUpB1, South, DiagUpC1},
		{DiagUpC1, South, DiagUpD1},
		{DiagUpD1, South, DiagUpE1},
		{DiagDownH1, North, DiagDownH2},
		{DiagDownH2, North, DiagDownH3},
		{DiagDownH3, North, DiagDownH4},
		{DiagDownH4, North, DiagDownH5},
		{DiagDownH1, East, DiagDownH2},
		{DiagDownH2, East, DiagDownH3},
		{DiagDownH3, East, DiagDownH4},
		{DiagDownH4, East, DiagDownH5},
		{DiagDownH1, South, DiagDownG1},
		{DiagDownG1, South, DiagDownF1},
		{DiagDownF1, South, DiagDownE1},
		{DiagDownE1, South, DiagDownD1},
		{DiagDownH1, West, DiagDownG1},
		{DiagDownG1, West, DiagDownF1},
		{DiagDownF1, West, DiagDownE1},
		{DiagDownE1, West, DiagDownD1},
		{Rank8_Bb | FileH_Bb, East, PopSquare(Rank8_Bb, SqA8)},

		// diagonal shifts must drop bits over the edge, not wrap them
		{Rank8_Bb | FileH_Bb, Northeast, BbZero},
		{Rank1_Bb | FileA_Bb, Northeast, Bitboard(0x20202020202fe00)},
		{Rank1_Bb | FileA_Bb, Southwest, BbZero},
		{Rank8_Bb | FileH_Bb, Southwest, Bitboard(0x7f404040404040)},
		{Rank8_Bb | FileA_Bb, Northwest, BbZero},
		{Rank1_Bb | FileH_Bb, Northwest, Bitboard(0x4040404040407f00)},
		{Rank1_Bb | FileH_Bb, Southeast, BbZero},
		{Rank8_Bb | FileA_Bb, Southeast, Bitboard(0xfe020202020202)},

		// single square, all directions
		{SqE4.Bb(), North, SqE5.Bb()},
		{SqE4.Bb(), Northeast, SqF5.Bb()},
		{SqE4.Bb(), East, SqF4.Bb()},
		{SqE4.Bb(), Southeast, SqF3.Bb()},
		{SqE4.Bb(), South, SqE3.Bb()},
		{SqE4.Bb(), Southwest, SqD3.Bb()},
		{SqE4.Bb(), West, SqD4.Bb()},
		{SqE4.Bb(), Northwest, SqD5.Bb()},

		// single square on the a-file edge
		{SqA4.Bb(), North, SqA5.Bb()},
		{SqA4.Bb(), Northeast, SqB5.Bb()},
		{SqA4.Bb(), East, SqB4.Bb()},
		{SqA4.Bb(), Southeast, SqB3.Bb()},
		{SqA4.Bb(), South, SqA3.Bb()},
		{SqA4.Bb(), Southwest, BbZero},
		{SqA4.Bb(), West, BbZero},
		{SqA4.Bb(), Northwest, BbZero},

		// corners
		{SqA1.Bb(), North, SqA2.Bb()},
		{SqA1.Bb(), Northeast, SqB2.Bb()},
		{SqA1.Bb(), East, SqB1.Bb()},
		{SqA1.Bb(), Southeast, BbZero},
		{SqA1.Bb(), South, BbZero},
		{SqA1.Bb(), Southwest, BbZero},
		{SqA1.Bb(), West, BbZero},
		{SqA1.Bb(), Northwest, BbZero},
		{SqH8.Bb(), North, BbZero},
		{SqH8.Bb(), Northeast, BbZero},
		{SqH8.Bb(), East, BbZero},
		{SqH8.Bb(), Southeast, BbZero},
		{SqH8.Bb(), South, SqH7.Bb()},
		{SqH8.Bb(), Southwest, SqG7.Bb()},
		{SqH8.Bb(), West, SqG8.Bb()},
		{SqH8.Bb(), Northwest, BbZero},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.postShift, ShiftBitboard(tc.preShift, tc.shift),
			"shift %s by %d", tc.preShift.String(), tc.shift)
	}
}

func TestPrecomputedSquareTables(t *testing.T) {
	assert.Equal(t, "0000000000000000000000000000000000000000000000000000000000000001", SqA1.bitboard().String())
	assert.Equal(t, "1000000000000000000000000000000000000000000000000000000000000000", SqH8.bitboard().String())

	assert.Equal(t, FileA_Bb, sqToFileBb[SqA2])
	assert.Equal(t, FileC_Bb, sqToFileBb[SqC5])
	assert.Equal(t, FileF_Bb, sqToFileBb[SqF6])
	assert.Equal(t, FileH_Bb, sqToFileBb[SqH8])

	assert.Equal(t, Rank2_Bb, sqToRankBb[SqA2])
	assert.Equal(t, Rank5_Bb, sqToRankBb[SqC5])
	assert.Equal(t, Rank6_Bb, sqToRankBb[SqF6])
	assert.Equal(t, Rank8_Bb, sqToRankBb[SqH8])

	assert.Equal(t, DiagUpA2, sqDiagUpBb[SqA2])
	assert.Equal(t, DiagUpA3, sqDiagUpBb[SqC5])
	assert.Equal(t, DiagUpA1, sqDiagUpBb[SqF6])
	assert.Equal(t, DiagUpA1, sqDiagUpBb[SqH8])

	assert.Equal(t, DiagDownB1, sqDiagDownBb[SqA2])
	assert.Equal(t, DiagDownG1, sqDiagDownBb[SqC5])
	assert.Equal(t, DiagDownH4, sqDiagDownBb[SqF6])
	assert.Equal(t, DiagDownH8, sqDiagDownBb[SqH8])

	assert.Equal(t, Rank1_Bb, rankBb[Rank1])
	assert.Equal(t, Rank2_Bb, rankBb[Rank2])
	assert.Equal(t, Rank7_Bb, rankBb[Rank7])
	assert.Equal(t, Rank8_Bb, rankBb[Rank8])
}

func TestFileDistance(t *testing.T) {
	tests := []struct {
		f1, f2 File
		dist   int
	}{
		{FileA, FileA, 0},
		{FileA, FileB, 1},
		{FileB, FileA, 1},
		{FileA, FileH, 7},
		{FileH, FileA, 7},
		{FileC, FileF, 3},
		{FileF, FileC, 3},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.dist, FileDistance(tc.f1, tc.f2))
	}
}

func TestSquareDistance(t *testing.T) {
	tests := []struct {
		s1, s2 Square
		dist   int
	}{
		{SqA1, SqA1, 0},
		{SqA1, SqA2, 1},
		{SqA1, SqB1, 1},
		{SqA1, SqB2, 1},
		{SqA1, SqH8, 7},
		{SqA8, SqH1, 7},
		{SqD4, SqA1, 3},
		{SqE5, SqD4, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.dist, SquareDistance(tc.s1, tc.s2))
	}
}

func TestRotateBitboard(t *testing.T) {
	bitboard := FileA_Bb | Rank8_Bb | DiagDownH1
	assert.Equal(t, Bitboard(18428906217826189953), RotateR90(bitboard))
	assert.Equal(t, Bitboard(9313761861428380671), RotateL90(bitboard))
	// the 45-degree rotations fold each diagonal into a contiguous run
	assert.Equal(t, Bitboard(68451041280), RotateR45(DiagUpA1))
	assert.Equal(t, Bitboard(68451041280), RotateL45(DiagDownH1))
}

func TestRotateSquare(t *testing.T) {
	assert.Equal(t, SqA8, RotateSquareR90(SqA1))
	assert.Equal(t, SqH5, RotateSquareR90(SqD8))
	assert.Equal(t, SqA8, RotateSquareL90(SqH8))
	assert.Equal(t, SqG8, RotateSquareL90(SqH2))
	assert.Equal(t, SqD5, RotateSquareR45(SqH8))
	assert.Equal(t, SqD5, RotateSquareL45(SqH1))
	assert.Equal(t, SqA8, RotateSquareR45(SqC7))
	assert.Equal(t, SqH1, RotateSquareL45(SqB3))
}

func TestGetMovesOnRank(t *testing.T) {
	tests := []struct {
		name    string
		square  Square
		blocker Bitboard
		want    Bitboard
	}{
		{"empty rank e4", SqE4, 0, PopSquare(Rank4_Bb, SqE4)},
		{"e4 blockers b4 g4", SqE4, sqBb[SqB4] | sqBb[SqG4], sqBb[SqB4] | sqBb[SqC4] | sqBb[SqD4] | sqBb[SqF4] | sqBb[SqG4]},
		{"a8 blocker c8", SqA8, sqBb[SqC8] | sqBb[SqF8], sqBb[SqB8] | sqBb[SqC8]},
		{"f1 full rank", SqF1, PopSquare(Rank1_Bb, SqF1), sqBb[SqE1] | sqBb[SqG1]},
		{"f1 full rank incl self", SqF1, Rank1_Bb, sqBb[SqE1] | sqBb[SqG1]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetMovesOnRank(tc.square, tc.blocker))
		})
	}
}

func TestGetMovesOnFile(t *testing.T) {
	tests := []struct {
		name    string
		square  Square
		blocker Bitboard
		want    Bitboard
	}{
		{"empty file e4", SqE4, 0, PopSquare(FileE_Bb, SqE4)},
		{"e4 blockers e2 e6", SqE4, sqBb[SqE2] | sqBb[SqE6], sqBb[SqE2] | sqBb[SqE3] | sqBb[SqE5] | sqBb[SqE6]},
		{"a2 blockers a1 a7", SqA2, sqBb[SqA1] | sqBb[SqA7], sqBb[SqA1] | sqBb[SqA3] | sqBb[SqA4] | sqBb[SqA5] | sqBb[SqA6] | sqBb[SqA7]},
		{"h4 full file", SqH4, FileH_Bb, sqBb[SqH3] | sqBb[SqH5]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetMovesOnFile(tc.square, tc.blocker))
		})
	}
}

func TestGetMovesDiagUp(t *testing.T) {
	tests := []struct {
		name    string
		square  Square
		blocker Bitboard
		want    Bitboard
	}{
		{"empty diag e4", SqE4, 0, PopSquare(DiagUpB1, SqE4)},
		{"e4 blockers c2 g6", SqE4, sqBb[SqC2] | sqBb[SqG6], sqBb[SqC2] | sqBb[SqD3] | sqBb[SqF5] | sqBb[SqG6]},
		{"a2 blocker c4", SqA2, sqBb[SqC4], sqBb[SqB3] | sqBb[SqC4]},
		{"e5 full diag", SqE5, DiagUpA1, sqBb[SqD4] | sqBb[SqF6]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetMovesDiagUp(tc.square, tc.blocker))
		})
	}
}

func TestGetMovesDiagDown(t *testing.T) {
	tests := []struct {
		name    string
		square  Square
		blocker Bitboard
		want    Bitboard
	}{
		{"empty diag e4", SqE4, 0, PopSquare(DiagDownH1, SqE4)},
		{"e4 blockers c6 g2", SqE4, sqBb[SqC6] | sqBb[SqG2], sqBb[SqC6] | sqBb[SqD5] | sqBb[SqF3] | sqBb[SqG2]},
		{"a5 blocker c3", SqA5, sqBb[SqC3], sqBb[SqB4] | sqBb[SqC3]},
		{"e5 full diag", SqE5, DiagDownH2, sqBb[SqD6] | sqBb[SqF4]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetMovesDiagDown(tc.square, tc.blocker))
		})
	}
}

func TestPseudoAttacks(t *testing.T) {
	tests := []struct {
		name  string
		piece PieceType
		from  Square
		want  Bitboard
	}{
		{"King E1", King, SqE1, sqBb[SqD1] | sqBb[SqD2] | sqBb[SqE2] | sqBb[SqF2] | sqBb[SqF1]},
		{"King E8", King, SqE8, sqBb[SqD8] | sqBb[SqD7] | sqBb[SqE7] | sqBb[SqF7] | sqBb[SqF8]},
		{"Bishop E5", Bishop, SqE5, PopSquare(DiagUpA1|DiagDownH2, SqE5)},
		{"Rook E5", Rook, SqE5, PopSquare(Rank5_Bb|FileE_Bb, SqE5)},
		{"Knight E5", Knight, SqE5, sqBb[SqD7] | sqBb[SqF7] | sqBb[SqG6] | sqBb[SqG4] | sqBb[SqF3] | sqBb[SqD3] | sqBb[SqC4] | sqBb[SqC6]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetPseudoAttacks(tc.piece, tc.from))
		})
	}
}

func TestPawnAttacks(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		from  Square
		want  Bitboard
	}{
		{"White E2", White, SqE2, sqBb[SqD3] | sqBb[SqF3]},
		{"Black E7", Black, SqE7, sqBb[SqD6] | sqBb[SqF6]},
		{"White A4", White, SqA4, sqBb[SqB5]},
		{"Black H5", Black, SqH5, sqBb[SqG4]},
		{"White H4", White, SqH4, sqBb[SqG5]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetPawnAttacks(tc.color, tc.from))
		})
	}
}

func TestFileAndRankMasks(t *testing.T) {
	tests := []struct {
		name string
		is   Bitboard
		want Bitboard
	}{
		{"FilesWestMask e4", SqE4.FilesWestMask(), FileA_Bb | FileB_Bb | FileC_Bb | FileD_Bb},
		{"FilesEastMask e4", SqE4.FilesEastMask(), FileF_Bb | FileG_Bb | FileH_Bb},
		{"FileWestMask e4", SqE4.FileWestMask(), FileD_Bb},
		{"FileEastMask e4", SqE4.FileEastMask(), FileF_Bb},
		{"FilesWestMask a4", SqA4.FilesWestMask(), BbZero},
		{"FilesEastMask a4", SqA4.FilesEastMask(), BbAll & ^FileA_Bb},
		{"FileWestMask a4", SqA4.FileWestMask(), BbZero},
		{"FileEastMask a4", SqA4.FileEastMask(), FileB_Bb},
		{"FilesWestMask h4", SqH4.FilesWestMask(), BbAll & ^FileH_Bb},
		{"FilesEastMask h4", SqH4.FilesEastMask(), BbZero},
		{"FileWestMask h4", SqH4.FileWestMask(), FileG_Bb},
		{"FileEastMask h4", SqH4.FileEastMask(), BbZero},
		{"RanksNorthMask h4", SqH4.RanksNorthMask(), Rank5_Bb | Rank6_Bb | Rank7_Bb | Rank8_Bb},
		{"RanksSouthMask h4", SqH4.RanksSouthMask(), Rank1_Bb | Rank2_Bb | Rank3_Bb},
		{"NeighbourFilesMask h4", SqH4.NeighbourFilesMask(), FileG_Bb},
		{"NeighbourFilesMask a4", SqA4.NeighbourFilesMask(), FileB_Bb},
		{"NeighbourFilesMask e4", SqE4.NeighbourFilesMask(), FileD_Bb | FileF_Bb},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.is)
		})
	}
}

func TestRay(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
		o    Orientation
		want Bitboard
	}{
		{"a1 E", SqA1, E, Rank1_Bb & ^sqBb[SqA1]},
		{"a8 E", SqA8, E, Rank8_Bb & ^sqBb[SqA8]},
		{"a1 N", SqA1, N, FileA_Bb & ^sqBb[SqA1]},
		{"a1 NE", SqA1, NE, DiagUpA1 & ^sqBb[SqA1]},
		{"g7 SW", SqG7, SW, DiagUpA1 & ^sqBb[SqH8] & ^sqBb[SqG7]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.sq.Ray(tc.o))
		})
	}
}

func TestIntermediate(t *testing.T) {
	tests := []struct {
		name string
		from Square
		to   Square
		want Bitboard
	}{
		{"a1-h8", SqA1, SqH8, DiagUpA1 & ^sqBb[SqA1] & ^sqBb[SqH8]},
		{"a1-c1", SqA1, SqC1, sqBb[SqB1]},
		{"h4-h2", SqH4, SqH2, sqBb[SqH3]},
		{"b2-d5 not aligned", SqB2, SqD5, BbZero},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.Intermediate(tc.to))
		})
	}
}

func TestCenterDistance(t *testing.T) {
	tests := []struct {
		sq   Square
		want int
	}{
		{SqA1, 3},
		{SqD2, 2},
		{SqC3, 1},
		{SqH1, 3},
		{SqF6, 1},
		{SqE4, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.sq.CenterDistance(), tc.sq.String())
	}
}

// naiveSliderAttacks walks the slider's rays square by square, stopping
// at (and including) the first blocker - the reference the magic
// lookups are validated against.
func naiveSliderAttacks(sq Square, occ Bitboard, orientations []Orientation) Bitboard {
	attacks := BbZero
	for _, o := range orientations {
		ray := sq.Ray(o)
		attacks |= ray
		blockers := ray & occ
		if blockers == BbZero {
			continue
		}
		// cut the ray behind the first blocker in ray direction
		var first Square
		switch o {
		case N, NE, E, SE:
			first = blockers.Lsb()
		default:
			first = blockers.Msb()
		}
		attacks &^= first.Ray(o)
	}
	return attacks
}

// every blocker subset of each square's relevant mask must produce the
// same attack set from the magic lookup as from the naive ray walk
func TestMagicAttacksExhaustive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	rookDirs := []Orientation{N, E, S, W}
	bishopDirs := []Orientation{NE, SE, SW, NW}

	for sq := SqA1; sq <= SqH8; sq++ {
		for _, pt := range []PieceType{Rook, Bishop} {
			var mask Bitboard
			var dirs []Orientation
			if pt == Rook {
				mask = rookMagics[sq].Mask
				dirs = rookDirs
			} else {
				mask = bishopMagics[sq].Mask
				dirs = bishopDirs
			}

			// enumerate all subsets of the mask (Carry-Rippler)
			occ := BbZero
			for {
				assert.Equal(t, naiveSliderAttacks(sq, occ, dirs), GetAttacksBb(pt, sq, occ),
					"%s on %s with occupancy %s", pt.String(), sq.String(), occ.String())
				occ = (occ - mask) & mask
				if occ == BbZero {
					break
				}
			}
		}
	}
}

var benchResult Bitboard

func BenchmarkSquareBitboardShift(b *testing.B) {
	var bb Bitboard
	for i := 0; i < b.N; i++ {
		for square := SqA1; square < SqNone; square++ {
			bb = square.bitboard()
		}
	}
	benchResult = bb
}

func BenchmarkSquareBitboardLookup(b *testing.B) {
	var bb Bitboard
	for i := 0; i < b.N; i++ {
		for square := SqA1; square < SqNone; square++ {
			bb = square.Bb()
		}
	}
	benchResult = bb
}
