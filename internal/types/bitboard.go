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
	"fmt"
	"math/bits"
	"strings"

	"github.com/knightkmv/chesscore/internal/util"
)

// Bitboard is a 64-bit set, one bit per square, used everywhere the engine
// needs to talk about "which squares" rather than walk them one at a time.
type Bitboard uint64

// Bb returns the single-bit Bitboard for sq.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare ors the bit for s into b and returns the result.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets s's bit in b in place.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare clears s's bit from b and returns the result.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears s's bit from b in place.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has reports whether s's bit is set in b.
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// ShiftBitboard moves every bit of b one square in direction d, masking off
// whichever edge file/rank would otherwise let a bit wrap to the far side.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case East:
		return (MsbMask & b) << 1 & FileAMask
	case South:
		return b >> 8
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (Rank8Mask & b) << 9 & FileAMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Southwest:
		return (b >> 9) & FileHMask
	case Northwest:
		return (b << 7) & FileHMask
	}
	return b
}

// GetMovesOnRank returns the horizontal moves from sq given the rank's
// occupancy, taken from the raw (non-rotated) content bitboard.
//
// Deprecated: use GetAttacksBb.
func GetMovesOnRank(sq Square, content Bitboard) Bitboard {
	rankBits := content >> (8 * int(sq.RankOf()))
	return movesRank[sq][rankBits&255]
}

// GetMovesOnFileRotated returns the vertical moves from sq given the file's
// occupancy already expressed in the L90-rotated board.
//
// Deprecated: use GetAttacksBb.
func GetMovesOnFileRotated(sq Square, rotated Bitboard) Bitboard {
	fileBits := rotated >> (int(sq.FileOf()) * 8)
	return movesFile[sq][fileBits&255]
}

// GetMovesOnFile returns the vertical moves from sq given the un-rotated
// occupancy; the rotation needed to index movesFile happens internally.
//
// Deprecated: use GetAttacksBb.
func GetMovesOnFile(sq Square, content Bitboard) Bitboard {
	return GetMovesOnFileRotated(sq, RotateL90(content))
}

// GetMovesDiagUpRotated returns the up-diagonal moves from sq given the
// occupancy already expressed in the R45-rotated board.
//
// Deprecated: use GetAttacksBb.
func GetMovesDiagUpRotated(sq Square, rotated Bitboard) Bitboard {
	shifted := rotated >> shiftsDiagUp[sq]
	masked := shifted & ((BbOne << lengthDiagUp[sq]) - 1)
	return movesDiagUp[sq][masked]
}

// GetMovesDiagUp returns the up-diagonal moves from sq given the un-rotated
// occupancy; the R45 rotation needed to index movesDiagUp happens internally.
//
// Deprecated: use GetAttacksBb.
func GetMovesDiagUp(sq Square, content Bitboard) Bitboard {
	return GetMovesDiagUpRotated(sq, RotateR45(content))
}

// GetMovesDiagDownRotated returns the down-diagonal moves from sq given the
// occupancy already expressed in the L45-rotated board.
//
// Deprecated: use GetAttacksBb.
func GetMovesDiagDownRotated(sq Square, rotated Bitboard) Bitboard {
	shifted := rotated >> shiftsDiagDown[sq]
	masked := shifted & ((BbOne << lengthDiagDown[sq]) - 1)
	return movesDiagDown[sq][masked]
}

// GetMovesDiagDown returns the down-diagonal moves from sq given the
// un-rotated occupancy; the L45 rotation needed to index movesDiagDown
// happens internally.
//
// Deprecated: use GetAttacksBb.
func GetMovesDiagDown(sq Square, content Bitboard) Bitboard {
	return GetMovesDiagDownRotated(sq, RotateL45(content))
}

// Lsb returns the square of the least significant set bit, or SqNone if b
// is empty. Bit 0 corresponds to SqA1.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the square of the most significant set bit, or SqNone if b
// is empty. Bit 63 corresponds to SqH8.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb removes and returns the least significant set square of b, or
// SqNone if b is already empty.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of squares set in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String renders b as a 64-character binary string.
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard renders b as an 8x8 ASCII board, rank 8 on top.
func (b Bitboard) StringBoard() string {
	var out strings.Builder
	out.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, Rank8-r).Bb()) > 0 {
				out.WriteString("| X ")
			} else {
				out.WriteString("|   ")
			}
		}
		out.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return out.String()
}

// StringGrouped renders b's 64 bits LSB-to-MSB (A1..H8), dot-separated every
// 8 bits, followed by the decimal value in parentheses.
func (b Bitboard) StringGrouped() string {
	var out strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			out.WriteString(".")
		}
		if (b & (BbOne << i)) != 0 {
			out.WriteString("1")
		} else {
			out.WriteString("0")
		}
	}
	fmt.Fprintf(&out, " (%d)", b)
	return out.String()
}

// FileDistance returns how many files apart f1 and f2 are.
func FileDistance(f1 File, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns how many ranks apart r1 and r2 are.
func RankDistance(r1 Rank, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance between two squares (the
// number of king moves needed to go from one to the other).
func SquareDistance(s1 Square, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

// CenterDistance returns sq's Chebyshev distance to the nearest of the four
// central squares.
func (sq Square) CenterDistance() int {
	return centerDistance[sq]
}

// RotateR90 rotates b 90 degrees clockwise.
func RotateR90(b Bitboard) Bitboard {
	return applyRotationMap(b, &rotateMapR90)
}

// RotateL90 rotates b 90 degrees counter-clockwise.
func RotateL90(b Bitboard) Bitboard {
	return applyRotationMap(b, &rotateMapL90)
}

// RotateR45 rotates b 45 degrees clockwise, bringing every up-diagonal into
// a contiguous run of bits; used to index the up-diagonal slide tables.
func RotateR45(b Bitboard) Bitboard {
	return applyRotationMap(b, &rotateMapR45)
}

// RotateL45 rotates b 45 degrees counter-clockwise, bringing every
// down-diagonal into a contiguous run of bits; used to index the
// down-diagonal slide tables.
func RotateL45(b Bitboard) Bitboard {
	return applyRotationMap(b, &rotateMapL45)
}

// RotateSquareR90 maps sq to its position on the R90-rotated board.
func RotateSquareR90(sq Square) Square {
	return indexMapR90[sq]
}

// RotateSquareL90 maps sq to its position on the L90-rotated board.
func RotateSquareL90(sq Square) Square {
	return indexMapL90[sq]
}

// RotateSquareR45 maps sq to its position on the R45-rotated board.
func RotateSquareR45(sq Square) Square {
	return indexMapR45[sq]
}

// RotateSquareL45 maps sq to its position on the L45-rotated board.
func RotateSquareL45(sq Square) Square {
	return indexMapL45[sq]
}

// GetAttacksBb returns the squares a piece of type pt on sq attacks given
// the board's current occupancy. Sliders (bishop/rook/queen) look the
// answer up in their magic tables; knight and king ignore occupied since
// their reach never depends on blockers. pt must not be Pawn — pawn
// attacks are color-dependent and have their own accessor.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Pawn:
		panic("GetAttacksBb does not support PieceType Pawn; use GetPawnAttacks")
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] |
			rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPseudoAttacks returns the squares a piece of type pt on sq would
// attack on an otherwise empty board.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// FilesWestMask returns every file strictly west of sq's file.
func (sq Square) FilesWestMask() Bitboard {
	return filesWestMask[sq]
}

// FilesEastMask returns every file strictly east of sq's file.
func (sq Square) FilesEastMask() Bitboard {
	return filesEastMask[sq]
}

// FileWestMask returns the single file immediately west of sq, if any.
func (sq Square) FileWestMask() Bitboard {
	return fileWestMask[sq]
}

// FileEastMask returns the single file immediately east of sq, if any.
func (sq Square) FileEastMask() Bitboard {
	return fileEastMask[sq]
}

// RanksNorthMask returns every rank strictly north of sq's rank.
func (sq Square) RanksNorthMask() Bitboard {
	return ranksNorthMask[sq]
}

// RanksSouthMask returns every rank strictly south of sq's rank.
func (sq Square) RanksSouthMask() Bitboard {
	return ranksSouthMask[sq]
}

// NeighbourFilesMask returns the files immediately east and west of sq.
func (sq Square) NeighbourFilesMask() Bitboard {
	return neighbourFilesMask[sq]
}

// Ray returns the squares running from sq outward in direction o, stopping
// at the board edge (an empty-board ray, no blocker handling).
func (sq Square) Ray(o Orientation) Bitboard {
	return rays[o][sq]
}

// Intermediate returns the squares strictly between sq1 and sq2, or an
// empty Bitboard if they don't share a rank, file or diagonal.
func Intermediate(sq1 Square, sq2 Square) Bitboard {
	return intermediate[sq1][sq2]
}

// Intermediate returns the squares strictly between sq and sqTo.
func (sq Square) Intermediate(sqTo Square) Bitboard {
	return intermediate[sq][sqTo]
}

// PassedPawnMask returns the squares on which an opposing pawn (of a color
// other than c, confusingly named from c's own perspective below) would
// stop a c-colored pawn on sq from being passed — AND this against the
// opponent's pawns to test for a passed pawn.
func (sq Square) PassedPawnMask(c Color) Bitboard {
	return passedPawnMask[c][sq]
}

// KingSideCastleMask returns c's back-rank squares on the f, g and h files
// (rook square included), the wing a king castled short stands on.
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastMask returns c's back-rank squares on the a to d files
// (rook square included), the wing a king castled long stands on.
func QueenSideCastMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// GetCastlingRights returns which castling rights are lost when sq changes
// occupancy (a king or rook leaving or a rook being captured there).
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRights[sq]
}

// SquaresBb returns every square of the given "color" (as in bishop/square
// color, not side to move) — useful for same-colored-bishop draw checks.
func SquaresBb(c Color) Bitboard {
	return squaresBb[c]
}

// Geometry constants: files, ranks, diagonals and a few derived masks.
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	MsbMask   Bitboard = ^(Bitboard(1) << 63)
	Rank8Mask Bitboard = ^Rank8_Bb
	FileAMask Bitboard = ^FileA_Bb
	FileHMask Bitboard = ^FileH_Bb

	DiagUpA1 Bitboard = 0b10000000_01000000_00100000_00010000_00001000_00000100_00000010_00000001
	DiagUpB1 Bitboard = (MsbMask & DiagUpA1) << 1 & FileAMask
	DiagUpC1 Bitboard = (MsbMask & DiagUpB1) << 1 & FileAMask
	DiagUpD1 Bitboard = (MsbMask & DiagUpC1) << 1 & FileAMask
	DiagUpE1 Bitboard = (MsbMask & DiagUpD1) << 1 & FileAMask
	DiagUpF1 Bitboard = (MsbMask & DiagUpE1) << 1 & FileAMask
	DiagUpG1 Bitboard = (MsbMask & DiagUpF1) << 1 & FileAMask
	DiagUpH1 Bitboard = (MsbMask & DiagUpG1) << 1 & FileAMask
	DiagUpA2 Bitboard = (Rank8Mask & DiagUpA1) << 8
	DiagUpA3 Bitboard = (Rank8Mask & DiagUpA2) << 8
	DiagUpA4 Bitboard = (Rank8Mask & DiagUpA3) << 8
	DiagUpA5 Bitboard = (Rank8Mask & DiagUpA4) << 8
	DiagUpA6 Bitboard = (Rank8Mask & DiagUpA5) << 8
	DiagUpA7 Bitboard = (Rank8Mask & DiagUpA6) << 8
	DiagUpA8 Bitboard = (Rank8Mask & DiagUpA7) << 8

	DiagDownH1 Bitboard = 0b0000000100000010000001000000100000010000001000000100000010000000
	DiagDownH2 Bitboard = (Rank8Mask & DiagDownH1) << 8
	DiagDownH3 Bitboard = (Rank8Mask & DiagDownH2) << 8
	DiagDownH4 Bitboard = (Rank8Mask & DiagDownH3) << 8
	DiagDownH5 Bitboard = (Rank8Mask & DiagDownH4) << 8
	DiagDownH6 Bitboard = (Rank8Mask & DiagDownH5) << 8
	DiagDownH7 Bitboard = (Rank8Mask & DiagDownH6) << 8
	DiagDownH8 Bitboard = (Rank8Mask & DiagDownH7) << 8
	DiagDownG1 Bitboard = (DiagDownH1 >> 1) & FileHMask
	DiagDownF1 Bitboard = (DiagDownG1 >> 1) & FileHMask
	DiagDownE1 Bitboard = (DiagDownF1 >> 1) & FileHMask
	DiagDownD1 Bitboard = (DiagDownE1 >> 1) & FileHMask
	DiagDownC1 Bitboard = (DiagDownD1 >> 1) & FileHMask
	DiagDownB1 Bitboard = (DiagDownC1 >> 1) & FileHMask
	DiagDownA1 Bitboard = (DiagDownB1 >> 1) & FileHMask

	CenterFiles   Bitboard = FileD_Bb | FileE_Bb
	CenterRanks   Bitboard = Rank4_Bb | Rank5_Bb
	CenterSquares Bitboard = CenterFiles & CenterRanks
)

// applyRotationMap rebuilds a bitboard under a square permutation: bit x of
// the result is set iff bit rotationMap[x] of b was set.
func applyRotationMap(b Bitboard, rotationMap *[SqLength]int) Bitboard {
	var rotated Bitboard
	for sq := SqA1; sq < SqNone; sq++ {
		if (b & sqBb[Square(rotationMap[sq])]) != 0 {
			rotated |= sqBb[sq]
		}
	}
	return rotated
}

// bitboard returns the single-bit Bitboard for sq without going through the
// sqBb lookup table — used while that table is still being built.
func (sq Square) bitboard() Bitboard {
	return Bitboard(uint64(1) << sq)
}

// Package-level lookup tables, all populated once by precomputeLookupTables.
var (
	rotateMapR90 = [SqLength]int{
		7, 15, 23, 31, 39, 47, 55, 63,
		6, 14, 22, 30, 38, 46, 54, 62,
		5, 13, 21, 29, 37, 45, 53, 61,
		4, 12, 20, 28, 36, 44, 52, 60,
		3, 11, 19, 27, 35, 43, 51, 59,
		2, 10, 18, 26, 34, 42, 50, 58,
		1, 9, 17, 25, 33, 41, 49, 57,
		0, 8, 16, 24, 32, 40, 48, 56}

	rotateMapL90 = [SqLength]int{
		56, 48, 40, 32, 24, 16, 8, 0,
		57, 49, 41, 33, 25, 17, 9, 1,
		58, 50, 42, 34, 26, 18, 10, 2,
		59, 51, 43, 35, 27, 19, 11, 3,
		60, 52, 44, 36, 28, 20, 12, 4,
		61, 53, 45, 37, 29, 21, 13, 5,
		62, 54, 46, 38, 30, 22, 14, 6,
		63, 55, 47, 39, 31, 23, 15, 7}

	rotateMapR45 = [SqLength]int{
		7,
		6, 15,
		5, 14, 23,
		4, 13, 22, 31,
		3, 12, 21, 30, 39,
		2, 11, 20, 29, 38, 47,
		1, 10, 19, 28, 37, 46, 55,
		0, 9, 18, 27, 36, 45, 54, 63,
		8, 17, 26, 35, 44, 53, 62,
		16, 25, 34, 43, 52, 61,
		24, 33, 42, 51, 60,
		32, 41, 50, 59,
		40, 49, 58,
		48, 57,
		56}

	rotateMapL45 = [SqLength]int{
		0,
		8, 1,
		16, 9, 2,
		24, 17, 10, 3,
		32, 25, 18, 11, 4,
		40, 33, 26, 19, 12, 5,
		48, 41, 34, 27, 20, 13, 6,
		56, 49, 42, 35, 28, 21, 14, 7,
		57, 50, 43, 36, 29, 22, 15,
		58, 51, 44, 37, 30, 23,
		59, 52, 45, 38, 31,
		60, 53, 46, 39,
		61, 54, 47,
		62, 55,
		63}

	lengthDiagUp = [SqLength]int{
		8, 7, 6, 5, 4, 3, 2, 1,
		7, 8, 7, 6, 5, 4, 3, 2,
		6, 7, 8, 7, 6, 5, 4, 3,
		5, 6, 7, 8, 7, 6, 5, 4,
		4, 5, 6, 7, 8, 7, 6, 5,
		3, 4, 5, 6, 7, 8, 7, 6,
		2, 3, 4, 5, 6, 7, 8, 7,
		1, 2, 3, 4, 5, 6, 7, 8}

	lengthDiagDown = [SqLength]int{
		1, 2, 3, 4, 5, 6, 7, 8,
		2, 3, 4, 5, 6, 7, 8, 7,
		3, 4, 5, 6, 7, 8, 7, 6,
		4, 5, 6, 7, 8, 7, 6, 5,
		5, 6, 7, 8, 7, 6, 5, 4,
		6, 7, 8, 7, 6, 5, 4, 3,
		7, 8, 7, 6, 5, 4, 3, 2,
		8, 7, 6, 5, 4, 3, 2, 1}

	shiftsDiagUp = [SqLength]int{
		28, 21, 15, 10, 6, 3, 1, 0,
		36, 28, 21, 15, 10, 6, 3, 1,
		43, 36, 28, 21, 15, 10, 6, 3,
		49, 43, 36, 28, 21, 15, 10, 6,
		54, 49, 43, 36, 28, 21, 15, 10,
		58, 54, 49, 43, 36, 28, 21, 15,
		61, 58, 54, 49, 43, 36, 28, 21,
		63, 61, 58, 54, 49, 43, 36, 28}

	shiftsDiagDown = [SqLength]int{
		0, 1, 3, 6, 10, 15, 21, 28,
		1, 3, 6, 10, 15, 21, 28, 36,
		3, 6, 10, 15, 21, 28, 36, 43,
		6, 10, 15, 21, 28, 36, 43, 49,
		10, 15, 21, 28, 36, 43, 49, 54,
		15, 21, 28, 36, 43, 49, 54, 58,
		21, 28, 36, 43, 49, 54, 58, 61,
		28, 36, 43, 49, 54, 58, 61, 63}

	// indexMap{R,L}{90,45} invert the rotateMap arrays above: given a
	// square on the unrotated board, where does it land on the rotated one.
	indexMapR90 = [SqLength]Square{}
	indexMapL90 = [SqLength]Square{}
	indexMapR45 = [SqLength]Square{}
	indexMapL45 = [SqLength]Square{}

	sqBb       [SqLength]Bitboard
	sqToFileBb [SqLength]Bitboard
	sqToRankBb [SqLength]Bitboard

	sqDiagUpBb   [SqLength]Bitboard
	sqDiagDownBb [SqLength]Bitboard

	rankBb [8]Bitboard
	fileBb [8]Bitboard

	squareDistance [SqLength][SqLength]int

	// movesRank/File/DiagUp/DiagDown map a square and an 8-bit occupancy of
	// its line to the resulting slide, pre-rotated/shifted as needed; the
	// magic-bitboard tables superseded these for search but GetMovesOn*
	// still reads them.
	movesRank     [SqLength][256]Bitboard
	movesFile     [SqLength][256]Bitboard
	movesDiagUp   [SqLength][256]Bitboard
	movesDiagDown [SqLength][256]Bitboard

	pawnAttacks   [2][SqLength]Bitboard
	pseudoAttacks [PtLength][SqLength]Bitboard

	rookTable  []Bitboard
	rookMagics [SqLength]Magic

	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic

	filesWestMask      [SqLength]Bitboard
	filesEastMask      [SqLength]Bitboard
	ranksNorthMask     [SqLength]Bitboard
	ranksSouthMask     [SqLength]Bitboard
	fileWestMask       [SqLength]Bitboard
	fileEastMask       [SqLength]Bitboard
	neighbourFilesMask [SqLength]Bitboard

	rays [8][SqLength]Bitboard

	intermediate [SqLength][SqLength]Bitboard

	passedPawnMask [2][SqLength]Bitboard

	kingSideCastleMask  [2]Bitboard
	queenSideCastleMask [2]Bitboard

	castlingRights [SqLength]CastlingRights

	squaresBb [2]Bitboard

	centerDistance [SqLength]int
)

// precomputeLookupTables builds every lookup table this package relies on.
// Order matters: later steps read tables earlier steps fill in.
func precomputeLookupTables() {
	computeSquareBitboards()
	computeRankFileBitboards()
	computeCastlingMasks()
	computeSquareDistances()
	computeRankSlides()
	computeFileSlides()
	computeUpDiagonalSlides()
	computeDownDiagonalSlides()
	computePseudoAttacks()
	computeNeighbourMasks()
	computeRays()
	computeIntermediateSquares()
	computePassedPawnMasks()
	computeSquareColors()
	computeCenterDistances()
	computeMagicTables()
}

// computeMagicTables allocates the shared rook/bishop attack backing arrays
// and fills each square's Magic entry. See magic.go for the search itself.
func computeMagicTables() {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)

	buildMagicTable(&rookTable, &rookMagics, &rookDirections)
	buildMagicTable(&bishopTable, &bishopMagics, &bishopDirections)
}

func computeRankFileBitboards() {
	for i := Rank1; i <= Rank8; i++ {
		rankBb[i] = Rank1_Bb << (8 * i)
	}
	for i := FileA; i <= FileH; i++ {
		fileBb[i] = FileA_Bb << i
	}
}

func computeCastlingMasks() {
	kingSideCastleMask[White] = sqBb[SqF1] | sqBb[SqG1] | sqBb[SqH1]
	kingSideCastleMask[Black] = sqBb[SqF8] | sqBb[SqG8] | sqBb[SqH8]
	queenSideCastleMask[White] = sqBb[SqD1] | sqBb[SqC1] | sqBb[SqB1] | sqBb[SqA1]
	queenSideCastleMask[Black] = sqBb[SqD8] | sqBb[SqC8] | sqBb[SqB8] | sqBb[SqA8]

	castlingRights[SqE1] = CastlingWhite
	castlingRights[SqA1] = CastlingWhiteOOO
	castlingRights[SqH1] = CastlingWhiteOO
	castlingRights[SqE8] = CastlingBlack
	castlingRights[SqA8] = CastlingBlackOOO
	castlingRights[SqH8] = CastlingBlackOO
}

// computeSquareBitboards fills the per-square single-bit, file, rank and
// diagonal bitboards, plus the rotated-board index maps.
func computeSquareBitboards() {
	upDiagonals := [15]Bitboard{
		DiagUpA8, DiagUpA7, DiagUpA6, DiagUpA5, DiagUpA4, DiagUpA3, DiagUpA2, DiagUpA1,
		DiagUpB1, DiagUpC1, DiagUpD1, DiagUpE1, DiagUpF1, DiagUpG1, DiagUpH1,
	}
	downDiagonals := [15]Bitboard{
		DiagDownH8, DiagDownH7, DiagDownH6, DiagDownH5, DiagDownH4, DiagDownH3, DiagDownH2, DiagDownH1,
		DiagDownG1, DiagDownF1, DiagDownE1, DiagDownD1, DiagDownC1, DiagDownB1, DiagDownA1,
	}

	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = sq.bitboard()
		sqToFileBb[sq] = FileA_Bb << sq.FileOf()
		sqToRankBb[sq] = Rank1_Bb << (8 * sq.RankOf())

		for _, diag := range upDiagonals {
			if diag&sq.bitboard() > 0 {
				sqDiagUpBb[sq] = diag
				break
			}
		}
		for _, diag := range downDiagonals {
			if diag&sq.bitboard() > 0 {
				sqDiagDownBb[sq] = diag
				break
			}
		}

		indexMapR90[rotateMapR90[sq]] = sq
		indexMapL90[rotateMapL90[sq]] = sq
		indexMapR45[rotateMapR45[sq]] = sq
		indexMapL45[rotateMapL45[sq]] = sq
	}
}

// computeCenterDistances records, per square, the Chebyshev distance to
// whichever of the four center squares is closest, picked by quadrant.
func computeCenterDistances() {
	for sq := SqA1; sq <= SqH8; sq++ {
		switch {
		case (sqBb[sq] & ranksNorthMask[27] & filesWestMask[36]) != 0: // upper-left
			centerDistance[sq] = squareDistance[sq][SqD5]
		case (sqBb[sq] & ranksNorthMask[28] & filesEastMask[35]) != 0: // upper-right
			centerDistance[sq] = squareDistance[sq][SqE5]
		case (sqBb[sq] & ranksSouthMask[35] & filesWestMask[28]) != 0: // lower-left
			centerDistance[sq] = squareDistance[sq][SqD4]
		case (sqBb[sq] & ranksSouthMask[36] & filesEastMask[27]) != 0: // lower-right
			centerDistance[sq] = squareDistance[sq][SqE4]
		}
	}
}

// computeSquareColors splits the board into the two bishop-color sets.
func computeSquareColors() {
	for sq := SqA1; sq <= SqH8; sq++ {
		if (int(sq.FileOf())+int(sq.RankOf()))%2 == 0 {
			squaresBb[Black] |= BbOne << sq
		} else {
			squaresBb[White] |= BbOne << sq
		}
	}
}

// computePassedPawnMasks builds, per color and square, the set of squares
// on which an enemy pawn would block or attack a passed pawn advancing
// from that square.
func computePassedPawnMasks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := sq.FileOf()
		r := sq.RankOf()

		passedPawnMask[White][sq] |= rays[N][sq]
		if f < 7 && r < 7 {
			passedPawnMask[White][sq] |= rays[N][sq.To(East)]
		}
		if f > 0 && r < 7 {
			passedPawnMask[White][sq] |= rays[N][sq.To(West)]
		}

		passedPawnMask[Black][sq] |= rays[S][sq]
		if f < 7 && r > 0 {
			passedPawnMask[Black][sq] |= rays[S][sq.To(East)]
		}
		if f > 0 && r > 0 {
			passedPawnMask[Black][sq] |= rays[S][sq.To(West)]
		}
	}
}

// computeIntermediateSquares builds, for every pair of squares sharing a
// rank/file/diagonal, the squares strictly between them.
func computeIntermediateSquares() {
	for from := SqA1; from <= SqH8; from++ {
		for to := SqA1; to <= SqH8; to++ {
			toBB := sqBb[to]
			for o := 0; o < 8; o++ {
				if rays[Orientation(o)][from]&toBB != BbZero {
					intermediate[from][to] |= rays[Orientation(o)][from] &^ rays[Orientation(o)][to] &^ toBB
				}
			}
		}
	}
}

// computeRays derives the eight empty-board rays per square from the
// already-built rook/bishop pseudo-attacks, sliced to one octant each.
func computeRays() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rays[N][sq] = pseudoAttacks[Rook][sq] & ranksNorthMask[sq]
		rays[E][sq] = pseudoAttacks[Rook][sq] & filesEastMask[sq]
		rays[S][sq] = pseudoAttacks[Rook][sq] & ranksSouthMask[sq]
		rays[W][sq] = pseudoAttacks[Rook][sq] & filesWestMask[sq]

		rays[NW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksNorthMask[sq]
		rays[NE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksNorthMask[sq]
		rays[SE][sq] = pseudoAttacks[Bishop][sq] & filesEastMask[sq] & ranksSouthMask[sq]
		rays[SW][sq] = pseudoAttacks[Bishop][sq] & filesWestMask[sq] & ranksSouthMask[sq]
	}
}

// computeNeighbourMasks builds the file/rank-relative masks (everything
// west, everything east, the single neighbouring file, and so on).
func computeNeighbourMasks() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		for j := 0; j <= 7; j++ {
			if j < f {
				filesWestMask[sq] |= FileA_Bb << j
			}
			if 7-j > f {
				filesEastMask[sq] |= FileA_Bb << (7 - j)
			}
			if 7-j > r {
				ranksNorthMask[sq] |= Rank1_Bb << (8 * (7 - j))
			}
			if j < r {
				ranksSouthMask[sq] |= Rank1_Bb << (8 * j)
			}
		}
		if f > 0 {
			fileWestMask[sq] = FileA_Bb << (f - 1)
		}
		if f < 7 {
			fileEastMask[sq] = FileA_Bb << (f + 1)
		}
		neighbourFilesMask[sq] = fileEastMask[sq] | fileWestMask[sq]
	}
}

// computeSquareDistances fills the full Chebyshev-distance matrix once so
// SquareDistance is a plain array read.
func computeSquareDistances() {
	for s1 := SqA1; s1 <= SqH8; s1++ {
		for s2 := SqA1; s2 <= SqH8; s2++ {
			if s1 != s2 {
				squareDistance[s1][s2] = util.Max(
					FileDistance(s1.FileOf(), s2.FileOf()),
					RankDistance(s1.RankOf(), s2.RankOf()))
			}
		}
	}
}

// computePseudoAttacks fills the non-sliding (king/pawn/knight) attack
// tables by stepping from each square, then derives the sliding (bishop/
// rook/queen) pseudo-attacks from the already-built empty-board slide
// tables.
func computePseudoAttacks() {
	steps := [][]Direction{
		{},
		{Northwest, North, Northeast, East},
		{Northwest, Northeast},
		{West + Northwest, East + Northeast, North + Northwest, North + Northeast},
	}

	for c := White; c <= Black; c++ {
		for _, pt := range []PieceType{King, Pawn, Knight} {
			for sq := SqA1; sq <= SqH8; sq++ {
				for _, step := range steps[pt] {
					to := Square(int(sq) + c.Direction()*int(step))
					if !to.IsValid() || squareDistance[sq][to] >= 3 {
						continue // would wrap around a board edge
					}
					if pt == Pawn {
						pawnAttacks[c][sq] |= sqBb[to]
					} else {
						pseudoAttacks[pt][sq] |= sqBb[to]
					}
				}
			}
		}
	}

	for sq := SqA1; sq <= SqH8; sq++ {
		pseudoAttacks[Bishop][sq] |= movesDiagUp[sq][0] | movesDiagDown[sq][0]
		pseudoAttacks[Rook][sq] |= movesFile[sq][0] | movesRank[sq][0]
		pseudoAttacks[Queen][sq] |= pseudoAttacks[Bishop][sq] | pseudoAttacks[Rook][sq]
	}
}

// computeDownDiagonalSlides fills movesDiagDown: for each square and each
// possible occupancy of its down-diagonal, the resulting slide. The
// blocker-subset enumeration follows the approach used by the public-domain
// Beowulf engine's slide-table precompute.
func computeDownDiagonalSlides() {
	for sq := SqA1; sq <= SqH8; sq++ {
		file := sq.FileOf()
		rank := sq.RankOf()
		diagStart := Square(7*(util.Min(int(file), 7-int(rank))) + int(sq))
		startFile := diagStart.FileOf()
		diagLen := lengthDiagDown[sq]

		for occ := 0; occ < (1 << diagLen); occ++ {
			var mask, rotated Bitboard
			for x := int(file) - int(startFile) - 1; x >= 0; x-- {
				mask += BbOne << x
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for x := int(file) - int(startFile) + 1; x < diagLen; x++ {
				mask += BbOne << x
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for x := 0; x < diagLen; x++ {
				rotated += ((mask >> x) & 1) << (int(diagStart) - (7 * x))
			}
			movesDiagDown[sq][occ] = rotated
		}
	}
}

// computeUpDiagonalSlides fills movesDiagUp: for each square and each
// possible occupancy of its up-diagonal, the resulting slide.
func computeUpDiagonalSlides() {
	for sq := SqA1; sq <= SqH8; sq++ {
		file := sq.FileOf()
		rank := sq.RankOf()
		diagStart := sq - Square(9*util.Min(int(file), int(rank)))
		startFile := diagStart.FileOf()
		diagLen := lengthDiagUp[sq]

		for occ := 0; occ < (1 << diagLen); occ++ {
			var mask, rotated Bitboard
			for x := int(file) - int(startFile) - 1; x >= 0; x-- {
				mask += BbOne << x
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for x := int(file) - int(startFile) + 1; x < diagLen; x++ {
				mask += BbOne << x
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for x := 0; x < diagLen; x++ {
				rotated += ((mask >> x) & 1) << (int(diagStart) + (9 * x))
			}
			movesDiagUp[sq][occ] = rotated
		}
	}
}

// computeFileSlides fills movesFile: for each square and each possible
// 8-bit occupancy of its file (already rotated to a single byte), the
// resulting vertical slide.
func computeFileSlides() {
	for rank := int(Rank1); rank <= int(Rank8); rank++ {
		for occ := 0; occ < 256; occ++ {
			var mask Bitboard
			for x := 6 - rank; x >= 0; x-- {
				mask += BbOne << (8 * (7 - x))
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for x := 8 - rank; x < 8; x++ {
				mask += BbOne << (8 * (7 - x))
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for file := int(FileA); file <= int(FileH); file++ {
				movesFile[(rank*8)+file][occ] = mask << file
			}
		}
	}
}

// computeRankSlides fills movesRank: for each square and each possible
// 8-bit occupancy of its rank, the resulting horizontal slide.
func computeRankSlides() {
	for file := int(FileA); file <= int(FileH); file++ {
		for occ := 0; occ < 256; occ++ {
			var mask Bitboard
			for x := file - 1; x >= 0; x-- {
				mask += BbOne << x
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for x := file + 1; x < 8; x++ {
				mask += BbOne << x
				if (occ & (1 << x)) != 0 {
					break
				}
			}
			for rank := int(Rank1); rank <= int(Rank8); rank++ {
				movesRank[(rank*8)+file][occ] = mask << (rank * 8)
			}
		}
	}
}
