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

// Package attacks computes full attack maps of a position: which squares
// each piece attacks or defends, per square, per piece type and in
// total. The maps are consumed by the evaluator (mobility, king safety)
// and by move generation (check evasions). One Attacks instance is
// reused across positions; the stored Zobrist key avoids recomputation
// for the same position.
package attacks

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/knightkmv/chesscore/internal/logging"
	"github.com/knightkmv/chesscore/internal/position"
	. "github.com/knightkmv/chesscore/internal/types"
)

var out = message.NewPrinter(language.German)

// Attacks holds the attack and defence maps of one position. All
// bitboards include defended own pieces; intersect with the opponent's
// occupancy for attacks only, or with the own occupancy for defences.
type Attacks struct {
	log *logging.Logger

	// key of the position the maps belong to
	Zobrist position.Key
	// squares attacked from each square, per color
	From [ColorLength][SqLength]Bitboard
	// pieces attacking each square, per color
	To [ColorLength][SqLength]Bitboard
	// union of all attacked squares, per color
	All [ColorLength]Bitboard
	// union of attacked squares per piece type, per color
	Piece [ColorLength][PtLength]Bitboard
	// number of pseudo moves (own pieces excluded as targets), per color
	Mobility [ColorLength]int
	// squares attacked by at least one pawn, per color
	Pawns [ColorLength]Bitboard
	// squares attacked by two pawns at once, per color
	PawnsDouble [ColorLength]Bitboard
}

// NewAttacks creates an empty Attacks instance.
func NewAttacks() *Attacks {
	return &Attacks{
		log: myLogging.GetLog(),
	}
}

// Clear zeroes all maps in place. Considerably faster than allocating a
// fresh instance per position:
//
//	Benchmark/New_Instance-8   1.904.764  691.0 ns/op
//	Benchmark/Clear-8         13.043.875   91.7 ns/op
func (a *Attacks) Clear() {
	a.Zobrist = 0
	for sq := 0; sq < SqLength; sq++ {
		a.From[White][sq] = BbZero
		a.From[Black][sq] = BbZero
		a.To[White][sq] = BbZero
		a.To[Black][sq] = BbZero
	}
	for pt := PtNone; pt < PtLength; pt++ {
		a.Piece[White][pt] = BbZero
		a.Piece[Black][pt] = BbZero
	}
	a.All[White] = BbZero
	a.All[Black] = BbZero
	a.Mobility[White] = 0
	a.Mobility[Black] = 0
	a.Pawns[White] = 0
	a.Pawns[Black] = 0
	a.PawnsDouble[White] = 0
	a.PawnsDouble[Black] = 0
}

// Compute fills the maps for the position. A repeated call for the same
// position (matching Zobrist key) leaves the stored maps untouched.
func (a *Attacks) Compute(p *position.Position) {
	if p.ZobristKey() == a.Zobrist {
		a.log.Debugf("attacks compute: position was already computed")
		return
	}
	a.Zobrist = p.ZobristKey()
	a.nonPawnAttacks(p)
	a.pawnAttacks(p)
}

// nonPawnAttacks computes the maps for king, knight and the sliders.
func (a *Attacks) nonPawnAttacks(p *position.Position) {
	ptList := [5]PieceType{King, Knight, Bishop, Rook, Queen}
	allPieces := p.OccupiedAll()

	for c := White; c <= Black; c++ {
		myPieces := p.OccupiedBb(c)
		for _, pt := range ptList {
			for pieces := p.PiecesBb(c, pt); pieces != BbZero; {
				psq := pieces.PopLsb()
				attacks := GetAttacksBb(pt, psq, allPieces)
				a.From[c][psq] = attacks
				a.Piece[c][pt] |= attacks
				a.All[c] |= attacks
				// invert into the to-square map
				for tmp := attacks; tmp != BbZero; {
					a.To[c][tmp.PopLsb()].PushSquare(psq)
				}
				a.Mobility[c] += (attacks &^ myPieces).PopCount()
			}
		}
	}
}

// pawnAttacks computes the pawn attack sets for both colors with two
// whole-bitboard shifts per color instead of per-pawn lookups.
func (a *Attacks) pawnAttacks(p *position.Position) {
	a.Pawns[White] = ShiftBitboard(p.PiecesBb(White, Pawn), Northwest) | ShiftBitboard(p.PiecesBb(White, Pawn), Northeast)
	a.Pawns[Black] = ShiftBitboard(p.PiecesBb(Black, Pawn), Southwest) | ShiftBitboard(p.PiecesBb(Black, Pawn), Southeast)
	a.PawnsDouble[White] = ShiftBitboard(p.PiecesBb(White, Pawn), Northwest) & ShiftBitboard(p.PiecesBb(White, Pawn), Northeast)
	a.PawnsDouble[Black] = ShiftBitboard(p.PiecesBb(Black, Pawn), Southwest) & ShiftBitboard(p.PiecesBb(Black, Pawn), Southeast)
}

// AttacksTo returns all pieces of the given color attacking the square,
// including a pawn able to capture en passant onto it.
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	epAttacks := BbZero
	if epSq := p.GetEnPassantSquare(); epSq != SqNone && epSq == square {
		pawnSquare := epSq.To(color.Flip().MoveDirection())
		epAttacker := pawnSquare.NeighbourFilesMask() & pawnSquare.RankOf().Bb() & p.PiecesBb(color, Pawn)
		if epAttacker != BbZero {
			epAttacks |= pawnSquare.Bb()
		}
	}
	return pieceAttacksTo(p, square, color) | epAttacks
}

// pieceAttacksTo returns all direct piece attacks of the given color to
// the square, en passant excluded. Works in reverse: generate each
// piece type's attack set from the target square and intersect with
// that piece type's bitboard.
func pieceAttacksTo(p *position.Position, square Square, color Color) Bitboard {
	occupiedAll := p.OccupiedAll()
	return (GetPawnAttacks(color.Flip(), square) & p.PiecesBb(color, Pawn)) |
		(GetAttacksBb(Knight, square, occupiedAll) & p.PiecesBb(color, Knight)) |
		(GetAttacksBb(King, square, occupiedAll) & p.PiecesBb(color, King)) |
		(GetAttacksBb(Rook, square, occupiedAll) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen))) |
		(GetAttacksBb(Bishop, square, occupiedAll) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)))
}

// RevealedAttacks returns the sliders of the given color attacking the
// square through the reduced occupancy - the attacks a removed piece
// uncovers. Only sliders can be revealed.
func RevealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	return (GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen)) & occupied) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)) & occupied)
}
