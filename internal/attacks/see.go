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
	"github.com/knightkmv/chesscore/internal/position"
	. "github.com/knightkmv/chesscore/internal/types"
)

// See runs a static exchange evaluation of the capture: it plays out
// the full capture sequence on the target square, each side always
// answering with its least valuable attacker, and returns the material
// balance of the exchange from the mover's point of view. Removed
// attackers may reveal sliders behind them (x-ray), which re-enter the
// attacker set. Lives in this package so both the search (pruning) and
// the move generator (capture ordering) can use it.
func See(p *position.Position, move Move) Value {
	// en passant never loses material for the side capturing; score it
	// as a plain pawn win instead of simulating the odd geometry
	if move.MoveType() == EnPassant {
		return 100
	}

	// the swap list; 32 pieces bound the longest possible sequence
	var gain [32]Value

	ply := 0
	toSquare := move.To()
	fromSquare := move.From()
	attackerPiece := p.GetPiece(fromSquare)
	sideToCapture := p.NextPlayer()

	// occupancy copy from which captured pieces get removed so sliders
	// behind them start to attack. En passant is excluded from the
	// attacker set: the move before an en passant capture is never
	// itself a capture, so it cannot occur inside an exchange sequence.
	occupied := p.OccupiedAll()
	attackers := pieceAttacksTo(p, toSquare, White) | pieceAttacksTo(p, toSquare, Black)

	gain[ply] = p.GetPiece(toSquare).ValueOf()

	for {
		ply++
		sideToCapture = sideToCapture.Flip()

		// speculative gain if the attacker gets taken in return
		if move.MoveType() == Promotion {
			gain[ply] = move.PromotionType().ValueOf() - Pawn.ValueOf() - gain[ply-1]
		} else {
			gain[ply] = attackerPiece.ValueOf() - gain[ply-1]
		}

		// neither continuing nor stopping helps this side - the rest of
		// the sequence cannot change the sign of the result
		if maxValue(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		// take the attacker off the board and let x-rays through
		attackers.PopSquare(fromSquare)
		occupied.PopSquare(fromSquare)
		attackers |= RevealedAttacks(p, toSquare, occupied, White) |
			RevealedAttacks(p, toSquare, occupied, Black)

		fromSquare = leastValuableAttacker(p, attackers, sideToCapture)
		if fromSquare == SqNone {
			break
		}
		attackerPiece = p.GetPiece(fromSquare)
	}

	// negamax the swap list backwards: at every step a side may decline
	// to continue the exchange
	for ply--; ply > 0; ply-- {
		gain[ply-1] = -maxValue(-gain[ply-1], gain[ply])
	}
	return gain[0]
}

// leastValuableAttacker picks the cheapest attacker of the given color
// from the attacker set, scanning piece types in ascending value order.
// Ties within a type resolve to the lowest set bit.
func leastValuableAttacker(p *position.Position, attackers Bitboard, color Color) Square {
	for _, pt := range []PieceType{Pawn, Knight, Bishop, Rook, Queen, King} {
		if candidates := attackers & p.PiecesBb(color, pt); candidates != 0 {
			return candidates.Lsb()
		}
	}
	return SqNone
}

func maxValue(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
