//
// ChessCore - a bitboard UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2023-2026 knightkmv
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package evaluator

import (
	"github.com/knightkmv/chesscore/internal/config"
	"github.com/knightkmv/chesscore/internal/util"
	. "github.com/knightkmv/chesscore/internal/types"
)

// kingDistance returns the Chebyshev distance between two squares, the
// usual measure of how many king moves separate them.
func kingDistance(a, b Square) int {
	df := util.Abs(int(a.FileOf()) - int(b.FileOf()))
	dr := util.Abs(int(a.RankOf()) - int(b.RankOf()))
	if df > dr {
		return df
	}
	return dr
}

// tropism rewards a king standing close to the enemy king once most of
// the material is off the board - useful for driving a won endgame
// towards mate rather than shuffling. It only contributes in the end
// game term since in the middle game king proximity is meaningless (or
// dangerous).
func (e *Evaluator) tropism(us Color) int16 {
	if !config.Settings.Eval.UseTropism {
		return 0
	}
	them := us.Flip()
	// only matters once the stronger side has a clear material edge -
	// otherwise closing distance to the enemy king is not obviously good.
	if e.position.Material(us) <= e.position.Material(them) {
		return 0
	}
	dist := kingDistance(e.position.KingSquare(us), e.position.KingSquare(them))
	return int16(7-dist) * config.Settings.Eval.TropismBonus
}

// outpostBonus scores minor pieces sitting on a square no enemy pawn can
// ever attack, defended by one of our own pawns, deep in enemy territory.
func (e *Evaluator) outpostBonus(us Color, pieceType PieceType) int16 {
	if !config.Settings.Eval.UseOutposts {
		return 0
	}
	if pieceType != Knight && pieceType != Bishop {
		return 0
	}
	them := us.Flip()
	theirPawns := e.position.PiecesBb(them, Pawn)
	ourPawns := e.position.PiecesBb(us, Pawn)
	pieces := e.position.PiecesBb(us, pieceType)

	var bonus int16
	for pieces != BbZero {
		sq := pieces.PopLsb()
		// beyond the middle of the board, in enemy territory
		inEnemyTerritory := (us == White && sq.RankOf() >= Rank5) || (us == Black && sq.RankOf() <= Rank4)
		if !inEnemyTerritory {
			continue
		}
		// no enemy pawn on this or a neighbouring file can ever reach
		// this square - the same shape of mask used for passed pawns.
		if sq.PassedPawnMask(us)&theirPawns != BbZero {
			continue
		}
		// defended by one of our own pawns
		if GetPawnAttacks(them, sq)&ourPawns == BbZero {
			continue
		}
		bonus += config.Settings.Eval.OutpostBonus
	}
	return bonus
}

// space rewards control of squares behind the pawn chain in one's own
// half of the board, a rough proxy for freedom of manoeuvre that matters
// mostly in closed middlegame positions.
func (e *Evaluator) space(us Color) int16 {
	if !config.Settings.Eval.UseSpace {
		return 0
	}
	var homeHalf Bitboard
	if us == White {
		homeHalf = Rank2.Bb() | Rank3.Bb() | Rank4.Bb()
	} else {
		homeHalf = Rank7.Bb() | Rank6.Bb() | Rank5.Bb()
	}
	controlled := e.attack.All[us] & homeHalf &^ e.position.OccupiedBb(us)
	return int16(controlled.PopCount()) * config.Settings.Eval.SpaceBonus
}

// endgameKnowledge recognizes a handful of well understood material
// signatures and returns a dedicated value for them instead of relying
// on the generic term-by-term evaluation, which can be unreliable in
// these specific endgames. The returned value is always from White's
// perspective; ok is false when no signature matched.
func (e *Evaluator) endgameKnowledge() (value Value, ok bool) {
	if !config.Settings.Eval.UseEndgameKnowledge {
		return 0, false
	}
	p := e.position

	wPawns := p.PiecesBb(White, Pawn).PopCount()
	bPawns := p.PiecesBb(Black, Pawn).PopCount()
	wKnights := p.PiecesBb(White, Knight).PopCount()
	bKnights := p.PiecesBb(Black, Knight).PopCount()
	wBishops := p.PiecesBb(White, Bishop).PopCount()
	bBishops := p.PiecesBb(Black, Bishop).PopCount()
	wRooks := p.PiecesBb(White, Rook).PopCount()
	bRooks := p.PiecesBb(Black, Rook).PopCount()
	wQueens := p.PiecesBb(White, Queen).PopCount()
	bQueens := p.PiecesBb(Black, Queen).PopCount()

	wOfficers := wKnights + wBishops + wRooks + wQueens
	bOfficers := bKnights + bBishops + bRooks + bQueens

	// KPK: one side has a lone pawn and nothing else, the other side is
	// bare king. Winning chances hinge on king support of the pawn.
	if wOfficers == 0 && bOfficers == 0 {
		if wPawns == 1 && bPawns == 0 {
			return e.kpkValue(White), true
		}
		if bPawns == 1 && wPawns == 0 {
			return -e.kpkValue(Black), true
		}
	}

	// KBN vs K: the classic bishop+knight mate - driving the bare king
	// to the corner matching the bishop's square colour.
	if wPawns == 0 && bPawns == 0 {
		if wKnights == 1 && wBishops == 1 && wRooks == 0 && wQueens == 0 && bOfficers == 0 {
			return e.kbnkValue(White), true
		}
		if bKnights == 1 && bBishops == 1 && bRooks == 0 && bQueens == 0 && wOfficers == 0 {
			return -e.kbnkValue(Black), true
		}
	}

	// KR vs KP: a lone rook against a lone pawn - usually winning for
	// the rook side unless the pawn is already far advanced and
	// supported by its king.
	if wRooks == 1 && wKnights == 0 && wBishops == 0 && wQueens == 0 && wPawns == 0 &&
		bOfficers == 0 && bPawns == 1 {
		return e.krkpValue(White), true
	}
	if bRooks == 1 && bKnights == 0 && bBishops == 0 && bQueens == 0 && bPawns == 0 &&
		wOfficers == 0 && wPawns == 1 {
		return -e.krkpValue(Black), true
	}

	return 0, false
}

// kpkValue scores a lone-pawn ending for the pawn's side (us), rewarding
// an advanced pawn whose own king stands close by to shepherd it home.
func (e *Evaluator) kpkValue(us Color) Value {
	p := e.position
	pawnSq := p.PiecesBb(us, Pawn).Lsb()
	advance := advanceRank(us, pawnSq)
	ourKingDist := kingDistance(p.KingSquare(us), pawnSq)
	theirKingDist := kingDistance(p.KingSquare(us.Flip()), pawnSq)
	value := Value(100 + 40*advance - 10*ourKingDist + 10*theirKingDist)
	return value * Value(us.Direction())
}

// kbnkValue scores the bishop-and-knight mate for the mating side (us),
// pushing the defending king towards the corner that matches the
// bishop's square colour and the mating king towards the defender.
func (e *Evaluator) kbnkValue(us Color) Value {
	p := e.position
	them := us.Flip()
	theirKing := p.KingSquare(them)
	ourKing := p.KingSquare(us)
	bishopSq := p.PiecesBb(us, Bishop).Lsb()

	var cornerA, cornerB Square
	if SquaresBb(White).Has(bishopSq) {
		cornerA, cornerB = SqA8, SqH1
	} else {
		cornerA, cornerB = SqA1, SqH8
	}
	distToCorner := kingDistance(theirKing, cornerA)
	if d := kingDistance(theirKing, cornerB); d < distToCorner {
		distToCorner = d
	}
	value := Value(2000 - 40*distToCorner - 10*kingDistance(ourKing, theirKing))
	return value * Value(us.Direction())
}

// krkpValue scores the rook-versus-pawn ending for the rook's side (us).
func (e *Evaluator) krkpValue(us Color) Value {
	p := e.position
	them := us.Flip()
	pawnSq := p.PiecesBb(them, Pawn).Lsb()
	rookSq := p.PiecesBb(us, Rook).Lsb()
	advance := advanceRank(them, pawnSq)
	theirKingDist := kingDistance(p.KingSquare(them), pawnSq)

	value := Value(300 - 30*advance + 10*theirKingDist)
	// bonus for the rook already behind the pawn on its file
	if rookSq.FileOf() == pawnSq.FileOf() && advanceRank(them, rookSq) < advanceRank(them, pawnSq) {
		value += 30
	}
	return value * Value(us.Direction())
}
