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
	. "github.com/knightkmv/chesscore/internal/config"
	. "github.com/knightkmv/chesscore/internal/types"
)

func (e *Evaluator) evaluatePawns() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	// look on cache table - keyed by the pawn-only Zobrist hash so the
	// result is shared across any position with the same pawn skeleton.
	if Settings.Eval.UsePawnCache {
		entry := e.pawnCache.getEntry(e.position.PawnKey())
		if entry != nil {
			tmpScore.MidGameValue += entry.score.MidGameValue
			tmpScore.EndGameValue += entry.score.EndGameValue
			return &tmpScore
		}
	}

	// no cache hit - calculate from scratch
	tmpScore.Add(e.evaluatePawnsForColor(White))
	tmpScore.Sub(e.evaluatePawnsForColor(Black))

	// store in cache
	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &tmpScore)
	}

	return &tmpScore
}

var pawnScore = Score{}

// evaluatePawnsForColor scores doubled, isolated, passed, phalanx,
// supported and blocked pawns for one color. Returns a pointer to a
// package-level scratch Score (mirrors the calling convention of the
// other eval* helpers, which reuse tmpScore the same way).
func (e *Evaluator) evaluatePawnsForColor(us Color) *Score {
	pawnScore.MidGameValue = 0
	pawnScore.EndGameValue = 0

	them := us.Flip()
	ourPawns := e.position.PiecesBb(us, Pawn)
	theirPawns := e.position.PiecesBb(them, Pawn)
	allPieces := e.position.OccupiedAll()
	forward := us.MoveDirection()

	pawns := ourPawns
	for pawns != BbZero {
		sq := pawns.PopLsb()
		file := sq.FileOf().Bb()

		// doubled: more than one own pawn shares this file
		if (file & ourPawns).PopCount() > 1 {
			pawnScore.MidGameValue += Settings.Eval.PawnDoubledMidMalus
			pawnScore.EndGameValue += Settings.Eval.PawnDoubledEndMalus
		}

		// isolated: no own pawns on neighbouring files
		if (sq.NeighbourFilesMask() & ourPawns) == BbZero {
			pawnScore.MidGameValue += Settings.Eval.PawnIsolatedMidMalus
			pawnScore.EndGameValue += Settings.Eval.PawnIsolatedEndMalus
		} else {
			// phalanx: an own pawn on an adjacent file, same rank
			if (ShiftBitboard(sq.Bb(), East)|ShiftBitboard(sq.Bb(), West))&sq.RankOf().Bb()&ourPawns != BbZero {
				pawnScore.MidGameValue += Settings.Eval.PawnPhalanxMidBonus
				pawnScore.EndGameValue += Settings.Eval.PawnPhalanxEndBonus
			}
			// supported (chained): defended by another own pawn
			if GetPawnAttacks(them, sq)&ourPawns != BbZero {
				pawnScore.MidGameValue += Settings.Eval.PawnSupportedMidBonus
				pawnScore.EndGameValue += Settings.Eval.PawnSupportedEndBonus
			}
		}

		// passed: no enemy pawn can capture or block it on its way to promotion
		if (sq.PassedPawnMask(us) & theirPawns) == BbZero {
			advance := advanceRank(us, sq)
			pawnScore.MidGameValue += Settings.Eval.PawnPassedMidBonus * int16(advance)
			pawnScore.EndGameValue += Settings.Eval.PawnPassedEndBonus * int16(advance)
		}

		// blocked: any piece, own or enemy, sits directly in front
		if ShiftBitboard(sq.Bb(), forward)&allPieces != BbZero {
			pawnScore.MidGameValue += Settings.Eval.PawnBlockedMidMalus
			pawnScore.EndGameValue += Settings.Eval.PawnBlockedEndMalus
		}
	}

	return &pawnScore
}

// advanceRank returns how many ranks the pawn has advanced towards
// promotion, starting at 1 for a pawn still on its own second rank.
func advanceRank(c Color, sq Square) int {
	if c == White {
		return int(sq.RankOf()) - int(Rank1)
	}
	return int(Rank8) - int(sq.RankOf())
}
