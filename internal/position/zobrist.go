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

package position

import (
	. "github.com/knightkmv/chesscore/internal/types"
)

// zobristRandom holds the random keys used to incrementally compute a
// Position's Zobrist hash. pieces is indexed by the full Piece value
// (both colors) and square, matching how putPiece/removePiece index it.
type zobristRandom struct {
	pieces         [PieceLength][SqLength]Key
	pawns          [PieceLength][SqLength]Key
	nextPlayer     Key
	castlingRights [CastlingRightsLength]Key
	enPassantFile  [8]Key
}

var zobristBase zobristRandom

// zobristSeed is fixed so Zobrist keys are reproducible across runs -
// required for deterministic perft/test comparisons and for replaying
// games from a log against the same hash values.
const zobristSeed uint64 = 5489

// initZobrist fills zobristBase with pseudo-random 64 bit keys drawn from
// the xorshift generator in random.go seeded with a fixed constant.
func initZobrist() {
	r := NewRandom(zobristSeed)

	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := Square(0); sq < Square(SqLength); sq++ {
			zobristBase.pieces[pc][sq] = Key(r.Rand64())
		}
	}

	// separate key stream for the pawn-only hash (PawnKey) so it is
	// independent of the keys used for the full position hash.
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := Square(0); sq < Square(SqLength); sq++ {
			zobristBase.pawns[pc][sq] = Key(r.Rand64())
		}
	}

	zobristBase.nextPlayer = Key(r.Rand64())

	for cr := CastlingRights(0); cr < CastlingRightsLength; cr++ {
		zobristBase.castlingRights[cr] = Key(r.Rand64())
	}

	for f := 0; f < 8; f++ {
		zobristBase.enPassantFile[f] = Key(r.Rand64())
	}
}
