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
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/knightkmv/chesscore/internal/config"
	myLogging "github.com/knightkmv/chesscore/internal/logging"
	. "github.com/knightkmv/chesscore/internal/types"

	"github.com/stretchr/testify/assert"
)

var out = message.NewPrinter(language.German)
var logTest *logging.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = myLogging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestPositionFromStartFen(t *testing.T) {
	p, err := NewPositionFen(StartFen)
	assert.NoError(t, err)

	assert.Equal(t, SqA1.Bb()|SqH1.Bb()|SqA8.Bb()|SqH8.Bb(), p.piecesBb[White][Rook]|p.piecesBb[Black][Rook])
	assert.Equal(t, SqB1.Bb()|SqG1.Bb()|SqB8.Bb()|SqG8.Bb(), p.piecesBb[White][Knight]|p.piecesBb[Black][Knight])
	assert.Equal(t, SqC1.Bb()|SqF1.Bb()|SqC8.Bb()|SqF8.Bb(), p.piecesBb[White][Bishop]|p.piecesBb[Black][Bishop])
	assert.Equal(t, SqD1.Bb()|SqD8.Bb(), p.piecesBb[White][Queen]|p.piecesBb[Black][Queen])
	assert.Equal(t, SqE1.Bb()|SqE8.Bb(), p.piecesBb[White][King]|p.piecesBb[Black][King])
	assert.Equal(t, Rank2_Bb|Rank7_Bb, p.piecesBb[White][Pawn]|p.piecesBb[Black][Pawn])
	assert.Equal(t, White, p.nextPlayer)
	assert.Equal(t, CastlingAny, p.castlingRights)
	assert.Equal(t, SqNone, p.enPassantSquare)
	assert.Equal(t, 0, p.halfMoveClock)
	assert.Equal(t, 1, p.nextHalfMoveNumber)

	// start position is symmetric, all counters must cancel out
	assert.Equal(t, Value(0), p.material[White]-p.material[Black])
	assert.Equal(t, Value(0), p.materialNonPawn[White]-p.materialNonPawn[Black])
	assert.Equal(t, Value(0), p.psqMidValue[White]-p.psqMidValue[Black])
	assert.Equal(t, Value(0), p.psqEndValue[White]-p.psqEndValue[Black])

	assert.Equal(t, StartFen, p.StringFen())
}

func TestPositionFromComplexFen(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14"
	p, err := NewPositionFen(fen)
	assert.NoError(t, err)

	assert.Equal(t, SqB1.Bb()|SqG3.Bb()|SqA8.Bb()|SqH8.Bb(), p.piecesBb[White][Rook]|p.piecesBb[Black][Rook])
	assert.Equal(t, SqD7.Bb()|SqG6.Bb(), p.piecesBb[White][Knight]|p.piecesBb[Black][Knight])
	assert.Equal(t, SqB2.Bb(), p.piecesBb[White][Bishop]|p.piecesBb[Black][Bishop])
	assert.Equal(t, SqC4.Bb()|SqC6.Bb()|SqE6.Bb(), p.piecesBb[White][Queen]|p.piecesBb[Black][Queen])
	assert.Equal(t, SqG1.Bb()|SqE8.Bb(), p.piecesBb[White][King]|p.piecesBb[Black][King])
	assert.Equal(t,
		SqA2.Bb()|SqB7.Bb()|SqC2.Bb()|SqC7.Bb()|SqE4.Bb()|SqE5.Bb()|SqF2.Bb()|SqF4.Bb()|SqG2.Bb()|SqH2.Bb()|SqH7.Bb(),
		p.piecesBb[White][Pawn]|p.piecesBb[Black][Pawn])
	assert.Equal(t, Black, p.nextPlayer)
	assert.Equal(t, CastlingBlack, p.castlingRights)
	assert.Equal(t, SqE3, p.enPassantSquare)
	assert.Equal(t, 0, p.halfMoveClock)
	assert.Equal(t, 28, p.nextHalfMoveNumber)
	assert.Equal(t, Value(-3770), p.material[White]-p.material[Black])
	assert.Equal(t, Value(-3670), p.materialNonPawn[White]-p.materialNonPawn[Black])
	assert.Equal(t, fen, p.StringFen())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/3k4/8/8/8/8/4K3/8 w - - 0 1",
		"6k1/P7/8/8/8/8/8/3K4 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		assert.NoError(t, err, fen)
		assert.Equal(t, fen, p.StringFen())
	}
}

func TestInvalidFen(t *testing.T) {
	invalid := []string{
		"",
		"6k1/P7/8/9/8/8/8/3K4 w - - 0 1",   // broken rank
		"6k1/P7/8/8/8/8/8/3K4 x - - 0 1",   // bad color
		"6k1/P7/8/8/8/8/8/3K4 w ZZ - 0 1",  // bad castling field
		"6k1/P7/8/8/8/8/8/3K4 w - z9 0 1",  // bad ep field
		"6k1/P7/8/8/8/8/8/3K4 w - - xx 1",  // bad clock
		"6k1/P7/8/8/8/8/8/3K4 w - - 0 xx",  // bad move number
		"rnbqkbnr/pppppppp/8/8/8/8/8 w - -", // too few squares
	}
	for _, fen := range invalid {
		_, err := NewPositionFen(fen)
		assert.Error(t, err, fen)
	}
}

func TestPositionEquality(t *testing.T) {
	p1 := NewPosition()
	p2, _ := NewPositionFen(StartFen)
	assert.Equal(t, p1, p2)

	p3, _ := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14")
	assert.NotEqual(t, p1, p3)

	// a struct copy is a full position copy
	*p3 = *p2
	assert.Equal(t, *p1, *p3)
	p3.castlingRights.Remove(CastlingWhiteOO)
	assert.NotEqual(t, *p1, *p3)
	assert.Equal(t, *p1, *p2)
	p3.castlingRights.Add(CastlingWhiteOO)
	assert.Equal(t, *p1, *p3)
}

// a scripted do/undo sequence must restore the position bit for bit,
// including the incrementally maintained Zobrist keys
func TestDoUndoRoundTrip(t *testing.T) {
	p := NewPosition()
	reference := *p

	moves := []Move{
		CreateMove(SqE2, SqE4, Normal, PtNone),
		CreateMove(SqD7, SqD5, Normal, PtNone),
		CreateMove(SqE4, SqD5, Normal, PtNone),
		CreateMove(SqD8, SqD5, Normal, PtNone),
		CreateMove(SqB1, SqC3, Normal, PtNone),
	}
	for _, m := range moves {
		p.DoMove(m)
	}
	for range moves {
		p.UndoMove()
	}

	assert.Equal(t, reference.StringFen(), p.StringFen())
	assert.Equal(t, reference.ZobristKey(), p.ZobristKey())
	assert.Equal(t, reference.PawnKey(), p.PawnKey())
	assert.Equal(t, reference.piecesBb, p.piecesBb)
	assert.Equal(t, reference.occupiedBb, p.occupiedBb)
	assert.Equal(t, reference.material, p.material)
	assert.Equal(t, reference.gamePhase, p.gamePhase)
}

// after any sequence of moves the incremental key must equal the key of
// a position freshly parsed from the same FEN
func TestIncrementalZobristMatchesRecompute(t *testing.T) {
	p := NewPosition()
	moves := []Move{
		CreateMove(SqE2, SqE4, Normal, PtNone),
		CreateMove(SqE7, SqE5, Normal, PtNone),
		CreateMove(SqG1, SqF3, Normal, PtNone),
		CreateMove(SqB8, SqC6, Normal, PtNone),
		CreateMove(SqF1, SqB5, Normal, PtNone),
		CreateMove(SqG8, SqF6, Normal, PtNone),
		CreateMove(SqE1, SqG1, Castling, PtNone),
	}
	for _, m := range moves {
		p.DoMove(m)
		fresh, err := NewPositionFen(p.StringFen())
		assert.NoError(t, err)
		assert.Equal(t, fresh.ZobristKey(), p.ZobristKey(), "after %s", m.StringUci())
		assert.Equal(t, fresh.PawnKey(), p.PawnKey(), "after %s", m.StringUci())
	}
}

func TestDoMoveNormal(t *testing.T) {
	tests := []struct {
		fen      string
		move     Move
		expected string
	}{
		{ // quiet queen move, ep square cleared, clock ticks
			"r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3",
			CreateMove(SqC4, SqD4, Normal, PtNone),
			"r3k2r/1ppn3p/2q1q1n1/8/3qPp2/B5R1/p1p2PPP/1R4K1 w kq - 1 2",
		},
		{ // capture resets the half move clock
			"r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3",
			CreateMove(SqC4, SqE4, Normal, PtNone),
			"r3k2r/1ppn3p/2q1q1n1/8/4qp2/B5R1/p1p2PPP/1R4K1 w kq - 0 2",
		},
		{ // rook capture on g6
			"r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 w kq -",
			CreateMove(SqG3, SqG6, Normal, PtNone),
			"r3k2r/1ppn3p/2q1q1R1/8/2q1Pp2/B7/p1p2PPP/1R4K1 b kq - 0 1",
		},
	}
	for _, tc := range tests {
		p, _ := NewPositionFen(tc.fen)
		p.DoMove(tc.move)
		assert.Equal(t, tc.expected, p.StringFen())
	}
}

func TestDoMoveCastling(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3"

	p, _ := NewPositionFen(fen)
	p.DoMove(CreateMove(SqE8, SqG8, Castling, PtNone))
	assert.Equal(t, "r4rk1/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 w - - 1 2", p.StringFen())

	p, _ = NewPositionFen(fen)
	p.DoMove(CreateMove(SqE8, SqC8, Castling, PtNone))
	assert.Equal(t, "2kr3r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 w - - 1 2", p.StringFen())
}

func TestDoMoveEnPassant(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3")
	p.DoMove(CreateMove(SqF4, SqE3, EnPassant, PtNone))
	// the captured pawn disappears from e4, not e3
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/2q5/B3p1R1/p1p2PPP/1R4K1 w kq - 0 2", p.StringFen())
}

func TestDoMovePromotion(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3"

	p, _ := NewPositionFen(fen)
	p.DoMove(CreateMove(SqA2, SqA1, Promotion, Queen))
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/2p2PPP/qR4K1 w kq - 0 2", p.StringFen())

	// under-promotion capturing the rook on b1
	p, _ = NewPositionFen(fen)
	p.DoMove(CreateMove(SqA2, SqB1, Promotion, Rook))
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/2p2PPP/1r4K1 w kq - 0 2", p.StringFen())
}

func TestIsAttacked(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/6R1/p1p2PPP/1R4K1 b kq e3")

	// pawns
	assert.True(t, p.IsAttacked(SqG3, White))
	assert.True(t, p.IsAttacked(SqE3, White))
	assert.True(t, p.IsAttacked(SqB1, Black))
	assert.True(t, p.IsAttacked(SqE4, Black))
	assert.True(t, p.IsAttacked(SqE3, Black))

	// knight
	assert.True(t, p.IsAttacked(SqE5, Black))
	assert.True(t, p.IsAttacked(SqF4, Black))
	assert.False(t, p.IsAttacked(SqG1, Black))

	// sliders
	assert.True(t, p.IsAttacked(SqG6, White))
	assert.True(t, p.IsAttacked(SqA5, Black))

	p, _ = NewPositionFen("rnbqkbnr/1ppppppp/8/p7/Q1P5/8/PP1PPPPP/RNB1KBNR b KQkq - 1 2")

	// king
	assert.True(t, p.IsAttacked(SqD1, White))
	assert.False(t, p.IsAttacked(SqE1, Black))

	// rook down the a-file stops at the pawn
	assert.True(t, p.IsAttacked(SqA5, Black))
	assert.False(t, p.IsAttacked(SqA4, Black))

	// queen
	assert.False(t, p.IsAttacked(SqE8, White))
	assert.True(t, p.IsAttacked(SqD7, White))
}

func TestIsAttackedEnPassant(t *testing.T) {
	// the attacked square is the pawn that can be captured en passant,
	// from either side, for both colors
	cases := []struct {
		fen string
		sq  Square
		by  Color
	}{
		{"rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6", SqD5, White},
		{"rnbqkbnr/1pp1pppp/p7/2Pp4/8/8/PP1PPPPP/RNBQKBNR w KQkq d6", SqD5, White},
		{"rnbqkbnr/pppp1ppp/8/8/3Pp3/7P/PPP1PPP1/RNBQKBNR b - d3", SqD4, Black},
		{"rnbqkbnr/pppp1ppp/8/8/2pP4/7P/PPP1PPP1/RNBQKBNR b - d3", SqD4, Black},
	}
	for _, tc := range cases {
		p, _ := NewPositionFen(tc.fen)
		assert.True(t, p.IsAttacked(tc.sq, tc.by), tc.fen)
	}
}

func TestIsAttackedBlockedSliders(t *testing.T) {
	p, _ := NewPositionFen("r1bqk1nr/pppp1ppp/2nb4/1B2B3/3pP3/8/PPP2PPP/RN1QK1NR b KQkq -")
	assert.False(t, p.IsAttacked(SqE8, White))
	assert.False(t, p.IsAttacked(SqE1, Black))

	p, _ = NewPositionFen("rnbqkbnr/ppp1pppp/8/1B6/3Pp3/8/PPP2PPP/RNBQK1NR b KQkq -")
	assert.True(t, p.IsAttacked(SqE8, White))
	assert.False(t, p.IsAttacked(SqE1, Black))

	p, _ = NewPositionFen("8/1pk2p2/2p5/5p2/8/1pp2Q2/5K2/8 w - -")
	assert.False(t, p.IsAttacked(SqF7, White))
	assert.False(t, p.IsAttacked(SqB7, White))
	assert.False(t, p.IsAttacked(SqB3, White))
}

func TestIsLegalMoveCastling(t *testing.T) {
	// king side crosses an attacked square, queen side does not
	p, _ := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3")
	assert.False(t, p.IsLegalMove(CreateMove(SqE8, SqG8, Castling, PtNone)))
	assert.True(t, p.IsLegalMove(CreateMove(SqE8, SqC8, Castling, PtNone)))

	// in check: no castling at all
	p, _ = NewPositionFen("r3k2r/1ppn3p/2q1qNn1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3")
	assert.False(t, p.IsLegalMove(CreateMove(SqE8, SqG8, Castling, PtNone)))
	assert.False(t, p.IsLegalMove(CreateMove(SqE8, SqC8, Castling, PtNone)))
}

func TestWasLegalMove(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3")
	p.DoMove(CreateMove(SqE8, SqG8, Castling, PtNone)) // crossed an attacked square
	assert.False(t, p.WasLegalMove())
	p.UndoMove()
	p.DoMove(CreateMove(SqE8, SqC8, Castling, PtNone))
	assert.True(t, p.WasLegalMove())
}

func TestGivesCheckDirect(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		move  Move
		check bool
	}{
		{"pawn", "4r3/1pn3k1/4p1b1/p1Pp1P1r/3P2NR/1P3B2/3K2P1/4R3 w - -", CreateMove(SqF5, SqF6, Normal, PtNone), true},
		{"pawn black", "5k2/4pp2/1N2n1p1/r3P2p/P5PP/2rR1K2/P7/3R4 b - -", CreateMove(SqH5, SqG4, Normal, PtNone), true},
		{"promotion queen", "1k3r2/1p1bP3/2p2p1Q/Ppb5/4Rp1P/2q2N1P/5PB1/6K1 w - -", CreateMove(SqE7, SqF8, Promotion, Queen), true},
		{"promotion knight", "1r3r2/1p1bP2k/2p2n2/p1Pp4/P2N1PpP/1R2p3/1P2P1BP/3R2K1 w - -", CreateMove(SqE7, SqF8, Promotion, Knight), true},
		{"knight", "5k2/4pp2/1N2n1p1/r3P2p/P5PP/2rR1K2/P7/3R4 w - -", CreateMove(SqB6, SqD7, Normal, PtNone), true},
		{"knight black", "5k2/4pp2/1N2n1p1/r3P2p/P5PP/2rR1K2/P7/3R4 b - -", CreateMove(SqE6, SqD4, Normal, PtNone), true},
		{"rook", "5k2/4pp2/1N2n1pp/r3P3/P5PP/2rR4/P3K3/3R4 w - -", CreateMove(SqD3, SqD8, Normal, PtNone), true},
		{"rook black", "5k2/4pp2/1N2n1pp/r3P3/P5PP/2rR4/P3K3/3R4 b - -", CreateMove(SqC3, SqC2, Normal, PtNone), true},
		{"blocked by opponent", "5k2/4pp2/1N2n1pp/r3P3/P5PP/2rR4/P2RK3/8 b - -", CreateMove(SqC3, SqC2, Normal, PtNone), false},
		{"blocked by own piece", "5k2/4pp2/1N2n1pp/r3P3/P5PP/2rR4/P2nK3/3R4 b - -", CreateMove(SqC3, SqC2, Normal, PtNone), false},
		{"bishop", "6k1/3q2b1/p1rrnpp1/P3p3/2B1P3/1p1R3Q/1P4PP/1B1R3K w - -", CreateMove(SqC4, SqE6, Normal, PtNone), true},
		{"queen", "5k2/4pp2/1N2n1pp/r3P3/P5PP/2qR4/P3K3/3R4 b - -", CreateMove(SqC3, SqC2, Normal, PtNone), true},
		{"queen diagonal", "6k1/3q2b1/p1rrnpp1/P3p3/2B1P3/1p1R3Q/1P4PP/1B1R3K w - -", CreateMove(SqH3, SqE6, Normal, PtNone), true},
		{"queen file", "6k1/p3q2p/1n1Q2pB/8/5P2/6P1/PP5P/3R2K1 b - -", CreateMove(SqE7, SqE3, Normal, PtNone), true},
		{"no check", "6k1/p3q2p/1n1Q2pB/8/5P2/6P1/PP5P/3R2K1 b - -", CreateMove(SqE7, SqE4, Normal, PtNone), false},
	}
	for _, tc := range cases {
		p := NewPosition(tc.fen)
		assert.Equal(t, tc.check, p.GivesCheck(tc.move), tc.name)
	}
}

func TestGivesCheckCastling(t *testing.T) {
	cases := []struct {
		fen  string
		move Move
	}{
		{"r4k1r/8/8/8/8/8/8/R3K2R w KQ -", CreateMove(SqE1, SqG1, Castling, PtNone)},
		{"r2k3r/8/8/8/8/8/8/R3K2R w KQ -", CreateMove(SqE1, SqC1, Castling, PtNone)},
		{"r3k2r/8/8/8/8/8/8/R4K1R b kq -", CreateMove(SqE8, SqG8, Castling, PtNone)},
		{"r3k2r/8/8/8/8/8/8/R2K3R b kq -", CreateMove(SqE8, SqC8, Castling, PtNone)},
		{"r6r/8/8/8/8/8/8/2k1K2R w K -", CreateMove(SqE1, SqG1, Castling, PtNone)},
	}
	for _, tc := range cases {
		p := NewPosition(tc.fen)
		assert.True(t, p.GivesCheck(tc.move), tc.fen)
	}
}

func TestGivesCheckDiscovered(t *testing.T) {
	cases := []struct {
		fen   string
		move  Move
		check bool
	}{
		{"6k1/8/3P1bp1/2BNp3/8/1Q3P1q/7r/1K2R3 w - -", CreateMove(SqD5, SqE7, Normal, PtNone), true},
		{"6k1/8/3P1bp1/2BNp3/8/1Q3P1q/7r/1K2R3 w - -", CreateMove(SqD5, SqC7, Normal, PtNone), true},
		{"1Q1N2k1/8/3P1bp1/2B1p3/8/5P1q/7r/1K2R3 w - -", CreateMove(SqD8, SqE6, Normal, PtNone), true},
		{"1R1N2k1/8/3P1bp1/2B1p3/8/5P1q/7r/1K2R3 w - -", CreateMove(SqD8, SqE6, Normal, PtNone), true},
		// the en passant victim vacates a line to the king
		{"8/b2r1pk1/p1R2p2/1p5p/r2Pp3/PRP3P1/5K1P/8 b - d3", CreateMove(SqE4, SqD3, EnPassant, PtNone), true},
		// direct check through the en passant capture
		{"8/3r1pk1/p1R2p2/1p5p/r2Pp3/PRP3P1/4KP1P/8 b - d3", CreateMove(SqE4, SqD3, EnPassant, PtNone), true},
		// assorted
		{"2r1r3/pb1n1kpn/1p1qp3/6p1/2PP4/8/P2Q1PPP/3R1RK1 w - -", CreateMove(SqF2, SqF4, Normal, PtNone), false},
		{"2r1r1k1/pb3pp1/1p1qpn2/4n1p1/2PP4/6KP/P2Q1PP1/3RR3 b - -", CreateMove(SqE5, SqD3, Normal, PtNone), true},
		{"R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q1NNQQ2/1p6/qk3KB1 b - -", CreateMove(SqB1, SqC2, Normal, PtNone), true},
		{"8/8/8/8/8/5K2/R7/7k w - -", CreateMove(SqA2, SqH2, Normal, PtNone), true},
		{"r1bqkb1r/ppp1pppp/2n2n2/1B1P4/8/8/PPPP1PPP/RNBQK1NR w KQkq -", CreateMove(SqD5, SqC6, Normal, PtNone), false},
		{"rnbq1bnr/pppkpppp/8/3p4/3P4/3Q4/PPP1PPPP/RNB1KBNR w KQ -", CreateMove(SqD3, SqH7, Normal, PtNone), false},
	}
	for _, tc := range cases {
		p := NewPosition(tc.fen)
		assert.Equal(t, tc.check, p.GivesCheck(tc.move), tc.fen)
	}
}

func TestCheckRepetitions(t *testing.T) {
	// knight shuffle from the start position
	p := NewPosition()
	p.DoMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	p.DoMove(CreateMove(SqE7, SqE5, Normal, PtNone))
	for i := 0; i <= 2; i++ {
		p.DoMove(CreateMove(SqG1, SqF3, Normal, PtNone))
		p.DoMove(CreateMove(SqB8, SqC6, Normal, PtNone))
		p.DoMove(CreateMove(SqF3, SqG1, Normal, PtNone))
		p.DoMove(CreateMove(SqC6, SqB8, Normal, PtNone))
	}
	assert.True(t, p.CheckRepetitions(2))

	// queen/king shuffle mid-game
	p, _ = NewPositionFen("6k1/p3q2p/1n1Q2pB/8/5P2/6P1/PP5P/3R2K1 b - -")
	p.DoMove(CreateMove(SqE7, SqE3, Normal, PtNone))
	p.DoMove(CreateMove(SqG1, SqG2, Normal, PtNone))
	for i := 0; i <= 2; i++ {
		p.DoMove(CreateMove(SqE3, SqE2, Normal, PtNone))
		p.DoMove(CreateMove(SqG2, SqG1, Normal, PtNone))
		p.DoMove(CreateMove(SqE2, SqE3, Normal, PtNone))
		p.DoMove(CreateMove(SqG1, SqG2, Normal, PtNone))
	}
	assert.True(t, p.CheckRepetitions(2))
}

func TestNullMoveRoundTrip(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3")
	before := *p
	p.DoNullMove()
	assert.NotEqual(t, before.ZobristKey(), p.ZobristKey())
	assert.Equal(t, before.NextPlayer().Flip(), p.NextPlayer())
	p.UndoNullMove()
	assert.Equal(t, before.StringFen(), p.StringFen())
	assert.Equal(t, before.ZobristKey(), p.ZobristKey())
}

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		fen          string
		insufficient bool
	}{
		{"8/3k4/8/8/8/8/4K3/8 w - -", true},       // bare kings
		{"8/3k4/8/8/8/2B5/4K3/8 w - -", true},     // K+B vs K
		{"8/8/4K3/8/8/2b5/4k3/8 b - -", true},     // K vs K+B
		{"8/8/3BK3/8/8/2b5/4k3/8 b - -", true},    // bishop each
		{"8/8/2B1K3/8/8/8/2b1k3/8 b - -", true},   // bishop each
		{"8/8/4K3/2B5/8/8/2b1k3/8 b - -", true},   // bishop each
		{"8/8/2B1K3/2B5/8/8/2n1k3/8 b - -", false}, // bishop pair mates
		{"8/8/2NNK3/8/8/8/4k3/8 w - -", true},     // two knights
		{"8/8/2nnk3/8/8/8/4K3/8 w - -", true},     // two knights
		{"8/8/2n1kn2/8/8/8/4K3/4B3 w - -", true},  // NN vs B
		{"8/8/3bk1b1/8/8/8/4K3/4B3 w - -", true},  // BB vs B
		{"8/8/3bk1b1/8/8/8/4K3/4N3 w - -", false}, // bishop pair vs N
		{"8/8/3bk1n1/8/8/8/4K3/4N3 w - -", true},  // BN vs N
	}
	for _, tc := range cases {
		p, _ := NewPositionFen(tc.fen)
		assert.Equal(t, tc.insufficient, p.HasInsufficientMaterial(), tc.fen)
	}
}

func BenchmarkDoUndo(b *testing.B) {
	e2e4 := CreateMove(SqE2, SqE4, Normal, PtNone)
	d7d5 := CreateMove(SqD7, SqD5, Normal, PtNone)
	e4d5 := CreateMove(SqE4, SqD5, Normal, PtNone)
	d8d5 := CreateMove(SqD8, SqD5, Normal, PtNone)
	b1c3 := CreateMove(SqB1, SqC3, Normal, PtNone)

	p := NewPosition()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.DoMove(e2e4)
		p.DoMove(d7d5)
		p.DoMove(e4d5)
		p.DoMove(d8d5)
		p.DoMove(b1c3)
		p.UndoMove()
		p.UndoMove()
		p.UndoMove()
		p.UndoMove()
		p.UndoMove()
	}
}

var benchRes bool

func BenchmarkIsAttacked(b *testing.B) {
	p, _ := NewPositionFen("r5k1/p1qb1p1p/1p3np1/2b2p2/2B5/2P3N1/PP2QPPP/R3N1K1 b - -")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			benchRes = p.IsAttacked(sq, White)
			benchRes = p.IsAttacked(sq, Black)
		}
	}
}
