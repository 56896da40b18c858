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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/knightkmv/chesscore/internal/config"
	"github.com/knightkmv/chesscore/internal/movegen"
	"github.com/knightkmv/chesscore/internal/moveslice"
	"github.com/knightkmv/chesscore/internal/position"
	. "github.com/knightkmv/chesscore/internal/types"
	"github.com/knightkmv/chesscore/internal/util"
)

func Test_savePV(t *testing.T) {
	src := moveslice.NewMoveSlice(10)
	dest := moveslice.NewMoveSlice(10)

	src.PushBack(Move(1234))
	src.PushBack(Move(2345))
	src.PushBack(Move(3456))
	src.PushBack(Move(4567))

	savePV(Move(9999), src, dest)

	// logTest.Debug(dest.String())
	assert.EqualValues(t, 5, dest.Len())
	assert.EqualValues(t, 9999, dest.At(0))
	assert.EqualValues(t, 4567, dest.At(4))
}

func TestMate(t *testing.T) {
	s := NewSearch()
	p, _ := position.NewPositionFen("8/8/8/8/8/3K4/R7/5k2 w - -")
	sl := NewSearchLimits()
	sl.Depth = 8
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	assert.EqualValues(t, 9993, s.lastSearchResult.BestValue)
}

// fool's mate after 1.f3 e5 2.g4: with Black to move, d8h4 delivers
// checkmate. A depth-1 search from this position must find that move and
// return a mate score.
func TestFoolsMateFoundAtDepthOne(t *testing.T) {
	s := NewSearch()
	p, err := position.NewPositionFen("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	assert.NoError(t, err)

	mg := movegen.NewMoveGen()
	mateMove := mg.GetMoveFromUci(p, "d8h4")
	assert.NotEqual(t, MoveNone, mateMove, "d8h4 must be a legal move for Black here")

	sl := NewSearchLimits()
	sl.Depth = 1
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	assert.Equal(t, mateMove.MoveOf(), s.lastSearchResult.BestMove.MoveOf(), "search must find the mating move")
	assert.Greater(t, s.lastSearchResult.BestValue, ValueCheckMateThreshold, "a found mate must score above the mate threshold")
}

// repetition draw: after the 8th ply of the knight shuffle from the
// start position, the side to move has repeated the position and the
// search must return the contempt (draw) value.
func TestRepetitionDraw(t *testing.T) {
	p := position.NewPosition()
	mg := movegen.NewMoveGen()
	for _, uci := range []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"} {
		m := mg.GetMoveFromUci(p, uci)
		assert.NotEqual(t, MoveNone, m, "move %s must be legal", uci)
		p.DoMove(m)
	}
	assert.True(t, p.CheckRepetitions(2), "position must have repeated at least twice after the shuffle")

	s := NewSearch()
	sl := NewSearchLimits()
	sl.Depth = 4
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	assert.EqualValues(t, s.contemptValue(p), s.lastSearchResult.BestValue)
}

// null-move pruning must not fire in a position where the side to move
// has no non-pawn material - doing so would hand back a free tempo in
// a zugzwang position and produce an unsound cutoff.
func TestNullMoveForbiddenWithoutNonPawnMaterial(t *testing.T) {
	p, err := position.NewPositionFen("8/8/8/8/8/4k3/6p1/6K1 w - - 0 1")
	assert.NoError(t, err)
	assert.Zero(t, p.MaterialNonPawn(p.NextPlayer()), "side to move has only a king, the null-move guard must forbid pruning here")
}

func TestTimingTTSize(t *testing.T) {
	t.SkipNow()

	results := []string{}

	for ttSize := 1; ttSize < 10_000; ttSize = ttSize * 2 {

		out.Println("TT Size", ttSize)

		// defer profile.Start(profile.CPUProfile, profile.ProfilePath("../bin")).Stop()
		// go tool pprof -http=localhost:8080 chesscore.test cpu.pprof
		config.LogLevel = 2
		config.SearchLogLevel = 2
		config.Settings.Search.TTSize = ttSize

		s := NewSearch()
		p := position.NewPosition()
		sl := NewSearchLimits()
		// sl.Depth = 8
		sl.TimeControl = true
		sl.MoveTime = 10 * time.Second
		s.StartSearch(*p, *sl)
		s.WaitWhileSearching()
		nps := util.Nps(s.nodesVisited, s.lastSearchResult.SearchTime)
		results = append(results, out.Sprintf("tt size: %-6d time: %-12s nodes: %-12d depth: %2d/%-2d nps: %-12d stats: %s tt: %s",
			ttSize, s.lastSearchResult.SearchTime, s.nodesVisited, s.lastSearchResult.SearchDepth, s.lastSearchResult.ExtraDepth,
			nps, s.statistics.String(), s.tt.String()))
	}

	out.Println()
	for _, r := range results {
		out.Println(r)
	}
}

func TestTiming(t *testing.T) {
	t.SkipNow()
	// defer profile.Start(profile.CPUProfile, profile.ProfilePath("../bin")).Stop()
	// go tool pprof -http=localhost:8080 chesscore.test cpu.pprof
	s := NewSearch()
	p := position.NewPosition("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3")
	sl := NewSearchLimits()
	sl.Depth = 10
	// sl.TimeControl = true
	sl.MoveTime = 30 * time.Second
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	out.Println("TT  : ", s.tt.String())
	out.Println("NPS : ", util.Nps(s.nodesVisited, s.lastSearchResult.SearchTime))
}