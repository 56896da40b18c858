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

package uci

import (
	"bufio"
	"bytes"
	"os"
	"path"
	"runtime"
	"strings"
	"testing"
	"time"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/knightkmv/chesscore/internal/config"
	"github.com/knightkmv/chesscore/internal/logging"
	"github.com/knightkmv/chesscore/internal/position"
)

var logTest *logging2.Logger

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
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestNewUciHandler(t *testing.T) {
	u := NewUciHandler()
	assert.Same(t, u, u.mySearch.GetUciHandlerPtr())
}

func TestLoopUntilQuit(t *testing.T) {
	uh := NewUciHandler()
	uh.InIo = bufio.NewScanner(strings.NewReader("uci\nquit\n"))
	buffer := new(bytes.Buffer)
	uh.OutIo = bufio.NewWriter(buffer)
	uh.Loop()
	assert.Contains(t, buffer.String(), "uciok")
}

func TestUciCommand(t *testing.T) {
	uh := NewUciHandler()
	result := uh.Command("uci")
	assert.Contains(t, result, "id name ChessCore")
	assert.Contains(t, result, "id author")
	assert.Contains(t, result, "option name Hash")
	assert.Contains(t, result, "Clear Hash")
	assert.Contains(t, result, "uciok")
}

func TestIsReadyCommand(t *testing.T) {
	uh := NewUciHandler()
	assert.Contains(t, uh.Command("isready"), "readyok")
}

func TestClearHashOption(t *testing.T) {
	uh := NewUciHandler()
	assert.Contains(t, uh.Command("isready"), "readyok")
	assert.Contains(t, uh.Command("setoption name Clear Hash"), "Hash cleared")
}

func TestResizeHashOption(t *testing.T) {
	uh := NewUciHandler()
	assert.Contains(t, uh.Command("isready"), "readyok")
	assert.Contains(t, uh.Command("setoption name Hash value 512"), "Hash resized")
}

func TestUnknownOption(t *testing.T) {
	uh := NewUciHandler()
	assert.Contains(t, uh.Command("setoption name NoSuchOption value 1"), "No such option")
}

func TestPositionCommand(t *testing.T) {
	uh := NewUciHandler()

	uh.Command("position startpos")
	assert.EqualValues(t, position.StartFen, uh.myPosition.StringFen())

	uh.Command("position fen " + position.StartFen)
	assert.EqualValues(t, position.StartFen, uh.myPosition.StringFen())

	result := uh.Command("position fen")
	assert.Contains(t, result, "Command 'position' malformed")

	uh.Command("position fen " + position.StartFen + "  moves     e2e4 e7e5 g1f3 b8c6")
	assert.EqualValues(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", uh.myPosition.StringFen())

	// an illegal move in the list aborts the command
	result = uh.Command("position fen " + position.StartFen + "  moves e7e5 g1f3 b8c6")
	assert.Contains(t, result, "Command 'position' malformed")

	uh.Command("position startpos  moves  e2e4 e7e5 g1f3 b8c6")
	assert.EqualValues(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", uh.myPosition.StringFen())
}

func TestReadSearchLimits(t *testing.T) {
	uh := NewUciHandler()
	split := func(cmd string) []string { return regexWhiteSpace.Split(cmd, -1) }

	// simple flags
	sl, malformed := uh.readSearchLimits(split("go infinite"))
	assert.False(t, malformed)
	assert.True(t, sl.Infinite)
	assert.False(t, sl.TimeControl)

	sl, malformed = uh.readSearchLimits(split("go ponder"))
	assert.False(t, malformed)
	assert.True(t, sl.Ponder)

	// move list restriction before and after other subcommands
	sl, malformed = uh.readSearchLimits(split("go infinite moves e2e4 d2d4"))
	assert.False(t, malformed)
	assert.EqualValues(t, "e2e4 d2d4", sl.Moves.StringUci())

	sl, malformed = uh.readSearchLimits(split("go moves e2e4 d2d4 infinite"))
	assert.False(t, malformed)
	assert.True(t, sl.Infinite)
	assert.EqualValues(t, "e2e4 d2d4", sl.Moves.StringUci())

	// numeric limits
	sl, malformed = uh.readSearchLimits(split("go depth 6 mate 4 nodes 10000000"))
	assert.False(t, malformed)
	assert.EqualValues(t, 6, sl.Depth)
	assert.EqualValues(t, 4, sl.Mate)
	assert.EqualValues(t, 10_000_000, sl.Nodes)
	assert.False(t, sl.TimeControl)

	// both spellings of movetime
	sl, malformed = uh.readSearchLimits(split("go movetime 5000"))
	assert.False(t, malformed)
	assert.EqualValues(t, 5000, sl.MoveTime.Milliseconds())
	assert.True(t, sl.TimeControl)

	sl, malformed = uh.readSearchLimits(split("go moveTime 5000 mate 6"))
	assert.False(t, malformed)
	assert.EqualValues(t, 5000, sl.MoveTime.Milliseconds())
	assert.EqualValues(t, 6, sl.Mate)

	// full game time control
	sl, malformed = uh.readSearchLimits(split("go wtime 60000 btime 60000 winc 2000 binc 2000 movestogo 20 moves e2e4 d2d4 g1f3"))
	assert.False(t, malformed)
	assert.EqualValues(t, 60000, sl.WhiteTime.Milliseconds())
	assert.EqualValues(t, 60000, sl.BlackTime.Milliseconds())
	assert.EqualValues(t, 2000, sl.WhiteInc.Milliseconds())
	assert.EqualValues(t, 2000, sl.BlackInc.Milliseconds())
	assert.EqualValues(t, 20, sl.MovesToGo)
	assert.EqualValues(t, "e2e4 d2d4 g1f3", sl.Moves.StringUci())
	assert.True(t, sl.TimeControl)

	// malformed commands
	_, malformed = uh.readSearchLimits(split("go depth mate 4"))
	assert.True(t, malformed)
	_, malformed = uh.readSearchLimits(split("go moveTime 5000 depth 6 nodex 1000000"))
	assert.True(t, malformed)
	// increments alone are no effective time control
	_, malformed = uh.readSearchLimits(split("go winc 2000 binc 2000 movestogo 20 moves e2e4"))
	assert.True(t, malformed)
}

func TestFullSearchProcess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}
	uh := NewUciHandler()

	result := uh.Command("uci")
	assert.Contains(t, result, "id name ChessCore")
	assert.Contains(t, result, "uciok")
	assert.Contains(t, uh.Command("isready"), "readyok")
	assert.Contains(t, uh.Command("setoption name Hash value 512"), "Hash resized")

	uh.Command("position startpos moves e2e4 e7e5")
	assert.EqualValues(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", uh.myPosition.StringFen())

	uh.Command("go moveTime 2000")
	assert.True(t, uh.mySearch.IsSearching())
	uh.mySearch.WaitWhileSearching()
	assert.True(t, uh.mySearch.LastSearchResult().BestMove.IsValid())

	uh.Command("quit")
}

func TestStopInfiniteSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}
	uh := NewUciHandler()

	assert.Contains(t, uh.Command("isready"), "readyok")
	uh.Command("position startpos moves e2e4 e7e5")

	uh.Command("go infinite")
	assert.True(t, uh.mySearch.IsSearching())

	time.Sleep(1 * time.Second)

	uh.Command("stop")
	uh.mySearch.WaitWhileSearching()
	assert.False(t, uh.mySearch.IsSearching())

	uh.Command("quit")
}
