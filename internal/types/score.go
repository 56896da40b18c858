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

package types

import (
	"fmt"
)

// Score pairs a middlegame and an endgame centipawn contribution so a
// single evaluation term can carry both halves of a tapered value.
// int16 keeps the struct small enough for the pawn cache entry layout.
type Score struct {
	MidGameValue int16
	EndGameValue int16
}

// Add accumulates both halves of other into s.
func (s *Score) Add(other *Score) {
	s.MidGameValue += other.MidGameValue
	s.EndGameValue += other.EndGameValue
}

// Sub removes both halves of other from s.
func (s *Score) Sub(other *Score) {
	s.MidGameValue -= other.MidGameValue
	s.EndGameValue -= other.EndGameValue
}

// ValueFromScore blends the two halves by a game-phase factor in [0,1],
// where gpf == 1 weights purely middlegame and gpf == 0 purely endgame.
func (s *Score) ValueFromScore(gpf float64) Value {
	mg := float64(s.MidGameValue) * gpf
	eg := float64(s.EndGameValue) * (1.0 - gpf)
	return Value(mg) + Value(eg)
}

// String renders s for debug logging.
func (s *Score) String() string {
	return fmt.Sprintf("{ mid:%d end:%d }", s.MidGameValue, s.EndGameValue)
}
