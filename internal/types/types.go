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

// Package types contains the board-representation primitives shared by every
// other package of the engine: squares, pieces, colors, moves, bitboards and
// the magic-bitboard slider tables. Many of these would be perfect enum
// candidates but Go has none.
package types

import (
	"github.com/op/go-logging"

	myLogging "github.com/knightkmv/chesscore/internal/logging"
)

var log *logging.Logger

var initialized = false

// init precomputes all lookup tables (square bitboards, rays, magic slider
// attacks, piece-square tables). Safe to rely on package import order since
// Go guarantees init() runs before any other package code touches these
// tables.
func init() {
	if initialized {
		return
	}
	log = myLogging.GetLog()
	log.Debug("Initializing data types")
	precomputeLookupTables()
	initPosValues()
	initialized = true
}

const (
	// SqLength number of squares on a board
	SqLength int = 64

	// MaxDepth max search depth
	MaxDepth = 128

	// MaxMoves max number of moves generated for any single position
	MaxMoves = 512

	// KB = 1.024 bytes
	KB uint64 = 1024

	// MB = KB * KB
	MB uint64 = KB * KB

	// GB = KB * MB
	GB uint64 = KB * MB

	// GamePhaseMax is the maximum game phase value. Game phase is used to
	// determine if we are in the beginning or end phase of a chess game.
	// Calculated from the non-pawn, non-king material on the board.
	GamePhaseMax = 24
)
