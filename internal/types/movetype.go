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

// MoveType distinguishes the four ways a Move's from/to pair must be
// interpreted when applied to a position. It fits the 2-bit field reserved
// for it in the Move encoding (see move.go) - whether a move is a capture
// is not part of this tag; it is derived by checking the target square
// against the position instead.
type MoveType uint8

// MoveType constants. Values fit in 2 bits (0b00-0b11) to match moveTypeMask.
const (
	Normal    MoveType = 0b00
	Promotion MoveType = 0b01
	EnPassant MoveType = 0b10
	Castling  MoveType = 0b11
)

// IsValid checks if t is a valid move type.
func (t MoveType) IsValid() bool {
	return t <= Castling
}

var moveTypeToString = [4]string{"Normal", "Promotion", "EnPassant", "Castling"}

// String returns a string representation of the move type.
func (t MoveType) String() string {
	return moveTypeToString[t]
}
