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

// File identifies one of the eight vertical columns of the board, from
// the queenside rook file (FileA) to the kingside rook file (FileH).
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

// fileGlyph holds the single ASCII letter printed for each file.
var fileGlyph = [FileNone]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}

// IsValid reports whether f names one of the eight real files.
func (f File) IsValid() bool {
	return f < FileNone
}

// Bb returns the bitboard with every square of file f set.
func (f File) Bb() Bitboard {
	return fileBb[f]
}

// String renders f as its letter label, or "-" for an out-of-range file.
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(fileGlyph[f])
}
