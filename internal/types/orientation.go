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

import "fmt"

// Orientation indexes the eight compass directions a ray can run from a
// square. Used as the first index into the ray lookup tables.
type Orientation uint8

const (
	NW Orientation = 0
	N  Orientation = 1
	NE Orientation = 2
	E  Orientation = 3
	SE Orientation = 4
	S  Orientation = 5
	SW Orientation = 6
	W  Orientation = 7
)

var orientationToString = [8]string{"NW", "N", "NE", "E", "SE", "S", "SW", "W"}

// IsValid reports whether o is one of the eight directions.
func (o Orientation) IsValid() bool {
	return o < 8
}

// String returns the compass label of the orientation (N, NE, ...).
func (o Orientation) String() string {
	if !o.IsValid() {
		panic(fmt.Sprintf("Invalid orientation %d", o))
	}
	return orientationToString[o]
}
