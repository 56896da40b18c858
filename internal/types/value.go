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

package types

import (
	"strconv"
	"strings"

	"github.com/knightkmv/chesscore/internal/util"
)

// Value represents a signed centipawn score from the perspective of the
// side to move, or (when embedded in a Move) a transient move-ordering
// sort key. Encoded into the high 16 bits of a Move so it must fit the
// biased range [ValueNA, ValueNA+65535].
type Value int16

const (
	ValueZero Value = 0
	ValueDraw Value = 0
	ValueOne  Value = 1
	ValueInf  Value = 15_000
	ValueNA   Value = -ValueInf - 1

	ValueMax Value = 10_000
	ValueMin Value = -ValueMax

	// mate scores occupy the band just below ValueMax; the distance to
	// the mate is encoded as ValueCheckMate minus the ply count
	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - MaxDepth - 1
)

// IsValid reports whether v lies in [ValueMin, ValueMax].
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v encodes a mate (its distance from
// ValueCheckMate is at most the maximum search depth).
func (v Value) IsCheckMateValue() bool {
	return util.Abs(int(v)) > int(ValueCheckMateThreshold) && util.Abs(int(v)) <= int(ValueCheckMate)
}

// String renders v UCI-style: "cp <n>" for a normal score, "mate <n>"
// in full moves for a mate score, "N/A" for the not-available marker.
func (v Value) String() string {
	switch {
	case v.IsCheckMateValue():
		var sb strings.Builder
		sb.WriteString("mate ")
		if v < ValueZero {
			sb.WriteString("-")
		}
		plies := int(ValueCheckMate) - util.Abs(int(v))
		sb.WriteString(strconv.Itoa((plies + 1) / 2))
		return sb.String()
	case v == ValueNA:
		return "N/A"
	default:
		return "cp " + strconv.Itoa(int(v))
	}
}
