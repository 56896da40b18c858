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

package transpositiontable

import (
	"github.com/knightkmv/chesscore/internal/position"
	. "github.com/knightkmv/chesscore/internal/types"
)

// TtEntry is one slot of the transposition table, exactly 16 bytes so
// entries pack tightly and the capacity math stays a simple division.
// depth, value type and age share one bit-packed word:
//
//	vmeta: [ depth 7 bits | vtype 2 bits | age 3 bits ]
//
// age counts generations since the entry was last useful: a store sets
// it to 1, each probe hit lowers it by one (down to 0), and AgeEntries
// raises it by one between searches (up to 7); higher = older.
type TtEntry struct {
	key   position.Key    // full 64-bit Zobrist key - index bits are not enough for validity
	move  uint16 // move part of a Move (no value bits), convert with Move(e.move)
	eval  int16  // static evaluation at store time
	value int16  // search value
	vmeta uint16 // packed depth/vtype/age, see above
}

const (
	// TtEntrySize is the size of one TtEntry in bytes.
	TtEntrySize = 16

	ageMask    = uint16(0b0000_0000_0000_0111)
	ageMax     = int8(7)
	vtypeMask  = uint16(0b0000_0000_0001_1000)
	vtypeShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
)

// age occupies the lowest bits, so saturated add/sub work directly on
// the packed word

func (e *TtEntry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *TtEntry) increaseAge() {
	if e.Age() < ageMax {
		e.vmeta++
	}
}

// Key returns the entry's full Zobrist key.
func (e *TtEntry) Key() position.Key {
	return e.key
}

// Move returns the stored best/refutation move (without value bits).
func (e *TtEntry) Move() Move {
	return Move(e.move)
}

// Value returns the stored search value.
func (e *TtEntry) Value() Value {
	return Value(e.value)
}

// Eval returns the static evaluation stored with the entry.
func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

// Depth returns the search depth the value was obtained at.
func (e *TtEntry) Depth() int8 {
	return int8((e.vmeta & depthMask) >> depthShift)
}

// Age returns the entry's generation age (0 = fresh).
func (e *TtEntry) Age() int8 {
	return int8(e.vmeta & ageMask)
}

// Vtype returns whether the stored value is exact or a bound.
func (e *TtEntry) Vtype() ValueType {
	return ValueType((e.vmeta & vtypeMask) >> vtypeShift)
}
