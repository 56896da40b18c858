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

// Package moveslice provides MoveSlice, a thin deque/list wrapper around
// a []Move used for move lists and principal variations. All operations
// reuse the underlying array where possible - move lists are allocated
// once per search and recycled at very high frequency.
package moveslice

import (
	"fmt"
	"strings"
	"sync"

	. "github.com/knightkmv/chesscore/internal/types"
)

// MoveSlice is a slice of moves with deque-style helpers.
type MoveSlice []Move

// NewMoveSlice creates an empty MoveSlice with the given capacity.
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves in the slice.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns the capacity of the underlying array.
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends a move.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the last move. Panics when empty.
func (ms *MoveSlice) PopBack() Move {
	if len(*ms) == 0 {
		panic("MoveSlice: PopBack() called on empty slice")
	}
	last := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return last
}

// PushFront inserts a move at the front, shifting all others one slot
// within the existing array.
func (ms *MoveSlice) PushFront(m Move) {
	*ms = append(*ms, MoveNone)
	copy((*ms)[1:], *ms)
	(*ms)[0] = m
}

// PopFront removes and returns the first move. Panics when empty. The
// slice start moves within the underlying array, so capacity shrinks.
func (ms *MoveSlice) PopFront() Move {
	if len(*ms) == 0 {
		panic("MoveSlice: PopFront() called on empty slice")
	}
	first := (*ms)[0]
	*ms = (*ms)[1:]
	return first
}

// Front returns the first move without removing it. Panics when empty.
func (ms *MoveSlice) Front() Move {
	if len(*ms) == 0 {
		panic("MoveSlice: Front() called when empty")
	}
	return (*ms)[0]
}

// Back returns the last move without removing it. Panics when empty.
func (ms *MoveSlice) Back() Move {
	if len(*ms) == 0 {
		panic("MoveSlice: Back() called when empty")
	}
	return (*ms)[len(*ms)-1]
}

// At returns the move at index i. Panics on an out-of-bounds index.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("MoveSlice: index out of bounds")
	}
	return (*ms)[i]
}

// Set replaces the move at index i. Panics on an out-of-bounds index.
func (ms *MoveSlice) Set(i int, move Move) {
	if i < 0 || i >= len(*ms) {
		panic("MoveSlice: index out of bounds")
	}
	(*ms)[i] = move
}

// Filter keeps only the moves for which f returns true, compacting in
// place over the existing array.
func (ms *MoveSlice) Filter(f func(index int) bool) {
	kept := (*ms)[:0]
	for i, m := range *ms {
		if f(i) {
			kept = append(kept, m)
		}
	}
	*ms = kept
}

// FilterCopy appends the moves for which f returns true to dest,
// leaving the receiver untouched.
func (ms *MoveSlice) FilterCopy(dest *MoveSlice, f func(index int) bool) {
	for i, m := range *ms {
		if f(i) {
			*dest = append(*dest, m)
		}
	}
}

// Clone returns a deep copy with the same length and capacity.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len(), ms.Cap())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Equals reports whether both slices hold the same moves in the same
// order.
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i, m := range *ms {
		if m != (*other)[i] {
			return false
		}
	}
	return true
}

// ForEach calls f with each index in stored order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for index := range *ms {
		f(index)
	}
}

// ForEachParallel calls f with each index from its own goroutine and
// waits for all to finish. f must synchronize any shared state itself.
func (ms *MoveSlice) ForEachParallel(f func(index int)) {
	var wg sync.WaitGroup
	wg.Add(len(*ms))
	for index := range *ms {
		go func(i int) {
			defer wg.Done()
			f(i)
		}(index)
	}
	wg.Wait()
}

// Clear empties the slice but keeps the capacity so the array can be
// reused without reallocation.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Sort orders the moves by descending move value using a stable
// insertion sort - move lists are short and mostly pre-sorted, which is
// exactly where insertion sort beats the generic sort. Only the value
// bits of the move word are compared so equal-valued moves keep their
// generation order.
func (ms *MoveSlice) Sort() {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmp := (*ms)[i]
		j := i
		for j > 0 && (tmp&0xFFFF0000) > ((*ms)[j-1]&0xFFFF0000) {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}

// String returns a human readable list of the moves.
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "MoveList: [%d] { ", len(*ms))
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// StringUci returns the moves space-separated in UCI notation.
func (ms *MoveSlice) StringUci() string {
	var sb strings.Builder
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}
