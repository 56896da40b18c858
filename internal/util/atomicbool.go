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

package util

import (
	"sync/atomic"
)

// word encodes the two states a Bool can hold.
type word = uint32

const (
	wordFalse word = 0
	wordTrue  word = 1
)

// Bool gives a plain bool safe concurrent access, e.g. a stop signal one
// goroutine sets and another polls without a mutex.
type Bool struct{ packed word }

// NewBool builds a Bool starting at the given value.
func NewBool(initial bool) *Bool {
	b := &Bool{}
	b.Store(initial)
	return b
}

// Store atomically sets the value.
func (b *Bool) Store(v bool) {
	atomic.StoreUint32(&b.packed, toWord(v))
}

// Load atomically reads the value.
func (b *Bool) Load() bool {
	return atomic.LoadUint32(&b.packed) != wordFalse
}

// Swap atomically sets v and reports the value it replaced.
func (b *Bool) Swap(v bool) bool {
	return atomic.SwapUint32(&b.packed, toWord(v)) != wordFalse
}

// CAS sets the value to updated only if it currently equals expected,
// reporting whether the swap took place.
func (b *Bool) CAS(expected, updated bool) bool {
	return atomic.CompareAndSwapUint32(&b.packed, toWord(expected), toWord(updated))
}

// Toggle flips the value and returns what it was before the flip.
func (b *Bool) Toggle() bool {
	for {
		before := b.Load()
		if b.CAS(before, !before) {
			return before
		}
	}
}

func toWord(v bool) word {
	if v {
		return wordTrue
	}
	return wordFalse
}
