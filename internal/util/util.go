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

// Package util provides some additional useful
// functions not available in GO
package util

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.German)

// Abs returns the absolute value of n using a branchless sign-mask trick.
func Abs(n int) int {
	mask := n >> (strconv.IntSize - 1)
	return (n + mask) ^ mask
}

// Abs16 is Abs for int16.
func Abs16(n int16) int16 {
	mask := n >> 15
	return (n + mask) ^ mask
}

// Abs64 is Abs for int64.
func Abs64(n int64) int64 {
	mask := n >> 63
	return (n + mask) ^ mask
}

// Min returns whichever of x, y is smaller.
func Min(x, y int) int {
	if y < x {
		return y
	}
	return x
}

// Max returns whichever of x, y is larger.
func Max(x, y int) int {
	if y > x {
		return y
	}
	return x
}

// Min64 is Min for int64.
func Min64(x, y int64) int64 {
	if y < x {
		return y
	}
	return x
}

// Max64 is Max for int64.
func Max64(x, y int64) int64 {
	if y > x {
		return y
	}
	return x
}

// IsAlpha reports whether l is an ASCII letter, upper- or lowercase.
func IsAlpha(l uint8) bool {
	return (l >= 'a' && l <= 'z') || (l >= 'A' && l <= 'Z')
}

// IsLower reports whether l is a lowercase ASCII letter.
func IsLower(l uint8) bool {
	return l >= 'a' && l <= 'z'
}

// IsDigit reports whether l is an ASCII decimal digit.
func IsDigit(l uint8) bool {
	return l >= '0' && l <= '9'
}

// TimeTrack logs the elapsed time since start under the given label.
// Usage: defer util.TimeTrack(time.Now(), "some text")
func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	_, _ = out.Printf("%s took %d ns\n", name, elapsed.Nanoseconds())
}

// Nps computes nodes searched per second, nudging a zero duration up by
// one nanosecond so the division never blows up.
func Nps(nodes uint64, duration time.Duration) uint64 {
	elapsed := duration.Nanoseconds() + 1
	return uint64(int64(nodes) * time.Second.Nanoseconds() / elapsed)
}

// MemStat summarizes current heap allocation and GC counters.
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return out.Sprintf("Alloc: %d TotalAlloc: %d HeapAlloc: %d HeapObjects: %d NumGC: %d",
		mem.Alloc, mem.TotalAlloc, mem.HeapAlloc, mem.HeapObjects, mem.NumGC)
}

// GcWithStats forces a garbage collection cycle and reports memory use
// before and after, plus how long the collection took.
func GcWithStats() string {
	before := MemStat()
	startGC := time.Now()
	runtime.GC()
	elapsed := time.Since(startGC)

	var b strings.Builder
	fmt.Fprintf(&b, "Mem stats: %s ", before)
	fmt.Fprintf(&b, "GC took: %d ms ", elapsed.Milliseconds())
	fmt.Fprintf(&b, "Mem stats: %s", MemStat())
	return b.String()
}
