//go:build !debug
// +build !debug

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

// Package assert provides internal invariant checks that compile away
// completely in release builds. DEBUG is a build-tag-selected constant;
// guarding every call site with `if assert.DEBUG { ... }` lets the
// compiler eliminate the whole statement including argument evaluation:
//
//	if assert.DEBUG {
//	    assert.Assert(value > 0, "value must be positive, got %s", value.String())
//	}
package assert

// DEBUG enables assertion evaluation when built with the debug tag.
const DEBUG = false

// Assert panics with the formatted message when test is false. In
// release builds this is a no-op; keep the assert.DEBUG guard at the
// call site so the arguments are not even evaluated.
func Assert(test bool, msg string, a ...interface{}) {}
