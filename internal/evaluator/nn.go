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

package evaluator

import (
	"github.com/knightkmv/chesscore/internal/position"
	. "github.com/knightkmv/chesscore/internal/types"
)

// NNEvaluator is the single-method interface an optional alternative
// scoring function must implement to be blended into Evaluate. It is
// kept deliberately narrow - the classical evaluator calls Evaluate and
// nothing else, so any NNUE-style or other learned evaluator can be
// plugged in without the core depending on its internals.
type NNEvaluator interface {
	// Evaluate returns a centipawn score for the position from White's
	// point of view, on the same scale as the classical evaluation.
	Evaluate(p *position.Position) Value
}

// EvalMode names the scoring variants. Evaluator.Evaluate does not read
// it: it blends in the installed NNEvaluator whenever
// config.Settings.Eval.UseNN is set and one is installed.
type EvalMode int

const (
	// EvalClassical uses only the hand-tuned term-by-term evaluation.
	EvalClassical EvalMode = iota
	// EvalNN uses only the installed NNEvaluator.
	EvalNN
	// EvalHybrid blends classical and NN scores, weighted by game phase
	// as described in Evaluate.
	EvalHybrid
)

// nullNN is a zero-value NNEvaluator that always returns a neutral
// score. It exists so callers can install "no NN" without special
// casing a nil check everywhere a NNEvaluator is used directly.
type nullNN struct{}

func (nullNN) Evaluate(*position.Position) Value { return ValueZero }
