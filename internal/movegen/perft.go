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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/knightkmv/chesscore/internal/position"
	. "github.com/knightkmv/chesscore/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft counts the exact number of leaf nodes of the move generation
// tree to a given depth, plus per-category counters (captures, checks,
// mates, ...). The counts are compared against published reference
// values to prove the move generator correct.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop aborts a running perft test. Useful when the test was started in
// a goroutine.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti runs StartPerft for each depth from startDepth to
// endDepth. Can be stopped via Stop() when run in a goroutine.
func (perft *Perft) StartPerftMulti(fen string, startDepth int, endDepth int, onDemandFlag bool) {
	perft.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(fen, i, onDemandFlag)
	}
}

// StartPerft counts leaf nodes from the given FEN to the given depth,
// using either bulk generation or the on-demand generator, and prints a
// report. Can be stopped via Stop() when run in a goroutine.
func (perft *Perft) StartPerft(fen string, depth int, onDemandFlag bool) {
	perft.stopFlag = false

	if depth <= 0 {
		depth = 1
	}

	// one generator per recursion level so move lists do not clobber
	// each other
	perft.resetCounter()
	p, _ := position.NewPositionFen(fen)
	mgList := make([]*Movegen, depth+1)
	for i := 0; i <= depth; i++ {
		mgList[i] = NewMoveGen()
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	var result uint64
	start := time.Now()
	if onDemandFlag {
		result = perft.miniMaxOD(depth, p, mgList)
	} else {
		result = perft.miniMax(depth, p, mgList)
	}
	elapsed := time.Since(start)

	if result == 0 {
		out.Print("Perft stopped\n")
		return
	}

	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnpassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// miniMax counts leaves using bulk pseudo-legal generation with a
// legality probe per move.
func (perft *Perft) miniMax(depth int, p *position.Position, mgList []*Movegen) uint64 {
	totalNodes := uint64(0)
	moves := mgList[depth].GeneratePseudoLegalMoves(p, GenAll, p.HasCheck())
	for _, move := range *moves {
		if perft.stopFlag {
			return 0
		}
		if depth > 1 {
			p.DoMove(move)
			if p.WasLegalMove() {
				totalNodes += perft.miniMax(depth-1, p, mgList)
			}
			p.UndoMove()
		} else {
			totalNodes += perft.countLeaf(p, move, mgList[0])
		}
	}
	return totalNodes
}

// miniMaxOD counts leaves using the on-demand generator, the same
// phased generation the real search uses.
func (perft *Perft) miniMaxOD(depth int, p *position.Position, mgList []*Movegen) uint64 {
	totalNodes := uint64(0)
	mg := mgList[depth]
	hasCheck := p.HasCheck()
	for move := mg.GetNextMove(p, GenAll, hasCheck); move != MoveNone; move = mg.GetNextMove(p, GenAll, hasCheck) {
		if perft.stopFlag {
			return 0
		}
		if depth > 1 {
			p.DoMove(move)
			if p.WasLegalMove() {
				totalNodes += perft.miniMaxOD(depth-1, p, mgList)
			}
			p.UndoMove()
		} else {
			totalNodes += perft.countLeaf(p, move, mgList[0])
		}
	}
	return totalNodes
}

// countLeaf plays the move, and if legal counts it as a leaf and
// updates the per-category counters. Returns 1 for a legal leaf, 0
// otherwise. The move's properties must be read before it is made.
func (perft *Perft) countLeaf(p *position.Position, move Move, mg *Movegen) uint64 {
	capture := p.GetPiece(move.To()) != PieceNone
	enpassant := move.MoveType() == EnPassant
	castling := move.MoveType() == Castling
	promotion := move.MoveType() == Promotion

	p.DoMove(move)
	defer p.UndoMove()
	if !p.WasLegalMove() {
		return 0
	}

	if enpassant {
		perft.EnpassantCounter++
		perft.CaptureCounter++
	}
	if capture {
		perft.CaptureCounter++
	}
	if castling {
		perft.CastleCounter++
	}
	if promotion {
		perft.PromotionCounter++
	}
	if p.HasCheck() {
		perft.CheckCounter++
		if !mg.HasLegalMove(p) {
			perft.CheckMateCounter++
		}
	}
	return 1
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnpassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}
