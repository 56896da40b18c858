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

// Package position implements the mutable board state of the engine: an
// 8x8 mailbox board mirrored by piece bitboards, incrementally maintained
// Zobrist keys, material/positional counters and an undo stack. All state
// changes go through DoMove/UndoMove (and the null-move pair) so the
// incremental values never drift from the board.
//
// NewPosition() without arguments yields the standard start position,
// NewPositionFen(fen) any other.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/knightkmv/chesscore/internal/assert"
	myLogging "github.com/knightkmv/chesscore/internal/logging"
	. "github.com/knightkmv/chesscore/internal/types"
)

var log *logging.Logger

var initialized = false

func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

const (
	// StartFen is the FEN of the standard chess start position.
	StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Key is a 64-bit Zobrist hash of a position. All 64 bits carry entropy;
// the transposition table derives its index from the low bits but always
// compares the full key.
type Key uint64

// Position is the engine's single mutable board state. The mailbox board
// and the bitboards are redundant representations of the same position
// and are always updated together. Material, game phase and piece-square
// sums are maintained incrementally on every put/remove so evaluation
// never has to recount them.
type Position struct {
	// full position hash, updated incrementally with every state change
	zobristKey Key

	// hash over pawns only, keys the pawn structure cache which may be
	// shared by positions differing only in non-pawn material
	pawnZobristKey Key

	// the unique position (minus repetition info, like a FEN)
	board           [SqLength]Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color

	// derived/extended state
	kingSquare         [ColorLength]Square
	nextHalfMoveNumber int
	piecesBb           [ColorLength][PtLength]Bitboard
	occupiedBb         [ColorLength]Bitboard

	// undo stack, also serves repetition detection
	historyCounter int
	history        [maxHistory]undoInfo

	// incrementally maintained counters
	material        [ColorLength]Value
	materialNonPawn [ColorLength]Value
	psqMidValue     [ColorLength]Value
	psqEndValue     [ColorLength]Value
	gamePhase       int

	// lazily computed check flag, reset on every state change
	hasCheckFlag int

	// static evaluation of the current position as cached by the
	// search (ValueNA when not evaluated yet); snapshots travel on the
	// undo stack so "improving" detection is an O(1) lookup
	staticEval Value
}

// undoInfo captures everything DoMove destroys that cannot be recomputed
// cheaply when taking the move back.
type undoInfo struct {
	zobristKey      Key
	move            Move
	fromPiece       Piece
	capturedPiece   Piece
	castlingRights  CastlingRights
	enpassantSquare Square
	halfMoveClock   int
	hasCheckFlag    int
	staticEval      Value
}

const maxHistory int = MaxMoves

// tri-state for the cached check flag
const (
	flagTBD   int = 0
	flagFalse int = 1
	flagTrue  int = 2
)

// castleRookMove gives the rook's from/to squares for a castling move,
// indexed by the king's target square.
var castleRookMove = [SqLength]struct{ from, to Square }{
	SqG1: {SqH1, SqF1},
	SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8},
	SqC8: {SqA8, SqD8},
}

// NewPosition creates a position from the optional fen argument, or the
// standard start position when called without one. Errors in the fen are
// logged and yield a nil-equivalent position; use NewPositionFen when the
// caller needs to handle them.
func NewPosition(fen ...string) *Position {
	if len(fen) == 0 {
		p, _ := NewPositionFen(StartFen)
		return p
	}
	p, _ := NewPositionFen(fen[0])
	return p
}

// NewPositionFen creates a position from the given FEN, or returns an
// error (and no position) when the FEN is not valid.
func NewPositionFen(fen string) (*Position, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	p := &Position{staticEval: ValueNA}
	if e := p.setupBoard(fen); e != nil {
		log.Errorf("invalid fen, position not created: %s", e)
		return nil, e
	}
	return p, nil
}

// DoMove applies a pseudo-legal move to the board. For speed no legality
// check happens here - callers either generate legal moves or probe with
// WasLegalMove afterwards. The previous state is pushed onto the undo
// stack so UndoMove can restore it exactly.
func (p *Position) DoMove(m Move) {
	fromSq := m.From()
	fromPc := p.board[fromSq]
	us := fromPc.ColorOf()
	toSq := m.To()
	targetPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(m.IsValid(), "DoMove: invalid move %s", m.String())
		assert.Assert(fromPc != PieceNone, "DoMove: no piece on %s for move %s", fromSq.String(), m.StringUci())
		assert.Assert(us == p.nextPlayer, "DoMove: piece %s does not belong to next player", fromPc.String())
		assert.Assert(targetPc.TypeOf() != King, "DoMove: king capture, target is %s", targetPc.String())
	}

	// push undo state; a local copy of the counter lets the compiler
	// elide the bounds checks on the repeated writes
	hc := p.historyCounter
	p.history[hc].zobristKey = p.zobristKey
	p.history[hc].move = m
	p.history[hc].fromPiece = fromPc
	p.history[hc].capturedPiece = targetPc
	p.history[hc].castlingRights = p.castlingRights
	p.history[hc].enpassantSquare = p.enPassantSquare
	p.history[hc].halfMoveClock = p.halfMoveClock
	p.history[hc].hasCheckFlag = p.hasCheckFlag
	p.history[hc].staticEval = p.staticEval
	p.historyCounter++
	p.staticEval = ValueNA

	switch m.MoveType() {
	case Normal:
		p.applyNormalMove(fromSq, toSq, fromPc, targetPc, us)
	case Promotion:
		p.applyPromotionMove(fromSq, toSq, fromPc, targetPc, us, m.PromotionType())
	case EnPassant:
		p.applyEnPassantMove(fromSq, toSq, fromPc, us)
	case Castling:
		p.applyCastlingMove(fromSq, toSq, fromPc, us)
	}

	p.hasCheckFlag = flagTBD
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
}

// UndoMove takes back the last move and restores the previous state
// bit-for-bit (including the Zobrist key, which is restored from the
// undo stack rather than recomputed).
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "UndoMove: no move to undo")
	}

	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	hc := p.historyCounter
	move := p.history[hc].move

	switch move.MoveType() {
	case Normal:
		p.movePiece(move.To(), move.From())
		if p.history[hc].capturedPiece != PieceNone {
			p.putPiece(p.history[hc].capturedPiece, move.To())
		}
	case Promotion:
		p.removePiece(move.To())
		p.putPiece(MakePiece(p.nextPlayer, Pawn), move.From())
		if p.history[hc].capturedPiece != PieceNone {
			p.putPiece(p.history[hc].capturedPiece, move.To())
		}
	case EnPassant:
		p.movePiece(move.To(), move.From())
		p.putPiece(MakePiece(p.nextPlayer.Flip(), Pawn), move.To().To(p.nextPlayer.Flip().MoveDirection()))
	case Castling:
		p.movePiece(move.To(), move.From())
		rm := castleRookMove[move.To()]
		if assert.DEBUG {
			assert.Assert(rm.from != rm.to, "UndoMove: invalid castling target %s", move.To().String())
		}
		p.movePiece(rm.to, rm.from)
	}

	// hash, rights, ep square and clocks come straight from the stack
	p.castlingRights = p.history[hc].castlingRights
	p.enPassantSquare = p.history[hc].enpassantSquare
	p.halfMoveClock = p.history[hc].halfMoveClock
	p.hasCheckFlag = p.history[hc].hasCheckFlag
	p.staticEval = p.history[hc].staticEval
	p.zobristKey = p.history[hc].zobristKey
}

// DoNullMove passes the move to the opponent: side to move flips, the en
// passant square is cleared, everything else stays. Used by null-move
// pruning. Externally observable state round-trips through UndoNullMove.
func (p *Position) DoNullMove() {
	hc := p.historyCounter
	p.history[hc].zobristKey = p.zobristKey
	p.history[hc].move = MoveNone
	p.history[hc].fromPiece = PieceNone
	p.history[hc].capturedPiece = PieceNone
	p.history[hc].castlingRights = p.castlingRights
	p.history[hc].enpassantSquare = p.enPassantSquare
	p.history[hc].halfMoveClock = p.halfMoveClock
	p.history[hc].hasCheckFlag = p.hasCheckFlag
	p.history[hc].staticEval = p.staticEval
	p.historyCounter++
	p.staticEval = ValueNA

	p.hasCheckFlag = flagTBD
	p.clearEnPassant()
	p.nextHalfMoveNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
}

// UndoNullMove reverts DoNullMove.
func (p *Position) UndoNullMove() {
	p.historyCounter--
	p.nextHalfMoveNumber--
	p.nextPlayer = p.nextPlayer.Flip()
	hc := p.historyCounter
	p.castlingRights = p.history[hc].castlingRights
	p.enPassantSquare = p.history[hc].enpassantSquare
	p.halfMoveClock = p.history[hc].halfMoveClock
	p.hasCheckFlag = p.history[hc].hasCheckFlag
	p.staticEval = p.history[hc].staticEval
	p.zobristKey = p.history[hc].zobristKey
}

// IsAttacked reports whether the given square is attacked by any piece
// of color by. The test runs in reverse: place each attacker type on sq
// and intersect its attack set with by's pieces of that type.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	// non-sliders first, their tables need no occupancy
	if (GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0) ||
		(GetPseudoAttacks(Knight, sq)&p.piecesBb[by][Knight] != 0) ||
		(GetPseudoAttacks(King, sq)&p.piecesBb[by][King] != 0) {
		return true
	}

	// sliders against the current total occupancy
	occ := p.OccupiedAll()
	if GetAttacksBb(Bishop, sq, occ)&p.piecesBb[by][Bishop] > 0 ||
		GetAttacksBb(Rook, sq, occ)&p.piecesBb[by][Rook] > 0 ||
		GetAttacksBb(Queen, sq, occ)&p.piecesBb[by][Queen] > 0 {
		return true
	}

	// en passant: the pawn that could be captured sits one rank off the
	// ep target square and is attacked sideways
	if p.enPassantSquare != SqNone {
		victim := MakePiece(by.Flip(), Pawn)
		attacker := MakePiece(by, Pawn)
		victimSq := p.enPassantSquare.To(by.Flip().MoveDirection())
		if sq == victimSq && p.board[victimSq] == victim {
			if p.board[sq.To(West)] == attacker {
				return true
			}
			return p.board[sq.To(East)] == attacker
		}
	}
	return false
}

// IsLegalMove reports whether the move is legal on this position: the
// own king must not be left in check, and a castling king may neither
// start from nor cross an attacked square.
func (p *Position) IsLegalMove(move Move) bool {
	if move.MoveType() == Castling {
		them := p.nextPlayer.Flip()
		// no castling out of check...
		if p.IsAttacked(move.From(), them) {
			return false
		}
		// ...nor through an attacked square. The square the king crosses
		// is the rook's destination.
		if p.IsAttacked(castleRookMove[move.To()].to, them) {
			return false
		}
	}
	// probe: make the move, test the king, take it back
	p.DoMove(move)
	legal := !p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer)
	p.UndoMove()
	return legal
}

// WasLegalMove reports whether the move leading to this position was
// legal: the mover's king may not be capturable now, and a castling must
// not have started from or crossed an attacked square. With an empty
// history only the king test applies.
func (p *Position) WasLegalMove() bool {
	if p.IsAttacked(p.kingSquare[p.nextPlayer.Flip()], p.nextPlayer) {
		return false
	}
	if p.historyCounter > 0 {
		move := p.history[p.historyCounter-1].move
		if move.MoveType() == Castling {
			if p.IsAttacked(move.From(), p.nextPlayer) {
				return false
			}
			if p.IsAttacked(castleRookMove[move.To()].to, p.nextPlayer) {
				return false
			}
		}
	}
	return true
}

// HasCheck reports whether the side to move is in check. The answer is
// cached until the next state change, repeated calls are free.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag != flagTBD {
		return p.hasCheckFlag == flagTrue
	}
	check := p.IsAttacked(p.kingSquare[p.nextPlayer], p.nextPlayer.Flip())
	if check {
		p.hasCheckFlag = flagTrue
	} else {
		p.hasCheckFlag = flagFalse
	}
	return check
}

// IsCapturingMove reports whether the move captures, en passant included.
func (p *Position) IsCapturingMove(move Move) bool {
	return p.occupiedBb[p.nextPlayer.Flip()].Has(move.To()) || move.MoveType() == EnPassant
}

// CheckRepetitions reports whether the current position occurred at
// least reps times before. Only every second stack entry can match (the
// same side must be to move) and the scan stops at the last irreversible
// move, which the stored half-move clocks reveal: once a clock on the
// stack is not smaller than the last one seen, the position before it
// cannot repeat the current one.
func (p *Position) CheckRepetitions(reps int) bool {
	counter := 0
	i := p.historyCounter - 2
	lastHalfMove := p.halfMoveClock
	for i >= 0 {
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.zobristKey == p.history[i].zobristKey {
			counter++
		}
		if counter >= reps {
			return true
		}
		i -= 2
	}
	return false
}

// HasInsufficientMaterial reports whether neither side can force a mate
// with the material on the board (helpmate constellations are ignored).
func (p *Position) HasInsufficientMaterial() bool {
	// bare kings
	if p.material[White]+p.material[Black] == 0 {
		return true
	}

	if p.piecesBb[White][Pawn] == 0 && p.piecesBb[Black][Pawn] == 0 {
		// at most a single minor piece each
		if p.materialNonPawn[White] < 400 && p.materialNonPawn[Black] < 400 {
			return true
		}
		// two knights cannot force mate against a lone minor
		if (p.materialNonPawn[White] == 2*Knight.ValueOf() && p.materialNonPawn[Black] <= Bishop.ValueOf()) ||
			(p.materialNonPawn[Black] == 2*Knight.ValueOf() && p.materialNonPawn[White] <= Bishop.ValueOf()) {
			return true
		}
		// two bishops against one draw
		if (p.materialNonPawn[White] == 2*Bishop.ValueOf() && p.materialNonPawn[Black] == Bishop.ValueOf()) ||
			(p.materialNonPawn[Black] == 2*Bishop.ValueOf() && p.materialNonPawn[White] == Bishop.ValueOf()) {
			return true
		}
		// a bishop pair can mate
		if p.materialNonPawn[White] == 2*Bishop.ValueOf() || p.materialNonPawn[Black] == 2*Bishop.ValueOf() {
			return false
		}
		// two minors against at most one, no bishop pair involved
		if (p.materialNonPawn[White] < 2*Bishop.ValueOf() && p.materialNonPawn[Black] <= Bishop.ValueOf()) ||
			(p.materialNonPawn[White] <= Bishop.ValueOf() && p.materialNonPawn[Black] < 2*Bishop.ValueOf()) {
			return true
		}
	}
	return false
}

// GivesCheck reports whether the move, made on this position, would put
// the opponent's king in check - directly or by a discovered attack.
// The board is not mutated; the post-move occupancy is simulated on a
// bitboard copy.
func (p *Position) GivesCheck(move Move) bool {
	us := p.nextPlayer
	them := us.Flip()
	kingSq := p.kingSquare[them]

	fromSq := move.From()
	toSq := move.To()
	fromPt := p.board[fromSq].TypeOf()
	epVictimSq := SqNone

	switch move.MoveType() {
	case Promotion:
		// the new piece delivers the possible check
		fromPt = move.PromotionType()
	case Castling:
		// only the rook can give check here; no discovered checks exist
		// in castling
		fromPt = Rook
		toSq = castleRookMove[toSq].to
	case EnPassant:
		epVictimSq = toSq.To(them.MoveDirection())
	}

	// simulate the move on the occupancy
	occAfter := p.OccupiedAll()
	occAfter.PopSquare(fromSq)
	occAfter.PushSquare(toSq)
	if epVictimSq != SqNone {
		occAfter.PopSquare(epVictimSq)
	}

	// direct check from the landing square
	switch fromPt {
	case Pawn:
		if GetPawnAttacks(us, toSq).Has(kingSq) {
			return true
		}
	case King:
		// a king cannot give check
	default:
		if GetAttacksBb(fromPt, toSq, occAfter).Has(kingSq) {
			return true
		}
	}

	// discovered check: a slider of ours may now see the king through
	// the vacated square (incl. the en passant victim's square)
	switch {
	case GetAttacksBb(Bishop, kingSq, occAfter)&p.piecesBb[us][Bishop] > 0:
		return true
	case GetAttacksBb(Rook, kingSq, occAfter)&p.piecesBb[us][Rook] > 0:
		return true
	case GetAttacksBb(Queen, kingSq, occAfter)&p.piecesBb[us][Queen] > 0:
		return true
	}

	return false
}

// String returns a multi-line dump of the position: FEN, board matrix
// and the incremental counters.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.StringFen())
	sb.WriteString("\n")
	sb.WriteString(p.StringBoard())
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Next Player    : %s\n", p.nextPlayer.String())
	fmt.Fprintf(&sb, "Game Phase     : %d\n", p.gamePhase)
	fmt.Fprintf(&sb, "Material White : %d\n", p.material[White])
	fmt.Fprintf(&sb, "Material Black : %d\n", p.material[Black])
	fmt.Fprintf(&sb, "Pos value White: %d/%d\n", p.psqMidValue[White], p.psqEndValue[White])
	fmt.Fprintf(&sb, "Pos value Black: %d/%d\n", p.psqMidValue[Black], p.psqEndValue[Black])
	return sb.String()
}

// StringFen returns the FEN of the current position.
func (p *Position) StringFen() string {
	return p.fen()
}

// StringBoard returns an ASCII matrix of the board, rank 8 on top.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(p.board[SquareOf(f, Rank8-r)].Char())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}

// applyNormalMove handles quiet moves, ordinary captures and pawn double
// pushes (which set a new en passant square).
func (p *Position) applyNormalMove(fromSq Square, toSq Square, fromPc Piece, targetPc Piece, us Color) {
	// touching a king or rook home square invalidates the matching right
	if p.castlingRights != CastlingNone {
		if cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq); cr != CastlingNone {
			p.rehashCastlingRights(cr)
		}
	}
	p.clearEnPassant()
	if targetPc != PieceNone {
		p.removePiece(toSq)
		p.halfMoveClock = 0
	} else if fromPc.TypeOf() == Pawn {
		p.halfMoveClock = 0
		if SquareDistance(fromSq, toSq) == 2 {
			// double push - ep target is the square behind the pawn
			p.enPassantSquare = toSq.To(us.Flip().MoveDirection())
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	} else {
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

// applyCastlingMove moves king and rook and removes both castling rights
// of the moving side.
func (p *Position) applyCastlingMove(fromSq Square, toSq Square, fromPc Piece, us Color) {
	rm := castleRookMove[toSq]
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(us, King), "DoMove: castling move but mover is not a king")
		assert.Assert(rm.from != rm.to, "DoMove: invalid castling target %s", toSq.String())
		assert.Assert(p.board[rm.from] == MakePiece(us, Rook), "DoMove: no rook on %s for castling", rm.from.String())
		assert.Assert(p.OccupiedAll()&Intermediate(fromSq, rm.from) == 0, "DoMove: castling path blocked")
	}
	p.movePiece(fromSq, toSq)
	p.movePiece(rm.from, rm.to)
	if us == White {
		p.rehashCastlingRights(CastlingWhite)
	} else {
		p.rehashCastlingRights(CastlingBlack)
	}
	p.clearEnPassant()
	p.halfMoveClock++
}

// applyEnPassantMove removes the captured pawn from its actual square,
// one rank off the target square.
func (p *Position) applyEnPassantMove(fromSq Square, toSq Square, fromPc Piece, us Color) {
	capSq := toSq.To(us.Flip().MoveDirection())
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(us, Pawn), "DoMove: en passant move but mover is not a pawn")
		assert.Assert(p.enPassantSquare != SqNone, "DoMove: en passant move without ep square")
		assert.Assert(p.board[capSq] == MakePiece(us.Flip(), Pawn), "DoMove: no enemy pawn on ep capture square")
	}
	p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

// applyPromotionMove swaps the pawn for the promoted piece on the target
// square, capturing first if needed.
func (p *Position) applyPromotionMove(fromSq Square, toSq Square, fromPc Piece, targetPc Piece, us Color, promoted PieceType) {
	if assert.DEBUG {
		assert.Assert(fromPc == MakePiece(us, Pawn), "DoMove: promotion move but mover is not a pawn")
		assert.Assert(us.PromotionRankBb().Has(toSq), "DoMove: promotion move to a non-promotion rank")
	}
	if targetPc != PieceNone {
		p.removePiece(toSq)
	}
	// a rook captured on its home square costs the castling right
	if p.castlingRights != CastlingNone {
		if cr := GetCastlingRights(fromSq) | GetCastlingRights(toSq); cr != CastlingNone {
			p.rehashCastlingRights(cr)
		}
	}
	p.removePiece(fromSq)
	p.putPiece(MakePiece(us, promoted), toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

// rehashCastlingRights removes the given rights and swaps the Zobrist
// contribution from the old rights set to the new one.
func (p *Position) rehashCastlingRights(remove CastlingRights) {
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	p.castlingRights.Remove(remove)
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
}

func (p *Position) movePiece(fromSq Square, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

// putPiece places a piece on an empty square and updates every
// incremental counter: bitboards, hashes, game phase, material and
// piece-square sums.
func (p *Position) putPiece(piece Piece, square Square) {
	color := piece.ColorOf()
	pieceType := piece.TypeOf()

	if assert.DEBUG {
		assert.Assert(p.board[square] == PieceNone, "putPiece: square %s occupied", square.String())
		assert.Assert(!p.piecesBb[color][pieceType].Has(square), "putPiece: piece bit already set on %s", square.String())
		assert.Assert(!p.occupiedBb[color].Has(square), "putPiece: occupancy bit already set on %s", square.String())
	}

	p.board[square] = piece
	if pieceType == King {
		p.kingSquare[color] = square
	}
	p.piecesBb[color][pieceType].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)

	p.zobristKey ^= zobristBase.pieces[piece][square]
	if pieceType == Pawn {
		p.pawnZobristKey ^= zobristBase.pawns[piece][square]
	}

	p.gamePhase += pieceType.GamePhaseValue()
	if p.gamePhase > GamePhaseMax {
		p.gamePhase = GamePhaseMax
	}
	p.material[color] += pieceType.ValueOf()
	if pieceType > Pawn {
		p.materialNonPawn[color] += pieceType.ValueOf()
	}
	p.psqMidValue[color] += PosMidValue(piece, square)
	p.psqEndValue[color] += PosEndValue(piece, square)
}

// removePiece is the exact inverse of putPiece and returns the removed
// piece.
func (p *Position) removePiece(square Square) Piece {
	removed := p.board[square]
	color := removed.ColorOf()
	pieceType := removed.TypeOf()

	if assert.DEBUG {
		assert.Assert(removed != PieceNone, "removePiece: square %s empty", square.String())
		assert.Assert(p.piecesBb[color][pieceType].Has(square), "removePiece: piece bit not set on %s", square.String())
		assert.Assert(p.occupiedBb[color].Has(square), "removePiece: occupancy bit not set on %s", square.String())
	}

	p.board[square] = PieceNone
	p.piecesBb[color][pieceType].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)

	p.zobristKey ^= zobristBase.pieces[removed][square]
	if pieceType == Pawn {
		p.pawnZobristKey ^= zobristBase.pawns[removed][square]
	}

	p.gamePhase -= pieceType.GamePhaseValue()
	if p.gamePhase < 0 {
		p.gamePhase = 0
	}
	p.material[color] -= pieceType.ValueOf()
	if pieceType > Pawn {
		p.materialNonPawn[color] -= pieceType.ValueOf()
	}
	p.psqMidValue[color] -= PosMidValue(removed, square)
	p.psqEndValue[color] -= PosEndValue(removed, square)
	return removed
}

// clearEnPassant removes an en passant square, if set, from state and
// hash.
func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}

// fen serializes the position into a standard six-field FEN.
func (p *Position) fen() string {
	var fen strings.Builder
	for r := Rank1; r <= Rank8; r++ {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, Rank8-r)]
			if pc == PieceNone {
				emptySquares++
				continue
			}
			if emptySquares > 0 {
				fen.WriteString(strconv.Itoa(emptySquares))
				emptySquares = 0
			}
			fen.WriteString(pc.String())
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r < Rank8 {
			fen.WriteString("/")
		}
	}
	fen.WriteString(" ")
	fen.WriteString(p.nextPlayer.String())
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa((p.nextHalfMoveNumber + 1) / 2))
	return fen.String()
}

var (
	regexFenPos          = regexp.MustCompile("[0-8pPnNbBrRqQkK/]+")
	regexWorB            = regexp.MustCompile("^[w|b]$")
	regexCastlingRights  = regexp.MustCompile("^(K?Q?k?q?|-)$")
	regexEnPassantSquare = regexp.MustCompile("^([a-h][1-8]|-)$")
)

// setupBoard initializes the position from a FEN. Only the board layout
// field is mandatory; every later field gets a default when missing. The
// Zobrist keys are built up from scratch while the pieces are placed.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")

	if len(fenParts) == 0 {
		return errors.New("fen must not be empty")
	}
	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	// the layout runs from a8 to h1, "/" drops one rank
	currentSquare := SqA8
	for _, c := range fenParts[0] {
		if number, e := strconv.Atoi(string(c)); e == nil {
			currentSquare = Square(int(currentSquare) + (number * int(East)))
		} else if string(c) == "/" {
			// plain arithmetic: after a full rank the square can be 64,
			// which the To() lookup table does not cover
			currentSquare = Square(int(currentSquare) + 2*int(South))
		} else {
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %s", string(c))
			}
			p.putPiece(piece, currentSquare)
			currentSquare++
		}
	}
	// after h1 the running square has wrapped to a2
	if currentSquare != SqA2 {
		return errors.New("fen board layout does not cover all 64 squares")
	}

	p.nextHalfMoveNumber = 1
	p.enPassantSquare = SqNone

	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return errors.New("fen next player field invalid")
		}
		if fenParts[1] == "b" {
			p.nextPlayer = Black
			p.zobristKey ^= zobristBase.nextPlayer
			p.nextHalfMoveNumber++
		}
	}

	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return errors.New("fen castling rights field invalid")
		}
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
				switch string(c) {
				case "K":
					p.castlingRights.Add(CastlingWhiteOO)
				case "Q":
					p.castlingRights.Add(CastlingWhiteOOO)
				case "k":
					p.castlingRights.Add(CastlingBlackOO)
				case "q":
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	}

	if len(fenParts) >= 4 {
		if !regexEnPassantSquare.MatchString(fenParts[3]) {
			return errors.New("fen en passant field invalid")
		}
		if fenParts[3] != "-" {
			p.enPassantSquare = MakeSquare(fenParts[3])
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	}

	if len(fenParts) >= 5 {
		number, e := strconv.Atoi(fenParts[4])
		if e != nil {
			return e
		}
		p.halfMoveClock = number
	}

	if len(fenParts) >= 6 {
		moveNumber, e := strconv.Atoi(fenParts[5])
		if e != nil {
			return e
		}
		if moveNumber == 0 {
			moveNumber = 1
		}
		p.nextHalfMoveNumber = 2*moveNumber - (1 - int(p.nextPlayer))
	}

	return nil
}

// ZobristKey returns the position's full Zobrist hash.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// PawnKey returns the Zobrist hash over pawns only; it keys the pawn
// structure cache.
func (p *Position) PawnKey() Key {
	return p.pawnZobristKey
}

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// GetPiece returns the piece on the given square, PieceNone when empty.
func (p *Position) GetPiece(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the bitboard of the given piece type and color.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedAll returns the bitboard of all pieces on the board.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedBb[White] | p.occupiedBb[Black]
}

// OccupiedBb returns the bitboard of all pieces of color c.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// GamePhase returns the position's game phase in [0, GamePhaseMax].
// GamePhaseMax (24) is the start position; 0 means no officers left.
func (p *Position) GamePhase() int {
	return p.gamePhase
}

// GamePhaseFactor returns the game phase normalized to [0, 1], where 1
// is the start position.
func (p *Position) GamePhaseFactor() float64 {
	return float64(p.gamePhase) / GamePhaseMax
}

// GetEnPassantSquare returns the en passant target square or SqNone.
func (p *Position) GetEnPassantSquare() Square {
	return p.enPassantSquare
}

// CastlingRights returns the position's castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the fifty-move-rule counter.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// Material returns c's total material value.
func (p *Position) Material(c Color) Value {
	return p.material[c]
}

// MaterialNonPawn returns c's material value excluding pawns.
func (p *Position) MaterialNonPawn(c Color) Value {
	return p.materialNonPawn[c]
}

// PsqMidValue returns c's summed middle game piece-square value.
func (p *Position) PsqMidValue(c Color) Value {
	return p.psqMidValue[c]
}

// PsqEndValue returns c's summed end game piece-square value.
func (p *Position) PsqEndValue(c Color) Value {
	return p.psqEndValue[c]
}

// SetStaticEval caches the search's static evaluation of the current
// position. The value travels with the undo stack: it is snapshotted on
// DoMove and restored on UndoMove.
func (p *Position) SetStaticEval(v Value) {
	p.staticEval = v
}

// StaticEval returns the cached static evaluation of the current
// position, ValueNA when the search has not evaluated it.
func (p *Position) StaticEval() Value {
	return p.staticEval
}

// StaticEvalBefore returns the static evaluation snapshot from n plies
// back on the undo stack, ValueNA when the history does not reach back
// that far or that position was never evaluated. Used by the search's
// improving detection (two plies back reaches the same side to move).
func (p *Position) StaticEvalBefore(n int) Value {
	if n <= 0 || p.historyCounter < n {
		return ValueNA
	}
	return p.history[p.historyCounter-n].staticEval
}

// LastMove returns the previous move, or MoveNone with empty history.
func (p *Position) LastMove() Move {
	if p.historyCounter <= 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

// MoveBefore returns the move made two plies ago (the side to move's own
// previous move), or MoveNone if the history does not reach back that far.
func (p *Position) MoveBefore() Move {
	if p.historyCounter <= 1 {
		return MoveNone
	}
	return p.history[p.historyCounter-2].move
}

// LastCapturedPiece returns the piece captured by the previous move, or
// PieceNone for a quiet move or empty history.
func (p *Position) LastCapturedPiece() Piece {
	if p.historyCounter <= 0 {
		return PieceNone
	}
	return p.history[p.historyCounter-1].capturedPiece
}

// WasCapturingMove reports whether the previous move captured.
func (p *Position) WasCapturingMove() bool {
	return p.LastCapturedPiece() != PieceNone
}
