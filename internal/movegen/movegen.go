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

// Package movegen generates chess moves on a position: bulk
// pseudo-legal generation, fully filtered legal generation for the
// root, and a phased on-demand generator for the search that produces
// moves in promising-first order and stops as soon as a beta cut makes
// the rest unnecessary.
package movegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/op/go-logging"

	"github.com/knightkmv/chesscore/internal/attacks"
	"github.com/knightkmv/chesscore/internal/history"
	myLogging "github.com/knightkmv/chesscore/internal/logging"
	"github.com/knightkmv/chesscore/internal/moveslice"
	"github.com/knightkmv/chesscore/internal/position"
	. "github.com/knightkmv/chesscore/internal/types"
	"github.com/knightkmv/chesscore/internal/util"
)

var log *logging.Logger

const removeSortValue = true

// Movegen holds the reusable move lists and the on-demand generator
// state for one recursion ply. Create via NewMoveGen(); the zero value
// is not usable.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice

	onDemandMoves          *moveslice.MoveSlice
	currentODZobrist       position.Key
	onDemandEvasionTargets Bitboard
	currentODStage         int8
	takeIndex              int

	killerMoves  [2]Move
	pvMove       Move
	pvMovePushed bool
	historyData  *history.History
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// GenMode generation modes for on demand move generation.
//  GenZero     GenMode = 0b00
//	GenNonQuiet GenMode = 0b01
//	GenQuiet    GenMode = 0b10
//	GenAll      GenMode = 0b11
type GenMode int

// GenMode generation modes for on demand move generation.
const (
	GenZero     GenMode = 0b00
	GenNonQuiet GenMode = 0b01
	GenQuiet    GenMode = 0b10
	GenAll      GenMode = 0b11
)

// NewMoveGen allocates a move generator. All list memory is allocated
// here once; generation reuses the internal lists and returns pointers
// into them, so callers needing to keep a move list across generator
// calls must deep-copy it.
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog()
	}
	tmpMg := &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(MaxMoves),
		legalMoves:       moveslice.NewMoveSlice(MaxMoves),

		onDemandMoves:          moveslice.NewMoveSlice(MaxMoves),
		currentODZobrist:       0,
		onDemandEvasionTargets: BbZero,
		currentODStage:         odNew,
		takeIndex:              0,

		killerMoves:  [2]Move{MoveNone, MoveNone},
		pvMove:       MoveNone,
		pvMovePushed: false,
		historyData:  nil,
	}
	return tmpMg
}

// GeneratePseudoLegalMoves generates all pseudo-legal moves for the
// side to move: legality (own king left in check, castling through an
// attacked square) is not verified here - the search probes that with
// make/undo.
//
// A PV move installed via SetPvMove sorts first. Killer moves sort to
// the top of the quiet moves; they are stored per ply, so a killer may
// not even occur in this position and is only boosted when generation
// actually produced it.
//
// With evasion set (position is in check) generation is restricted to
// moves that could possibly address the check - capturing or blocking
// the checker, or moving the king. A few illegal moves may remain; the
// legality probe catches them.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode, evasion bool) *moveslice.MoveSlice {
	// re-use move list
	mg.pseudoLegalMoves.Clear()

	// when in check only generate moves either blocking or capturing the attacker
	if evasion {
		mg.onDemandEvasionTargets = mg.getEvasionTargets(p)
	}

	// first generate all non quiet moves
	if mode&GenNonQuiet != 0 {
		mg.generatePawnMoves(p, GenNonQuiet, evasion, mg.onDemandEvasionTargets, mg.pseudoLegalMoves)
		// castling never captures
		mg.generateKingMoves(p, GenNonQuiet, evasion, mg.onDemandEvasionTargets, mg.pseudoLegalMoves)
		mg.generateMoves(p, GenNonQuiet, evasion, mg.onDemandEvasionTargets, mg.pseudoLegalMoves)
	}
	// second generate all other moves
	if mode&GenQuiet != 0 {
		mg.generatePawnMoves(p, GenQuiet, evasion, mg.onDemandEvasionTargets, mg.pseudoLegalMoves)
		if !evasion { // no castling when in check
			mg.generateCastling(p, GenQuiet, mg.pseudoLegalMoves)
		}
		mg.generateKingMoves(p, GenQuiet, evasion, mg.onDemandEvasionTargets, mg.pseudoLegalMoves)
		mg.generateMoves(p, GenQuiet, evasion, mg.onDemandEvasionTargets, mg.pseudoLegalMoves)
	}

	// PV, Killer and history handling
	mg.updateSortValues(p, mg.pseudoLegalMoves)

	// sort moves
	mg.pseudoLegalMoves.Sort()

	// remove internal sort value
	if removeSortValue {
		mg.pseudoLegalMoves.ForEach(func(i int) {
			mg.pseudoLegalMoves.Set(i, mg.pseudoLegalMoves.At(i).MoveOf())
		})
	}

	return mg.pseudoLegalMoves
}

// GenerateLegalMoves generates legal moves for the next player.
// Uses GeneratePseudoLegalMoves and filters out illegal moves.
// Usually only used for root move generation as this is expensive. During
// the AlphaBeta search we only use pseudo legal move generation.
func (mg *Movegen) GenerateLegalMoves(position *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.legalMoves.Clear()
	mg.GeneratePseudoLegalMoves(position, mode, false)
	mg.pseudoLegalMoves.FilterCopy(mg.legalMoves, func(i int) bool {
		return position.IsLegalMove(mg.pseudoLegalMoves.At(i))
	})
	return mg.legalMoves
}

// GetNextMove returns the next pseudo-legal move for the position,
// generating in phases (PV move, captures, pawn pushes, castling, other
// quiets) so that a
// beta cut early in the move loop never pays for generating the rest.
//
// Iterating the same position again requires ResetOnDemand(); a
// different position (detected by Zobrist key) resets automatically.
// evasion has the same meaning as in GeneratePseudoLegalMoves.
func (mg *Movegen) GetNextMove(p *position.Position, mode GenMode, evasion bool) Move {

	// if the position changes during iteration the iteration
	// will be reset and generation will be restarted with the
	// new position.
	if p.ZobristKey() != mg.currentODZobrist {
		mg.onDemandMoves.Clear()
		mg.onDemandEvasionTargets = BbZero
		mg.currentODStage = odNew
		mg.pvMovePushed = false
		mg.takeIndex = 0
		mg.currentODZobrist = p.ZobristKey()
	}

	// when in check only generate moves either blocking or capturing the attacker
	if evasion && mg.onDemandEvasionTargets == BbZero {
		mg.onDemandEvasionTargets = mg.getEvasionTargets(p)
	}

	// With the takeIndex we can take from the front of the vector without
	// removing the element from the vector which would be expensive as all
	// elements would have to be shifted.

	// If the list is currently empty and we have not generated all moves yet
	// generate the next batch until we have new moves or there are no more
	// moves to generate
	if mg.onDemandMoves.Len() == 0 {
		mg.fillOnDemandMoveList(p, mode, evasion)
	}

	// If we have generated moves we will return the first move and increase
	// the takeIndex to the next move. If the list is empty even after all
	// stages of generating we have no more moves and return MoveNone.
	// If we have pushed a pvMove into the list we need to skip this pvMove
	// for each subsequent phase.
	if mg.onDemandMoves.Len() != 0 {

		// Handle PvMove
		// if we pushed a pv move and the list is not empty we
		// check if the pv is the next move in list and skip it.
		if mg.currentODStage != od1 &&
			mg.pvMovePushed &&
			(*mg.onDemandMoves)[mg.takeIndex].MoveOf() == mg.pvMove.MoveOf() {

			// skip pv move
			mg.takeIndex++

			// We found the pv move and skipped it.
			// No need to check this again for this generation cycle.
			mg.pvMovePushed = false

			// PV move last in move list
			if mg.takeIndex >= mg.onDemandMoves.Len() {
				// The pv move was the last move in this iteration's list.
				// Try to generate more moves. If no more moves can be
				// generated we return MoveNone. Otherwise we return the
				// move below.
				mg.takeIndex = 0
				mg.onDemandMoves.Clear()
				mg.fillOnDemandMoveList(p, mode, evasion)
				// no more moves - return MoveNone
				if mg.onDemandMoves.Len() == 0 {
					return MoveNone
				}
			}
		}

		// we have at least one move in the list and it is not the
		// pvMove. Increase the takeIndex and return the move.
		var move Move
		if removeSortValue {
			move = (*mg.onDemandMoves)[mg.takeIndex].MoveOf()
		} else {
			move = (*mg.onDemandMoves)[mg.takeIndex]
		}
		mg.takeIndex++
		if mg.takeIndex >= mg.onDemandMoves.Len() {
			mg.takeIndex = 0
			mg.onDemandMoves.Clear()
		}
		return move
	}

	// no more moves to be generated
	mg.takeIndex = 0
	mg.pvMovePushed = false
	return MoveNone
}

// ResetOnDemand resets the move on demand generator to start fresh.
// Also deletes the PV move.
func (mg *Movegen) ResetOnDemand() {
	mg.onDemandMoves.Clear()
	mg.onDemandEvasionTargets = BbZero
	mg.currentODStage = odNew
	mg.currentODZobrist = 0
	mg.pvMove = MoveNone
	mg.pvMovePushed = false
	mg.takeIndex = 0
}

// SetPvMove sets a PV move which should be returned first by
// the OnDemand MoveGenerator.
func (mg *Movegen) SetPvMove(move Move) {
	mg.pvMove = move.MoveOf()
}

// StoreKiller provides the on demand move generator with a new killer move
// which should be returned as soon as possible when generating moves with
// the on demand generator.
func (mg *Movegen) StoreKiller(move Move) {
	moveOf := move.MoveOf()
	if mg.killerMoves[0] == moveOf {
		return
	}
	// if in second slot or not there at all move it to first
	mg.killerMoves[1] = mg.killerMoves[0]
	mg.killerMoves[0] = moveOf
}

// SetHistoryData provides a pointer to the search's history data
// for the move generator so it can use it to improve move sorting
// (history counter and counter moves).
func (mg *Movegen) SetHistoryData(historyData *history.History) {
	mg.historyData = historyData
}

// HasLegalMove reports whether the side to move has any legal move at
// all - the mate/stalemate test. It probes piece by piece, roughly
// most-likely-first, and returns on the first legal move found instead
// of generating the full move list.
func (mg *Movegen) HasLegalMove(position *position.Position) bool {

	us := position.NextPlayer()
	usBb := position.OccupiedBb(us)

	// KING
	// We do not need to check castling as possible castling implies King or Rook moves
	kingSquare := position.KingSquare(us)
	tmpMoves := GetAttacksBb(King, kingSquare, BbZero) &^ usBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		if position.IsLegalMove(CreateMove(kingSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	myPawns := position.PiecesBb(us, Pawn)
	occupiedBb := position.OccupiedAll()
	opponentBb := position.OccupiedBb(us.Flip())

	// PAWN
	// pawns - check step one to unoccupied squares
	tmpMoves = ShiftBitboard(myPawns, us.MoveDirection()) & ^position.OccupiedAll()
	// pawns double - check step two to unoccupied squares
	tmpMovesDouble := ShiftBitboard(tmpMoves&us.PawnDoubleRank(), us.MoveDirection()) & ^position.OccupiedAll()
	// double pawn steps
	for tmpMovesDouble != 0 {
		toSquare := tmpMovesDouble.PopLsb()
		fromSquare := toSquare.To(us.Flip().MoveDirection()).To(us.Flip().MoveDirection())
		if position.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}
	// normal single pawn steps
	tmpMoves &= ^us.PromotionRankBb()
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(us.Flip().MoveDirection())
		if position.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	// normal pawn captures to the west (includes promotions)
	tmpMoves = ShiftBitboard(myPawns, us.MoveDirection()+West) & opponentBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(us.Flip().MoveDirection() + East)
		if position.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	// normal pawn captures to the east (includes promotions)
	tmpMoves = ShiftBitboard(myPawns, us.MoveDirection()+East) & opponentBb
	for tmpMoves != 0 {
		toSquare := tmpMoves.PopLsb()
		fromSquare := toSquare.To(us.Flip().MoveDirection() + West)
		if position.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
			return true
		}
	}

	// OFFICERS
	for pt := Knight; pt <= Queen; pt++ {
		pieces := position.PiecesBb(us, pt)
		for pieces != 0 {
			fromSquare := pieces.PopLsb()
			moves := GetAttacksBb(pt, fromSquare, occupiedBb) &^ usBb
			for moves != 0 {
				toSquare := moves.PopLsb()
				if position.IsLegalMove(CreateMove(fromSquare, toSquare, Normal, PtNone)) {
					return true
				}
			}
		}
	}

	// en passant captures
	enPassantSquare := position.GetEnPassantSquare()
	if enPassantSquare != SqNone {
		// left
		tmpMoves = ShiftBitboard(enPassantSquare.Bb(), us.Flip().MoveDirection()+West) & myPawns
		if tmpMoves != 0 {
			fromSquare := tmpMoves.PopLsb()
			if position.IsLegalMove(CreateMove(fromSquare, fromSquare.To(us.MoveDirection()+East), EnPassant, PtNone)) {
				return true
			}
		}
		// right
		tmpMoves = ShiftBitboard(enPassantSquare.Bb(), us.Flip().MoveDirection()+East) & myPawns
		if tmpMoves != 0 {
			fromSquare := tmpMoves.PopLsb()
			if position.IsLegalMove(CreateMove(fromSquare, fromSquare.To(us.MoveDirection()+West), EnPassant, PtNone)) {
				return true
			}
		}
	}

	// no move found
	return false
}

// Regex for UCI notation (UCI).
var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([NBRQnbrq])?")

// GetMoveFromUci Generates all legal moves and matches the given UCI
// move string against them. If there is a match the actual move is returned.
// Otherwise MoveNone is returned.
//
// As this uses string creation and comparison this is not very efficient.
// Use only when performance is not critical.
func (mg *Movegen) GetMoveFromUci(posPtr *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}

	// get the parts from the pattern match
	movePart := matches[1]
	promotionPart := ""
	if len(matches) == 3 {
		// we allow lower case promotion letters
		// not really UCI but many input files have this wrong
		promotionPart = strings.ToUpper(matches[2])
	}

	// check against all legal moves on position
	mg.GenerateLegalMoves(posPtr, GenAll)
	for _, m := range *mg.legalMoves {
		if m.StringUci() == movePart+promotionPart {
			// move found
			return m
		}
	}
	// move not found
	return MoveNone
}

var regexSanMove = regexp.MustCompile("([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?([!?+#]*)?")

// GetMoveFromSan Generates all legal moves and matches the given SAN
// move string against them. If there is a match the actual move is returned.
// Otherwise MoveNone is returned.
//
// As this uses string creation and comparison this is not very efficient.
// Use only when performance is not critical.
func (mg *Movegen) GetMoveFromSan(posPtr *position.Position, sanMove string) Move {
	matches := regexSanMove.FindStringSubmatch(sanMove)
	if matches == nil {
		return MoveNone
	}

	// get parts
	pieceType := matches[1]
	disambFile := matches[2]
	disambRank := matches[3]
	toSquare := matches[4]
	promotion := matches[6]
	// checkSign := matches[7] - ignore

	movesFound := 0
	moveFromSAN := MoveNone

	// check against all legal moves on position
	mg.GenerateLegalMoves(posPtr, GenAll)
	for _, genMove := range *mg.legalMoves {

		// castling moves
		if genMove.MoveType() == Castling {
			kingToSquare := genMove.To()
			var castlingString string
			switch kingToSquare {
			case SqG1:
				fallthrough
			case SqG8:
				castlingString = "O-O"
			case SqC1:
				fallthrough
			case SqC8:
				castlingString = "O-O-O"
			default:
				log.Errorf("Move type CASTLING but wrong to square: %s %s", castlingString, kingToSquare.String())
				continue
			}
			if castlingString == toSquare {
				moveFromSAN = genMove
				movesFound++
				continue
			}
		}

		// normal moves
		moveTarget := genMove.To().String()
		if moveTarget == toSquare {

			// determine if piece types match - if not skip
			legalPt := posPtr.GetPiece(genMove.From()).TypeOf()
			legalPtChar := legalPt.Char()
			if (len(pieceType) == 0 || legalPtChar != pieceType) &&
				(len(pieceType) != 0 || legalPt != Pawn) {
				continue
			}

			// Disambiguation File
			if len(disambFile) != 0 && genMove.From().FileOf().String() != disambFile {
				continue
			}

			// Disambiguation Rank
			if len(disambRank) != 0 && genMove.From().RankOf().String() != disambRank {
				continue
			}

			// promotion
			if (len(promotion) != 0 && genMove.PromotionType().Char() != promotion) ||
				(len(promotion) == 0 && genMove.MoveType() == Promotion) {
				continue
			}

			// we should have our move if we end up here
			moveFromSAN = genMove
			movesFound++
		}
	}

	// we should only have one move here
	if movesFound > 1 {
		log.Warningf("SAN move %s is ambiguous (%d matches) on %s!", sanMove, movesFound, posPtr.StringFen())
	} else if movesFound == 0 || !moveFromSAN.IsValid() {
		log.Warningf("SAN move not valid! SAN move %s not found on position: %s", sanMove, posPtr.StringFen())
	} else {
		return moveFromSAN
	}
	// no move found
	return MoveNone
}

// ValidateMove validates if a move is a valid move on the given position
func (mg *Movegen) ValidateMove(p *position.Position, move Move) bool {
	if move == MoveNone {
		return false
	}
	ml := mg.GenerateLegalMoves(p, GenAll)
	for _, m := range *ml {
		if move.MoveOf() == m {
			return true
		}
	}
	return false
}

// PvMove returns the current PV move
func (mg *Movegen) PvMove() Move {
	return mg.pvMove
}

// KillerMoves returns a pointer to the killer moves array
func (mg *Movegen) KillerMoves() *[2]Move {
	return &mg.killerMoves
}

// String returns a string representation of a MoveGen instance
func (mg *Movegen) String() string {
	return fmt.Sprintf("MoveGen: { OnDemand Stage: { %d }, PV Move: %s Killer Move 1: %s Killer Move 2: %s }",
		mg.currentODStage, mg.pvMove.String(), mg.killerMoves[0].String(), mg.killerMoves[1].String())
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// States for the on demand move generator
const (
	odNew = iota
	odPv  = iota
	od1   = iota
	od2   = iota
	od3   = iota
	od4   = iota
	od5   = iota
	od6   = iota
	od7   = iota
	od8   = iota
	odEnd = iota
)

// fillOnDemandMoveList advances the phase machine until at least one
// move is available or all phases are exhausted. Phase order is the
// move ordering: captures and promotions, then quiet pawn moves, then
// castling, then quiet officer and king moves, each phase sorted
// internally.
func (mg *Movegen) fillOnDemandMoveList(p *position.Position, mode GenMode, evasion bool) {
	for mg.onDemandMoves.Len() == 0 && mg.currentODStage < odEnd {
		switch mg.currentODStage {
		case odNew:
			mg.currentODStage = odPv
			fallthrough
		case odPv:
			// If a pvMove is set we return it first and filter it out before
			// returning a move
			if mg.pvMove != MoveNone {
				switch mode {
				case GenAll:
					mg.pvMovePushed = true
					mg.onDemandMoves.PushBack(mg.pvMove)
				case GenNonQuiet:
					if p.IsCapturingMove(mg.pvMove) {
						mg.pvMovePushed = true
						mg.onDemandMoves.PushBack(mg.pvMove)
					}
				case GenQuiet:
					if !p.IsCapturingMove(mg.pvMove) {
						mg.pvMovePushed = true
						mg.onDemandMoves.PushBack(mg.pvMove)
					}
				}
			}
			// decide which state we should continue with
			// captures or non captures or both
			if mode&GenNonQuiet != 0 {
				mg.currentODStage = od1
			} else {
				mg.currentODStage = od4
			}
		case od1: // pawns: capture and high value promotion
			mg.generatePawnMoves(p, GenNonQuiet, evasion, mg.onDemandEvasionTargets, mg.onDemandMoves)
			mg.updateSortValues(p, mg.onDemandMoves)
			mg.currentODStage = od2
		case od2: // officer captures
			mg.generateMoves(p, GenNonQuiet, evasion, mg.onDemandEvasionTargets, mg.onDemandMoves)
			mg.updateSortValues(p, mg.onDemandMoves)
			mg.currentODStage = od3
		case od3: // king captures
			mg.generateKingMoves(p, GenNonQuiet, evasion, mg.onDemandEvasionTargets, mg.onDemandMoves)
			mg.updateSortValues(p, mg.onDemandMoves)
			mg.currentODStage = od4
		case od4:
			if mode&GenQuiet != 0 {
				mg.currentODStage = od5
			} else {
				mg.currentODStage = odEnd
			}
		case od5: // pawn: non capture
			mg.generatePawnMoves(p, GenQuiet, evasion, mg.onDemandEvasionTargets, mg.onDemandMoves)
			mg.updateSortValues(p, mg.onDemandMoves)
			mg.currentODStage = od6
		case od6: // castling
			if !evasion { // no castling when in check
				mg.generateCastling(p, GenQuiet, mg.onDemandMoves)
				mg.updateSortValues(p, mg.onDemandMoves)
			}
			mg.currentODStage = od7
		case od7: // officer non capture
			mg.generateMoves(p, GenQuiet, evasion, mg.onDemandEvasionTargets, mg.onDemandMoves)
			mg.updateSortValues(p, mg.onDemandMoves)
			mg.currentODStage = od8
		case od8: // king non capture
			mg.generateKingMoves(p, GenQuiet, evasion, mg.onDemandEvasionTargets, mg.onDemandMoves)
			mg.updateSortValues(p, mg.onDemandMoves)
			mg.currentODStage = odEnd
		case odEnd:
			break
		}
		// sort the list according to sort values encoded in the move
		if mg.onDemandMoves.Len() > 0 {
			mg.onDemandMoves.Sort()
		}
	} // while onDemandMoves.empty()
}

// Sort value bands, numerically well separated within the 16-bit sort
// value a Move can carry. From best to worst: the TT/PV move, winning
// captures (SEE at least equal), the two killers, the counter move to
// the opponent's last move, the followup to our own move two plies
// back, and finally plain history. Losing captures drop below the
// history band by their (negative) SEE score.
const (
	sortValuePvMove    = ValueMax
	sortValueGoodCapt  = Value(9000)
	sortValueKiller1   = Value(8000)
	sortValueKiller2   = Value(7000)
	sortValueCounter   = Value(6000)
	sortValueFollowup  = Value(5000)
	sortValueHistCap   = Value(2000)
	sortValueCeiling   = Value(9999)
	sortBonusQueenProm = Value(500)
	sortBonusUnderProm = Value(100)
	sortBonusCheck     = Value(300)
)

// updateSortValues assigns each move its ordering score: a band by move
// class plus bonuses for promotions, checks and advanced endgame pawn
// pushes. Captures are classified winning/losing by static exchange
// evaluation so a queen grabbing a defended pawn does not outrank a
// killer move.
func (mg *Movegen) updateSortValues(p *position.Position, moveList *moveslice.MoveSlice) {
	us := p.NextPlayer()
	lastMove := p.LastMove()
	twoPlyBack := p.MoveBefore()
	gamePhase := p.GamePhase()

	for i := 0; i < len(*moveList); i++ {
		move := &(*moveList)[i]
		moveOf := move.MoveOf()

		// the TT/PV move outranks everything, no bonuses needed
		if moveOf == mg.pvMove {
			(*move).SetValue(sortValuePvMove)
			continue
		}

		var value Value
		switch {
		case p.IsCapturingMove(moveOf):
			if seeValue := attacks.See(p, moveOf); seeValue >= 0 {
				// winning capture: most valuable victim first, least
				// valuable attacker as tie break
				value = sortValueGoodCapt +
					p.GetPiece(moveOf.To()).ValueOf()/10 -
					p.GetPiece(moveOf.From()).ValueOf()/100
			} else {
				// losing captures sort below every quiet move with a
				// positive history record
				value = clampSortValue(seeValue, -sortValueHistCap, 0)
			}
		case moveOf == mg.killerMoves[0]:
			value = sortValueKiller1
		case moveOf == mg.killerMoves[1]:
			value = sortValueKiller2
		case lastMove != MoveNone && mg.historyData != nil &&
			mg.historyData.CounterMoves[lastMove.From()][lastMove.To()] == moveOf:
			value = sortValueCounter
		case twoPlyBack != MoveNone && mg.historyData != nil &&
			mg.historyData.FollowupMoves[twoPlyBack.From()][twoPlyBack.To()] == moveOf:
			value = sortValueFollowup
		default:
			// history ratio plus half the butterfly count - the ratio
			// rewards moves that actually cut, the butterfly half keeps
			// frequently tried moves from vanishing entirely
			if mg.historyData != nil {
				raw := mg.historyData.HistoryScore(us, moveOf.From(), moveOf.To()) +
					mg.historyData.Butterfly[us][moveOf.From()][moveOf.To()]/2
				value = clampSortValue(Value(util.Min64(raw, int64(sortValueHistCap))), 0, sortValueHistCap)
			}
		}

		// bonuses on top of the band
		if moveOf.MoveType() == Promotion {
			if moveOf.PromotionType() == Queen {
				value += sortBonusQueenProm
			} else {
				value += sortBonusUnderProm
			}
		}
		if p.GivesCheck(moveOf) {
			value += sortBonusCheck
		}
		// in the endgame a pawn closing in on promotion is always worth
		// a look: the closer to the last rank, the earlier
		if gamePhase <= 6 && p.GetPiece(moveOf.From()).TypeOf() == Pawn {
			value += Value(2 * (6 - promotionDistance(us, moveOf.To())))
		}

		(*move).SetValue(clampSortValue(value, -sortValueCeiling, sortValueCeiling))
	}
}

// promotionDistance returns how many ranks the pawn still has to walk
// to promote after landing on sq.
func promotionDistance(c Color, sq Square) int {
	if c == White {
		return int(Rank8) - int(sq.RankOf())
	}
	return int(sq.RankOf())
}

func clampSortValue(v Value, lo Value, hi Value) Value {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// getEvasionTargets returns a Bitboard with target squares for generated
// moves when the position has check against the next player. Most moves
// will not even be generated as they will not have these target squares.
// These target squares cover the attacking (checker) piece and any squares
// in between the attacker and the king in case of the attacker being a
// slider. If there is more than one attacker we can skip everything apart
// from king moves.
func (mg *Movegen) getEvasionTargets(p *position.Position) Bitboard {
	us := p.NextPlayer()
	ourKing := p.KingSquare(us)
	evasionTargets := attacks.AttacksTo(p, ourKing, us.Flip())
	popCount := evasionTargets.PopCount()
	if popCount == 1 {
		atck := evasionTargets.Lsb()
		if p.GetPiece(atck).TypeOf() > Knight { // sliding pieces
			evasionTargets |= Intermediate(atck, ourKing)
			return evasionTargets
		}
	}
	if popCount > 1 {
		return BbZero
	}
	return evasionTargets
}

func (mg *Movegen) generatePawnMoves(position *position.Position, mode GenMode, evasion bool, evasionTargets Bitboard, ml *moveslice.MoveSlice) {

	nextPlayer := position.NextPlayer()
	myPawns := position.PiecesBb(nextPlayer, Pawn)
	oppPieces := position.OccupiedBb(nextPlayer.Flip())
	gamePhase := position.GamePhase()
	piece := MakePiece(nextPlayer, Pawn)

	// captures
	if mode&GenNonQuiet != 0 {

		// This algorithm shifts the own pawn bitboard in the direction of pawn captures
		// and ANDs it with the opponents pieces. With this we get all possible captures
		// and can easily create the moves by using a loop over all captures and using
		// the backward shift for the from-Square.
		// All moves get sort values so that sort order should be:
		//   captures: most value victim least value attacker - promotion piece value
		//   non captures: promotions, castling, normal moves (position value)
		//
		// When in check only evasion moves are generated. Every move needs to target
		// one of the evasion squares - either capturing the attacker or blocking a
		// sliding attacker.

		var tmpCaptures, promCaptures Bitboard

		for _, dir := range []Direction{West, East} {
			tmpCaptures = ShiftBitboard(myPawns, nextPlayer.MoveDirection()+dir) & oppPieces

			if evasion {
				tmpCaptures &= evasionTargets
			}

			// normal pawn captures - promotions first
			promCaptures = tmpCaptures & nextPlayer.PromotionRankBb()
			for promCaptures != 0 {
				toSquare := promCaptures.PopLsb()
				fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() - dir)
				value := position.GetPiece(toSquare).ValueOf() - (2 * Pawn.ValueOf())
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Queen, value+Queen.ValueOf()+5000))
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Knight, value+Knight.ValueOf()+1500))
				// rook and bishop promotions are usually redundant to queen promotion
				// (except in stalemate situations) so they sort much lower
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Rook, value+Rook.ValueOf()-Value(5000)))
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Bishop, value+Bishop.ValueOf()-Value(5000)))
			}

			// non promotion pawn captures
			tmpCaptures &= ^nextPlayer.PromotionRankBb()
			for tmpCaptures != 0 {
				toSquare := tmpCaptures.PopLsb()
				fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection() - dir)
				value := position.GetPiece(toSquare).ValueOf() - position.GetPiece(fromSquare).ValueOf() +
					PosValue(piece, toSquare, gamePhase)
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
			}
		}

		// en passant captures
		enPassantSquare := position.GetEnPassantSquare()
		if enPassantSquare != SqNone {
			for _, dir := range []Direction{West, East} {
				tmpCaptures = ShiftBitboard(enPassantSquare.Bb(), nextPlayer.Flip().MoveDirection()+dir) & myPawns
				if tmpCaptures != 0 {
					fromSquare := tmpCaptures.PopLsb()
					toSquare := fromSquare.To(nextPlayer.MoveDirection() - dir)
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, EnPassant, PtNone, PosValue(piece, toSquare, gamePhase)))
				}
			}
		}

		// queen and knight promotions (without capture) are treated as non quiet
		promMoves := ShiftBitboard(myPawns, nextPlayer.MoveDirection()) &^ position.OccupiedAll() & nextPlayer.PromotionRankBb()
		if evasion {
			promMoves &= evasionTargets
		}
		for promMoves != 0 {
			toSquare := promMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Queen, 2000-Pawn.ValueOf()+Queen.ValueOf()))
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Knight, 1500-Pawn.ValueOf()+Knight.ValueOf()))
		}
	}

	// non captures
	if mode&GenQuiet != 0 {

		// Move my pawns forward one step and keep all on not occupied squares.
		// Move pawns now on rank 3 (rank 6) another square forward to check for
		// pawn doubles. When in check only evasion moves are generated.

		tmpMoves := ShiftBitboard(myPawns, nextPlayer.MoveDirection()) & ^position.OccupiedAll()
		tmpMovesDouble := ShiftBitboard(tmpMoves&nextPlayer.PawnDoubleRank(), nextPlayer.MoveDirection()) & ^position.OccupiedAll()

		if evasion {
			tmpMoves &= evasionTargets
			tmpMovesDouble &= evasionTargets
		}

		// single pawn steps - promotions first (rook/bishop only, queen/knight
		// are generated as non quiet moves above)
		promMoves := tmpMoves & nextPlayer.PromotionRankBb()
		for promMoves != 0 {
			toSquare := promMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Rook, Rook.ValueOf()-Value(6000)))
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Promotion, Bishop, Bishop.ValueOf()-Value(6000)))
		}
		// double pawn steps
		for tmpMovesDouble != 0 {
			toSquare := tmpMovesDouble.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection()).To(nextPlayer.Flip().MoveDirection())
			value := PosValue(piece, toSquare, gamePhase) - 2000
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
		}
		// normal single pawn steps
		tmpMoves &= ^nextPlayer.PromotionRankBb()
		for tmpMoves != 0 {
			toSquare := tmpMoves.PopLsb()
			fromSquare := toSquare.To(nextPlayer.Flip().MoveDirection())
			value := PosValue(piece, toSquare, gamePhase) - 2000
			ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
		}
	}
}

func (mg *Movegen) generateCastling(position *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	nextPlayer := position.NextPlayer()
	occupiedBB := position.OccupiedAll()

	// castling - pseudo castling - we will not check if we are in check after the move
	// or if we have passed an attacked square with the king or if the king has been in check
	// before castling; legality is confirmed by the make/undo probe in IsLegalMove.

	if mode&GenQuiet != 0 && position.CastlingRights() != CastlingNone {
		cr := position.CastlingRights()
		if nextPlayer == White {
			if cr.Has(CastlingWhiteOO) && Intermediate(SqE1, SqH1)&occupiedBB == 0 {
				ml.PushBack(CreateMoveValue(SqE1, SqG1, Castling, PtNone, Value(0)))
			}
			if cr.Has(CastlingWhiteOOO) && Intermediate(SqE1, SqA1)&occupiedBB == 0 {
				ml.PushBack(CreateMoveValue(SqE1, SqC1, Castling, PtNone, Value(0)))
			}
		} else {
			if cr.Has(CastlingBlackOO) && Intermediate(SqE8, SqH8)&occupiedBB == 0 {
				ml.PushBack(CreateMoveValue(SqE8, SqG8, Castling, PtNone, Value(0)))
			}
			if cr.Has(CastlingBlackOOO) && Intermediate(SqE8, SqA8)&occupiedBB == 0 {
				ml.PushBack(CreateMoveValue(SqE8, SqC8, Castling, PtNone, Value(0)))
			}
		}
	}
}

func (mg *Movegen) generateKingMoves(p *position.Position, mode GenMode, evasion bool, evasionTargets Bitboard, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	them := us.Flip()
	piece := MakePiece(us, King)
	gamePhase := p.GamePhase()
	kingSquareBb := p.PiecesBb(us, King)
	fromSquare := kingSquareBb.PopLsb()

	// attacks include all moves no matter if the king would be in check
	pseudoMoves := GetAttacksBb(King, fromSquare, BbZero)

	// captures
	if mode&GenNonQuiet != 0 {
		captures := pseudoMoves & p.OccupiedBb(them)
		for captures != 0 {
			toSquare := captures.PopLsb()
			// in case we are in check we only generate king moves to target squares
			// which are not attacked by the opponent
			if !evasion || attacks.AttacksTo(p, toSquare, them).PopCount() == 0 {
				value := 2000 + p.GetPiece(toSquare).ValueOf() - p.GetPiece(fromSquare).ValueOf() + PosValue(piece, toSquare, gamePhase)
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
			}
		}
	}

	// non captures
	if mode&GenQuiet != 0 {
		nonCaptures := pseudoMoves &^ p.OccupiedAll()
		for nonCaptures != 0 {
			toSquare := nonCaptures.PopLsb()
			if !evasion || attacks.AttacksTo(p, toSquare, them).PopCount() == 0 {
				value := PosValue(piece, toSquare, gamePhase) - 2000
				ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
			}
		}
	}
}

// generates officer moves using the attacks pre-computed with magic bitboards.
func (mg *Movegen) generateMoves(position *position.Position, mode GenMode, evasion bool, evasionTargets Bitboard, ml *moveslice.MoveSlice) {
	nextPlayer := position.NextPlayer()
	gamePhase := position.GamePhase()
	occupiedBb := position.OccupiedAll()

	// Loop through all piece types and get attacks for the piece. When in check
	// (evasion=true) only evasion moves are generated: every move needs to
	// target one of the evasion squares, either capturing the attacker or
	// blocking a sliding attacker.

	for pt := Knight; pt <= Queen; pt++ {
		pieces := position.PiecesBb(nextPlayer, pt)
		piece := MakePiece(nextPlayer, pt)

		for pieces != 0 {
			fromSquare := pieces.PopLsb()

			moves := GetAttacksBb(pt, fromSquare, occupiedBb)

			// captures
			if mode&GenNonQuiet != 0 {
				captures := moves & position.OccupiedBb(nextPlayer.Flip())
				if evasion {
					captures &= evasionTargets
				}
				for captures != 0 {
					toSquare := captures.PopLsb()
					value := 2000 + position.GetPiece(toSquare).ValueOf() - position.GetPiece(fromSquare).ValueOf() + PosValue(piece, toSquare, gamePhase)
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
				}
			}

			// non captures
			if mode&GenQuiet != 0 {
				nonCaptures := moves &^ occupiedBb
				if evasion {
					nonCaptures &= evasionTargets
				}
				for nonCaptures != 0 {
					toSquare := nonCaptures.PopLsb()
					value := PosValue(piece, toSquare, gamePhase) - 2000
					ml.PushBack(CreateMoveValue(fromSquare, toSquare, Normal, PtNone, value))
				}
			}
		}
	}
}
