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

package search

import (
	golog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/knightkmv/chesscore/internal/attacks"
	. "github.com/knightkmv/chesscore/internal/config"
	"github.com/knightkmv/chesscore/internal/movegen"
	"github.com/knightkmv/chesscore/internal/moveslice"
	"github.com/knightkmv/chesscore/internal/position"
	"github.com/knightkmv/chesscore/internal/transpositiontable"
	. "github.com/knightkmv/chesscore/internal/types"
	"github.com/knightkmv/chesscore/internal/util"
)

// trace enables per-node logging to the search trace log. Search
// becomes unusably slow with this on - debugging only.
var trace = false

// rootSearch runs the move loop over the root moves. Root moves differ
// enough from inner nodes (value is stored back into the move for
// sorting, the loop must survive a stop after one full move) that a
// dedicated function reads better than "if ply == 0" sprinkled through
// search.
func (s *Search) rootSearch(position *position.Position, depth int, alpha Value, beta Value) Value {
	if trace {
		s.slog.Debugf("Ply %-2.d Depth %-2.d start: %s", 0, depth, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("Ply %-2.d Depth %-2.d end: %s", 0, depth, s.statistics.CurrentVariation.StringUci())
	}

	// Each root move's value is written back into the move itself so the
	// next iteration can sort on it and start with the previous best.
	// pv[0][0] always holds the best move found so far (the previous
	// iteration's best is searched first), so even an interrupted
	// iteration leaves a playable move behind.
	bestNodeValue := ValueNA
	var value Value

	for i, m := range *s.rootMoves {

		position.DoMove(m)
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(m)
		s.statistics.CurrentRootMoveIndex = i
		s.statistics.CurrentRootMove = m

		if s.checkDrawRepAnd50(position, 2) {
			value = s.contemptValue(position)
		} else {
			// PVS at the root: first (sorted best) move gets the full
			// window, the rest must first beat a null window (their
			// subtree is an expected cut node)
			if !Settings.Search.UsePVS || i == 0 {
				value = -s.search(position, depth-1, 1, -beta, -alpha, true, true, false)
			} else {
				value = -s.search(position, depth-1, 1, -alpha-1, -alpha, false, true, true)
				if value > alpha && value < beta && !s.stopConditions() {
					s.statistics.RootPvsResearches++
					value = -s.search(position, depth-1, 1, -beta, -alpha, true, true, false)
				}
			}
		}

		s.statistics.CurrentVariation.PopBack()
		position.UndoMove()

		// after one full depth-1 iteration a stop may interrupt at any
		// time - everything searched so far is already in pv[0]
		if s.stopConditions() && depth > 1 {
			return bestNodeValue
		}

		// store the value into the root move for the iteration sort
		s.rootMoves.Set(i, m.SetValue(value))

		if value > bestNodeValue {
			bestNodeValue = value
			savePV(m, s.pv[1], s.pv[0])
		}
	}

	return bestNodeValue
}

// aspirationSearch runs the root search with a narrow window around the
// previous iteration's value, widening on fail low/high until the value
// comes back inside the window. Early iterations without a trustworthy
// previous value use the full window.
func (s *Search) aspirationSearch(position *position.Position, depth int, prevValue Value) Value {
	if prevValue == ValueNA || prevValue <= ValueMin || prevValue >= ValueMax {
		return s.rootSearch(position, depth, ValueMin, ValueMax)
	}

	alphaIdx := 0
	betaIdx := 0
	for {
		alpha := prevValue - aspirationSteps[alphaIdx]
		beta := prevValue + aspirationSteps[betaIdx]
		if alpha < ValueMin {
			alpha = ValueMin
		}
		if beta > ValueMax {
			beta = ValueMax
		}

		value := s.rootSearch(position, depth, alpha, beta)
		if s.stopConditions() {
			return value
		}

		// widen only the failing bound and try again
		if value <= alpha && alpha > ValueMin {
			s.statistics.AspirationResearches++
			s.sendAspirationResearchInfo("fail low")
			if alphaIdx < len(aspirationSteps)-1 {
				alphaIdx++
			}
			continue
		}
		if value >= beta && beta < ValueMax {
			s.statistics.AspirationResearches++
			s.sendAspirationResearchInfo("fail high")
			if betaIdx < len(aspirationSteps)-1 {
				betaIdx++
			}
			continue
		}
		return value
	}
}

// mtdf drives the root search to convergence with a sequence of minimal
// window searches around a first guess (Plaat's MTD(f)). Alternative to
// the aspiration search, selected by configuration.
func (s *Search) mtdf(position *position.Position, depth int, firstGuess Value) Value {
	g := firstGuess
	if g == ValueNA {
		g = ValueDraw
	}
	upperBound := ValueMax
	lowerBound := ValueMin
	for lowerBound < upperBound {
		var beta Value
		if g == lowerBound {
			beta = g + 1
		} else {
			beta = g
		}
		g = s.rootSearch(position, depth, beta-1, beta)
		if s.stopConditions() {
			return g
		}
		if g < beta {
			upperBound = g
		} else {
			lowerBound = g
		}
		s.statistics.MTDfResearches++
	}
	return g
}

// search is the recursive alpha-beta search below the root. All major
// prunings and extensions live here; at depth 0 it drops into the
// quiescence search. doNull guards against consecutive null moves.
// cutNode marks nodes expected to fail high (the zero-window children
// of the PVS scheme); it sharpens the late move reductions and the
// transposition table replacement policy.
func (s *Search) search(p *position.Position, depth int, ply int, alpha Value, beta Value, isPV bool, doNull bool, cutNode bool) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d pv:%-6.v start:  %s", ply, "", ply, depth, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d pv:%-6.v end  :  %s", ply, "", ply, depth, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
	}

	if s.stopConditions() {
		return ValueNA
	}

	// horizon reached - resolve tactics in quiescence
	if depth == 0 || ply >= MaxDepth {
		return s.qsearch(p, ply, alpha, beta, isPV)
	}

	// Mate Distance Pruning: a mate found at a shorter distance already
	// bounds what this subtree can contribute.
	if Settings.Search.UseMDP {
		if alpha < -ValueCheckMate+Value(ply) {
			alpha = -ValueCheckMate + Value(ply)
		}
		if beta > ValueCheckMate-Value(ply) {
			beta = ValueCheckMate - Value(ply)
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	us := p.NextPlayer()
	bestNodeValue := ValueNA
	bestNodeMove := MoveNone
	ttMove := MoveNone
	ttType := ALPHA
	hasCheck := p.HasCheck()
	matethreat := false

	// TT probe. An entry searched at least as deep as we are about to
	// search can terminate this node outright (within its bound type);
	// otherwise its move still improves our move ordering.
	var ttEntry *transpositiontable.TtEntry
	if Settings.Search.UseTT {
		ttEntry = s.tt.Probe(p.ZobristKey())
		if ttEntry != nil {
			s.statistics.TTHit++
			ttMove = ttEntry.Move()
			if int(ttEntry.Depth()) >= depth {
				ttValue := valueFromTT(ttEntry.Value(), ply)
				cut := false
				switch {
				case !ttValue.IsValid():
					cut = false
				case ttEntry.Vtype() == EXACT:
					cut = true
				case ttEntry.Vtype() == ALPHA && ttValue <= alpha:
					cut = true
				case ttEntry.Vtype() == BETA && ttValue >= beta:
					cut = true
				}
				if cut && Settings.Search.UseTTValue {
					s.getPVLine(p, s.pv[ply], depth)
					s.statistics.TTCuts++
					return ttValue
				}
				s.statistics.TTNoCuts++
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	// Static eval of the node, cached in the position's undo stack. The
	// snapshot from two plies back (same side to move) tells whether
	// our evaluation trend is improving - several prunings and the late
	// move reductions key off that. In check there is no meaningful
	// static eval and improving stays pessimistic.
	staticEval := ValueNA
	improving := false
	if !hasCheck {
		staticEval = s.evaluate(p, ply)
		p.SetStaticEval(staticEval)
		prev := p.StaticEvalBefore(2)
		improving = prev == ValueNA || staticEval > prev
	}

	// Reverse Futility Pruning: when the static eval already exceeds
	// beta by a depth-scaled margin, the opponent would avoid this line
	// anyway - cut without searching a single move.
	if Settings.Search.UseRFP &&
		doNull &&
		depth <= 3 &&
		!isPV &&
		!hasCheck {
		margin := rfp[depth]
		if staticEval-margin >= beta {
			s.statistics.RfpPrunings++
			return staticEval - margin
		}
	}

	// Razoring: a static eval so far below alpha at low depth that only
	// a tactic could save the node - let the quiescence search decide
	// directly instead of a full-width search.
	if Settings.Search.UseRazoring &&
		!isPV &&
		!hasCheck &&
		depth <= 3 &&
		alpha > -ValueCheckMateThreshold {
		if staticEval+Value(Settings.Search.RazorMargin) <= alpha {
			s.statistics.RazorCuts++
			return s.qsearch(p, ply, alpha, beta, isPV)
		}
	}

	// Null Move Pruning: give the opponent a free move; if our position
	// still busts beta the real search would too. Unsound exactly where
	// passing would be best - in check, and in pawn-only endings where
	// zugzwang looms - so those are excluded.
	if Settings.Search.UseNullMove {
		if doNull &&
			!isPV &&
			depth >= Settings.Search.NmpDepth &&
			p.MaterialNonPawn(us) > 0 &&
			!hasCheck {

			// adaptive reduction, growing slowly with depth
			r := 3 + util.Min(2, depth/6)
			newDepth := depth - r - 1
			if newDepth < 0 {
				newDepth = 0
			}

			p.DoNullMove()
			s.nodesVisited++
			nValue := -s.search(p, newDepth, ply+1, -beta, -beta+1, false, false, !cutNode)
			p.UndoNullMove()

			if s.stopConditions() {
				return ValueNA
			}

			if nValue > ValueCheckMateThreshold {
				// a mate even though we passed - cap to an unproven value
				s.statistics.NMPMateBeta++
				nValue = ValueCheckMateThreshold
			} else if nValue < -ValueCheckMateThreshold {
				// we passed and got mated: mate threat against us
				s.statistics.NMPMateAlpha++
				matethreat = true
			}

			if nValue >= beta {
				// at high depth the cut is only trusted after a reduced
				// real search confirms it
				verified := true
				if depth >= 8 {
					verifyDepth := newDepth - 2
					if verifyDepth < 1 {
						verifyDepth = 1
					}
					vValue := s.search(p, verifyDepth, ply, beta-1, beta, false, false, false)
					if s.stopConditions() {
						return ValueNA
					}
					verified = vValue >= beta
				}
				if verified {
					s.statistics.NullMoveCuts++
					if Settings.Search.UseTT {
						s.storeTT(p, depth, ply, ttMove, nValue, BETA, cutNode)
					}
					return nValue
				}
			}
		}
	}

	// ProbCut: in a non-PV node with depth to spare, a reduced search of
	// only the promising captures (SEE at or above the margin) against a
	// raised beta stands in for the full move loop: if one of them alone
	// clears the raised beta, the full search would almost certainly
	// clear the real beta too.
	if Settings.Search.UseProbCut &&
		!isPV &&
		!hasCheck &&
		depth >= Settings.Search.ProbCutDepth &&
		beta > -ValueCheckMateThreshold && beta < ValueCheckMateThreshold {

		margin := Value(Settings.Search.ProbCutMargin)
		raisedBeta := beta + margin
		probDepth := depth - Settings.Search.ProbCutDepth + 1
		if probDepth < 1 {
			probDepth = 1
		}

		probMg := s.mg[ply]
		probMg.ResetOnDemand()
		for move := probMg.GetNextMove(p, movegen.GenNonQuiet, hasCheck); move != MoveNone; move = probMg.GetNextMove(p, movegen.GenNonQuiet, hasCheck) {
			if !p.IsCapturingMove(move) && move.MoveType() != Promotion {
				continue
			}
			if attacks.See(p, move) < margin {
				continue
			}
			p.DoMove(move)
			if !p.WasLegalMove() {
				p.UndoMove()
				continue
			}
			s.nodesVisited++
			value := -s.search(p, probDepth-1, ply+1, -raisedBeta, -raisedBeta+1, false, true, !cutNode)
			p.UndoMove()
			if s.stopConditions() {
				return ValueNA
			}
			if value >= raisedBeta {
				s.statistics.ProbCutCuts++
				probMg.ResetOnDemand()
				return beta
			}
		}
		probMg.ResetOnDemand()
	}

	// Internal Iterative Deepening: a PV node without a TT move gets a
	// reduced-depth search first, just to obtain a move to try first.
	// Bad first moves in a PV node are what blow up the tree.
	if Settings.Search.UseIID {
		if depth >= Settings.Search.IIDDepth &&
			ttMove == MoveNone &&
			doNull &&
			isPV {

			newDepth := depth - Settings.Search.IIDReduction
			if newDepth < 0 {
				newDepth = 0
			}

			s.search(p, newDepth, ply, alpha, beta, isPV, true, cutNode)
			s.statistics.IIDsearches++

			if s.stopConditions() {
				return ValueNA
			}

			if s.pv[ply].Len() > 0 {
				s.statistics.IIDmoves++
				ttMove = (*s.pv[ply])[0].MoveOf()
			}
		}
	}

	// Singular extension: if the TT move alone scores well above every
	// alternative in a reduced search, it is clearly forced and worth an
	// extra ply instead of a reduction.
	singularMove := MoveNone
	if Settings.Search.UseSingular &&
		depth >= Settings.Search.SingularDepth &&
		ttMove != MoveNone &&
		ttEntry != nil &&
		ttEntry.Vtype() != ALPHA &&
		int(ttEntry.Depth()) >= depth-3 {

		ttValue := valueFromTT(ttEntry.Value(), ply)
		if ttValue.IsValid() && ttValue < ValueCheckMateThreshold {
			singularBeta := ttValue - Value(Settings.Search.SingularMargin)
			singularDepth := (depth - 1) / 2
			if singularDepth < 1 {
				singularDepth = 1
			}
			rest := s.searchExcluding(p, singularDepth, ply, singularBeta, ttMove, hasCheck)
			if s.stopConditions() {
				return ValueNA
			}
			if rest < singularBeta {
				s.statistics.SingularExtensions++
				singularMove = ttMove
			}
		}
	}

	// reset generator and pv for this ply - must happen after IID which
	// runs its own move loop on the same ply
	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	// hand the TT/IID move to the generator to be returned first
	if Settings.Search.UseTTMove {
		if ttMove != MoveNone {
			s.statistics.TTMoveUsed++
			myMg.SetPvMove(ttMove)
		} else {
			s.statistics.NoTTMove++
		}
	}

	var value Value
	movesSearched := 0

	for move := myMg.GetNextMove(p, movegen.GenAll, hasCheck); move != MoveNone; move = myMg.GetNextMove(p, movegen.GenAll, hasCheck) {

		from := move.From()
		to := move.To()

		newDepth := depth - 1
		lmrDepth := newDepth
		extension := 0

		givesCheck := p.GivesCheck(move)

		// Extensions - used sparingly, pruning usually pays better than
		// extending.
		if Settings.Search.UseExt {
			// checks are extended although qsearch would search the
			// evasions anyway: the full search prunes better
			if Settings.Search.UseCheckExt && givesCheck {
				s.statistics.CheckExtension++
				extension = 1
			}

			// a mate threat found by the null move search - search one
			// ply deeper for an escape. Off by default, grows the tree.
			if Settings.Search.UseThreatExt && matethreat {
				s.statistics.ThreatExtension++
				extension = 1
			}

			// Recapture extension: this move retakes on the square the
			// opponent just moved to - the position is usually still
			// unsettled there and worth one more ply.
			if Settings.Search.UseRecaptureExt && extension == 0 {
				if lastMove := p.LastMove(); lastMove != MoveNone && lastMove.To() == move.To() && p.IsCapturingMove(move) {
					s.statistics.RecaptureExtension++
					extension = 1
				}
			}

			// Pawn-push-near-promotion extension: a pawn two ranks or
			// closer from queening is tactically sharp enough to extend.
			if Settings.Search.UsePawnPushExt && extension == 0 && p.GetPiece(from).TypeOf() == Pawn {
				toRank := to.RankOf()
				if (us == White && toRank >= Rank6) || (us == Black && toRank <= Rank3) {
					s.statistics.PawnPushExtension++
					extension = 1
				}
			}

			// Singular extension: the TT move survived the reduced
			// search against every alternative - force it one ply
			// deeper rather than risk pruning or reducing it.
			if extension == 0 && singularMove != MoveNone && move == singularMove {
				extension = 1
			}

			// with UseExtAddDepth off, extensions only shield moves from
			// the reductions below
			if Settings.Search.UseExtAddDepth {
				newDepth += extension
			}
		}

		// Forward pruning of uninteresting moves: quiet, not a killer or
		// TT move, no check on either side, no mate threat pending.
		if !isPV &&
			extension == 0 &&
			move != ttMove &&
			move != (*myMg.KillerMoves())[0] &&
			move != (*myMg.KillerMoves())[1] &&
			move.MoveType() != Promotion &&
			!p.IsCapturingMove(move) &&
			!hasCheck &&
			!givesCheck &&
			!matethreat {

			materialEval := p.Material(us) - p.Material(us.Flip())
			moveGain := p.GetPiece(to).ValueOf()

			// Futility Pruning: so far below alpha that the next ply
			// would fail low anyway. Only when the evaluation trend is
			// not improving - an improving node may still recover.
			if Settings.Search.UseFP && depth < 7 && !improving {
				futilityMargin := fp[depth]
				if materialEval+moveGain+futilityMargin <= alpha {
					if materialEval+moveGain > bestNodeValue {
						bestNodeValue = materialEval + moveGain
					}
					s.statistics.FpPrunings++
					continue
				}
			}

			// History Pruning: a quiet move that has rarely caused a
			// cutoff relative to how often it has been tried is unlikely
			// to be worth a full search this close to the horizon.
			if Settings.Search.UseHistoryPruning && depth <= Settings.Search.HistoryPruningDepth {
				if s.history.HistoryScore(us, from, to) < int64(2*depth*depth) {
					s.statistics.HistoryPrunings++
					continue
				}
			}

			// Late Move Pruning: at low depth, quiet moves this far down
			// the ordering are not searched at all.
			if Settings.Search.UseLmp {
				if movesSearched >= LmpMovesSearched(depth) {
					s.statistics.LmpCuts++
					continue
				}
			}

			// Late Move Reduction: late quiet moves rarely raise alpha,
			// so their null-window probe runs at reduced depth. The
			// re-search below restores full depth when one surprises.
			// Reduce one ply more when the evaluation trend is not
			// improving, another in expected cut nodes, and another for
			// quiet moves whose history record is hopeless. The result
			// is clamped to [0, depth-1].
			if Settings.Search.UseLmr {
				if depth >= Settings.Search.LmrDepth &&
					movesSearched >= Settings.Search.LmrMovesSearched {
					lmrDepth -= LmrReduction(depth, movesSearched)
					if !improving {
						lmrDepth--
					}
					if cutNode {
						lmrDepth--
					}
					if s.history.Butterfly[us][from][to] > 64 &&
						s.history.HistoryScore(us, from, to) == 0 {
						lmrDepth--
					}
					s.statistics.LmrReductions++
				}
				if lmrDepth < 0 {
					lmrDepth = 0
				}
				if lmrDepth > depth-1 {
					lmrDepth = depth - 1
				}
			}
		}

		// the butterfly table counts every quiet move actually tried,
		// not just the cutters, so HistoryScore is a success ratio
		if Settings.Search.UseHistoryCounter && !p.IsCapturingMove(move) {
			s.history.Butterfly[us][from][to]++
		}

		p.DoMove(move)
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		if s.checkDrawRepAnd50(p, 2) {
			value = s.contemptValue(p)
		} else {
			// PVS: first move with the full window; later moves must
			// first beat a null window (at LMR-reduced depth), and get a
			// full re-search only when they do
			if !Settings.Search.UsePVS || movesSearched == 0 {
				value = -s.search(p, newDepth, ply+1, -beta, -alpha, isPV, true, false)
			} else {
				value = -s.search(p, lmrDepth, ply+1, -alpha-1, -alpha, false, true, !cutNode)
				if value > alpha && !s.stopConditions() {
					if lmrDepth < newDepth {
						// reduction turned out unjustified
						s.statistics.LmrResearches++
						value = -s.search(p, newDepth, ply+1, -beta, -alpha, isPV, true, false)
					} else if value < beta {
						s.statistics.PvsResearches++
						value = -s.search(p, newDepth, ply+1, -beta, -alpha, isPV, true, false)
					}
				}
			}
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					// fail high: the opponent avoids this position, stop
					// searching the node. Remember the move in the
					// ordering heuristics so sibling nodes try it early.
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if Settings.Search.UseKiller && !p.IsCapturingMove(move) {
						myMg.StoreKiller(move)
					}
					// deeper cutoffs weigh heavier in the history count
					if Settings.Search.UseHistoryCounter {
						s.history.HistoryCount[us][from][to] += 1 << depth
					}
					if Settings.Search.UseCounterMoves {
						if lastMove := p.LastMove(); lastMove != MoveNone {
							s.history.CounterMoves[lastMove.From()][lastMove.To()] = move
						}
						if twoPlyBack := p.MoveBefore(); twoPlyBack != MoveNone {
							s.history.FollowupMoves[twoPlyBack.From()][twoPlyBack.To()] = move
						}
					}
					ttType = BETA
					break
				}
				// a real best move inside the window raises alpha
				alpha = value
				ttType = EXACT
			}
		}
		// no cutoff from this move - walk its history count back down
		if Settings.Search.UseHistoryCounter {
			s.history.HistoryCount[us][from][to] -= 1 << depth
			if s.history.HistoryCount[us][from][to] < 0 {
				s.history.HistoryCount[us][from][to] = 0
			}
		}
	}

	// no legal move at all: mate or stalemate, both exact values
	if movesSearched == 0 && !s.stopConditions() {
		if p.HasCheck() {
			s.statistics.Checkmates++
			bestNodeValue = -ValueCheckMate + Value(ply)
		} else {
			s.statistics.Stalemates++
			bestNodeValue = s.contemptValue(p)
		}
		ttType = EXACT
	}

	if Settings.Search.UseTT {
		s.storeTT(p, depth, ply, bestNodeMove, bestNodeValue, ttType, cutNode)
	}

	return bestNodeValue
}

// searchExcluding runs a reduced-depth, zero-window move loop over every
// legal move except excludeMove, returning the best value found. It
// backs the singular extension: the TT move is compared against the
// best any alternative can achieve.
func (s *Search) searchExcluding(p *position.Position, depth int, ply int, beta Value, excludeMove Move, hasCheck bool) Value {
	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	best := -ValueInf
	for move := myMg.GetNextMove(p, movegen.GenAll, hasCheck); move != MoveNone; move = myMg.GetNextMove(p, movegen.GenAll, hasCheck) {
		if move == excludeMove {
			continue
		}
		p.DoMove(move)
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}
		s.nodesVisited++
		value := -s.search(p, depth-1, ply+1, -beta, -beta+1, false, true, true)
		p.UndoMove()
		if s.stopConditions() {
			myMg.ResetOnDemand()
			return best
		}
		if value > best {
			best = value
		}
		if value >= beta {
			break
		}
	}
	myMg.ResetOnDemand()
	return best
}

// qsearch fights the horizon effect: past the nominal depth only
// captures, promotions and check evasions are searched until the
// position is quiet enough to evaluate statically. In check all moves
// are generated (an implicit check extension); otherwise the static
// eval serves as a standing-pat lower bound.
func (s *Search) qsearch(p *position.Position, ply int, alpha Value, beta Value, isPV bool) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d QSearch     a:%-6.d b:%-6.d pv:%-6.v start:  %s", ply, "", ply, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("%0*s Ply %-2.d QSearch     a:%-6.d b:%-6.d pv:%-6.v end  :  %s", ply, "", ply, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
	}

	if s.statistics.CurrentExtraSearchDepth < ply {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	if !Settings.Search.UseQuiescence || ply >= MaxDepth {
		return s.evaluate(p, ply)
	}

	// Mate Distance Pruning, same as in search
	if Settings.Search.UseMDP {
		if alpha < -ValueCheckMate+Value(ply) {
			alpha = -ValueCheckMate + Value(ply)
		}
		if beta > ValueCheckMate-Value(ply) {
			beta = ValueCheckMate - Value(ply)
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	bestNodeValue := ValueNA
	ttType := ALPHA
	ttMove := MoveNone
	hasCheck := p.HasCheck()

	// standing pat - in check there is no "do nothing" option, so no pat
	if !hasCheck {
		staticEval := s.evaluate(p, ply)
		if Settings.Search.UseQSStandpat && staticEval > alpha {
			if staticEval >= beta {
				s.statistics.StandpatCuts++
				return staticEval
			}
			alpha = staticEval
		}
		bestNodeValue = staticEval

		// Delta pruning: when even winning a sizeable amount of
		// material cannot lift the stand pat to alpha, resolving the
		// captures is pointless. The margin widens towards the endgame
		// where single captures swing the score more.
		if Settings.Search.UseQFP && !isPV && alpha > -ValueCheckMateThreshold {
			deltaMargin := Value(75 + int(150*(1.0-p.GamePhaseFactor())))
			if staticEval+deltaMargin < alpha && p.MaterialNonPawn(p.NextPlayer().Flip()) > 0 {
				s.statistics.QFpPrunings++
				return alpha
			}
		}
	}

	// TT probe - any depth is good enough for a qsearch node
	var ttEntry *transpositiontable.TtEntry
	if Settings.Search.UseQSTT {
		ttEntry = s.tt.Probe(p.ZobristKey())
		if ttEntry != nil {
			s.statistics.TTHit++
			ttMove = ttEntry.Move()
			ttValue := valueFromTT(ttEntry.Value(), ply)
			cut := false
			switch {
			case !ttValue.IsValid():
				cut = false
			case ttEntry.Vtype() == EXACT:
				cut = true
			case ttEntry.Vtype() == ALPHA && ttValue <= alpha:
				cut = true
			case ttEntry.Vtype() == BETA && ttValue >= beta:
				cut = true
			}
			if cut && Settings.Search.UseTTValue {
				s.statistics.TTCuts++
				return ttValue
			}
			s.statistics.TTNoCuts++
		} else {
			s.statistics.TTMiss++
		}
	}

	bestNodeMove := MoveNone
	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	if Settings.Search.UseQSTT {
		if ttMove != MoveNone {
			s.statistics.TTMoveUsed++
			myMg.SetPvMove(ttMove)
		} else {
			s.statistics.NoTTMove++
		}
	}

	var value Value
	movesSearched := 0

	// in check every move is an evasion and gets searched
	var mode movegen.GenMode
	if hasCheck {
		s.statistics.CheckInQS++
		mode = movegen.GenAll
	} else {
		mode = movegen.GenNonQuiet
	}

	for move := myMg.GetNextMove(p, mode, hasCheck); move != MoveNone; move = myMg.GetNextMove(p, mode, hasCheck) {

		// outside of check only captures that do not lose material are
		// worth resolving
		if !hasCheck && !s.goodCapture(p, move) {
			continue
		}

		p.DoMove(move)
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		// repetitions can only occur via quiet evasions - captures
		// break the repetition chain by themselves
		if hasCheck && s.checkDrawRepAnd50(p, 2) {
			value = s.contemptValue(p)
		} else {
			value = -s.qsearch(p, ply+1, -beta, -alpha, isPV)
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if Settings.Search.UseHistoryCounter {
						s.history.HistoryCount[p.NextPlayer()][move.From()][move.To()] += 1 << 1
					}
					if Settings.Search.UseCounterMoves {
						if lastMove := p.LastMove(); lastMove != MoveNone {
							s.history.CounterMoves[lastMove.From()][lastMove.To()] = move
						}
					}
					ttType = BETA
					break
				}
				alpha = value
				ttType = EXACT
			}
		}
	}

	// no move searched: in check this is mate (all evasions were
	// generated); otherwise the position was quiet and the standing pat
	// already sits in bestNodeValue
	if movesSearched == 0 && !s.stopConditions() {
		if p.HasCheck() {
			s.statistics.Checkmates++
			bestNodeValue = -ValueCheckMate + Value(ply)
			ttType = EXACT
		}
	}

	if Settings.Search.UseQSTT {
		s.storeTT(p, 1, ply, bestNodeMove, bestNodeValue, ttType, ttType == BETA)
	}

	return bestNodeValue
}

// evaluate returns the static evaluation for the position, optionally
// cached in the transposition table entry's eval slot.
func (s *Search) evaluate(position *position.Position, ply int) Value {
	s.statistics.LeafPositionsEvaluated++

	if Settings.Search.UseTT && Settings.Search.UseEvalTT {
		if ttEntry := s.tt.Probe(position.ZobristKey()); ttEntry != nil && ttEntry.Eval() != ValueNA {
			s.statistics.TTHit++
			s.statistics.EvaluationsFromTT++
			return ttEntry.Eval()
		}
	}

	s.statistics.Evaluations++
	value := s.eval.Evaluate(position)

	if Settings.Search.UseTT && Settings.Search.UseEvalTT {
		s.tt.Put(position.ZobristKey(), MoveNone, 0, ValueNA, Vnone, value, false)
	}

	return value
}

// goodCapture filters qsearch captures: with SEE on, only exchanges
// that do not lose material; otherwise a cheap heuristic (cheap piece
// takes expensive piece, recapture, or undefended victim).
func (s *Search) goodCapture(p *position.Position, move Move) bool {
	if Settings.Search.UseSEE {
		return attacks.See(p, move) > 0
	}
	return p.GetPiece(move.From()).ValueOf()+50 < p.GetPiece(move.To()).ValueOf() ||
		// recaptures are always worth a look
		(p.LastMove() != MoveNone && p.LastMove().To() == move.To() && p.LastCapturedPiece() != PieceNone) ||
		// an undefended victim is free (a defender hiding behind the
		// attacker is missed here - costs one extra qsearch node)
		!p.IsAttacked(move.To(), p.NextPlayer().Flip())
}

// savePV sets dest to move followed by src.
func savePV(move Move, src *moveslice.MoveSlice, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}

// storeTT stores a search result, translating mate values to be
// independent of the node's distance from the root. cutNode feeds the
// table's replacement policy.
func (s *Search) storeTT(p *position.Position, depth int, ply int, move Move, value Value, valueType ValueType, cutNode bool) {
	s.tt.Put(p.ZobristKey(), move, int8(depth), valueToTT(value, ply), valueType, ValueNA, cutNode)
}

// getPVLine rebuilds the principal variation by following best moves
// through the transposition table, at most depth plies deep.
func (s *Search) getPVLine(p *position.Position, pv *moveslice.MoveSlice, depth int) {
	pv.Clear()
	counter := 0
	ttMatch := s.tt.GetEntry(p.ZobristKey())
	for ttMatch != nil && ttMatch.Move() != MoveNone && counter < depth {
		pv.PushBack(ttMatch.Move())
		p.DoMove(ttMatch.Move())
		counter++
		ttMatch = s.tt.GetEntry(p.ZobristKey())
	}
	for i := 0; i < counter; i++ {
		p.UndoMove()
	}
}

// valueToTT translates a mate value into "mate in n from this node"
// before storing - the entry may be reached from different root
// distances.
func valueToTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			return value + Value(ply)
		}
		return value - Value(ply)
	}
	return value
}

// valueFromTT is the inverse of valueToTT applied after a probe.
func valueFromTT(value Value, ply int) Value {
	if value.IsCheckMateValue() {
		if value > 0 {
			return value - Value(ply)
		}
		return value + Value(ply)
	}
	return value
}

// getSearchTraceLog builds the dedicated search trace logger: stdout
// plus a log file next to the executable when the log folder resolves.
func getSearchTraceLog() *logging.Logger {
	searchLog := logging.MustGetLogger("search")

	searchLogFormat := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:-7.7s}:  %{message}`)

	backend1 := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, searchLogFormat)
	searchBackEnd := logging.AddModuleLevel(backend1Formatter)
	searchBackEnd.SetLevel(logging.Level(SearchLogLevel), "")
	searchLog.SetBackend(searchBackEnd)

	programName, _ := os.Executable()
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")

	logPath, err := util.ResolveFolder(Settings.Log.LogPath)
	if err != nil {
		golog.Println("Log folder could not be found:", err)
		return searchLog
	}
	searchLogFilePath := filepath.Join(logPath, exeName+"_search.log")

	searchLogFile, err := os.OpenFile(searchLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		golog.Println("Logfile could not be created:", err)
		return searchLog
	}
	backend2 := logging.NewLogBackend(searchLogFile, "", golog.Lmsgprefix)
	backend2Formatter := logging.NewBackendFormatter(backend2, searchLogFormat)
	searchBackEnd2 := logging.AddModuleLevel(backend2Formatter)
	searchBackEnd2.SetLevel(logging.DEBUG, "")
	searchLog.SetBackend(searchBackEnd2)
	searchLog.Infof("Log %s started at %s:", searchLogFile.Name(), time.Now().String())
	return searchLog
}
