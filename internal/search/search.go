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

// Package search implements the engine's iterative-deepening alpha-beta
// search with quiescence, the full set of pruning/extension heuristics
// (see alphabeta.go) and time management; the static exchange
// evaluation it relies on lives in the attacks package.
// One Search instance owns all state that persists across searches in a
// game: transposition table, history tables and the evaluator.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/knightkmv/chesscore/internal/config"
	"github.com/knightkmv/chesscore/internal/evaluator"
	"github.com/knightkmv/chesscore/internal/history"
	myLogging "github.com/knightkmv/chesscore/internal/logging"
	"github.com/knightkmv/chesscore/internal/movegen"
	"github.com/knightkmv/chesscore/internal/moveslice"
	"github.com/knightkmv/chesscore/internal/position"
	"github.com/knightkmv/chesscore/internal/transpositiontable"
	. "github.com/knightkmv/chesscore/internal/types"
	"github.com/knightkmv/chesscore/internal/uciInterface"
	"github.com/knightkmv/chesscore/internal/util"
)

var out = message.NewPrinter(language.German)

// Search owns one engine search. Create with NewSearch(). The search
// itself runs in its own goroutine (StartSearch/StopSearch); two
// semaphores coordinate the init handshake and the running state.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	uciHandlerPtr uciInterface.UciDriver
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt   *transpositiontable.TtTable
	eval *evaluator.Evaluator

	// move ordering data shared between plies and searches
	history *history.History

	lastSearchResult *Result

	// per-search state, reset by run()
	stopFlag          *util.Bool
	startTime         time.Time
	hasResult         bool
	currentPosition   *position.Position
	searchLimits      *Limits
	timeLimit         time.Duration
	extraTime         time.Duration
	remainingTime     time.Duration
	panicTime         time.Duration
	nodesVisited      uint64
	mg                []*movegen.Movegen
	pv                []*moveslice.MoveSlice
	rootMoves         *moveslice.MoveSlice
	lastUciUpdateTime time.Time
	statistics        Statistics
}

// NewSearch creates a Search instance. Without a UCI handler installed
// (SetUciHandler) all protocol output goes to the log instead.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		slog:          getSearchTraceLog(),
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		eval:          evaluator.NewEvaluator(),
		history:       history.NewHistory(),
		stopFlag:      util.NewBool(false),
	}
}

// NewGame stops any running search and resets all state carried across
// searches within a game: transposition table, history/killer/counter
// tables and the evaluator's caches.
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
	s.history = history.NewHistory()
	s.eval.NewGame()
}

// StartSearch begins searching the given position under the given
// limits in a new goroutine and returns once the search is fully
// initialized. Position and limits are copied.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.currentPosition = &p
	s.searchLimits = &sl
	go s.run(&p, &sl)
	// block until run() releases the init semaphore
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch signals the search to stop and blocks until it has. The
// search ends gracefully and still reports its best move.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
	s.WaitWhileSearching()
}

// PonderHit activates time control on a search started in ponder mode
// (the opponent played the expected move). Without a pondering search
// running this only logs a warning.
func (s *Search) PonderHit() {
	if s.IsSearching() && s.searchLimits.Ponder {
		s.log.Debug("Ponderhit during search - activating time control")
		s.startTimer()
		return
	}
	s.log.Warning("Ponderhit received while not pondering")
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until no search is running.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// SetUciHandler installs the handler protocol output is sent through.
func (s *Search) SetUciHandler(uciHandler uciInterface.UciDriver) {
	s.uciHandlerPtr = uciHandler
}

// GetUciHandlerPtr returns the installed handler, nil if none.
func (s *Search) GetUciHandlerPtr() uciInterface.UciDriver {
	return s.uciHandlerPtr
}

// IsReady runs any outstanding initialization (e.g. TT allocation) and
// then reports "readyok" through the UCI handler.
func (s *Search) IsReady() {
	s.initialize()
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendReadyOk()
	} else {
		s.log.Debug("uci >> readyok")
	}
}

// ClearHash empties the transposition table. Refused while searching.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		msg := "Can't clear hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	if s.tt != nil {
		s.tt.Clear()
		s.sendInfoStringToUci("Hash cleared")
	}
}

// ResizeCache reallocates the transposition table to the configured
// size. Refused while searching.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		msg := "Can't resize hash while searching."
		s.uciHandlerPtr.SendInfoString(msg)
		s.log.Warning(msg)
		return
	}
	// drop and re-create, then give the GC a chance to return memory
	s.tt = nil
	s.initialize()
	s.log.Debug(util.GcWithStats())
	if s.tt != nil {
		s.uciHandlerPtr.SendInfoString(out.Sprintf("Hash resized: %s", s.tt.String()))
	}
}

// run is the search goroutine: it initializes the per-search state,
// drives the iterative deepening and publishes the result.
func (s *Search) run(position *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.log.Infof("Searching: %s", position.StringFen())

	// reset per-search state
	s.stopFlag.Store(false)
	s.hasResult = false
	s.timeLimit = 0
	s.extraTime = 0
	s.remainingTime = 0
	s.panicTime = 0
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.lastUciUpdateTime = s.startTime
	s.initialize()

	s.setupSearchLimits(position, sl)

	// a pondering search runs without the clock until ponderhit
	if s.searchLimits.TimeControl && !s.searchLimits.Ponder {
		s.startTimer()
	}

	if s.tt != nil {
		s.log.Infof("Transposition Table: Using TT (%s)", s.tt.String())
		s.tt.AgeEntries()
	} else {
		s.log.Info("Transposition Table: Not using TT")
	}

	// per-ply move generators and pv lists; the generators share the
	// history tables for their move ordering
	s.mg = make([]*movegen.Movegen, 0, MaxDepth+1)
	s.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+1)
	for i := 0; i <= MaxDepth; i++ {
		newMoveGen := movegen.NewMoveGen()
		if config.Settings.Search.UseHistoryCounter || config.Settings.Search.UseCounterMoves {
			newMoveGen.SetHistoryData(s.history)
		}
		s.mg = append(s.mg, newMoveGen)
		s.pv = append(s.pv, moveslice.NewMoveSlice(MaxDepth+1))
	}

	s.log.Infof("Search using: PVS=%t ASP=%t MTDf=%t",
		config.Settings.Search.UsePVS,
		config.Settings.Search.UseAspiration,
		config.Settings.Search.UseMTDf)

	// unblock StartSearch - initialization is complete
	s.initSemaphore.Release(1)

	searchResult := s.iterativeDeepening(position)

	// in ponder/infinite mode a finished search must hold its result
	// until the stop or ponderhit arrives
	if (s.searchLimits.Ponder || s.searchLimits.Infinite) && !s.stopFlag.Load() {
		s.log.Debug("Search finished before stopped or ponderhit! Waiting for stop/ponderhit to send result")
		for !s.stopFlag.Load() && (s.searchLimits.Ponder || s.searchLimits.Infinite) {
			time.Sleep(5 * time.Millisecond)
		}
	}

	searchResult.SearchTime = time.Since(s.startTime)
	searchResult.Pv = *s.pv[0]

	s.log.Info(out.Sprintf("Search finished after %s", searchResult.SearchTime))
	s.log.Info(out.Sprintf("Search depth was %d(%d) with %d nodes visited. NPS = %d nps",
		s.statistics.CurrentSearchDepth, s.statistics.CurrentExtraSearchDepth, s.nodesVisited,
		util.Nps(s.nodesVisited, searchResult.SearchTime)))
	s.log.Debugf("Search stats: %s", s.statistics.String())
	s.log.Infof("Search result: %s", searchResult.String())

	s.lastSearchResult = searchResult
	s.hasResult = true

	// the timer goroutine polls this flag - make sure it terminates
	s.stopFlag.Store(true)

	// a result is sent in every case, stopped or not
	s.sendResult(searchResult)
}

// iterativeDeepening runs the search depth by depth. Every completed
// iteration leaves a best move in pv[0], so an interrupted deeper
// iteration can always fall back on it. Root moves are re-sorted by
// their value between iterations so the previous best is searched
// first.
func (s *Search) iterativeDeepening(position *position.Position) *Result {
	// draw by repetition or fifty-move rule on the board already
	if s.checkDrawRepAnd50(position, 2) {
		msg := "Search called on DRAW by Repetition or 50-moves-rule"
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return &Result{BestValue: s.contemptValue(position)}
	}

	s.rootMoves = s.mg[0].GenerateLegalMoves(position, movegen.GenAll)

	// without legal moves the game is over - mate or stalemate
	if s.rootMoves.Len() == 0 {
		if position.HasCheck() {
			s.statistics.Checkmates++
			msg := "Search called on a mate position"
			s.sendInfoStringToUci(msg)
			s.log.Warning(msg)
			return &Result{BestValue: -ValueCheckMate}
		}
		s.statistics.Stalemates++
		msg := "Search called on a stalemate position"
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return &Result{BestValue: s.contemptValue(position)}
	}

	// a searchmoves restriction narrows the root to the listed moves
	if s.searchLimits.Moves.Len() > 0 {
		restricted := moveslice.NewMoveSlice(s.rootMoves.Len())
		s.rootMoves.FilterCopy(restricted, func(i int) bool {
			for _, m := range s.searchLimits.Moves {
				if m.MoveOf() == s.rootMoves.At(i).MoveOf() {
					return true
				}
			}
			return false
		})
		if restricted.Len() > 0 {
			s.rootMoves = restricted
		}
	}

	maxDepth := MaxDepth
	if s.searchLimits.Depth > 0 {
		maxDepth = s.searchLimits.Depth
	}

	bestValue := ValueNA

	// tracking for the time-management heuristics: consecutive score
	// drops and best-move stability across completed iterations
	previousValue := ValueNA
	previousBestMove := MoveNone
	consecutiveDrops := 0
	stableIterations := 0

	for iterationDepth := 1; iterationDepth <= maxDepth; iterationDepth++ {
		s.nodesVisited++
		s.statistics.CurrentIterationDepth = iterationDepth
		s.statistics.CurrentSearchDepth = iterationDepth
		if s.statistics.CurrentExtraSearchDepth < iterationDepth {
			s.statistics.CurrentExtraSearchDepth = iterationDepth
		}

		// pick the root search strategy for this iteration
		switch {
		case config.Settings.Search.UseAspiration && iterationDepth > 3:
			bestValue = s.aspirationSearch(position, iterationDepth, bestValue)
		case config.Settings.Search.UseMTDf && iterationDepth > 3:
			bestValue = s.mtdf(position, iterationDepth, bestValue)
		default:
			bestValue = s.rootSearch(position, iterationDepth, ValueMin, ValueMax)
		}

		// panic stop: once the game clock would sink below the panic
		// threshold, finish with what we have instead of starting
		// another iteration - a completed shallow iteration beats an
		// aborted deep one
		if s.panicTime > 0 && iterationDepth > 1 &&
			s.remainingTime-time.Since(s.startTime) < s.panicTime {
			s.log.Debugf("Panic time threshold reached after depth %d - stopping search", iterationDepth)
			s.stopFlag.Store(true)
		}

		// stop between iterations - the just-interrupted iteration's
		// partial result is already folded into pv[0]. With a single
		// legal move there is nothing to iterate for either.
		if s.stopConditions() || s.rootMoves.Len() <= 1 {
			break
		}

		s.rootMoves.Sort()
		s.statistics.CurrentBestRootMove = s.pv[0].At(0)
		s.statistics.CurrentBestRootMoveValue = s.pv[0].At(0).ValueOf()

		// time management: two consecutive >=100cp drops buy extra
		// time, a stable best move gives some back
		currentBestMove := s.statistics.CurrentBestRootMove.MoveOf()
		if previousValue != ValueNA {
			if previousValue-bestValue >= 100 {
				consecutiveDrops++
			} else {
				consecutiveDrops = 0
			}
			if currentBestMove == previousBestMove {
				stableIterations++
			} else {
				stableIterations = 0
				s.statistics.BestMoveChange++
			}
			elapsed := time.Since(s.startTime)
			switch {
			case consecutiveDrops >= 2 && elapsed > (s.timeLimit*3)/10:
				s.addExtraTime(1.3)
				consecutiveDrops = 0
			case stableIterations >= 3 && elapsed > s.timeLimit/2:
				s.addExtraTime(0.9)
			}
		}
		previousValue = bestValue
		previousBestMove = currentBestMove

		s.sendIterationEndInfoToUci()
	}

	result := &Result{
		BestMove:    s.pv[0].At(0).MoveOf(),
		BestValue:   s.pv[0].At(0).ValueOf(),
		PonderMove:  MoveNone,
		SearchDepth: s.statistics.CurrentIterationDepth,
		ExtraDepth:  s.statistics.CurrentExtraSearchDepth,
	}

	// ponder move: second pv move, or the TT's answer to our best move
	if s.pv[0].Len() > 1 {
		result.PonderMove = s.pv[0].At(1).MoveOf()
	} else if config.Settings.Search.UseTT {
		position.DoMove(result.BestMove)
		if ttEntry := s.tt.Probe(position.ZobristKey()); ttEntry != nil {
			s.statistics.TTHit++
			result.PonderMove = ttEntry.Move()
			s.log.Debugf(out.Sprintf("Using ponder move from hash: %s", result.PonderMove.StringUci()))
		}
		position.UndoMove()
	}

	return result
}

// initialize performs expensive setup (currently TT allocation) once;
// repeated calls are no-ops.
func (s *Search) initialize() {
	if !config.Settings.Search.UseTT {
		s.log.Info("Transposition Table is disabled in configuration")
		return
	}
	if s.tt == nil {
		sizeInMByte := config.Settings.Search.TTSize
		if sizeInMByte == 0 {
			sizeInMByte = 64
		}
		s.tt = transpositiontable.NewTtTable(sizeInMByte)
	}
}

// stopConditions reports whether the search must end: stop flag set or
// node cap reached (which sets the flag itself).
func (s *Search) stopConditions() bool {
	if s.stopFlag.Load() {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag.Store(true)
	}
	return s.stopFlag.Load()
}

// setupSearchLimits logs the effective limits and computes the time
// budget when a time control is active.
func (s *Search) setupSearchLimits(position *position.Position, sl *Limits) {
	if sl.Infinite {
		s.log.Info("Search mode: Infinite")
	}
	if sl.Ponder {
		s.log.Info("Search mode: Ponder")
	}
	if sl.Mate > 0 {
		s.log.Infof("Search mode: Search for mate in %d", sl.Mate)
	}
	if sl.TimeControl {
		s.timeLimit = s.setupTimeControl(position, sl)
		s.extraTime = 0
		// panic threshold: under a game clock the search refuses to run
		// the mover's remaining time below min(10% of the clock, 20% of
		// the budget) - see the stop check in iterativeDeepening
		if sl.MoveTime == 0 {
			switch position.NextPlayer() {
			case White:
				s.remainingTime = sl.WhiteTime
			case Black:
				s.remainingTime = sl.BlackTime
			}
			if s.remainingTime > 0 {
				s.panicTime = s.remainingTime / 10
				if budgetShare := s.timeLimit / 5; budgetShare < s.panicTime {
					s.panicTime = budgetShare
				}
			}
		}
		if sl.MoveTime > 0 {
			s.log.Infof("Search mode: Time controlled: Time per move %s", sl.MoveTime)
		} else {
			s.log.Info(out.Sprintf("Search mode: Time controlled: White = %s (inc %s) Black = %s (inc %s) Moves to go: %d",
				sl.WhiteTime, sl.WhiteInc, sl.BlackTime, sl.BlackInc, sl.MovesToGo))
			s.log.Info(out.Sprintf("Search mode: Time limit     : %s", s.timeLimit))
		}
		if sl.Ponder {
			s.log.Info("Search mode: Ponder - time control postponed until ponderhit received")
		}
	} else {
		s.log.Info("Search mode: No time control")
	}
	if sl.Depth > 0 {
		s.log.Debugf("Search mode: Depth limited  : %d", sl.Depth)
	}
	if sl.Nodes > 0 {
		s.log.Infof(out.Sprintf("Search mode: Nodes limited  : %d", sl.Nodes))
	}
	if sl.Moves.Len() > 0 {
		s.log.Infof(out.Sprintf("Search mode: Moves limited  : %s", sl.Moves.StringUci()))
	}
}

// setupTimeControl computes the time budget for this move. With a fixed
// move time only a small execution reserve is subtracted. With a game
// clock the remaining moves are either given (moves-to-go) or estimated
// from the game phase - around 40 in the opening, shrinking towards 15
// in deep endgames - and the per-move share is reduced by a runtime
// reserve of 10% (20% when time is very short).
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) time.Duration {
	if sl.MoveTime > 0 {
		duration := sl.MoveTime - (20 * time.Millisecond)
		if duration < 0 {
			s.log.Warningf("Very short move time: %s. ", sl.MoveTime)
			return sl.MoveTime
		}
		return duration
	}

	movesLeft := int64(sl.MovesToGo)
	if movesLeft == 0 {
		movesLeft = int64(15 + (25 * p.GamePhaseFactor()))
	}

	var timeLeft time.Duration
	switch p.NextPlayer() {
	case White:
		timeLeft = sl.WhiteTime + time.Duration(movesLeft*sl.WhiteInc.Nanoseconds())
	case Black:
		timeLeft = sl.BlackTime + time.Duration(movesLeft*sl.BlackInc.Nanoseconds())
	}

	timeLimit := time.Duration(timeLeft.Nanoseconds() / movesLeft)
	if timeLimit.Milliseconds() < 100 {
		timeLimit = time.Duration(int64(0.8 * float64(timeLimit.Nanoseconds())))
	} else {
		timeLimit = time.Duration(int64(0.9 * float64(timeLimit.Nanoseconds())))
	}

	// the budget never drops below a workable minimum and never eats
	// more than 95% of the clock actually left on the board
	var remaining time.Duration
	switch p.NextPlayer() {
	case White:
		remaining = sl.WhiteTime
	case Black:
		remaining = sl.BlackTime
	}
	if timeLimit < 50*time.Millisecond {
		timeLimit = 50 * time.Millisecond
	}
	if clockCap := remaining - remaining/20; remaining > 0 && timeLimit > clockCap {
		timeLimit = clockCap
	}
	return timeLimit
}

// addExtraTime scales the remaining budget by f (1.1 = +10%, 0.9 =
// -10%). Only meaningful under a game clock - a fixed move time stays
// fixed.
func (s *Search) addExtraTime(f float64) {
	if s.searchLimits.TimeControl && s.searchLimits.MoveTime == 0 {
		duration := time.Duration(int64((f - 1.0) * float64(s.timeLimit.Nanoseconds())))
		s.extraTime += duration
		s.log.Debugf(out.Sprintf("Time added/reduced by %s to %s ",
			duration, s.timeLimit+s.extraTime))
	}
}

// startTimer launches the watchdog goroutine that sets the stop flag
// once the budget (plus any extra time granted later) is used up. A
// plain timer cannot be used since extraTime may still change.
func (s *Search) startTimer() {
	go func() {
		timerStart := time.Now()
		s.log.Debugf("Timer started with time limit of %s", s.timeLimit)
		for time.Since(timerStart) < s.timeLimit+s.extraTime && !s.stopFlag.Load() {
			time.Sleep(5 * time.Millisecond)
		}
		if s.stopFlag.Load() {
			s.log.Debugf("Timer stopped early after wall time: %s (time limit %s and extra time %s)",
				time.Since(timerStart), s.timeLimit, s.extraTime)
		} else {
			s.log.Debugf("Timer stops search after wall time: %s (time limit %s and extra time %s)",
				time.Since(timerStart), s.timeLimit, s.extraTime)
			s.stopFlag.Store(true)
		}
	}()
}

// checkDrawRepAnd50 reports a draw by repetition (at least the given
// number of prior occurrences) or by the fifty-move rule.
func (s *Search) checkDrawRepAnd50(p *position.Position, i int) bool {
	return p.CheckRepetitions(i) || p.HalfMoveClock() >= 100
}

// contemptValue returns the score for a drawn position (repetition,
// fifty-move rule, stalemate) from the side-to-move's perspective. The
// configured base contempt is scaled by game phase and by an estimate
// of engine strength - contempt matters little in the opening, more as
// pieces come off, and more for a strong engine expected to outplay a
// drawish position.
func (s *Search) contemptValue(p *position.Position) Value {
	contempt := config.Settings.Search.Contempt
	if contempt == 0 {
		return ValueDraw
	}
	// GamePhaseFactor runs 1 (opening) to 0 (endgame); the formula
	// wants endgame-ness, its complement
	endgameFactor := 1.0 - p.GamePhaseFactor()
	ratingFactor := (float64(config.Settings.Search.Rating) - 2500.0) / 500.0
	if ratingFactor < 0 {
		ratingFactor = 0
	} else if ratingFactor > 1 {
		ratingFactor = 1
	}
	dynamic := float64(contempt) * (0.5 + 0.3*endgameFactor + 0.2*ratingFactor)
	return ValueDraw + Value(dynamic)
}

// sendResult reports the final best and ponder move to the UCI handler.
func (s *Search) sendResult(searchResult *Result) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendResult(searchResult.BestMove, searchResult.PonderMove)
	}
}

func (s *Search) sendInfoStringToUci(msg string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendInfoString(msg)
	}
}

// sendSearchUpdateToUci emits the periodic "info" line, rate limited to
// once per second.
func (s *Search) sendSearchUpdateToUci() {
	if time.Since(s.lastUciUpdateTime) <= time.Second {
		return
	}
	s.lastUciUpdateTime = time.Now()
	hashfull := 0
	if s.tt != nil {
		hashfull = s.tt.Hashfull()
	}
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendSearchUpdate(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			hashfull)
		s.uciHandlerPtr.SendCurrentRootMove(s.statistics.CurrentRootMove, s.statistics.CurrentRootMoveIndex)
		s.uciHandlerPtr.SendCurrentLine(s.statistics.CurrentVariation)
		return
	}
	s.log.Infof(out.Sprintf("depth %d seldepth %d value %s nodes %d nps %d time %d hashful %d",
		s.statistics.CurrentSearchDepth,
		s.statistics.CurrentExtraSearchDepth,
		s.statistics.CurrentBestRootMoveValue.String(),
		s.nodesVisited,
		s.getNps(),
		time.Since(s.startTime).Milliseconds(),
		hashfull))
}

// sendIterationEndInfoToUci reports depth/value/pv after a completed
// iteration.
func (s *Search) sendIterationEndInfoToUci() {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendIterationEndInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
		return
	}
	s.log.Infof(out.Sprintf("depth %d seldepth %d value %s nodes %d nps %d time %d pv %s",
		s.statistics.CurrentSearchDepth,
		s.statistics.CurrentExtraSearchDepth,
		s.statistics.CurrentBestRootMoveValue.String(),
		s.nodesVisited,
		s.getNps(),
		time.Since(s.startTime).Milliseconds(),
		s.pv[0].StringUci()))
}

// sendAspirationResearchInfo reports a fail-low/fail-high re-search.
func (s *Search) sendAspirationResearchInfo(bound string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendAspirationResearchInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue,
			bound,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
		return
	}
	s.log.Infof(out.Sprintf("depth %d seldepth %d value %s %s nodes %d nps %d time %d pv %s",
		s.statistics.CurrentSearchDepth,
		s.statistics.CurrentExtraSearchDepth,
		s.statistics.CurrentBestRootMoveValue.String(),
		bound,
		s.nodesVisited,
		s.getNps(),
		time.Since(s.startTime).Milliseconds(),
		s.pv[0].StringUci()))
}

// getNps computes nodes per second since the search started. Implausible
// values from sub-millisecond measurements are suppressed.
func (s *Search) getNps() uint64 {
	nps := util.Nps(s.nodesVisited, time.Since(s.startTime)+100)
	if nps > 15_000_000 {
		nps = 0
	}
	return nps
}

// LastSearchResult returns a copy of the last search's result.
func (s *Search) LastSearchResult() Result {
	return *s.lastSearchResult
}

// NodesVisited returns the node count of the last search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns the statistics of the last search.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}
