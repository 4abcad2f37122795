/*
 * VantageGo - UCI chess engine in GO
 *
 * MIT License
 *
 * Copyright (c) 2024-2026 The VantageGo Authors
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

// Package search implements the search of the chess engine: an
// iterative deepening alpha-beta search with aspiration windows,
// transposition table, staged move ordering, static exchange
// evaluation and quiescence. The search runs in its own goroutine and
// polls a cooperative stop signal which is raised by the time manager
// or an external stop command.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/vantagechess/VantageGo/internal/config"
	"github.com/vantagechess/VantageGo/internal/evaluator"
	myLogging "github.com/vantagechess/VantageGo/internal/logging"
	"github.com/vantagechess/VantageGo/internal/movegen"
	"github.com/vantagechess/VantageGo/internal/moveslice"
	"github.com/vantagechess/VantageGo/internal/openingbook"
	"github.com/vantagechess/VantageGo/internal/position"
	"github.com/vantagechess/VantageGo/internal/transpositiontable"
	. "github.com/vantagechess/VantageGo/internal/types"
	"github.com/vantagechess/VantageGo/internal/uciInterface"
	"github.com/vantagechess/VantageGo/internal/util"
)

var out = message.NewPrinter(language.English)

// maximum search depth in plys for the main search
const maxSearchDepth = MaxDepth

// maximum overall ply (main search plus quiescence)
const maxPly = 256

// Search represents the data structure for a chess engine search.
// Create with NewSearch()
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	uciHandler uciInterface.UciDriver

	mg   *movegen.Movegen
	eval *evaluator.Evaluator
	tt   *transpositiontable.TtTable
	book *openingbook.Book

	// single searcher guard
	isRunning *semaphore.Weighted

	// time manager
	startTime time.Time
	allotted  time.Duration
	stopFlag  atomic.Bool

	searchLimits *Limits

	// per search state
	nodesVisited     uint64
	killers          [maxPly][2]Move
	history          [SqLength][SqLength]int64
	pickers          [maxPly]movePicker
	pickerBuffers    [maxPly]*pickerBuffers
	lastIterDuration time.Duration

	statistics Statistics

	lastSearchResult *Result
}

// NewSearch creates a new Search instance. Does not yet allocate the
// transposition table - this happens lazily on the first search or
// via ResizeCache.
func NewSearch() *Search {
	s := &Search{
		log:       myLogging.GetLog(),
		slog:      myLogging.GetSearchLog(),
		mg:        movegen.NewMoveGen(),
		eval:      evaluator.NewEvaluator(),
		isRunning: semaphore.NewWeighted(1),
	}
	for i := 0; i < maxPly; i++ {
		s.pickerBuffers[i] = newPickerBuffers()
	}
	return s
}

// NewGame resets the search state for a new game (transposition
// table, killers and history)
func (s *Search) NewGame() {
	if s.tt != nil {
		s.tt.Clear()
	}
	s.clearHeuristics()
	s.lastSearchResult = nil
}

// SetUciHandler sets the UCI handler the search reports to.
// If not set the search only logs.
func (s *Search) SetUciHandler(handler uciInterface.UciDriver) {
	s.uciHandler = handler
}

// IsReady initializes the search and signals readyok to the UCI handler
func (s *Search) IsReady() {
	s.initialize()
	if s.uciHandler != nil {
		s.uciHandler.SendReadyOk()
	}
}

// StartSearch starts the search on the given position with the given
// limits in a separate goroutine. Only one search can run at a time;
// a second start request while searching is ignored with an error log.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running - ignoring start request")
		return
	}
	go func() {
		defer s.isRunning.Release(1)
		s.run(&p, &sl)
	}()
}

// StopSearch raises the stop signal. The search returns promptly with
// the result of the last completed iteration.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
}

// IsSearching checks if a search is currently running
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until a running search has finished
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// ClearHash clears the transposition table and the heuristics.
// Used by the UCI option "Clear Hash".
func (s *Search) ClearHash() {
	if s.tt != nil {
		s.tt.Clear()
	}
	s.clearHeuristics()
}

// ResizeCache resizes the transposition table to the size configured
// in the settings
func (s *Search) ResizeCache() {
	s.tt = transpositiontable.NewTtTable(Settings.Search.TTSize)
}

// LastSearchResult returns the result of the last search
func (s *Search) LastSearchResult() Result {
	if s.lastSearchResult == nil {
		return Result{BestMove: MoveNone, Value: ValueNA}
	}
	return *s.lastSearchResult
}

// NodesVisited returns the number of nodes visited in the last search
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns the statistics collected during the last search
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// initialize prepares the search lazily - transposition table and
// opening book are created/loaded on first use
func (s *Search) initialize() {
	if s.tt == nil && Settings.Search.UseTT {
		s.tt = transpositiontable.NewTtTable(Settings.Search.TTSize)
	}
	if s.tt == nil {
		// a minimal table keeps the search code free of nil checks
		s.tt = transpositiontable.NewTtTable(1)
	}
	if s.book == nil && Settings.Search.UseBook {
		s.book = openingbook.NewBook()
		bookPath := Settings.Search.BookPath + "/" + Settings.Search.BookFile
		if err := s.book.Initialize(bookPath, Settings.Search.BookFormat); err != nil {
			s.log.Warningf("Opening book could not be loaded: %s (%s)", bookPath, err)
			s.book = nil
		}
	}
}

// run is the entry point of the search goroutine
func (s *Search) run(p *position.Position, sl *Limits) {
	s.initialize()

	s.stopFlag.Store(false)
	s.startTime = time.Now()
	s.searchLimits = sl
	s.nodesVisited = 0
	s.lastIterDuration = 0
	s.statistics = Statistics{}
	s.clearHeuristics()
	s.tt.NewSearch()

	s.setupTimeControl(p, sl)

	s.slog.Debugf("Search started: %s", sl.String())

	// check the opening book before searching
	if Settings.Search.UseBook && s.book != nil && !sl.Infinite {
		if bookMove := s.book.GetRandomMove(p); bookMove != MoveNone &&
			s.isLegalRootMove(p, bookMove) {
			s.slog.Debug("Book move found")
			result := &Result{BestMove: bookMove, Value: ValueNA, BookMove: true}
			s.lastSearchResult = result
			s.sendResult(result)
			return
		}
	}

	result := s.iterativeDeepening(p)
	result.SearchTime = time.Since(s.startTime)
	result.Nodes = s.nodesVisited
	s.lastSearchResult = result

	s.slog.Debug(out.Sprintf("Search finished: depth %d, value %s, best %s, nodes %d, time %d ms, nps %d",
		result.Depth, result.Value.String(), result.BestMove.StringUci(), result.Nodes,
		result.SearchTime.Milliseconds(), util.Nps(result.Nodes, result.SearchTime)))

	s.slog.Debug(s.statistics.String())

	s.sendResult(result)
}

// iterativeDeepening deepens the search one ply at a time. Only the
// result of the last fully completed iteration is used. From depth 5
// on the search window is an aspiration window around the last score
// which is widened on the failing side until the score is in-window.
func (s *Search) iterativeDeepening(p *position.Position) *Result {
	result := &Result{BestMove: MoveNone, Value: ValueNA}

	maxDepth := s.searchLimits.Depth
	if maxDepth <= 0 || maxDepth > maxSearchDepth {
		maxDepth = maxSearchDepth
	}

	lastValue := ValueZero

	for depth := 1; depth <= maxDepth; depth++ {
		iterStart := time.Now()

		// poll the clock at the iteration boundary
		s.checkTime()
		if s.stopConditions() {
			break
		}

		// before starting the next iteration predict whether it can
		// finish in the remaining time - assume 3x the last duration
		if depth > 1 && s.allotted > 0 {
			if time.Since(s.startTime)+3*s.lastIterDuration > s.allotted {
				break
			}
		}

		// decay history between iterations to keep values bounded
		for from := 0; from < SqLength; from++ {
			for to := 0; to < SqLength; to++ {
				s.history[from][to] /= 8
			}
		}

		alpha := -ValueInf
		beta := ValueInf
		window := Value(Settings.Search.AspirationWindow)
		if Settings.Search.UseAspiration && depth > 4 {
			alpha = lastValue - window
			beta = lastValue + window
		}

		var value Value
		var move Move
		for {
			value, move = s.alphaBeta(p, depth, 0, alpha, beta)
			if s.stopConditions() {
				break
			}
			if value <= alpha {
				// fail low - widen downwards only
				s.statistics.AspirationFails++
				alpha = -ValueInf
				continue
			}
			if value >= beta {
				// fail high - widen upwards only
				s.statistics.AspirationFails++
				beta = ValueInf
				continue
			}
			break
		}

		s.lastIterDuration = time.Since(iterStart)

		// a stopped iteration is incomplete - discard it entirely
		if s.stopConditions() {
			break
		}

		lastValue = value
		result.BestMove = move
		result.Value = value
		result.Depth = depth

		s.getPVLine(p, &result.Pv, depth)
		s.sendIterationEndInfo(result)

		// no point to search deeper when a mate was found
		if value.IsCheckMateValue() {
			break
		}
	}

	return result
}

// clearHeuristics resets killers and history counters
func (s *Search) clearHeuristics() {
	for i := 0; i < maxPly; i++ {
		s.killers[i][0] = MoveNone
		s.killers[i][1] = MoveNone
	}
	for from := 0; from < SqLength; from++ {
		for to := 0; to < SqLength; to++ {
			s.history[from][to] = 0
		}
	}
}

// checkTime raises the stop signal once the allotted time is used up.
// Called every 64 nodes and at iteration boundaries.
func (s *Search) checkTime() {
	if s.stopFlag.Load() {
		return
	}
	if s.allotted > 0 && time.Since(s.startTime) >= s.allotted {
		s.stopFlag.Store(true)
	}
}

// stopConditions checks if the search should stop
func (s *Search) stopConditions() bool {
	return s.stopFlag.Load()
}

// setupTimeControl computes the time allotted for this move.
// A fixed movetime is used as is. Otherwise the remaining game time
// minus a safety buffer is allocated with tiered heuristics and capped
// at 20% of the remaining time.
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) {
	s.allotted = 0
	if sl.Infinite || !sl.TimeControl {
		return
	}
	if sl.MoveTime > 0 {
		s.allotted = sl.MoveTime
		return
	}

	var myTime, myInc time.Duration
	if p.NextPlayer() == White {
		myTime = sl.WhiteTime
		myInc = sl.WhiteInc
	} else {
		myTime = sl.BlackTime
		myInc = sl.BlackInc
	}
	if myTime <= 0 {
		return
	}

	// reserve a safety buffer of 15% or 500ms, whichever is smaller
	safety := myTime * 15 / 100
	if safety > 500*time.Millisecond {
		safety = 500 * time.Millisecond
	}
	usable := myTime - safety

	var alloc time.Duration
	if sl.MovesToGo > 0 {
		movesToPlan := util.Max(sl.MovesToGo, 2)
		alloc = usable/time.Duration(movesToPlan) + myInc*3/4
	} else {
		// tiered allocation assuming ~40 remaining moves
		switch {
		case usable > 5*time.Second:
			alloc = usable/40 + myInc*9/10
		case usable > 2*time.Second:
			alloc = usable/30 + myInc*3/4
		case usable > 500*time.Millisecond:
			alloc = usable/20 + myInc/2
		default:
			alloc = myInc/2 + 20*time.Millisecond
		}
	}

	// never use more than 20% of the remaining time for one move
	if hardCap := usable / 5; alloc > hardCap {
		alloc = hardCap
	}
	if alloc > usable {
		alloc = usable
	}
	if alloc < 10*time.Millisecond && usable >= 10*time.Millisecond {
		alloc = 10 * time.Millisecond
	}

	s.allotted = alloc
	s.slog.Debug(out.Sprintf("Time control: %d ms for this move", alloc.Milliseconds()))
}

// getPVLine rebuilds the principal variation from the transposition
// table by following the stored best moves
func (s *Search) getPVLine(p *position.Position, pv *moveslice.MoveSlice, depth int) {
	pv.Clear()
	var undos []position.Undo
	for i := 0; i < depth; i++ {
		e := s.tt.Probe(p.ZobristKey())
		if e == nil || e.Move == MoveNone {
			break
		}
		m := s.matchLegalMove(p, e.Move)
		if m == MoveNone {
			break
		}
		pv.PushBack(m)
		undos = append(undos, p.DoMove(m))
		if p.IsRepetition() {
			break
		}
	}
	for i := len(undos) - 1; i >= 0; i-- {
		p.UndoMove(undos[i])
	}
}

// isLegalRootMove checks whether the move (matched on from/to/promo)
// is legal in the position
func (s *Search) isLegalRootMove(p *position.Position, m Move) bool {
	return s.matchLegalMove(p, m) != MoveNone
}

// matchLegalMove matches a move by from, to and promotion type against
// the legal moves of the position and returns the generated move with
// correct flags or MoveNone
func (s *Search) matchLegalMove(p *position.Position, m Move) Move {
	ml := moveslice.NewMoveSlice(MaxMoves)
	s.mg.GenerateLegalMoves(p, ml)
	for _, lm := range *ml {
		if lm.SameAs(m) {
			return lm
		}
	}
	return MoveNone
}

// sendIterationEndInfo reports a completed iteration to the UCI
// handler or the search log
func (s *Search) sendIterationEndInfo(result *Result) {
	searchTime := time.Since(s.startTime)
	nps := util.Nps(s.nodesVisited, searchTime)
	if s.uciHandler != nil {
		s.uciHandler.SendIterationEndInfo(result.Depth, result.Value,
			s.nodesVisited, nps, searchTime, result.Pv.StringUci())
	} else {
		s.slog.Debug(out.Sprintf("depth %d score %s nodes %d nps %d time %d pv %s",
			result.Depth, result.Value.String(), s.nodesVisited, nps,
			searchTime.Milliseconds(), result.Pv.StringUci()))
	}
}

// sendResult reports the final best move to the UCI handler
func (s *Search) sendResult(result *Result) {
	if s.uciHandler != nil {
		s.uciHandler.SendResult(result.BestMove)
	}
}
