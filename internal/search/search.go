//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

// Package search implements iterative-deepening alpha-beta search over
// an unbounded fairy-chess board: a negamax/PVS core (alphabeta.go), a
// staged move picker (picker.go), static exchange evaluation (see.go)
// and supporting tuning tables (params.go). There is no UCI loop and
// no opening book here; callers drive the search through StartSearch
// and an external stop predicate, as described by pkg/engine.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/fairyengine/internal/attacks"
	"github.com/frankkopp/fairyengine/internal/board"
	"github.com/frankkopp/fairyengine/internal/config"
	"github.com/frankkopp/fairyengine/internal/evaluator"
	"github.com/frankkopp/fairyengine/internal/history"
	myLogging "github.com/frankkopp/fairyengine/internal/logging"
	"github.com/frankkopp/fairyengine/internal/movegen"
	"github.com/frankkopp/fairyengine/internal/moveslice"
	"github.com/frankkopp/fairyengine/internal/transpositiontable"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

var out = message.NewPrinter(language.German)

var log *logging.Logger

func init() {
	log = myLogging.GetLog("search")
}

// noCtx backs the semaphore handshakes below; none of them need
// cancellation of their own since StartSearch/WaitWhileSearching block
// only as long as the search goroutine itself runs.
var noCtx = context.Background()

// Result is what a completed (or cancelled) search hands back to its
// caller: the best move found, its value from the root side to move's
// perspective, the principal variation behind it and node/time stats.
type Result struct {
	BestMove   Move
	PonderMove Move
	BestValue  Value
	Pv         moveslice.MoveSlice
	Depth      int
	Nodes      uint64
	Elapsed    time.Duration
}

// killerPair holds the two killer quiet moves recorded for one ply.
type killerPair struct {
	first, second Move
}

// Search owns everything one line of iterative deepening needs: the
// transposition table, evaluator and history tables persist across
// searches of the same game; the per-ply movegen/pv/killer arrays are
// reset at the start of every search.
type Search struct {
	tt   *transpositiontable.TtTable
	eval *evaluator.Evaluator
	hist *history.History

	mg        []*movegen.Movegen
	pv        []*moveslice.MoveSlice
	killers   []killerPair
	moveStack []Move

	nodesVisited uint64
	stopFlag     int32
	stopFn       func() bool
	startTime    time.Time
	hardDeadline time.Time
	hasDeadline  bool
	nodeLimit    uint64

	isRunning     *semaphore.Weighted
	initSemaphore *semaphore.Weighted

	statistics       Statistics
	lastSearchResult Result
}

// NewSearch creates a ready-to-use Search with a fresh transposition
// table sized per configuration, a fresh evaluator and empty history.
func NewSearch() *Search {
	s := &Search{
		tt:            transpositiontable.NewTtTable(config.Settings.Search.TTSizeMb),
		eval:          evaluator.NewEvaluator(),
		hist:          history.NewHistory(),
		isRunning:     semaphore.NewWeighted(1),
		initSemaphore: semaphore.NewWeighted(1),
	}
	s.allocatePerPly()
	return s
}

func (s *Search) allocatePerPly() {
	n := MaxSearchDepth + 8
	s.mg = make([]*movegen.Movegen, n)
	s.pv = make([]*moveslice.MoveSlice, n)
	s.killers = make([]killerPair, n)
	s.moveStack = make([]Move, n)
	for i := 0; i < n; i++ {
		s.mg[i] = movegen.NewMoveGen()
		s.pv[i] = moveslice.NewMoveSlice(MaxSearchDepth)
	}
}

// NewGame clears everything that must not leak across unrelated games:
// the transposition table generations, the history tables and killers.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.hist.Clear()
	for i := range s.killers {
		s.killers[i] = killerPair{}
	}
}

// ResizeCache rebuilds the transposition table at sizeInMb, discarding
// its contents.
func (s *Search) ResizeCache(sizeInMb int) {
	s.tt = transpositiontable.NewTtTable(sizeInMb)
}

// ClearHash empties the transposition table without resizing it.
func (s *Search) ClearHash() {
	s.tt.Clear()
}

// IsSearching reports whether a search goroutine currently holds the
// running semaphore.
func (s *Search) IsSearching() bool {
	if s.isRunning.TryAcquire(1) {
		s.isRunning.Release(1)
		return false
	}
	return true
}

// WaitWhileSearching blocks until any in-flight search has returned, by
// acquiring and immediately releasing the running semaphore - the same
// handshake StartSearch uses to block until its goroutine is ready to
// run.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(noCtx, 1)
	s.isRunning.Release(1)
}

// StartSearch launches an iterative-deepening search of gs in its own
// goroutine and returns once that goroutine has taken ownership of the
// running semaphore, so a StopSearch issued immediately afterwards is
// guaranteed to reach a search that has actually started. stop is
// polled at node entry; a nil stop never fires early.
func (s *Search) StartSearch(gs *board.GameState, sl Limits, stop func() bool) {
	_ = s.initSemaphore.Acquire(noCtx, 1)
	go s.run(gs, sl, stop)
	_ = s.initSemaphore.Acquire(noCtx, 1)
	s.initSemaphore.Release(1)
}

// StopSearch requests the running search stop at its next node-entry
// poll and return the best move found by the last completed iteration.
func (s *Search) StopSearch() {
	atomic.StoreInt32(&s.stopFlag, 1)
}

// BestMove runs a synchronous search of gs to maxDepth (0 means no
// depth limit, rely on stop alone) and returns the best move found.
// This is the entry point pkg/engine's facade exposes to callers that
// do not need the start/stop goroutine handshake themselves.
func (s *Search) BestMove(gs *board.GameState, maxDepth int, stop func() bool) Move {
	sl := Limits{Depth: maxDepth}
	s.StartSearch(gs, sl, stop)
	s.WaitWhileSearching()
	return s.lastSearchResult.BestMove
}

// LastSearchResult returns the Result assembled by the most recently
// finished search.
func (s *Search) LastSearchResult() Result {
	return s.lastSearchResult
}

// NodesVisited returns the node count of the most recent search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// GetStatistics returns the extra search statistics gathered during
// the most recent search.
func (s *Search) GetStatistics() Statistics {
	return s.statistics
}

func (s *Search) run(gs *board.GameState, sl Limits, stop func() bool) {
	_ = s.isRunning.Acquire(noCtx, 1)
	defer s.isRunning.Release(1)

	atomic.StoreInt32(&s.stopFlag, 0)
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.stopFn = stop
	s.startTime = time.Now()
	s.setupTimeControl(gs, sl)
	s.nodeLimit = sl.Nodes

	s.tt.NewSearch()
	for i := range s.killers {
		s.killers[i] = killerPair{}
	}

	s.initSemaphore.Release(1)

	s.lastSearchResult = s.iterativeDeepening(gs, sl)
	log.Infof("search finished: value=%s depth=%d nodes=%s elapsed=%s",
		s.lastSearchResult.BestValue, s.lastSearchResult.Depth,
		out.Sprintf("%d", s.lastSearchResult.Nodes), s.lastSearchResult.Elapsed)
}

// setupTimeControl derives a hard wall-clock deadline from sl, mirroring
// the source's movesToGo/remaining-time scaling: a fixed move time is
// used verbatim, otherwise the side to move's clock is divided by an
// estimate of the moves left in the game and nudged by the increment.
func (s *Search) setupTimeControl(gs *board.GameState, sl Limits) {
	s.hasDeadline = false
	if sl.Infinite || sl.Ponder {
		return
	}
	if sl.MoveTime > 0 {
		s.hardDeadline = s.startTime.Add(sl.MoveTime)
		s.hasDeadline = true
		return
	}
	if !sl.TimeControl {
		return
	}

	var timeLeft, inc time.Duration
	if gs.NextPlayer() == White {
		timeLeft, inc = sl.WhiteTime, sl.WhiteInc
	} else {
		timeLeft, inc = sl.BlackTime, sl.BlackInc
	}
	if timeLeft <= 0 {
		return
	}

	movesToGo := sl.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 40
	}
	budget := timeLeft / time.Duration(movesToGo)
	budget += inc

	scale := 0.9
	if timeLeft < 100*time.Millisecond {
		scale = 0.8
	}
	budget = time.Duration(float64(budget) * scale)

	s.hardDeadline = s.startTime.Add(budget)
	s.hasDeadline = true
}

// shouldStop is polled at every node entry; it is cheap enough to call
// unconditionally since it only checks an atomic flag, with the
// wall-clock and caller-predicate checks rate-limited to every 2048
// nodes.
func (s *Search) shouldStop() bool {
	if atomic.LoadInt32(&s.stopFlag) != 0 {
		return true
	}
	if s.nodeLimit > 0 && s.nodesVisited >= s.nodeLimit {
		return true
	}
	if s.nodesVisited&0x7FF == 0 {
		if s.hasDeadline && time.Now().After(s.hardDeadline) {
			return true
		}
		if s.stopFn != nil && s.stopFn() {
			return true
		}
	}
	return false
}

// iterativeDeepening searches gs at increasing depth until shouldStop
// fires or sl.Depth is reached, widening the aspiration window around
// the previous iteration's score and falling back to a full window on
// failure, returning the last fully completed iteration's result when
// search is cut off mid-iteration.
func (s *Search) iterativeDeepening(gs *board.GameState, sl Limits) Result {
	maxDepth := sl.Depth
	if maxDepth <= 0 || maxDepth > MaxSearchDepth {
		maxDepth = MaxSearchDepth
	}

	rootMoves := s.mg[0].GenerateLegalMoves(gs, movegen.GenAll)
	if rootMoves.Len() == 0 {
		value := ValueDraw
		if attacks.IsInCheck(gs, gs.NextPlayer()) {
			value = -MateValue
		}
		return Result{BestMove: MoveNone, BestValue: value, Depth: 0, Nodes: s.nodesVisited, Elapsed: time.Since(s.startTime)}
	}
	ordered := rootMoves.Clone()

	result := Result{BestMove: ordered.At(0), BestValue: ValueZero}
	alpha, beta := ValueMin, ValueMax
	lastValue := ValueZero

	for depth := 1; depth <= maxDepth; depth++ {
		s.statistics.CurrentIterationDepth = depth

		value, bestMove, completed := s.rootSearch(gs, ordered, depth, alpha, beta)
		if !completed {
			break
		}

		if value <= alpha || value >= beta {
			alpha, beta = ValueMin, ValueMax
			s.statistics.AspirationResearches++
			value, bestMove, completed = s.rootSearch(gs, ordered, depth, alpha, beta)
			if !completed {
				break
			}
		}

		lastValue = value
		result = Result{
			BestMove:  bestMove,
			BestValue: value,
			Pv:        *s.pv[0].Clone(),
			Depth:     depth,
			Nodes:     s.nodesVisited,
			Elapsed:   time.Since(s.startTime),
		}
		ordered.Sort()

		if value.IsMateValue() {
			break
		}
		window := aspirationSteps[0]
		alpha, beta = lastValue-window, lastValue+window
		if s.shouldStop() {
			break
		}
	}
	return result
}
