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

package movegen

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/fairyengine/internal/attacks"
	"github.com/frankkopp/fairyengine/internal/board"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

var out = message.NewPrinter(language.German)

// Perft counts the leaf nodes of the legal move tree below a position,
// the standard correctness check for a move generator: every engine in
// this tree traces bugs back to a perft count that didn't match a known
// table. Root-level parallel fan-out is the only place this engine runs
// search work across goroutines; everything below the root stays
// single-threaded against its own GameState clone.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         int32
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine to stop
// the currently running perft test.
func (perft *Perft) Stop() {
	atomic.StoreInt32(&perft.stopFlag, 1)
}

func (perft *Perft) stopped() bool {
	return atomic.LoadInt32(&perft.stopFlag) != 0
}

// StartPerftMulti iterates StartPerft over the given depth range. If
// this has been started in a goroutine it can be stopped via Stop().
func (perft *Perft) StartPerftMulti(gs *board.GameState, startDepth, endDepth int, parallel int) {
	atomic.StoreInt32(&perft.stopFlag, 0)
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopped() {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(gs, i, parallel)
	}
}

// StartPerft runs a single perft test at depth against gs. When
// parallel > 1 the root moves are split across up to parallel
// goroutines, each walking its own clone of gs; parallel <= 1 runs
// single-threaded. If this has been started in a goroutine it can be
// stopped via Stop().
func (perft *Perft) StartPerft(gs *board.GameState, depth int, parallel int) {
	atomic.StoreInt32(&perft.stopFlag, 0)

	if depth <= 0 {
		depth = 1
	}

	perft.resetCounter()

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	var result uint64
	if parallel > 1 {
		result = perft.rootParallel(gs, depth, parallel)
	} else {
		mgList := make([]*Movegen, depth+1)
		for i := 0; i <= depth; i++ {
			mgList[i] = NewMoveGen()
		}
		result = perft.miniMax(depth, gs, mgList)
	}
	elapsed := time.Since(start)

	if perft.stopped() {
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

// rootParallel walks the root moves concurrently, one GameState clone
// per goroutine, bounded by a weighted semaphore. Results merge through
// atomics so no clone ever touches another's counters.
func (perft *Perft) rootParallel(gs *board.GameState, depth, parallel int) uint64 {
	rootColor := gs.NextPlayer()
	moves := NewMoveGen().GeneratePseudoLegalMoves(gs, GenAll)

	var total uint64
	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(parallel))
	ctx := context.Background()

	moves.ForEach(func(i int) {
		if perft.stopped() {
			return
		}
		m := moves.At(i)
		wasCapture := !gs.Board().IsEmpty(m.To)
		_ = sem.Acquire(ctx, 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			clone := gs.Clone()
			clone.MakeMove(m)
			if attacks.IsInCheck(clone, rootColor) {
				clone.UndoMove()
				return
			}
			var n uint64
			if depth > 1 {
				mgList := make([]*Movegen, depth)
				for i := 0; i <= depth-1; i++ {
					mgList[i] = NewMoveGen()
				}
				n = perft.miniMax(depth-1, clone, mgList)
			} else {
				n = 1
				perft.recordLeafStats(clone, m, rootColor, wasCapture)
			}
			clone.UndoMove()
			atomic.AddUint64(&total, n)
		}()
	})
	wg.Wait()
	return total
}

// miniMax is the single-threaded recursive walk used below the root
// (and for the whole tree when parallel fan-out is off).
func (perft *Perft) miniMax(depth int, gs *board.GameState, mgList []*Movegen) uint64 {
	totalNodes := uint64(0)
	movingColor := gs.NextPlayer()
	moves := mgList[depth].GeneratePseudoLegalMoves(gs, GenAll)

	for i := 0; i < moves.Len(); i++ {
		if perft.stopped() {
			return 0
		}
		m := moves.At(i)

		if depth > 1 {
			gs.MakeMove(m)
			if !attacks.IsInCheck(gs, movingColor) {
				totalNodes += perft.miniMax(depth-1, gs, mgList)
			}
			gs.UndoMove()
			continue
		}

		wasCapture := !gs.Board().IsEmpty(m.To)
		gs.MakeMove(m)
		if !attacks.IsInCheck(gs, movingColor) {
			totalNodes++
			perft.recordLeafStats(gs, m, movingColor, wasCapture)
			if attacks.IsInCheck(gs, movingColor.Flip()) && !mgList[0].HasLegalMove(gs) {
				atomic.AddUint64(&perft.CheckMateCounter, 1)
			}
		}
		gs.UndoMove()
	}
	return totalNodes
}

// recordLeafStats tags a leaf move already applied to gs against the
// counters perft reports. gs must still be in the post-move state;
// movingColor is the side that just moved; wasCapture reflects the
// board before the move (by the time this runs To holds the moving
// piece, so the post-move board no longer shows the capture).
func (perft *Perft) recordLeafStats(gs *board.GameState, m Move, movingColor Color, wasCapture bool) {
	if m.IsEnPassant() {
		atomic.AddUint64(&perft.EnpassantCounter, 1)
		atomic.AddUint64(&perft.CaptureCounter, 1)
	} else if wasCapture {
		atomic.AddUint64(&perft.CaptureCounter, 1)
	}
	if m.IsCastling() {
		atomic.AddUint64(&perft.CastleCounter, 1)
	}
	if m.IsPromotion() {
		atomic.AddUint64(&perft.PromotionCounter, 1)
	}
	if attacks.IsInCheck(gs, movingColor.Flip()) {
		atomic.AddUint64(&perft.CheckCounter, 1)
	}
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
