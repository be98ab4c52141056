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

// Package history provides data structures updated during search to
// give the move picker (internal/search's staged picker) sorting
// signal beyond the transposition table move and captures. The source
// indexed history tables by from/to Square, a 64-valued bounded index;
// an unbounded Coordinate has no such bound, so the tables here
// truncate a coordinate pair via x^y: to a single byte (&0xFF) for the
// main history and counter moves, and to 5 bits for the 32-wide
// continuation and low-ply tables, the same hash-and-mask idiom the
// pack's Rust move orderer uses for its hash_move_from/hash_move_dest
// indices.
package history

import (
	. "github.com/frankkopp/fairyengine/pkg/types"
)

// coordHash truncates a coordinate to an 8-bit index.
func coordHash(c Coordinate) uint8 {
	return uint8(c.X^c.Y) & 0xFF
}

// LowPlyHistorySize bounds how many plies out from the root keep their
// own dedicated history table, the same small constant the pack's Rust
// move orderer uses for its low_ply_history (root-adjacent nodes are
// revisited by every iterative-deepening pass, so dedicating a table to
// just the first few plies pays for itself much faster than waiting for
// the shared main history to accumulate signal there).
const LowPlyHistorySize = 4

// History holds the move-ordering tables accumulated across a search:
// a main history scored by (piece kind, destination hash), a capture
// history scored by (attacker kind, victim kind), a counter-move table
// keyed by the previous move's (from hash, to hash), a continuation
// history relating an earlier move to the current one, and a low-ply
// history scored by (ply, destination hash) for nodes close to the root.
type History struct {
	Main         [PkLength][256]int64
	Captures     [PkLength][PkLength]int64
	Counter      [256][256]Move
	Continuation [16][32][32][32]int64
	LowPly       [LowPlyHistorySize][32]int64
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{}
}

// bonus is the depth-squared increment applied on a cutoff, the
// standard history-heuristic magnitude that rewards deeper cutoffs more
// than shallow ones.
func bonus(depth int) int64 {
	d := int64(depth)
	return d * d
}

// UpdateMain rewards a quiet move that caused a beta cutoff and
// penalizes the quiet moves tried before it at the same node.
func (h *History) UpdateMain(piece Piece, to Coordinate, depth int, failed []Move) {
	idx := coordHash(to)
	h.Main[piece.Kind][idx] += bonus(depth)
	for _, m := range failed {
		fi := coordHash(m.To)
		h.Main[m.Piece.Kind][fi] -= bonus(depth)
		if h.Main[m.Piece.Kind][fi] < -1_000_000 {
			h.Main[m.Piece.Kind][fi] = -1_000_000
		}
	}
}

// MainScore returns the accumulated quiet-move score for piece moving to
// to.
func (h *History) MainScore(piece Piece, to Coordinate) int64 {
	return h.Main[piece.Kind][coordHash(to)]
}

// UpdateCapture rewards a capture that caused a cutoff, indexed by
// attacker and victim kind rather than squares since a capture's value
// is driven by what took what, not where on an unbounded board it
// happened.
func (h *History) UpdateCapture(attacker, victim PieceKind, depth int) {
	h.Captures[attacker][victim] += bonus(depth)
}

// CaptureScore returns the accumulated capture score for attacker taking
// victim.
func (h *History) CaptureScore(attacker, victim PieceKind) int64 {
	return h.Captures[attacker][victim]
}

// SetCounterMove records m as the reply that refuted prevMove.
func (h *History) SetCounterMove(prevMove Move, m Move) {
	if prevMove.IsNone() {
		return
	}
	h.Counter[coordHash(prevMove.From)][coordHash(prevMove.To)] = m
}

// CounterMove returns the recorded reply to prevMove, or MoveNone.
func (h *History) CounterMove(prevMove Move) Move {
	if prevMove.IsNone() {
		return MoveNone
	}
	return h.Counter[coordHash(prevMove.From)][coordHash(prevMove.To)]
}

// continuationIndex truncates a coordinate to a 5-bit index, keeping
// the 4-dimensional continuation table (~4 MiB at int64 width) within a
// modest footprint.
func continuationIndex(c Coordinate) uint8 {
	return uint8(c.X^c.Y) & 0x1F
}

// UpdateContinuation rewards a quiet move that continues well from the
// previous ply's move.
func (h *History) UpdateContinuation(prevPiece Piece, prevTo Coordinate, curFrom, curTo Coordinate, depth int) {
	if prevPiece.IsNone() {
		return
	}
	pk := int(prevPiece.Kind) % 16
	h.Continuation[pk][continuationIndex(prevTo)][continuationIndex(curFrom)][continuationIndex(curTo)] += bonus(depth)
}

// ContinuationScore returns the accumulated continuation score.
func (h *History) ContinuationScore(prevPiece Piece, prevTo Coordinate, curFrom, curTo Coordinate) int64 {
	if prevPiece.IsNone() {
		return 0
	}
	pk := int(prevPiece.Kind) % 16
	return h.Continuation[pk][continuationIndex(prevTo)][continuationIndex(curFrom)][continuationIndex(curTo)]
}

// UpdateLowPly rewards a quiet move that caused a cutoff within the
// first LowPlyHistorySize plies of the root.
func (h *History) UpdateLowPly(ply int, to Coordinate, depth int) {
	if ply >= LowPlyHistorySize {
		return
	}
	h.LowPly[ply][continuationIndex(to)] += bonus(depth)
}

// LowPlyScore returns the accumulated low-ply score for a move to to at
// ply, or 0 once ply falls outside the tracked range.
func (h *History) LowPlyScore(ply int, to Coordinate) int64 {
	if ply >= LowPlyHistorySize {
		return 0
	}
	return h.LowPly[ply][continuationIndex(to)]
}

// Clear resets every table, used between searches of unrelated
// positions where carrying history forward would mislead ordering.
func (h *History) Clear() {
	*h = History{}
}
