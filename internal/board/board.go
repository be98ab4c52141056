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

// Package board implements the unbounded-coordinate board, its derived
// spatial indices, and the GameState that wraps it with side-to-move,
// special rights, en passant and repetition bookkeeping.
package board

import (
	. "github.com/frankkopp/fairyengine/pkg/types"
)

// Board is a mapping Coordinate -> Piece. At most one piece occupies any
// coordinate. Piece counts per color are tracked incrementally and an
// incrementally maintained Zobrist hash (pieces only; side/rights/en
// passant are mixed in by GameState) reflects current contents.
type Board struct {
	pieces     map[Coordinate]Piece
	pieceCount [ColorLength][PkLength]int
	hash       uint64
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{pieces: make(map[Coordinate]Piece, 64)}
}

// At returns the piece at c and whether a piece is present.
func (b *Board) At(c Coordinate) (Piece, bool) {
	p, ok := b.pieces[c]
	return p, ok
}

// IsEmpty reports whether no piece occupies c.
func (b *Board) IsEmpty(c Coordinate) bool {
	_, ok := b.pieces[c]
	return !ok
}

// Set places p at c, removing whatever piece (if any) previously
// occupied c, and updates the incremental hash and piece counts.
func (b *Board) Set(c Coordinate, p Piece) {
	if old, ok := b.pieces[c]; ok {
		b.hash ^= pieceKey(old, c)
		b.pieceCount[old.Color][old.Kind]--
	}
	b.pieces[c] = p
	b.hash ^= pieceKey(p, c)
	b.pieceCount[p.Color][p.Kind]++
}

// Remove clears c and returns the piece that was there (PieceNone if
// c was already empty).
func (b *Board) Remove(c Coordinate) Piece {
	old, ok := b.pieces[c]
	if !ok {
		return PieceNone
	}
	b.hash ^= pieceKey(old, c)
	b.pieceCount[old.Color][old.Kind]--
	delete(b.pieces, c)
	return old
}

// ForEach calls fn for every occupied coordinate. fn must not mutate the
// board.
func (b *Board) ForEach(fn func(Coordinate, Piece)) {
	for c, p := range b.pieces {
		fn(c, p)
	}
}

// Count returns the number of pieces of the given kind and color.
func (b *Board) Count(c Color, k PieceKind) int {
	return b.pieceCount[c][k]
}

// TotalCount returns the number of pieces of the given color, all kinds.
func (b *Board) TotalCount(c Color) int {
	n := 0
	for k := PieceKind(0); k < PkLength; k++ {
		n += b.pieceCount[c][k]
	}
	return n
}

// Hash returns the incrementally maintained piece-placement hash.
func (b *Board) Hash() uint64 {
	return b.hash
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{pieces: make(map[Coordinate]Piece, len(b.pieces)), pieceCount: b.pieceCount, hash: b.hash}
	for c, p := range b.pieces {
		nb.pieces[c] = p
	}
	return nb
}
