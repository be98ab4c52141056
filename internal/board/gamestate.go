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

package board

import (
	. "github.com/frankkopp/fairyengine/pkg/types"
)

// GameRules configures the parts of the game that a fixed 8x8 chess
// board takes for granted: how far the world extends and which piece
// kinds a pawn reaching the far edge may promote to. The zero value is
// not usable; NewGameRules supplies sane defaults.
type GameRules struct {
	WorldLeft, WorldRight   int64
	WorldBottom, WorldTop   int64
	PromotionKinds          []PieceKind
}

// NewGameRules returns the default rule set: a generous but bounded
// world and the classic four minor/major promotion targets.
func NewGameRules() GameRules {
	return GameRules{
		WorldLeft: -1_000_000, WorldRight: 1_000_000,
		WorldBottom: -1_000_000, WorldTop: 1_000_000,
		PromotionKinds: CanPromoteTo,
	}
}

// InBounds reports whether c falls within the configured world.
func (r GameRules) InBounds(c Coordinate) bool {
	return c.X >= r.WorldLeft && c.X <= r.WorldRight && c.Y >= r.WorldBottom && c.Y <= r.WorldTop
}

// undoRecord carries everything MakeMove changed that UndoMove must
// restore. It is pushed onto GameState's undo stack by MakeMove and
// popped by UndoMove; the two must stay in lockstep.
type undoRecord struct {
	move               Move
	capturedPiece      Piece
	capturedAt         Coordinate
	movedPieceBefore   Piece
	prevEnPassant      Coordinate
	prevHalfMoveClock  int
	prevZobrist        uint64
	fromHadRight       bool
	rookFromHadRight   bool
	toHadRightBefore   bool // destination may have carried a right the captured piece owned
}

// GameState wraps a Board with side-to-move, special (first-move)
// rights, en passant state, move-clock bookkeeping, repetition history
// and the rules governing world extent and promotion. It is the unit
// of state MakeMove/UndoMove operate on, and the unit search clones for
// its root-parallel perft fan-out.
type GameState struct {
	board        *Board
	spatial      *SpatialIndices
	rules        GameRules
	nextPlayer   Color
	specialRight map[Coordinate]bool
	enPassant    Coordinate
	halfMoveClock int
	moveNumber   int
	zobrist      uint64
	hashHistory  []uint64
	undoStack    []undoRecord
}

// NewGame returns an empty GameState with default rules, White to move.
func NewGame() *GameState {
	return &GameState{
		board:        NewBoard(),
		spatial:      NewSpatialIndices(),
		rules:        NewGameRules(),
		nextPlayer:   White,
		specialRight: make(map[Coordinate]bool),
		enPassant:    NoCoordinate,
		moveNumber:   1,
	}
}

// SetWorldBounds overrides the default world rectangle.
func (g *GameState) SetWorldBounds(left, right, bottom, top int64) {
	g.rules.WorldLeft, g.rules.WorldRight = left, right
	g.rules.WorldBottom, g.rules.WorldTop = bottom, top
}

// Rules returns the game's rule configuration.
func (g *GameState) Rules() GameRules {
	return g.rules
}

// Board exposes the underlying board for read-only queries by movegen
// and attack detection.
func (g *GameState) Board() *Board {
	return g.board
}

// Spatial returns the spatial index, rebuilding it first if it has gone
// stale since the last query.
func (g *GameState) Spatial() *SpatialIndices {
	g.spatial.EnsureFresh(g.board)
	return g.spatial
}

// NextPlayer returns the color to move.
func (g *GameState) NextPlayer() Color {
	return g.nextPlayer
}

// EnPassantSquare returns the currently capturable en passant square, or
// NoCoordinate if none.
func (g *GameState) EnPassantSquare() Coordinate {
	return g.enPassant
}

// HasSpecialRight reports whether the piece at c (a king, royal queen,
// royal centaur or rook used for castling, or a pawn that has not yet
// moved) still carries its first-move right.
func (g *GameState) HasSpecialRight(c Coordinate) bool {
	return g.specialRight[c]
}

// HalfMoveClock returns the number of half-moves since the last capture
// or pawn move, used for the fifty-move rule.
func (g *GameState) HalfMoveClock() int {
	return g.halfMoveClock
}

// MoveNumber returns the current full-move number.
func (g *GameState) MoveNumber() int {
	return g.moveNumber
}

// Hash returns the full position hash: piece placement, side to move,
// special rights and en passant square all mixed in.
func (g *GameState) Hash() uint64 {
	return g.zobrist
}

// SetPiece places p at c outside of move-making (board setup only) and
// grants it a special right if it is a king, rook, royal queen, royal
// centaur or pawn. It
// recomputes the full zobrist key's piece-placement component.
func (g *GameState) SetPiece(c Coordinate, p Piece) {
	g.board.Set(c, p)
	g.spatial.MarkDirty()
	if p.Kind == King || p.Kind == Rook || p.Kind == RoyalQueen || p.Kind == RoyalCentaur || p.Kind == Pawn {
		g.specialRight[c] = true
		g.zobrist ^= specialRightKey(c)
	}
	g.recomputeZobrist()
}

// RemovePiece clears c during board setup.
func (g *GameState) RemovePiece(c Coordinate) {
	g.board.Remove(c)
	g.spatial.MarkDirty()
	if g.specialRight[c] {
		delete(g.specialRight, c)
	}
	g.recomputeZobrist()
}

// recomputeZobrist rebuilds the full key from scratch (board hash plus
// side-to-move, outstanding special rights and en passant); used by the
// setup path where per-call incremental maintenance is not worth the
// bookkeeping. MakeMove/UndoMove instead adjust g.zobrist incrementally.
func (g *GameState) recomputeZobrist() {
	h := g.board.Hash()
	h ^= sideToMoveKey(g.nextPlayer)
	for c, has := range g.specialRight {
		if has {
			h ^= specialRightKey(c)
		}
	}
	if !g.enPassant.IsNone() {
		h ^= enPassantKey(g.enPassant)
	}
	g.zobrist = h
}

// PawnHash returns a hash over pawn placement only, independent of
// every other piece, for the evaluator's pawn-structure cache.
func (g *GameState) PawnHash() uint64 {
	var h uint64
	g.board.ForEach(func(c Coordinate, p Piece) {
		if p.Kind == Pawn {
			h ^= pawnStructureKey(p.Color, c)
		}
	})
	return h
}

// MaterialHash returns a hash over the material configuration (piece
// kind and color counts), independent of square, for a future
// correction-history table keyed on material imbalance alone.
func (g *GameState) MaterialHash() uint64 {
	var h uint64
	for c := Color(0); c < Color(ColorLength); c++ {
		for k := PieceKind(0); k < PkLength; k++ {
			if n := g.board.Count(c, k); n > 0 {
				h ^= materialKey(k, c) * uint64(n)
			}
		}
	}
	return h
}

// FindRoyal returns the coordinate of color's royal piece (the piece
// whose capture ends the game) and whether one exists. Multiple royals
// of the same color is not a supported configuration; the first found
// is returned.
func (g *GameState) FindRoyal(color Color) (Coordinate, bool) {
	var found Coordinate = NoCoordinate
	ok := false
	g.board.ForEach(func(c Coordinate, p Piece) {
		if !ok && p.Color == color && p.Kind.IsRoyal() {
			found, ok = c, true
		}
	})
	return found, ok
}

// MakeMove applies m to the position: moves (and for castling, the
// rook), performs captures (including en passant), resolves promotion,
// updates special rights, en passant availability, the half-move clock
// and the incremental zobrist key, then flips the side to move. The
// applied state is pushed so UndoMove can reverse it exactly.
func (g *GameState) MakeMove(m Move) {
	rec := undoRecord{
		move:              m,
		capturedAt:        NoCoordinate,
		prevEnPassant:     g.enPassant,
		prevHalfMoveClock: g.halfMoveClock,
		prevZobrist:       g.zobrist,
	}

	mover, _ := g.board.At(m.From)
	rec.movedPieceBefore = mover

	isCapture := false
	if m.IsEnPassant() {
		rec.capturedPiece = g.board.Remove(m.EnPassantCapture)
		rec.capturedAt = m.EnPassantCapture
		isCapture = true
	} else if cap, ok := g.board.At(m.To); ok {
		rec.toHadRightBefore = g.specialRight[m.To]
		if rec.toHadRightBefore {
			g.zobrist ^= specialRightKey(m.To)
			delete(g.specialRight, m.To)
		}
		rec.capturedPiece = g.board.Remove(m.To)
		rec.capturedAt = m.To
		isCapture = true
	}

	g.board.Remove(m.From)
	placed := mover
	if m.IsPromotion() {
		placed = MakePiece(mover.Color, m.Promotion)
	}
	g.board.Set(m.To, placed)

	if m.IsCastling() {
		rook := g.board.Remove(m.CastleRookFrom)
		g.board.Set(m.CastleRookTo, rook)
		rec.rookFromHadRight = g.specialRight[m.CastleRookFrom]
		if rec.rookFromHadRight {
			g.zobrist ^= specialRightKey(m.CastleRookFrom)
			delete(g.specialRight, m.CastleRookFrom)
		}
	}

	rec.fromHadRight = g.specialRight[m.From]
	if rec.fromHadRight {
		g.zobrist ^= specialRightKey(m.From)
		delete(g.specialRight, m.From)
	}

	if !g.enPassant.IsNone() {
		g.zobrist ^= enPassantKey(g.enPassant)
	}
	g.enPassant = NoCoordinate
	if mover.Kind == Pawn {
		dy := m.To.Y - m.From.Y
		if dy == 2*mover.Color.Direction() {
			ep := Coordinate{X: m.From.X, Y: m.From.Y + mover.Color.Direction()}
			g.enPassant = ep
			g.zobrist ^= enPassantKey(ep)
		}
	}

	if mover.Kind == Pawn || isCapture {
		g.halfMoveClock = 0
	} else {
		g.halfMoveClock++
	}

	g.zobrist ^= sideToMoveKey(g.nextPlayer)
	g.nextPlayer = g.nextPlayer.Flip()
	g.zobrist ^= sideToMoveKey(g.nextPlayer)
	if g.nextPlayer == White {
		g.moveNumber++
	}

	g.spatial.MarkDirty()
	g.hashHistory = append(g.hashHistory, g.zobrist)
	g.undoStack = append(g.undoStack, rec)
}

// UndoMove reverses the most recent MakeMove. Calling it with no prior
// MakeMove is a programming error and panics.
func (g *GameState) UndoMove() {
	n := len(g.undoStack)
	if n == 0 {
		panic("board: UndoMove called with empty undo stack")
	}
	rec := g.undoStack[n-1]
	g.undoStack = g.undoStack[:n-1]
	g.hashHistory = g.hashHistory[:len(g.hashHistory)-1]

	m := rec.move
	if g.nextPlayer == White {
		g.moveNumber--
	}
	g.nextPlayer = g.nextPlayer.Flip()

	if m.IsCastling() {
		rook := g.board.Remove(m.CastleRookTo)
		g.board.Set(m.CastleRookFrom, rook)
		if rec.rookFromHadRight {
			g.specialRight[m.CastleRookFrom] = true
		}
	}

	g.board.Remove(m.To)
	g.board.Set(m.From, rec.movedPieceBefore)
	if rec.fromHadRight {
		g.specialRight[m.From] = true
	}

	if !rec.capturedAt.IsNone() {
		g.board.Set(rec.capturedAt, rec.capturedPiece)
		if rec.toHadRightBefore {
			g.specialRight[rec.capturedAt] = true
		}
	}

	g.enPassant = rec.prevEnPassant
	g.halfMoveClock = rec.prevHalfMoveClock
	g.zobrist = rec.prevZobrist
	g.spatial.MarkDirty()
}

// MakeNullMove passes the turn to the opponent without moving a piece,
// for null-move pruning. The position is externally unchanged except
// for side to move and en passant; UndoNullMove restores both.
func (g *GameState) MakeNullMove() {
	rec := undoRecord{
		move:              MoveNone,
		capturedAt:        NoCoordinate,
		prevEnPassant:     g.enPassant,
		prevHalfMoveClock: g.halfMoveClock,
		prevZobrist:       g.zobrist,
	}
	if !g.enPassant.IsNone() {
		g.zobrist ^= enPassantKey(g.enPassant)
	}
	g.enPassant = NoCoordinate
	g.zobrist ^= sideToMoveKey(g.nextPlayer)
	g.nextPlayer = g.nextPlayer.Flip()
	g.zobrist ^= sideToMoveKey(g.nextPlayer)
	g.hashHistory = append(g.hashHistory, g.zobrist)
	g.undoStack = append(g.undoStack, rec)
}

// UndoNullMove reverses the most recent MakeNullMove.
func (g *GameState) UndoNullMove() {
	n := len(g.undoStack)
	rec := g.undoStack[n-1]
	g.undoStack = g.undoStack[:n-1]
	g.hashHistory = g.hashHistory[:len(g.hashHistory)-1]
	g.nextPlayer = g.nextPlayer.Flip()
	g.enPassant = rec.prevEnPassant
	g.halfMoveClock = rec.prevHalfMoveClock
	g.zobrist = rec.prevZobrist
}

// IsRepetition reports whether the current position's hash has occurred
// at least n times (including the current occurrence) in this game's
// history, the standard threefold-repetition test when n is 3.
func (g *GameState) IsRepetition(n int) bool {
	if len(g.hashHistory) == 0 {
		return false
	}
	target := g.zobrist
	count := 0
	// the position before the first recorded move is not in hashHistory
	if len(g.undoStack) > 0 && g.undoStack[0].prevZobrist == target {
		count++
	}
	for _, h := range g.hashHistory {
		if h == target {
			count++
		}
	}
	return count >= n
}

// IsFiftyMoveRule reports whether the half-move clock has reached the
// draw threshold (100 half-moves, i.e. fifty full moves, by each side).
func (g *GameState) IsFiftyMoveRule() bool {
	return g.halfMoveClock >= 100
}

// Clone returns a deep, independent copy of the game state, used by the
// sanctioned parallel-perft fan-out where each goroutine needs its own
// mutable position.
func (g *GameState) Clone() *GameState {
	ng := &GameState{
		board:         g.board.Clone(),
		spatial:       NewSpatialIndices(),
		rules:         g.rules,
		nextPlayer:    g.nextPlayer,
		specialRight:  make(map[Coordinate]bool, len(g.specialRight)),
		enPassant:     g.enPassant,
		halfMoveClock: g.halfMoveClock,
		moveNumber:    g.moveNumber,
		zobrist:       g.zobrist,
		hashHistory:   append([]uint64(nil), g.hashHistory...),
	}
	for c, v := range g.specialRight {
		ng.specialRight[c] = v
	}
	ng.spatial.MarkDirty()
	return ng
}
