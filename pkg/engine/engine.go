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

// Package engine is the embedding API: the one package an outside
// program imports to set up a position, ask it for legal moves, make
// and undo them, and ask the search for a move. It does not expose a
// UCI loop or an opening book; internal/search and internal/movegen
// carry the actual algorithms, engine just wires them together behind
// a stable surface.
package engine

import (
	"github.com/frankkopp/fairyengine/internal/attacks"
	"github.com/frankkopp/fairyengine/internal/board"
	"github.com/frankkopp/fairyengine/internal/movegen"
	"github.com/frankkopp/fairyengine/internal/search"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

// NewGame returns an empty GameState with the world bounds of rules,
// White to move. Only the bounds are applied; rules.PromotionKinds is
// not used, and the GameState keeps the promotion kinds of
// board.NewGameRules. Pass board.NewGameRules() for the default
// generous-but-bounded world.
func NewGame(rules board.GameRules) *board.GameState {
	gs := board.NewGame()
	gs.SetWorldBounds(rules.WorldLeft, rules.WorldRight, rules.WorldBottom, rules.WorldTop)
	return gs
}

// SetupStandard places the classic 8x8 chess army on gs and narrows its
// world to the 8x8 board. Fairy setups skip this and call SetPiece
// directly.
func SetupStandard(gs *board.GameState) {
	gs.SetWorldBounds(0, 7, 0, 7)

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, kind := range backRank {
		gs.SetPiece(Coordinate{X: int64(x), Y: 0}, MakePiece(White, kind))
		gs.SetPiece(Coordinate{X: int64(x), Y: 7}, MakePiece(Black, kind))
	}
	for x := int64(0); x < 8; x++ {
		gs.SetPiece(Coordinate{X: x, Y: 1}, MakePiece(White, Pawn))
		gs.SetPiece(Coordinate{X: x, Y: 6}, MakePiece(Black, Pawn))
	}
}

// SetPiece places p at c during setup (see board.GameState.SetPiece).
func SetPiece(gs *board.GameState, c Coordinate, p Piece) {
	gs.SetPiece(c, p)
}

// RemovePiece clears c during setup.
func RemovePiece(gs *board.GameState, c Coordinate) {
	gs.RemovePiece(c)
}

// LegalMoves returns every legal move for the side to move in gs.
func LegalMoves(gs *board.GameState) []Move {
	moves := movegen.NewMoveGen().GenerateLegalMoves(gs, movegen.GenAll)
	out := make([]Move, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		out[i] = moves.At(i)
	}
	return out
}

// UndoRecord is an opaque handle returned by MakeMove. GameState keeps
// its own undo stack internally (MakeMove/UndoMove must nest like
// parentheses), so the record carries no state of its own; it exists so
// callers thread an explicit token through their own call stack instead
// of relying on implicit stack discipline against a shared GameState.
type UndoRecord struct{}

// MakeMove applies m to gs and returns the token UndoMove expects back.
func MakeMove(gs *board.GameState, m Move) UndoRecord {
	gs.MakeMove(m)
	return UndoRecord{}
}

// UndoMove reverses the most recent MakeMove on gs. The move and record
// are accepted for symmetry with MakeMove and to document intent at the
// call site; GameState's own stack determines what actually unwinds.
func UndoMove(gs *board.GameState, _ Move, _ UndoRecord) {
	gs.UndoMove()
}

// MakeMoveCoords builds and applies the legal move from (fromX,fromY) to
// (toX,toY), promoting to promo (PkNone for a non-promotion), and
// returns it together with its undo token. ok is false if no legal move
// matches.
func MakeMoveCoords(gs *board.GameState, fromX, fromY, toX, toY int64, promo PieceKind) (Move, UndoRecord, bool) {
	from := Coordinate{X: fromX, Y: fromY}
	to := Coordinate{X: toX, Y: toY}
	for _, m := range LegalMoves(gs) {
		if m.From == from && m.To == to && m.Promotion == promo {
			return m, MakeMove(gs, m), true
		}
	}
	return MoveNone, UndoRecord{}, false
}

// IsInCheck reports whether color's royal piece is currently attacked.
func IsInCheck(gs *board.GameState, color Color) bool {
	return attacks.IsInCheck(gs, color)
}

// IsMoveIllegal reports whether making m would leave the mover's own
// royal piece in check.
func IsMoveIllegal(gs *board.GameState, m Move) bool {
	color := m.Piece.Color
	gs.MakeMove(m)
	illegal := attacks.IsInCheck(gs, color)
	gs.UndoMove()
	return illegal
}

// Perft returns the leaf node count of the legal move tree below gs at
// the given depth, fanning the root out across parallel goroutines when
// parallel > 1.
func Perft(gs *board.GameState, depth, parallel int) uint64 {
	var p movegen.Perft
	p.StartPerft(gs, depth, parallel)
	return p.Nodes
}

// BestMove runs iterative deepening up to maxDepth (or until stop
// reports true) and returns the best move found from gs's position.
// stop may be nil.
func BestMove(gs *board.GameState, maxDepth int, stop func() bool) Move {
	if stop == nil {
		stop = func() bool { return false }
	}
	return search.NewSearch().BestMove(gs, maxDepth, stop)
}
