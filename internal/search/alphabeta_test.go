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

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/fairyengine/internal/board"
	"github.com/frankkopp/fairyengine/internal/config"
	"github.com/frankkopp/fairyengine/internal/movegen"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

func TestRootSearch_ordersTheWinningCaptureFirst(t *testing.T) {
	s := NewSearch()
	gs := board.NewGame()
	gs.SetWorldBounds(0, 7, 0, 7)
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, King))
	gs.SetPiece(Coordinate{X: 7, Y: 7}, MakePiece(Black, King))
	gs.SetPiece(Coordinate{X: 3, Y: 3}, MakePiece(White, Rook))
	gs.SetPiece(Coordinate{X: 3, Y: 6}, MakePiece(Black, Queen))

	moves := movegen.NewMoveGen().GenerateLegalMoves(gs, movegen.GenAll)
	value, best, completed := s.rootSearch(gs, moves, 3, ValueMin, ValueMax)

	assert.True(t, completed)
	assert.Equal(t, Coordinate{X: 3, Y: 3}, best.From)
	assert.Equal(t, Coordinate{X: 3, Y: 6}, best.To)
	assert.Greater(t, int(value), 0)
}

func TestNegamax_stalemateScoresAsDraw(t *testing.T) {
	s := NewSearch()
	gs := board.NewGame()
	gs.SetWorldBounds(0, 7, 0, 7)
	// the textbook Ka8/Kc7/Qb6 stalemate: Black king boxed into the
	// corner, not in check, with no legal move.
	gs.SetPiece(Coordinate{X: 0, Y: 7}, MakePiece(Black, King))
	gs.SetPiece(Coordinate{X: 2, Y: 6}, MakePiece(White, King))
	gs.SetPiece(Coordinate{X: 1, Y: 5}, MakePiece(White, Queen))
	gs.MakeNullMove() // hand the move to Black, the stalemated side

	value := s.negamax(gs, 0, 1, ValueMin, ValueMax, MoveNone, false)
	assert.EqualValues(t, ValueDraw, value)
}

func TestNegamax_checkmateScoresNearMateValue(t *testing.T) {
	s := NewSearch()
	gs := board.NewGame()
	gs.SetWorldBounds(0, 7, 0, 7)
	// back-rank mate: Black king trapped behind its own pawns, White rook
	// delivers mate along the back rank, Black to move.
	gs.SetPiece(Coordinate{X: 6, Y: 7}, MakePiece(Black, King))
	gs.SetPiece(Coordinate{X: 5, Y: 6}, MakePiece(Black, Pawn))
	gs.SetPiece(Coordinate{X: 6, Y: 6}, MakePiece(Black, Pawn))
	gs.SetPiece(Coordinate{X: 7, Y: 6}, MakePiece(Black, Pawn))
	gs.SetPiece(Coordinate{X: 4, Y: 7}, MakePiece(White, Rook))
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, King))
	gs.MakeNullMove() // hand the move to the mated side

	value := s.negamax(gs, 0, 1, ValueMin, ValueMax, MoveNone, true) // Black is in check
	assert.LessOrEqual(t, int(value), int(-MateThreshold))
}

func TestQuiescence_standPatBoundsAGainWithNoCaptures(t *testing.T) {
	s := NewSearch()
	gs := board.NewGame()
	gs.SetWorldBounds(0, 7, 0, 7)
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, King))
	gs.SetPiece(Coordinate{X: 7, Y: 7}, MakePiece(Black, King))
	gs.SetPiece(Coordinate{X: 3, Y: 3}, MakePiece(White, Rook))

	value := s.quiescence(gs, 0, ValueMin, ValueMax, false)
	assert.Greater(t, int(value), 0)
}

func TestSearchNullMove_passesTurnAndRestoresIt(t *testing.T) {
	s := NewSearch()
	gs := board.NewGame()
	gs.SetWorldBounds(0, 7, 0, 7)
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, King))
	gs.SetPiece(Coordinate{X: 7, Y: 7}, MakePiece(Black, King))

	before := gs.Hash()
	_ = s.searchNullMove(gs, 0, 2, 2, ValueMax)
	assert.Equal(t, before, gs.Hash())
	assert.Equal(t, White, gs.NextPlayer())
}

func TestHasNonPawnMaterial_falseForBareKingsAndPawns(t *testing.T) {
	gs := board.NewGame()
	gs.SetWorldBounds(0, 7, 0, 7)
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, King))
	gs.SetPiece(Coordinate{X: 1, Y: 1}, MakePiece(White, Pawn))
	gs.SetPiece(Coordinate{X: 7, Y: 7}, MakePiece(Black, King))

	assert.False(t, hasNonPawnMaterial(gs))

	gs.SetPiece(Coordinate{X: 2, Y: 2}, MakePiece(White, Knight))
	assert.True(t, hasNonPawnMaterial(gs))
}

func TestQuiescence_respectsSEEToggle(t *testing.T) {
	config.Settings.Search.UseSEE = false
	defer func() { config.Settings.Search.UseSEE = true }()

	s := NewSearch()
	gs := board.NewGame()
	gs.SetWorldBounds(0, 7, 0, 7)
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, King))
	gs.SetPiece(Coordinate{X: 7, Y: 7}, MakePiece(Black, King))
	gs.SetPiece(Coordinate{X: 3, Y: 3}, MakePiece(White, Pawn))
	gs.SetPiece(Coordinate{X: 4, Y: 4}, MakePiece(Black, Rook))

	value := s.quiescence(gs, 0, ValueMin, ValueMax, false)
	assert.GreaterOrEqual(t, int(value), 0)
}
