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
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/fairyengine/internal/board"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

func newStartGame() *board.GameState {
	gs := board.NewGame()
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
	return gs
}

func TestNewSearch_buildsUsableInstance(t *testing.T) {
	s := NewSearch()
	assert.NotNil(t, s.tt)
	assert.NotNil(t, s.eval)
	assert.NotNil(t, s.hist)
	assert.False(t, s.IsSearching())
}

func TestBestMove_returnsALegalMoveFromStartPosition(t *testing.T) {
	s := NewSearch()
	gs := newStartGame()

	best := s.BestMove(gs, 3, func() bool { return false })
	assert.False(t, best.IsNone())
	assert.Greater(t, s.NodesVisited(), uint64(0))
}

func TestStopSearch_haltsABackgroundSearch(t *testing.T) {
	s := NewSearch()
	gs := newStartGame()

	sl := Limits{Depth: 64}
	s.StartSearch(gs, sl, func() bool { return false })
	time.Sleep(5 * time.Millisecond)
	s.StopSearch()
	s.WaitWhileSearching()

	assert.False(t, s.lastSearchResult.BestMove.IsNone())
}

func TestIterativeDeepening_detectsImmediateCheckmate(t *testing.T) {
	s := NewSearch()
	gs := board.NewGame()
	gs.SetWorldBounds(0, 7, 0, 7)

	// fool's mate position, black to move and deliver mate in one is not
	// what this checks; instead set up a position where White has no
	// legal move and is in check, a direct checkmate for Black.
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, King))
	gs.SetPiece(Coordinate{X: 1, Y: 1}, MakePiece(Black, Queen))
	gs.SetPiece(Coordinate{X: 2, Y: 2}, MakePiece(Black, King))

	result := s.iterativeDeepening(gs, Limits{Depth: 1})
	assert.Equal(t, -MateValue, result.BestValue)
	assert.True(t, result.BestMove.IsNone())
}

func TestClearHash_emptiesTheTranspositionTable(t *testing.T) {
	s := NewSearch()
	gs := newStartGame()

	s.BestMove(gs, 2, func() bool { return false })
	assert.Greater(t, s.NodesVisited(), uint64(0))

	s.ClearHash()
	assert.EqualValues(t, 0, s.tt.GetStats().Puts)
}
