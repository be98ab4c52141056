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

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/fairyengine/internal/board"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

func TestSetupStandard_placesThirtyTwoPieces(t *testing.T) {
	gs := NewGame(board.NewGameRules())
	SetupStandard(gs)
	assert.Equal(t, 16, gs.Board().TotalCount(White))
	assert.Equal(t, 16, gs.Board().TotalCount(Black))
}

func TestLegalMoves_startingPositionHasTwentyMoves(t *testing.T) {
	gs := NewGame(board.NewGameRules())
	SetupStandard(gs)
	assert.Len(t, LegalMoves(gs), 20)
}

func TestMakeMoveCoords_pawnOpeningRoundTrips(t *testing.T) {
	gs := NewGame(board.NewGameRules())
	SetupStandard(gs)

	m, undo, ok := MakeMoveCoords(gs, 4, 1, 4, 3, PkNone)
	assert.True(t, ok)
	p, found := gs.Board().At(Coordinate{X: 4, Y: 3})
	assert.True(t, found)
	assert.Equal(t, Pawn, p.Kind)
	assert.Equal(t, Black, gs.NextPlayer())

	UndoMove(gs, m, undo)
	assert.Equal(t, White, gs.NextPlayer())
	assert.True(t, gs.Board().IsEmpty(Coordinate{X: 4, Y: 3}))
}

func TestMakeMoveCoords_rejectsUnmatchedMove(t *testing.T) {
	gs := NewGame(board.NewGameRules())
	SetupStandard(gs)

	_, _, ok := MakeMoveCoords(gs, 0, 0, 5, 5, PkNone)
	assert.False(t, ok)
}

func TestIsInCheck_falseAtGameStart(t *testing.T) {
	gs := NewGame(board.NewGameRules())
	SetupStandard(gs)
	assert.False(t, IsInCheck(gs, White))
	assert.False(t, IsInCheck(gs, Black))
}

func TestPerft_startingPositionDepthTwo(t *testing.T) {
	gs := NewGame(board.NewGameRules())
	SetupStandard(gs)
	assert.EqualValues(t, 400, Perft(gs, 2, 0))
}

func TestBestMove_findsALegalMove(t *testing.T) {
	gs := NewGame(board.NewGameRules())
	SetupStandard(gs)

	best := BestMove(gs, 2, nil)
	assert.False(t, best.IsNone())

	legal := LegalMoves(gs)
	found := false
	for _, m := range legal {
		if m.Equal(best) {
			found = true
			break
		}
	}
	assert.True(t, found)
}
