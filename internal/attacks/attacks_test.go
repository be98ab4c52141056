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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/fairyengine/internal/board"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

func TestIsSquareAttacked_rookSeesAlongOpenFile(t *testing.T) {
	gs := NewGame()
	gs.SetPiece(Coordinate{X: 3, Y: 0}, MakePiece(White, Rook))
	gs.SetPiece(Coordinate{X: 3, Y: 5}, MakePiece(Black, King))

	assert.True(t, IsSquareAttacked(gs, Coordinate{X: 3, Y: 5}, White))
	assert.False(t, IsSquareAttacked(gs, Coordinate{X: 4, Y: 5}, White))
}

func TestIsSquareAttacked_rookBlockedByIntervening(t *testing.T) {
	gs := NewGame()
	gs.SetPiece(Coordinate{X: 3, Y: 0}, MakePiece(White, Rook))
	gs.SetPiece(Coordinate{X: 3, Y: 2}, MakePiece(White, Pawn))
	gs.SetPiece(Coordinate{X: 3, Y: 5}, MakePiece(Black, King))

	assert.False(t, IsSquareAttacked(gs, Coordinate{X: 3, Y: 5}, White))
}

func TestIsSquareAttacked_pawnCapturesDiagonallyOnly(t *testing.T) {
	gs := NewGame()
	gs.SetPiece(Coordinate{X: 3, Y: 3}, MakePiece(White, Pawn))

	assert.True(t, IsSquareAttacked(gs, Coordinate{X: 4, Y: 4}, White))
	assert.True(t, IsSquareAttacked(gs, Coordinate{X: 2, Y: 4}, White))
	assert.False(t, IsSquareAttacked(gs, Coordinate{X: 3, Y: 4}, White))
}

func TestIsSquareAttacked_knightLeaper(t *testing.T) {
	gs := NewGame()
	gs.SetPiece(Coordinate{X: 3, Y: 3}, MakePiece(White, Knight))

	assert.True(t, IsSquareAttacked(gs, Coordinate{X: 5, Y: 4}, White))
	assert.True(t, IsSquareAttacked(gs, Coordinate{X: 1, Y: 2}, White))
	assert.False(t, IsSquareAttacked(gs, Coordinate{X: 4, Y: 4}, White))
}

func TestIsSquareAttacked_knightriderSeesAlongKnightRay(t *testing.T) {
	gs := NewGame()
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, Knightrider))

	// two knight-steps along the same vector: (0,0) -> (1,2) -> (2,4)
	assert.True(t, IsSquareAttacked(gs, Coordinate{X: 2, Y: 4}, White))
}

func TestAttackersTo_findsEveryAttackerAndRespectsExcluded(t *testing.T) {
	gs := NewGame()
	gs.SetPiece(Coordinate{X: 3, Y: 0}, MakePiece(White, Rook))
	gs.SetPiece(Coordinate{X: 0, Y: 3}, MakePiece(White, Rook))
	gs.SetPiece(Coordinate{X: 3, Y: 3}, MakePiece(Black, King))

	attackers := AttackersTo(gs, Coordinate{X: 3, Y: 3}, White, nil)
	assert.Len(t, attackers, 2)

	excluded := map[Coordinate]bool{{X: 3, Y: 0}: true}
	attackers = AttackersTo(gs, Coordinate{X: 3, Y: 3}, White, excluded)
	assert.Len(t, attackers, 1)
	assert.Equal(t, Coordinate{X: 0, Y: 3}, attackers[0])
}

func TestIsInCheck_trueWhenRoyalIsAttacked(t *testing.T) {
	gs := NewGame()
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, King))
	gs.SetPiece(Coordinate{X: 7, Y: 0}, MakePiece(Black, Rook))

	assert.True(t, IsInCheck(gs, White))
	assert.False(t, IsInCheck(gs, Black))
}

func TestIsInCheck_falseWhenNoRoyalOnBoard(t *testing.T) {
	gs := NewGame()
	assert.False(t, IsInCheck(gs, White))
}
