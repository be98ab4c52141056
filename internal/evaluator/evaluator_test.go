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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/fairyengine/internal/board"
	"github.com/frankkopp/fairyengine/internal/config"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

func newTestGame() *board.GameState {
	gs := board.NewGame()
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, King))
	gs.SetPiece(Coordinate{X: 7, Y: 7}, MakePiece(Black, King))
	return gs
}

func TestEvaluate_materialAdvantageFavorsSideWithMorePieces(t *testing.T) {
	config.Settings.Eval.UseMaterialEval = true
	config.Settings.Eval.UsePositionalEval = false
	config.Settings.Eval.UsePawnEval = false
	config.Settings.Eval.UseMobility = false
	config.Settings.Eval.UseAdvancedPieceEval = false
	config.Settings.Eval.UseKingEval = false
	config.Settings.Eval.Tempo = 0

	gs := newTestGame()
	gs.SetPiece(Coordinate{X: 3, Y: 3}, MakePiece(White, Rook))

	e := NewEvaluator()
	value := e.Evaluate(gs)
	assert.Greater(t, int(value), 0)
}

func TestEvaluate_symmetricPositionIsRoughlyZero(t *testing.T) {
	config.Settings.Eval.UseMaterialEval = true
	config.Settings.Eval.UsePositionalEval = false
	config.Settings.Eval.UsePawnEval = false
	config.Settings.Eval.UseMobility = false
	config.Settings.Eval.UseAdvancedPieceEval = false
	config.Settings.Eval.UseKingEval = false
	config.Settings.Eval.Tempo = 0

	gs := newTestGame()
	gs.SetPiece(Coordinate{X: 3, Y: 3}, MakePiece(White, Rook))
	gs.SetPiece(Coordinate{X: 4, Y: 4}, MakePiece(Black, Rook))

	e := NewEvaluator()
	assert.EqualValues(t, ValueZero, e.Evaluate(gs))
}

func TestEvaluate_bareKingsIsInsufficientMaterialDraw(t *testing.T) {
	gs := newTestGame()
	e := NewEvaluator()
	assert.EqualValues(t, ValueDraw, e.Evaluate(gs))
}

func TestGamePhaseFactor_fullArmyIsOne(t *testing.T) {
	gs := newTestGame()
	gs.SetPiece(Coordinate{X: 1, Y: 1}, MakePiece(White, Queen))
	gs.SetPiece(Coordinate{X: 2, Y: 2}, MakePiece(White, Rook))
	gs.SetPiece(Coordinate{X: 3, Y: 3}, MakePiece(White, Rook))
	gs.SetPiece(Coordinate{X: 4, Y: 4}, MakePiece(White, Bishop))
	gs.SetPiece(Coordinate{X: 5, Y: 5}, MakePiece(White, Bishop))
	gs.SetPiece(Coordinate{X: 6, Y: 6}, MakePiece(White, Knight))
	gs.SetPiece(Coordinate{X: 7, Y: 6}, MakePiece(White, Knight))
	gs.SetPiece(Coordinate{X: 1, Y: 6}, MakePiece(Black, Queen))
	gs.SetPiece(Coordinate{X: 2, Y: 6}, MakePiece(Black, Rook))
	gs.SetPiece(Coordinate{X: 3, Y: 6}, MakePiece(Black, Rook))
	gs.SetPiece(Coordinate{X: 4, Y: 6}, MakePiece(Black, Bishop))
	gs.SetPiece(Coordinate{X: 5, Y: 6}, MakePiece(Black, Bishop))
	gs.SetPiece(Coordinate{X: 0, Y: 6}, MakePiece(Black, Knight))
	gs.SetPiece(Coordinate{X: -1, Y: 6}, MakePiece(Black, Knight))

	assert.InDelta(t, 1.0, gamePhaseFactor(gs), 0.0001)
}
