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

func TestEvaluatePawns_isolatedPawnIsPenalized(t *testing.T) {
	config.Settings.Eval.UsePawnCache = false

	gs := board.NewGame()
	gs.SetPiece(Coordinate{X: 0, Y: 1}, MakePiece(White, Pawn))
	gs.SetPiece(Coordinate{X: 5, Y: 1}, MakePiece(White, Pawn))

	e := NewEvaluator()
	e.InitEval(gs)
	score := e.evaluatePawns()

	want := 2*int32(config.Settings.Eval.PawnIsolatedMidMalus) + 2*int32(config.Settings.Eval.PawnPassedMidBonus)
	assert.EqualValues(t, want, score.MidGameValue)
}

func TestEvaluatePawns_phalanxAndSupportedAreRewarded(t *testing.T) {
	config.Settings.Eval.UsePawnCache = false

	gs := board.NewGame()
	gs.SetPiece(Coordinate{X: 0, Y: 1}, MakePiece(White, Pawn))
	gs.SetPiece(Coordinate{X: 1, Y: 1}, MakePiece(White, Pawn))

	e := NewEvaluator()
	e.InitEval(gs)
	score := e.evaluatePawns()

	// both pawns form a phalanx with each other and are no longer isolated
	assert.EqualValues(t, 2*int32(config.Settings.Eval.PawnPhalanxMidBonus)+2*int32(config.Settings.Eval.PawnPassedMidBonus), score.MidGameValue)
}

func TestEvaluatePawns_cacheHitReturnsSameScore(t *testing.T) {
	config.Settings.Eval.UsePawnCache = true

	gs := board.NewGame()
	gs.SetPiece(Coordinate{X: 0, Y: 1}, MakePiece(White, Pawn))

	e := NewEvaluator()
	e.InitEval(gs)

	first := *e.evaluatePawns()
	assert.EqualValues(t, 0, e.pawnCache.hits)

	second := *e.evaluatePawns()
	assert.EqualValues(t, 1, e.pawnCache.hits)
	assert.Equal(t, first, second)

	config.Settings.Eval.UsePawnCache = false
}
