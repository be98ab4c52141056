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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/fairyengine/pkg/types"
)

func TestUpdateMain_rewardsCutoffAndPenalizesFailed(t *testing.T) {
	h := NewHistory()
	knight := MakePiece(White, Knight)
	bishop := MakePiece(White, Bishop)
	cutoffTo := Coordinate{X: 3, Y: 3}
	failedMove := NewMove(Coordinate{X: 0, Y: 0}, Coordinate{X: 1, Y: 1}, bishop)

	h.UpdateMain(knight, cutoffTo, 4, []Move{failedMove})

	assert.Greater(t, h.MainScore(knight, cutoffTo), int64(0))
	assert.Less(t, h.MainScore(bishop, failedMove.To), int64(0))
}

func TestCaptureScore_accumulatesAcrossUpdates(t *testing.T) {
	h := NewHistory()
	h.UpdateCapture(Rook, Queen, 3)
	h.UpdateCapture(Rook, Queen, 5)
	assert.Equal(t, int64(9+25), h.CaptureScore(Rook, Queen))
}

func TestCounterMove_roundTrip(t *testing.T) {
	h := NewHistory()
	prev := NewMove(Coordinate{X: 1, Y: 1}, Coordinate{X: 2, Y: 2}, MakePiece(Black, Knight))
	reply := NewMove(Coordinate{X: 5, Y: 5}, Coordinate{X: 6, Y: 6}, MakePiece(White, Rook))

	assert.True(t, h.CounterMove(prev).IsNone())
	h.SetCounterMove(prev, reply)
	assert.True(t, h.CounterMove(prev).Equal(reply))
}

func TestCounterMove_noneForNoMove(t *testing.T) {
	h := NewHistory()
	assert.True(t, h.CounterMove(MoveNone).IsNone())
}

func TestContinuationScore_accumulates(t *testing.T) {
	h := NewHistory()
	prevPiece := MakePiece(White, Pawn)
	prevTo := Coordinate{X: 4, Y: 4}
	from := Coordinate{X: 1, Y: 0}
	to := Coordinate{X: 2, Y: 0}

	h.UpdateContinuation(prevPiece, prevTo, from, to, 2)
	assert.Equal(t, int64(4), h.ContinuationScore(prevPiece, prevTo, from, to))
}

func TestClear_resetsAllTables(t *testing.T) {
	h := NewHistory()
	h.UpdateCapture(Rook, Queen, 3)
	h.Clear()
	assert.Equal(t, int64(0), h.CaptureScore(Rook, Queen))
}
