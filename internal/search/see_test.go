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

	. "github.com/frankkopp/fairyengine/internal/board"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

// TestSee_freeCapture: a white rook takes an undefended black knight.
func TestSee_freeCapture(t *testing.T) {
	gs := NewGame()
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, Rook))
	gs.SetPiece(Coordinate{X: 0, Y: 5}, MakePiece(Black, Knight))

	m := NewMove(Coordinate{X: 0, Y: 0}, Coordinate{X: 0, Y: 5}, MakePiece(White, Rook))
	assert.Equal(t, Knight.ValueOf(), see(gs, m))
}

// TestSee_defendedCaptureLoses: white rook takes a knight defended by a
// black rook of equal value standing behind it on the same file; the
// exchange nets the rook losing material (N - R).
func TestSee_defendedCaptureLoses(t *testing.T) {
	gs := NewGame()
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, Rook))
	gs.SetPiece(Coordinate{X: 0, Y: 5}, MakePiece(Black, Knight))
	gs.SetPiece(Coordinate{X: 0, Y: 7}, MakePiece(Black, Rook))

	m := NewMove(Coordinate{X: 0, Y: 0}, Coordinate{X: 0, Y: 5}, MakePiece(White, Rook))
	want := Knight.ValueOf() - Rook.ValueOf()
	assert.Equal(t, want, see(gs, m))
}

func TestSeeGE_thresholdGating(t *testing.T) {
	gs := NewGame()
	gs.SetPiece(Coordinate{X: 0, Y: 0}, MakePiece(White, Rook))
	gs.SetPiece(Coordinate{X: 0, Y: 5}, MakePiece(Black, Knight))

	m := NewMove(Coordinate{X: 0, Y: 0}, Coordinate{X: 0, Y: 5}, MakePiece(White, Rook))
	assert.True(t, SeeGE(gs, m, 0))
	assert.False(t, SeeGE(gs, m, Knight.ValueOf()+1))
}
