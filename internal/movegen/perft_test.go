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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/fairyengine/internal/board"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

// newClassicGame sets up the standard 8x8 chess starting position, the
// one fairy configuration for which independently known perft counts
// exist to check the generator against (chessprogramming.org/Perft_Results).
func newClassicGame() *board.GameState {
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

// Results from https://www.chessprogramming.org/Perft_Results
func TestStandardPerft(t *testing.T) {
	assert := assert.New(t)

	var results = [6][5]uint64{
		// depth         Nodes         Captures         EP        Checks
		{0, 1, 0, 0, 0},
		{1, 20, 0, 0, 0},
		{2, 400, 0, 0, 0},
		{3, 8_902, 34, 0, 12},
		{4, 197_281, 1_576, 0, 469},
		{5, 4_865_609, 82_719, 258, 27_351},
	}

	for depth := 1; depth <= 4; depth++ {
		var perft Perft
		gs := newClassicGame()
		perft.StartPerft(gs, depth, 0)
		assert.Equal(results[depth][1], perft.Nodes)
		assert.Equal(results[depth][2], perft.CaptureCounter)
		assert.Equal(results[depth][3], perft.EnpassantCounter)
	}
}

func TestStandardPerftParallel(t *testing.T) {
	assert := assert.New(t)

	var perft Perft
	gs := newClassicGame()
	perft.StartPerft(gs, 4, 4)
	assert.EqualValues(197_281, perft.Nodes)
	assert.EqualValues(1_576, perft.CaptureCounter)
}

func TestPerftDepthZeroRunsAsDepthOne(t *testing.T) {
	assert := assert.New(t)

	var perft Perft
	gs := newClassicGame()
	perft.StartPerft(gs, 0, 0)
	assert.EqualValues(20, perft.Nodes)
}

func TestPerftStopSetsStopFlag(t *testing.T) {
	var perft Perft
	perft.Stop()
	assert.True(t, perft.stopped())
}
