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

package config

// boardConfiguration holds world-border rectangle and promotion
// defaults, which the config file may override. These were a mutable
// package-level global in the source ("lazily set at startup"). They
// are not applied when a GameState is created: board.NewGameRules uses
// its own fixed world bounds and types.CanPromoteTo.
type boardConfiguration struct {
	WorldLeft   int64
	WorldRight  int64
	WorldBottom int64
	WorldTop    int64

	// PromotionCodes lists the short PieceKind codes a pawn may promote
	// to by default (see pkg/types.CanPromoteTo).
	PromotionCodes []string
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Board.WorldLeft = -1_000_000
	Settings.Board.WorldRight = 1_000_000
	Settings.Board.WorldBottom = -1_000_000
	Settings.Board.WorldTop = 1_000_000
	Settings.Board.PromotionCodes = []string{"n", "b", "r", "q"}
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupBoard() {
}
