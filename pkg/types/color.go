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

package types

import "fmt"

// Color represents the owner of a piece. Neutral pieces (Obstacle, Void)
// belong to neither side and never move.
type Color uint8

// Constants for each color.
const (
	White       Color = 0
	Black       Color = 1
	Neutral     Color = 2
	ColorLength int   = 3
)

// Flip returns the opposite color. Flipping Neutral is not meaningful and
// returns Neutral unchanged.
func (c Color) Flip() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return Neutral
	}
}

// IsValid checks if c represents a valid color.
func (c Color) IsValid() bool {
	return c < Color(ColorLength)
}

// String returns a string representation of the color.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	case Neutral:
		return "n"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

var moveDirectionFactor = [3]int64{1, -1, 0}

// Direction returns +1 for White, -1 for Black, 0 for Neutral — the sign
// applied to pawn advances along the y-axis.
func (c Color) Direction() int64 {
	return moveDirectionFactor[c]
}
