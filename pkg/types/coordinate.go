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

// Coordinate is a point on the unbounded board. Unlike the source's
// Square (a packed 6-bit index into a fixed 8x8 grid) a Coordinate has
// no inherent upper bound; bounds are enforced externally by a
// configured world-border rectangle.
type Coordinate struct {
	X, Y int64
}

// NoCoordinate is the sentinel for "no coordinate" (e.g. no en passant
// square, no castling rook).
var NoCoordinate = Coordinate{X: minInt64, Y: minInt64}

const minInt64 = -1 << 63

// IsNone reports whether c is the sentinel NoCoordinate.
func (c Coordinate) IsNone() bool {
	return c == NoCoordinate
}

// Add returns c shifted by the given offset.
func (c Coordinate) Add(o Offset) Coordinate {
	return Coordinate{X: c.X + o.Dx, Y: c.Y + o.Dy}
}

// AddXY returns c shifted by (dx, dy).
func (c Coordinate) AddXY(dx, dy int64) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// Diagonal returns the index of the "/"-diagonal c lies on (constant
// along x-y).
func (c Coordinate) Diagonal() int64 {
	return c.X - c.Y
}

// AntiDiagonal returns the index of the "\"-diagonal c lies on (constant
// along x+y).
func (c Coordinate) AntiDiagonal() int64 {
	return c.X + c.Y
}

// String renders the coordinate as algebraic-style notation when it
// falls within the classic 8x8 footprint (a1..h8, with 'a' at x=0..7,
// rank 1 at y=0..7), falling back to "(x,y)" outside that range so
// far-flung infinite-board coordinates stay readable.
func (c Coordinate) String() string {
	if c.IsNone() {
		return "-"
	}
	if c.X >= 0 && c.X < 8 && c.Y >= 0 && c.Y < 8 {
		return fmt.Sprintf("%c%d", 'a'+byte(c.X), c.Y+1)
	}
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// eight rotation/reflections of a fundamental leaper (m,n) offset, m != n,
// both non-negative; used by move generation and attack detection for
// Knight, Camel, Giraffe, Zebra and the leaper component of compound
// pieces (Amazon, Chancellor, Archbishop, Centaur, RoyalCentaur).
func LeaperOffsets(o Offset) []Offset {
	m, n := o.Dx, o.Dy
	if m == n {
		return []Offset{{m, n}, {m, -n}, {-m, n}, {-m, -n}}
	}
	return []Offset{
		{m, n}, {m, -n}, {-m, n}, {-m, -n},
		{n, m}, {n, -m}, {-n, m}, {-n, -m},
	}
}

// CompassOffsets returns the eight offsets at the given fixed distance
// along the compass directions (N, S, E, W and the four diagonals).
func CompassOffsets(distance int64) []Offset {
	d := distance
	return []Offset{
		{0, d}, {0, -d}, {d, 0}, {-d, 0},
		{d, d}, {d, -d}, {-d, d}, {-d, -d},
	}
}

// OrthogonalDirections are the four rook-like unit directions.
var OrthogonalDirections = []Offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// DiagonalDirections are the four bishop-like unit directions.
var DiagonalDirections = []Offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// KnightDirections are the eight unit vectors a Knightrider slides along
// and a Rose's chained steps are built from.
var KnightDirections = LeaperOffsets(Offset{1, 2})
