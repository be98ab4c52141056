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

package board

import (
	"sort"

	. "github.com/frankkopp/fairyengine/pkg/types"
)

// rayWalkLimit bounds the step-by-step ray walk NearestAlongRay falls
// back to for directions outside the four indexed lines (e.g. knight
// vectors). Chosen generously beyond any plausible board extent seen in
// practice.
const rayWalkLimit = 50

// SpatialIndices maintains, per occupied coordinate, four sorted slices
// keyed by row (y), column (x), diagonal (x-y) and anti-diagonal (x+y).
// Slider and ray-attack queries binary-search these slices instead of
// walking square by square, which matters once pieces are scattered
// across a world that can span millions of coordinates.
type SpatialIndices struct {
	rows  map[int64][]int64 // y -> sorted x values occupied
	cols  map[int64][]int64 // x -> sorted y values occupied
	diags map[int64][]int64 // x-y -> sorted x values occupied
	adiag map[int64][]int64 // x+y -> sorted x values occupied
	dirty bool
}

// NewSpatialIndices returns an empty index set.
func NewSpatialIndices() *SpatialIndices {
	return &SpatialIndices{
		rows:  make(map[int64][]int64),
		cols:  make(map[int64][]int64),
		diags: make(map[int64][]int64),
		adiag: make(map[int64][]int64),
	}
}

// Rebuild discards the current index and repopulates it from every
// occupied coordinate on b. Cheap relative to search cost since it is
// only called when the index is marked dirty and actually queried.
func (s *SpatialIndices) Rebuild(b *Board) {
	for k := range s.rows {
		delete(s.rows, k)
	}
	for k := range s.cols {
		delete(s.cols, k)
	}
	for k := range s.diags {
		delete(s.diags, k)
	}
	for k := range s.adiag {
		delete(s.adiag, k)
	}
	b.ForEach(func(c Coordinate, _ Piece) {
		s.insert(c)
	})
	s.sortAll()
	s.dirty = false
}

// MarkDirty flags the index as stale after a board mutation; the next
// query rebuilds it lazily via EnsureFresh.
func (s *SpatialIndices) MarkDirty() {
	s.dirty = true
}

// EnsureFresh rebuilds the index from b if it has been marked dirty.
func (s *SpatialIndices) EnsureFresh(b *Board) {
	if s.dirty {
		s.Rebuild(b)
	}
}

func (s *SpatialIndices) insert(c Coordinate) {
	s.rows[c.Y] = append(s.rows[c.Y], c.X)
	s.cols[c.X] = append(s.cols[c.X], c.Y)
	d := c.Diagonal()
	s.diags[d] = append(s.diags[d], c.X)
	a := c.AntiDiagonal()
	s.adiag[a] = append(s.adiag[a], c.X)
}

func (s *SpatialIndices) sortAll() {
	for _, v := range s.rows {
		sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })
	}
	for _, v := range s.cols {
		sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })
	}
	for _, v := range s.diags {
		sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })
	}
	for _, v := range s.adiag {
		sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })
	}
}

// NearestAlongRay returns the coordinate of the closest occupied square
// strictly beyond from, walking in direction dir, and whether one was
// found. It answers "what would a slider hit first" in O(log n) for the
// four indexed lines (horizontal, vertical, diagonal, anti-diagonal);
// any other direction (used by Knightrider, whose rays are not
// axis-aligned) falls back to a bounded step walk against b directly.
func (s *SpatialIndices) NearestAlongRay(b *Board, from Coordinate, dir Offset) (Coordinate, bool) {
	switch {
	case dir.Dx == 0 && dir.Dy != 0:
		return s.nearestInSorted(s.cols[from.X], from.Y, dir.Dy, func(y int64) Coordinate { return Coordinate{X: from.X, Y: y} })
	case dir.Dy == 0 && dir.Dx != 0:
		return s.nearestInSorted(s.rows[from.Y], from.X, dir.Dx, func(x int64) Coordinate { return Coordinate{X: x, Y: from.Y} })
	case dir.Dx == dir.Dy && dir.Dx != 0:
		d := from.Diagonal()
		return s.nearestInSorted(s.diags[d], from.X, dir.Dx, func(x int64) Coordinate { return Coordinate{X: x, Y: x - d} })
	case dir.Dx == -dir.Dy && dir.Dx != 0:
		a := from.AntiDiagonal()
		return s.nearestInSorted(s.adiag[a], from.X, dir.Dx, func(x int64) Coordinate { return Coordinate{X: x, Y: a - x} })
	default:
		return s.walkRay(b, from, dir)
	}
}

// nearestInSorted binary-searches a sorted coordinate-component slice
// for the value closest to start in the direction of step (+1 or -1).
func (s *SpatialIndices) nearestInSorted(sorted []int64, start int64, step int64, build func(int64) Coordinate) (Coordinate, bool) {
	if len(sorted) == 0 {
		return NoCoordinate, false
	}
	if step > 0 {
		i := sort.Search(len(sorted), func(i int) bool { return sorted[i] > start })
		if i == len(sorted) {
			return NoCoordinate, false
		}
		return build(sorted[i]), true
	}
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= start })
	if i == 0 {
		return NoCoordinate, false
	}
	return build(sorted[i-1]), true
}

// walkRay is the bounded fallback for non-axis-aligned directions: it
// steps from..from+rayWalkLimit*dir and returns the first occupied
// coordinate encountered.
func (s *SpatialIndices) walkRay(b *Board, from Coordinate, dir Offset) (Coordinate, bool) {
	cur := from
	for i := 0; i < rayWalkLimit; i++ {
		cur = cur.Add(dir)
		if !b.IsEmpty(cur) {
			return cur, true
		}
	}
	return NoCoordinate, false
}
