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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/frankkopp/fairyengine/pkg/types"
)

func testMove(x int64) Move {
	return NewMove(Coordinate{X: x, Y: 0}, Coordinate{X: x, Y: 1}, MakePiece(White, Pawn))
}

func TestNewTtTable_sizesToPowerOfTwoBuckets(t *testing.T) {
	tt := NewTtTable(1)
	require.NotNil(t, tt)
	assert.Greater(t, tt.Len(), 0)
	// Len must be a power of two so index() can mask instead of modulo.
	assert.Equal(t, tt.Len(), int(nextPowerOfTwoFloor(uint64(tt.Len()))))
}

func TestPutAndProbe_roundTrip(t *testing.T) {
	tt := NewTtTable(1)
	key := uint64(0xDEADBEEF)
	m := testMove(3)
	tt.Put(key, m, 5, 120, 100, EXACT)

	entry, found := tt.Probe(key)
	require.True(t, found)
	assert.True(t, entry.MoveOf().Equal(m))
	assert.EqualValues(t, 5, entry.Depth())
	assert.Equal(t, Value(120), entry.Value())
	assert.Equal(t, EXACT, entry.Vtype())
}

func TestProbe_missReturnsFalse(t *testing.T) {
	tt := NewTtTable(1)
	_, found := tt.Probe(0x1234)
	assert.False(t, found)
}

func TestPut_sameKeyDeeperReplacesShallower(t *testing.T) {
	tt := NewTtTable(1)
	key := uint64(42)
	tt.Put(key, testMove(1), 3, 10, 10, ALPHA)
	tt.Put(key, testMove(2), 7, 20, 20, EXACT)

	entry, found := tt.Probe(key)
	require.True(t, found)
	assert.EqualValues(t, 7, entry.Depth())
	assert.Equal(t, EXACT, entry.Vtype())
}

func TestPut_sameKeyShallowerDoesNotReplace(t *testing.T) {
	tt := NewTtTable(1)
	key := uint64(42)
	tt.Put(key, testMove(1), 7, 20, 20, EXACT)
	tt.Put(key, testMove(2), 3, 10, 10, ALPHA)

	entry, found := tt.Probe(key)
	require.True(t, found)
	assert.EqualValues(t, 7, entry.Depth())
}

func TestPut_fillsAllWaysBeforeEvicting(t *testing.T) {
	tt := NewTtTable(1)
	// Three distinct positions that collide on bucket index 0 under the
	// mask: tt.mask+1 is a power of two, so any multiple of it collides.
	base := tt.mask + 1
	k0, k1, k2 := uint64(0), base, 2*base
	tt.Put(k0, testMove(1), 2, 1, 1, EXACT)
	tt.Put(k1, testMove(2), 2, 2, 2, EXACT)
	tt.Put(k2, testMove(3), 2, 3, 3, EXACT)

	_, f0 := tt.Probe(k0)
	_, f1 := tt.Probe(k1)
	_, f2 := tt.Probe(k2)
	assert.True(t, f0)
	assert.True(t, f1)
	assert.True(t, f2)
	assert.EqualValues(t, 3, tt.GetStats().Puts)
	assert.EqualValues(t, 2, tt.GetStats().Collisions)
}

func TestPut_evictsShallowestOnFourthCollision(t *testing.T) {
	tt := NewTtTable(1)
	base := tt.mask + 1
	tt.Put(0, testMove(1), 1, 1, 1, EXACT)
	tt.Put(base, testMove(2), 9, 2, 2, EXACT)
	tt.Put(2*base, testMove(3), 9, 3, 3, EXACT)
	// fourth key forces an eviction; the depth-1 entry should go first.
	tt.Put(3*base, testMove(4), 9, 4, 4, EXACT)

	_, found := tt.Probe(0)
	assert.False(t, found)
	_, found = tt.Probe(base)
	assert.True(t, found)
	_, found = tt.Probe(2 * base)
	assert.True(t, found)
	_, found = tt.Probe(3 * base)
	assert.True(t, found)
}

func TestClear_removesAllEntriesAndResetsStats(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(7, testMove(1), 4, 1, 1, EXACT)
	tt.Clear()
	_, found := tt.Probe(7)
	assert.False(t, found)
	assert.EqualValues(t, 0, tt.GetStats().Puts)
}

func TestNewSearch_incrementsGeneration(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(1, testMove(1), 4, 1, 1, EXACT)
	e, _ := tt.Probe(1)
	assert.EqualValues(t, 0, e.Age())
	tt.NewSearch()
	tt.Put(2, testMove(2), 4, 1, 1, EXACT)
	e2, _ := tt.Probe(2)
	assert.EqualValues(t, 1, e2.Age())
}
