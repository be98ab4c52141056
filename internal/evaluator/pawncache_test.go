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
)

func TestNewPawnCache_startsEmpty(t *testing.T) {
	pc := newPawnCache()
	assert.EqualValues(t, 0, pc.len())
	assert.EqualValues(t, 0, pc.hits)
	assert.EqualValues(t, 0, pc.misses)
	assert.EqualValues(t, 0, pc.replace)
}

func TestPawnCache_putThenGetHits(t *testing.T) {
	pc := newPawnCache()
	score := &Score{MidGameValue: 10, EndGameValue: 20}

	pc.put(12345, score)
	assert.EqualValues(t, 1, pc.len())

	got := pc.getEntry(12345)
	if assert.NotNil(t, got) {
		assert.EqualValues(t, 10, got.score.MidGameValue)
		assert.EqualValues(t, 20, got.score.EndGameValue)
	}
	assert.EqualValues(t, 1, pc.hits)
}

func TestPawnCache_missOnUnknownKey(t *testing.T) {
	pc := newPawnCache()
	pc.put(1, &Score{MidGameValue: 1})
	assert.Nil(t, pc.getEntry(2))
	assert.EqualValues(t, 1, pc.misses)
}

func TestPawnCache_clearResetsStatsAndEntries(t *testing.T) {
	pc := newPawnCache()
	pc.put(1, &Score{MidGameValue: 1})
	pc.getEntry(1)
	pc.getEntry(2)

	pc.clear()
	assert.EqualValues(t, 0, pc.len())
	assert.EqualValues(t, 0, pc.hits)
	assert.EqualValues(t, 0, pc.misses)
	assert.Nil(t, pc.getEntry(1))
}
