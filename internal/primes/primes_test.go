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

package primes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime_smallTable(t *testing.T) {
	assert.False(t, IsPrime(0))
	assert.False(t, IsPrime(1))
	assert.True(t, IsPrime(2))
	assert.True(t, IsPrime(3))
	assert.False(t, IsPrime(4))
	assert.True(t, IsPrime(127))
	assert.False(t, IsPrime(121)) // 11*11
}

func TestIsPrime_beyondTable(t *testing.T) {
	assert.True(t, IsPrime(131))
	assert.False(t, IsPrime(132))
	assert.True(t, IsPrime(997))
}

func TestIsPrime_negativeTakesAbs(t *testing.T) {
	assert.True(t, IsPrime(-7))
	assert.False(t, IsPrime(-8))
}

func TestIsPrime_minInt64(t *testing.T) {
	assert.False(t, IsPrime(math.MinInt64))
}

func TestPrimes(t *testing.T) {
	assert.Equal(t, []int64{2, 3, 5, 7}, Primes(8))
	assert.Nil(t, Primes(1))
}
