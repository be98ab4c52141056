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

// Package primes provides primality testing for the Huygen piece, which
// only slides to prime-valued distances.
package primes

import "math"

// smallTable answers primality for 0..127 in O(1); IsPrime falls back to
// 6k+-1 trial division beyond that range.
var smallTable [128]bool

func init() {
	for i := 2; i < 128; i++ {
		smallTable[i] = trialDivision(int64(i))
	}
}

// IsPrime reports whether n is prime. Negative inputs are folded to
// their absolute value since Huygen distances are always measured as
// unsigned magnitudes; math.MinInt64 has no representable absolute
// value and returns false.
func IsPrime(n int64) bool {
	if n == math.MinInt64 {
		return false
	}
	if n < 0 {
		n = -n
	}
	if n < 128 {
		return smallTable[n]
	}
	return trialDivision(n)
}

func trialDivision(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// Primes returns all primes <= max, ascending. Used by Huygen move
// generation to enumerate candidate slide distances up to the nearest
// blocker.
func Primes(max int64) []int64 {
	if max < 2 {
		return nil
	}
	var out []int64
	for i := int64(2); i <= max; i++ {
		if IsPrime(i) {
			out = append(out, i)
		}
	}
	return out
}
