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

import (
	"strconv"
	"strings"
)

// Value represents the centipawn value of a chess position or a piece.
type Value int32

// Constants for values. MateValue and MateThreshold follow the engine's
// convention of representing mate scores as distance-to-mate folded into
// the score range rather than a separate sentinel.
const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueInf       Value = 100_000
	ValueNA        Value = -ValueInf - 1
	ValueMax       Value = 32_000
	ValueMin       Value = -ValueMax
	MateValue      Value = ValueMax
	MaxSearchDepth int   = 128
	MateThreshold  Value = MateValue - Value(MaxSearchDepth) - 1
)

// IsValid checks if value is within the valid range (between Min and Max).
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsMateValue returns true if value is beyond the mate threshold, i.e. it
// encodes a forced mate in some number of plies rather than a material
// evaluation.
func (v Value) IsMateValue() bool {
	a := v
	if a < 0 {
		a = -a
	}
	return a > MateThreshold && a <= MateValue
}

// String returns a human readable representation, either "cp <n>",
// "mate <n>" or "N/A".
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v.IsMateValue():
		b.WriteString("mate ")
		if v < ValueZero {
			b.WriteString("-")
		}
		a := v
		if a < 0 {
			a = -a
		}
		plies := int(MateValue - a)
		b.WriteString(strconv.Itoa((plies + 1) / 2))
	case v == ValueNA:
		b.WriteString("N/A")
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
