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
	. "github.com/frankkopp/fairyengine/pkg/types"
)

// TtEntry is one slot of a bucket. Unlike the source's 16-byte bit-packed
// entry, a Move here carries two unbounded Coordinates and does not fit
// a 16-bit field, so entries are a plain struct; size no longer matters
// once the table is organized as fixed-size buckets rather than a flat
// array sized to fit a whole-table memory budget exactly.
type TtEntry struct {
	key   uint64
	move  Move
	eval  Value
	value Value
	depth int8
	vtype ValueType
	age   int8
}

func (e *TtEntry) Key() uint64 {
	return e.key
}

func (e *TtEntry) MoveOf() Move {
	return e.move
}

func (e *TtEntry) Value() Value {
	return e.value
}

func (e *TtEntry) Eval() Value {
	return e.eval
}

func (e *TtEntry) Depth() int8 {
	return e.depth
}

func (e *TtEntry) Age() int8 {
	return e.age
}

func (e *TtEntry) Vtype() ValueType {
	return e.vtype
}

func (e *TtEntry) isEmpty() bool {
	return e.vtype == Vnone
}
