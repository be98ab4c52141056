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

// Piece pairs a PieceKind with an owning Color. With ~22 kinds and 3
// colors a bit-packed encoding buys little, so unlike the bounded-board
// source Piece is a plain struct.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// PieceNone is the zero-value sentinel for "no piece here".
var PieceNone = Piece{Kind: PkNone, Color: White}

// MakePiece creates a piece of the given kind and color.
func MakePiece(c Color, k PieceKind) Piece {
	return Piece{Kind: k, Color: c}
}

// IsNone reports whether p represents an empty square.
func (p Piece) IsNone() bool {
	return p.Kind == PkNone
}

// ValueOf returns the static centipawn value of the piece.
func (p Piece) ValueOf() Value {
	return p.Kind.ValueOf()
}

// String returns the kind's code, upper-cased for a White piece whose
// code is a single letter, matching the source's FEN-style letter
// convention. Black pieces and every multi-letter code (fairy and
// neutral kinds alike) keep the code unchanged.
func (p Piece) String() string {
	if p.IsNone() {
		return "-"
	}
	c := p.Kind.Char()
	if p.Color == Black {
		return c
	}
	if len(c) == 1 {
		return fmt.Sprintf("%c", c[0]-32)
	}
	return c
}

// Char is an alias for String kept for parity with the source's Piece
// API; pieces here have no separate "pawn as O/*" rendering since the
// fairy roster already uses multi-letter codes.
func (p Piece) Char() string {
	return p.String()
}
