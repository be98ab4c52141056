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
	"fmt"
)

// Move describes a single chess move on the unbounded board. The
// source's Move was a bit-packed uint32 built on 6-bit square indices;
// that encoding has no room for unbounded int64 coordinates, so Move is
// a struct here. It keeps the source's accessor-method and
// String()/StringUci() idiom, and still carries an attached sort value
// used by move ordering, just via a field instead of packed bits.
type Move struct {
	From      Coordinate
	To        Coordinate
	Piece     Piece
	Promotion PieceKind // PkNone unless this is a promotion
	// CastleRookFrom/CastleRookTo are set only for castling moves; the
	// rook jumps from CastleRookFrom to CastleRookTo in the same move.
	CastleRookFrom Coordinate
	CastleRookTo   Coordinate
	// EnPassantCapture is the coordinate of the captured pawn when this
	// move is an en passant capture (distinct from To, which is the
	// empty destination square).
	EnPassantCapture Coordinate

	value Value
}

// MoveNone is the zero-value sentinel for "no move".
var MoveNone = Move{}

// NewMove builds a plain (non-promotion, non-castling, non-en-passant)
// move.
func NewMove(from, to Coordinate, piece Piece) Move {
	return Move{From: from, To: to, Piece: piece, value: ValueNA}
}

// NewPromotionMove builds a promotion move.
func NewPromotionMove(from, to Coordinate, piece Piece, promo PieceKind) Move {
	return Move{From: from, To: to, Piece: piece, Promotion: promo, value: ValueNA}
}

// NewEnPassantMove builds an en passant capture move.
func NewEnPassantMove(from, to Coordinate, piece Piece, captured Coordinate) Move {
	return Move{From: from, To: to, Piece: piece, EnPassantCapture: captured, value: ValueNA}
}

// NewCastlingMove builds a castling move; the rook travels from
// rookFrom to rookTo in the same move as the king travels from-to.
func NewCastlingMove(from, to Coordinate, king Piece, rookFrom, rookTo Coordinate) Move {
	return Move{From: from, To: to, Piece: king, CastleRookFrom: rookFrom, CastleRookTo: rookTo, value: ValueNA}
}

// IsNone reports whether m is the zero-value sentinel.
func (m Move) IsNone() bool {
	return m.Piece.IsNone() && m.From.IsNone() && m.To.IsNone()
}

// IsPromotion reports whether m promotes the moving pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != PkNone
}

// IsCastling reports whether m is a castling move.
func (m Move) IsCastling() bool {
	return !m.CastleRookFrom.IsNone()
}

// IsEnPassant reports whether m is an en passant capture.
func (m Move) IsEnPassant() bool {
	return !m.EnPassantCapture.IsNone()
}

// ValueOf returns the sort value attached to this move by the move
// picker, or ValueNA if none was set.
func (m Move) ValueOf() Value {
	return m.value
}

// SetValue attaches a sort value to the move and returns it, mirroring
// the source's in-place SetValue idiom.
func (m *Move) SetValue(v Value) Move {
	m.value = v
	return *m
}

// Equal compares the move-defining fields, ignoring the attached sort
// value.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion &&
		m.Piece.Kind == o.Piece.Kind && m.Piece.Color == o.Piece.Color
}

// StringUci renders the move the way an external replay stream would
// supply it: from-square, to-square, optional promotion code.
func (m Move) StringUci() string {
	if m.IsNone() {
		return "NoMove"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += m.Promotion.Char()
	}
	return s
}

// String is a verbose, debug-oriented representation.
func (m Move) String() string {
	if m.IsNone() {
		return "Move{ none }"
	}
	return fmt.Sprintf("Move{ %-8s piece:%s prom:%s value:%s }",
		m.StringUci(), m.Piece.String(), m.Promotion.Char(), m.value.String())
}
