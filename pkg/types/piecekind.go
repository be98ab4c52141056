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

// PieceKind is a closed tagged enum of the piece kinds the engine knows
// about: the six orthodox pieces plus sixteen fairy pieces. Dispatch on
// PieceKind is done with plain switches rather than an interface so the
// hot per-kind code in move generation and attack detection stays
// inlinable.
type PieceKind int8

// Constants for each piece kind.
const (
	PkNone PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	Knightrider
	Huygen
	Rose
	Amazon
	Chancellor
	Archbishop
	Centaur
	Hawk
	Camel
	Giraffe
	Zebra
	Guard
	RoyalQueen
	RoyalCentaur
	Obstacle
	Void
	PkLength
)

// Offset is a relative (dx, dy) displacement.
type Offset struct {
	Dx, Dy int64
}

// kindInfo carries the static movement and material metadata for a
// PieceKind; movement category is expressed structurally (which fields
// are populated) rather than as a separate enum, matching the source's
// "tagged enum with match dispatch" design note.
type kindInfo struct {
	name        string
	char        string
	value       Value
	isRoyal     bool
	isNeutral   bool // cannot move, belongs to no side (Obstacle, Void)
	isCapturable bool // false only for Void
	// leaper: fundamental (m,n) pair, expanded to the 8 rotation/reflections
	leap Offset
	// compass: direction offsets at a fixed distance (King/Guard at 1, Hawk at 2,3)
	compassDistances []int64
	// slider along orthogonal (rook-like) directions
	sliderOrtho bool
	// slider along diagonal (bishop-like) directions
	sliderDiag bool
	// slides along the eight knight vectors (Knightrider)
	knightrider bool
	// prime-distance orthogonal slider (Huygen)
	primeSlider bool
	// circular knight chains (Rose)
	circularKnight bool
}

var kindTable = [PkLength]kindInfo{
	PkNone:       {name: "None", char: "-"},
	Pawn:         {name: "Pawn", char: "p", value: 100},
	Knight:       {name: "Knight", char: "n", value: 320, leap: Offset{1, 2}},
	Bishop:       {name: "Bishop", char: "b", value: 330, sliderDiag: true},
	Rook:         {name: "Rook", char: "r", value: 500, sliderOrtho: true},
	Queen:        {name: "Queen", char: "q", value: 900, sliderOrtho: true, sliderDiag: true},
	King:         {name: "King", char: "k", value: 20000, isRoyal: true, compassDistances: []int64{1}},
	Knightrider:  {name: "Knightrider", char: "nr", value: 700, knightrider: true},
	Huygen:       {name: "Huygen", char: "hu", value: 450, primeSlider: true},
	Rose:         {name: "Rose", char: "ro", value: 600, circularKnight: true},
	Amazon:       {name: "Amazon", char: "am", value: 1400, leap: Offset{1, 2}, sliderOrtho: true, sliderDiag: true},
	Chancellor:   {name: "Chancellor", char: "ch", value: 850, leap: Offset{1, 2}, sliderOrtho: true},
	Archbishop:   {name: "Archbishop", char: "ar", value: 800, leap: Offset{1, 2}, sliderDiag: true},
	Centaur:      {name: "Centaur", char: "ce", value: 650, leap: Offset{1, 2}, compassDistances: []int64{1}},
	Hawk:         {name: "Hawk", char: "ha", value: 500, compassDistances: []int64{2, 3}},
	Camel:        {name: "Camel", char: "ca", value: 280, leap: Offset{1, 3}},
	Giraffe:      {name: "Giraffe", char: "gi", value: 300, leap: Offset{1, 4}},
	Zebra:        {name: "Zebra", char: "ze", value: 300, leap: Offset{2, 3}},
	Guard:        {name: "Guard", char: "gu", value: 350, compassDistances: []int64{1}},
	RoyalQueen:   {name: "RoyalQueen", char: "rq", value: 20900, isRoyal: true, sliderOrtho: true, sliderDiag: true},
	RoyalCentaur: {name: "RoyalCentaur", char: "rc", value: 20650, isRoyal: true, leap: Offset{1, 2}, compassDistances: []int64{1}},
	Obstacle:     {name: "Obstacle", char: "ob", isNeutral: true, isCapturable: true},
	Void:         {name: "Void", char: "vo", isNeutral: true, isCapturable: false},
}

// IsValid reports whether pk is a known piece kind.
func (pk PieceKind) IsValid() bool {
	return pk > PkNone && pk < PkLength
}

// String returns the full name of the piece kind.
func (pk PieceKind) String() string {
	return kindTable[pk].name
}

// Char returns the short code used for promotion lists and move notation.
func (pk PieceKind) Char() string {
	return kindTable[pk].char
}

// ValueOf returns the static centipawn value of the piece kind.
func (pk PieceKind) ValueOf() Value {
	return kindTable[pk].value
}

// IsRoyal returns true if capturing this piece kind ends the game.
func (pk PieceKind) IsRoyal() bool {
	return kindTable[pk].isRoyal
}

// IsNeutral returns true for piece kinds that belong to neither side and
// never move (Obstacle, Void).
func (pk PieceKind) IsNeutral() bool {
	return kindTable[pk].isNeutral
}

// IsCapturable returns false only for Void.
func (pk PieceKind) IsCapturable() bool {
	return !kindTable[pk].isNeutral || kindTable[pk].isCapturable
}

// LeapOffset returns the fundamental (m,n) leaper pair, or (0,0) if pk is
// not a leaper.
func (pk PieceKind) LeapOffset() Offset {
	return kindTable[pk].leap
}

// IsLeaper reports whether pk moves by a fixed (m,n) leap.
func (pk PieceKind) IsLeaper() bool {
	o := kindTable[pk].leap
	return o.Dx != 0 || o.Dy != 0
}

// CompassDistances returns the fixed distances pk may step in the eight
// compass directions (King/Guard/Centaur/RoyalCentaur at 1, Hawk at 2,3).
func (pk PieceKind) CompassDistances() []int64 {
	return kindTable[pk].compassDistances
}

// SlidesOrthogonally reports whether pk slides along rook-like rays.
func (pk PieceKind) SlidesOrthogonally() bool {
	return kindTable[pk].sliderOrtho
}

// SlidesDiagonally reports whether pk slides along bishop-like rays.
func (pk PieceKind) SlidesDiagonally() bool {
	return kindTable[pk].sliderDiag
}

// IsKnightrider reports whether pk slides along knight vectors.
func (pk PieceKind) IsKnightrider() bool {
	return kindTable[pk].knightrider
}

// IsPrimeSlider reports whether pk is a prime-distance orthogonal slider
// (Huygen).
func (pk PieceKind) IsPrimeSlider() bool {
	return kindTable[pk].primeSlider
}

// IsCircularKnight reports whether pk moves via chained knight steps
// (Rose).
func (pk PieceKind) IsCircularKnight() bool {
	return kindTable[pk].circularKnight
}

// CanPromoteTo is the default set of promotion targets offered when a
// GameRules value does not specify an explicit allow-list.
var CanPromoteTo = []PieceKind{Knight, Bishop, Rook, Queen}

// ParsePieceKind looks up a PieceKind by its short code (as used in
// promotion lists and rule configuration). It returns PkNone if no kind
// matches.
func ParsePieceKind(code string) PieceKind {
	for k := Pawn; k < PkLength; k++ {
		if kindTable[k].char == code {
			return k
		}
	}
	return PkNone
}
