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

// Package attacks answers "is this square attacked" for the unbounded
// board. The source computed attacks forward, building a bitboard of
// every square a side could reach and testing membership; without
// bitboards that would mean scanning every piece on every query. Instead
// IsSquareAttacked works in reverse: from the target square it asks, for
// each attacking piece shape, "could a piece of this kind standing here
// reach me", and only then checks whether such a piece actually occupies
// the candidate square. This mirrors the reverse AttacksTo idiom the
// source itself uses for its slower, non-bitboard-cached path.
package attacks

import (
	myLogging "github.com/frankkopp/fairyengine/internal/logging"
	. "github.com/frankkopp/fairyengine/internal/board"
	"github.com/frankkopp/fairyengine/internal/primes"
	. "github.com/frankkopp/fairyengine/pkg/types"

	"github.com/op/go-logging"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog("attacks")
}

// IsSquareAttacked reports whether any piece belonging to by attacks
// target on gs's current board.
func IsSquareAttacked(gs *GameState, target Coordinate, by Color) bool {
	b := gs.Board()

	if pawnAttacksSquare(b, target, by) {
		return true
	}
	for k := Knight; k < PkLength; k++ {
		if !kindAttacksFrom(gs, target, k, by) {
			continue
		}
		return true
	}
	return false
}

// pawnAttacksSquare reports whether a pawn of color by could capture on
// target, i.e. whether one of the two diagonal-behind squares (from
// by's perspective) holds a by pawn.
func pawnAttacksSquare(b *Board, target Coordinate, by Color) bool {
	dir := by.Direction()
	for _, dx := range [2]int64{-1, 1} {
		from := Coordinate{X: target.X - dx, Y: target.Y - dir}
		if p, ok := b.At(from); ok && p.Color == by && p.Kind == Pawn {
			return true
		}
	}
	return false
}

// kindAttacksFrom reports whether a piece of kind k and color by
// occupies a square from which it could reach target, honoring the
// kind's movement shape (leaper, compass, slider, knightrider, prime
// slider, circular knight) and, for sliders, checking the path is clear.
func kindAttacksFrom(gs *GameState, target Coordinate, k PieceKind, by Color) bool {
	b := gs.Board()
	if k.IsLeaper() {
		for _, o := range LeaperOffsets(k.LeapOffset()) {
			from := target.Add(Offset{Dx: -o.Dx, Dy: -o.Dy})
			if hasPieceOfKind(b, from, k, by) {
				return true
			}
		}
	}
	if dists := k.CompassDistances(); len(dists) > 0 {
		for _, d := range dists {
			for _, o := range CompassOffsets(d) {
				from := target.Add(Offset{Dx: -o.Dx, Dy: -o.Dy})
				if hasPieceOfKind(b, from, k, by) {
					return true
				}
			}
		}
	}
	if k.SlidesOrthogonally() {
		for _, dir := range OrthogonalDirections {
			if sliderSeesFrom(gs, target, dir, k, by) {
				return true
			}
		}
	}
	if k.SlidesDiagonally() {
		for _, dir := range DiagonalDirections {
			if sliderSeesFrom(gs, target, dir, k, by) {
				return true
			}
		}
	}
	if k.IsKnightrider() {
		for _, dir := range KnightDirections {
			if knightriderSeesFrom(b, target, dir, k, by) {
				return true
			}
		}
	}
	if k.IsPrimeSlider() {
		if primeSliderSeesFrom(b, target, k, by) {
			return true
		}
	}
	if k.IsCircularKnight() {
		if roseSeesFrom(b, target, k, by) {
			return true
		}
	}
	return false
}

func hasPieceOfKind(b *Board, at Coordinate, k PieceKind, by Color) bool {
	p, ok := b.At(at)
	return ok && p.Color == by && p.Kind == k
}

// sliderSeesFrom walks from target outward along dir (the attacker's
// perspective is the reverse of the ray from the candidate square, so
// walking from target toward -dir finds the same squares a forward ray
// from an attacker would cross) and reports whether the first occupied
// square found is a by piece of kind k. The spatial index answers the
// axis-aligned cases in O(log n); Queen/RoyalQueen are checked via both
// orthogonal and diagonal calls from kindAttacksFrom.
func sliderSeesFrom(gs *GameState, target Coordinate, dir Offset, k PieceKind, by Color) bool {
	rev := Offset{Dx: -dir.Dx, Dy: -dir.Dy}
	at, found := gs.Spatial().NearestAlongRay(gs.Board(), target, rev)
	if !found {
		return false
	}
	return hasPieceOfKind(gs.Board(), at, k, by)
}

// knightriderSeesFrom walks repeated knight-vector steps from target in
// the reverse direction, stopping at the first occupied square.
func knightriderSeesFrom(b *Board, target Coordinate, dir Offset, k PieceKind, by Color) bool {
	rev := Offset{Dx: -dir.Dx, Dy: -dir.Dy}
	cur := target
	for i := 0; i < 50; i++ {
		cur = cur.Add(rev)
		if p, ok := b.At(cur); ok {
			return p.Color == by && p.Kind == k
		}
	}
	return false
}

// primeSliderSeesFrom checks the four orthogonal directions at every
// prime distance up to the first blocker, matching Huygen's move shape.
func primeSliderSeesFrom(b *Board, target Coordinate, k PieceKind, by Color) bool {
	for _, dir := range OrthogonalDirections {
		blocked := false
		for _, d := range primes.Primes(50) {
			if blocked {
				break
			}
			from := target.Add(Offset{Dx: -dir.Dx * d, Dy: -dir.Dy * d})
			if hasPieceOfKind(b, from, k, by) {
				return true
			}
			// stop once any piece (of any kind) sits between target and from
			for s := int64(1); s < d; s++ {
				mid := target.Add(Offset{Dx: -dir.Dx * s, Dy: -dir.Dy * s})
				if !b.IsEmpty(mid) {
					blocked = true
					break
				}
			}
		}
	}
	return false
}

// roseSeesFrom checks the squares a Rose could have arrived from: the
// eight squares one knight step from target, and every square two knight
// steps away along two different knight vectors. It looks no further
// than two steps, does not follow the turn order genRoseMoves uses, and
// does not check that the intermediate square is empty.
func roseSeesFrom(b *Board, target Coordinate, k PieceKind, by Color) bool {
	for _, first := range KnightDirections {
		mid := target.Add(Offset{Dx: -first.Dx, Dy: -first.Dy})
		if hasPieceOfKind(b, mid, k, by) {
			return true
		}
		for _, second := range KnightDirections {
			if second == first {
				continue
			}
			from := mid.Add(Offset{Dx: -second.Dx, Dy: -second.Dy})
			if hasPieceOfKind(b, from, k, by) {
				return true
			}
		}
	}
	return false
}

// AttackersTo enumerates every coordinate holding a color piece that
// attacks target, treating every coordinate in excluded as empty. SEE
// (internal/search/see.go) uses excluded to reveal x-ray attackers as it
// retires each attacker from the exchange in turn.
func AttackersTo(gs *GameState, target Coordinate, color Color, excluded map[Coordinate]bool) []Coordinate {
	var found []Coordinate
	gs.Board().ForEach(func(at Coordinate, p Piece) {
		if p.Color != color || excluded[at] {
			return
		}
		if pieceAttacksIgnoring(gs, at, p, target, excluded) {
			found = append(found, at)
		}
	})
	return found
}

// pieceAttacksIgnoring reports whether the piece p standing at attacker
// reaches target, with every coordinate in excluded treated as if
// vacant for path-clearance purposes; target itself counts as occupied.
func pieceAttacksIgnoring(gs *GameState, attacker Coordinate, p Piece, target Coordinate, excluded map[Coordinate]bool) bool {
	isEmpty := func(c Coordinate) bool {
		if c == target {
			return false
		}
		if excluded[c] {
			return true
		}
		return gs.Board().IsEmpty(c)
	}
	k := p.Kind
	if k == Pawn {
		dir := p.Color.Direction()
		return attacker.Y+dir == target.Y && abs64(attacker.X-target.X) == 1
	}
	if k.IsLeaper() {
		for _, o := range LeaperOffsets(k.LeapOffset()) {
			if attacker.Add(o) == target {
				return true
			}
		}
	}
	for _, d := range k.CompassDistances() {
		for _, o := range CompassOffsets(d) {
			if attacker.Add(o) == target {
				return true
			}
		}
	}
	dirs := []Offset(nil)
	if k.SlidesOrthogonally() {
		dirs = append(dirs, OrthogonalDirections...)
	}
	if k.SlidesDiagonally() {
		dirs = append(dirs, DiagonalDirections...)
	}
	for _, dir := range dirs {
		if rayClearToTarget(attacker, target, dir, isEmpty) {
			return true
		}
	}
	if k.IsKnightrider() {
		for _, dir := range KnightDirections {
			if rayClearToTarget(attacker, target, dir, isEmpty) {
				return true
			}
		}
	}
	if k.IsPrimeSlider() {
		for _, dir := range OrthogonalDirections {
			dx, dy := target.X-attacker.X, target.Y-attacker.Y
			if dx*dir.Dy != dy*dir.Dx {
				continue // not on this ray
			}
			var d int64
			if dir.Dx != 0 {
				d = dx / dir.Dx
			} else {
				d = dy / dir.Dy
			}
			if d <= 0 || !primes.IsPrime(d) {
				continue
			}
			clear := true
			for s := int64(1); s < d; s++ {
				if !isEmpty(attacker.Add(Offset{Dx: dir.Dx * s, Dy: dir.Dy * s})) {
					clear = false
					break
				}
			}
			if clear {
				return true
			}
		}
	}
	if k.IsCircularKnight() {
		for _, first := range KnightDirections {
			mid := attacker.Add(first)
			if mid == target {
				return true
			}
			if !isEmpty(mid) {
				continue
			}
			for _, second := range KnightDirections {
				if second == first {
					continue
				}
				if mid.Add(second) == target {
					return true
				}
			}
		}
	}
	return false
}

// rayClearToTarget reports whether target lies a whole number of dir
// steps from attacker with every intervening square empty per isEmpty.
func rayClearToTarget(attacker, target Coordinate, dir Offset, isEmpty func(Coordinate) bool) bool {
	if dir.Dx == 0 && dir.Dy == 0 {
		return false
	}
	cur := attacker
	for i := 0; i < 64; i++ {
		cur = cur.Add(dir)
		if cur == target {
			return true
		}
		if !isEmpty(cur) {
			return false
		}
	}
	return false
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// GivesCheck reports whether placing p on m.To would attack the
// opponent's royal piece, treating m.From as vacated and m.To's current
// occupant as captured. This is an approximation used for move-ordering
// only: like the fast check-detection pattern it mirrors, it catches
// direct checks from the moved piece but not discovered checks unmasked
// by the piece leaving From, so it must never gate search correctness,
// only bonus a quiet move's sort score.
func GivesCheck(gs *GameState, m Move, p Piece) bool {
	royal, ok := gs.FindRoyal(p.Color.Flip())
	if !ok {
		return false
	}
	excluded := map[Coordinate]bool{m.From: true}
	return pieceAttacksIgnoring(gs, m.To, p, royal, excluded)
}

// IsInCheck reports whether color's royal piece is currently attacked.
// A color with no royal piece on the board (already captured, or a
// variant without one) is never in check.
func IsInCheck(gs *GameState, color Color) bool {
	royal, ok := gs.FindRoyal(color)
	if !ok {
		return false
	}
	return IsSquareAttacked(gs, royal, color.Flip())
}
