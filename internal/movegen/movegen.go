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

// Package movegen generates pseudo-legal and legal moves for the
// unbounded board. There is no precomputed attack table to intersect
// against the way a bitboard engine would: each piece kind's shape
// (leaper, compass step, slider, knightrider, prime slider, circular
// knight) is walked directly from its occupied square using the board's
// spatial index for the axis-aligned slider cases.
package movegen

import (
	"github.com/op/go-logging"

	. "github.com/frankkopp/fairyengine/internal/attacks"
	. "github.com/frankkopp/fairyengine/internal/board"
	myLogging "github.com/frankkopp/fairyengine/internal/logging"
	"github.com/frankkopp/fairyengine/internal/moveslice"
	"github.com/frankkopp/fairyengine/internal/primes"
	"github.com/frankkopp/fairyengine/internal/util"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

var log *logging.Logger

// MaxMoves bounds the initial capacity of move buffers; actual move
// counts on an infinite board with only a handful of pieces stay far
// below this in practice.
const MaxMoves = 256

// GenMode selects which classes of pseudo-legal moves to generate.
type GenMode int

const (
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = 0b11
)

// Movegen holds reusable move buffers so repeated generation during
// search does not churn the allocator.
type Movegen struct {
	pseudoLegalMoves *moveslice.MoveSlice
	legalMoves       *moveslice.MoveSlice
}

// NewMoveGen creates a move generator with fresh buffers.
func NewMoveGen() *Movegen {
	if log == nil {
		log = myLogging.GetLog("movegen")
	}
	return &Movegen{
		pseudoLegalMoves: moveslice.NewMoveSlice(MaxMoves),
		legalMoves:       moveslice.NewMoveSlice(MaxMoves),
	}
}

// GeneratePseudoLegalMoves returns every move the side to move could
// make, ignoring whether it leaves its own royal piece in check.
func (mg *Movegen) GeneratePseudoLegalMoves(gs *GameState, mode GenMode) *moveslice.MoveSlice {
	return mg.GeneratePseudoLegalMovesFor(gs, gs.NextPlayer(), mode)
}

// GeneratePseudoLegalMovesFor is GeneratePseudoLegalMoves for an
// explicit color rather than the position's side to move; used by the
// evaluator to measure mobility for both colors from a single position
// without playing a null move.
func (mg *Movegen) GeneratePseudoLegalMovesFor(gs *GameState, color Color, mode GenMode) *moveslice.MoveSlice {
	mg.pseudoLegalMoves.Clear()
	gs.Board().ForEach(func(from Coordinate, p Piece) {
		if p.Color != color {
			return
		}
		switch p.Kind {
		case Pawn:
			mg.genPawnMoves(gs, from, p, mode)
		case PkNone, Obstacle, Void:
			// not movable
		default:
			mg.genPieceMoves(gs, from, p, mode)
		}
	})
	mg.genCastling(gs, color, mode)
	return mg.pseudoLegalMoves
}

// GenerateLegalMoves filters the pseudo-legal set down to moves that do
// not leave the mover's own royal piece in check.
func (mg *Movegen) GenerateLegalMoves(gs *GameState, mode GenMode) *moveslice.MoveSlice {
	pseudo := mg.GeneratePseudoLegalMoves(gs, mode)
	color := gs.NextPlayer()
	mg.legalMoves.Clear()
	pseudo.ForEach(func(i int) {
		m := pseudo.At(i)
		gs.MakeMove(m)
		if !IsInCheck(gs, color) {
			mg.legalMoves.PushBack(m)
		}
		gs.UndoMove()
	})
	return mg.legalMoves
}

// HasLegalMove reports whether the side to move has at least one legal
// move. It runs full legal generation and checks the count; used for
// stalemate/checkmate tests where the exact move list is not needed.
func (mg *Movegen) HasLegalMove(gs *GameState) bool {
	return mg.GenerateLegalMoves(gs, GenAll).Len() > 0
}

func (mg *Movegen) addMove(gs *GameState, from, to Coordinate, p Piece, mode GenMode) bool {
	target, occupied := gs.Board().At(to)
	isCapture := occupied && target.Kind != PkNone
	if isCapture && (target.Color == p.Color || !target.Kind.IsCapturable()) {
		return false // own piece or uncapturable Void blocks further travel in this direction
	}
	if isCapture && mode&GenCap == 0 {
		return true // legal continuation point for sliders, but not emitted
	}
	if !isCapture && mode&GenNonCap == 0 {
		return true
	}
	mg.pseudoLegalMoves.PushBack(NewMove(from, to, p))
	return true
}

// genPawnMoves emits single/double advances, diagonal captures,
// promotion and en passant for the pawn at from.
func (mg *Movegen) genPawnMoves(gs *GameState, from Coordinate, p Piece, mode GenMode) {
	dir := p.Color.Direction()
	oneStep := Coordinate{X: from.X, Y: from.Y + dir}
	promotions := gs.Rules().PromotionKinds
	if mode&GenNonCap != 0 && gs.Board().IsEmpty(oneStep) {
		mg.emitPawnAdvance(gs, from, oneStep, p, promotions)
		twoStep := Coordinate{X: from.X, Y: from.Y + 2*dir}
		if gs.HasSpecialRight(from) && gs.Board().IsEmpty(twoStep) {
			mg.pseudoLegalMoves.PushBack(NewMove(from, twoStep, p))
		}
	}
	if mode&GenCap != 0 {
		for _, dx := range [2]int64{-1, 1} {
			to := Coordinate{X: from.X + dx, Y: from.Y + dir}
			if target, ok := gs.Board().At(to); ok && target.Color != p.Color && target.Kind.IsCapturable() {
				mg.emitPawnAdvance(gs, from, to, p, promotions)
			}
			if to == gs.EnPassantSquare() {
				captured := Coordinate{X: to.X, Y: from.Y}
				mg.pseudoLegalMoves.PushBack(NewEnPassantMove(from, to, p, captured))
			}
		}
	}
}

func (mg *Movegen) emitPawnAdvance(gs *GameState, from, to Coordinate, p Piece, promotions []PieceKind) {
	if isPromotionRank(gs, p.Color, to) {
		for _, pk := range promotions {
			mg.pseudoLegalMoves.PushBack(NewPromotionMove(from, to, p, pk))
		}
		return
	}
	mg.pseudoLegalMoves.PushBack(NewMove(from, to, p))
}

// isPromotionRank reports whether to sits at the far world edge for
// color, the unbounded-board analogue of reaching rank 8/1.
func isPromotionRank(gs *GameState, color Color, to Coordinate) bool {
	if color == White {
		return to.Y >= gs.Rules().WorldTop
	}
	return to.Y <= gs.Rules().WorldBottom
}

// genPieceMoves dispatches to the movement-category walkers that apply
// to p.Kind; a compound piece (Amazon, Chancellor, ...) has more than
// one category set and so contributes moves from each.
func (mg *Movegen) genPieceMoves(gs *GameState, from Coordinate, p Piece, mode GenMode) {
	k := p.Kind
	if k.IsLeaper() {
		for _, o := range LeaperOffsets(k.LeapOffset()) {
			mg.addMove(gs, from, from.Add(o), p, mode)
		}
	}
	for _, d := range k.CompassDistances() {
		for _, o := range CompassOffsets(d) {
			mg.addMove(gs, from, from.Add(o), p, mode)
		}
	}

	var ctx *slideContext
	if k.SlidesOrthogonally() || k.SlidesDiagonally() || k.IsKnightrider() {
		ctx = newSlideContext(gs, from, p.Color)
	}
	if k.SlidesOrthogonally() {
		for _, dir := range OrthogonalDirections {
			mg.walkSlider(gs, ctx, from, dir, p, mode, true, true, false)
		}
	}
	if k.SlidesDiagonally() {
		for _, dir := range DiagonalDirections {
			mg.walkSlider(gs, ctx, from, dir, p, mode, false, false, true)
		}
	}
	if k.IsKnightrider() {
		for _, dir := range KnightDirections {
			mg.walkSlider(gs, ctx, from, dir, p, mode, false, false, true)
		}
	}
	if k.IsPrimeSlider() {
		mg.genHuygenMoves(gs, from, p, mode)
	}
	if k.IsCircularKnight() {
		mg.genRoseMoves(gs, from, p, mode)
	}
}

// wiggleRoom and friendWiggleRoom bound the "interestingness" filter
// walkSlider applies on an infinite ray: a landing square close enough
// to the start, a friendly piece, or the blocker is worth emitting even
// when it does not newly attack anything, since a slider regrouping
// near its own pieces is common and tactically relevant. Values and the
// whole filter are ported from original_source's generate_sliding_moves.
const (
	wiggleRoom       = 2
	friendWiggleRoom = 1
)

// maxSliderSteps bounds a slider walk when no blocker was found within
// the indexed lines (e.g. a Knightrider direction, which the spatial
// index does not cover) so an empty, far-flung world cannot loop forever.
const maxSliderSteps = 64

// slideContext precomputes the per-piece alignment data walkSlider's
// interestingness filter needs: which rows, columns and diagonals carry
// an enemy piece, and where this piece's own friendly pieces sit. Built
// once per sliding piece and shared across every direction group it
// slides in (a Queen's orthogonal and diagonal groups both reuse it).
type slideContext struct {
	color         Color
	friendly      []Coordinate
	enemyRows     map[int64]bool
	enemyCols     map[int64]bool
	enemyDiag     map[int64]bool // x - y
	enemyAntiDiag map[int64]bool // x + y
}

func newSlideContext(gs *GameState, from Coordinate, color Color) *slideContext {
	ctx := &slideContext{
		color:         color,
		enemyRows:     make(map[int64]bool),
		enemyCols:     make(map[int64]bool),
		enemyDiag:     make(map[int64]bool),
		enemyAntiDiag: make(map[int64]bool),
	}
	gs.Board().ForEach(func(c Coordinate, pc Piece) {
		if pc.Color == color {
			if c != from {
				ctx.friendly = append(ctx.friendly, c)
			}
			return
		}
		ctx.enemyRows[c.Y] = true
		ctx.enemyCols[c.X] = true
		ctx.enemyDiag[c.X-c.Y] = true
		ctx.enemyAntiDiag[c.X+c.Y] = true
	})
	return ctx
}

// hasClearEnemyAlong reports whether the nearest occupied square from sq
// along dir is an enemy piece, i.e. sq could actually reach that enemy
// rather than being blocked by one of its own pieces first.
func (ctx *slideContext) hasClearEnemyAlong(gs *GameState, sq Coordinate, dir Offset) bool {
	blocker, found := gs.Spatial().NearestAlongRay(gs.Board(), sq, dir)
	if !found {
		return false
	}
	target, ok := gs.Board().At(blocker)
	return ok && target.Color != ctx.color
}

func (ctx *slideContext) hasClearEnemyRow(gs *GameState, sq Coordinate) bool {
	return ctx.hasClearEnemyAlong(gs, sq, Offset{Dx: 1, Dy: 0}) || ctx.hasClearEnemyAlong(gs, sq, Offset{Dx: -1, Dy: 0})
}

func (ctx *slideContext) hasClearEnemyCol(gs *GameState, sq Coordinate) bool {
	return ctx.hasClearEnemyAlong(gs, sq, Offset{Dx: 0, Dy: 1}) || ctx.hasClearEnemyAlong(gs, sq, Offset{Dx: 0, Dy: -1})
}

func (ctx *slideContext) hasClearEnemyDiag(gs *GameState, sq Coordinate) bool {
	for _, dir := range DiagonalDirections {
		if ctx.hasClearEnemyAlong(gs, sq, dir) {
			return true
		}
	}
	return false
}

// aligned reports whether sq is a square from which this piece would
// newly threaten an enemy along a perpendicular or diagonal line it can
// also slide on; canHoriz/canVert/canDiag describe what the current
// direction group (not just dir) can attack along.
func aligned(gs *GameState, ctx *slideContext, from, sq Coordinate, isVertical, isHorizontal, canHoriz, canVert, canDiag bool) bool {
	onEnemyDiagonal := ctx.enemyDiag[sq.X-sq.Y] || ctx.enemyAntiDiag[sq.X+sq.Y]
	switch {
	case isVertical:
		if canHoriz && ctx.enemyRows[sq.Y] && ctx.hasClearEnemyRow(gs, sq) {
			return true
		}
		return canDiag && onEnemyDiagonal && ctx.hasClearEnemyDiag(gs, sq)
	case isHorizontal:
		if canVert && ctx.enemyCols[sq.X] && ctx.hasClearEnemyCol(gs, sq) {
			return true
		}
		return canDiag && onEnemyDiagonal && ctx.hasClearEnemyDiag(gs, sq)
	default: // a diagonal slider or a Knightrider ray
		if canHoriz && ctx.enemyRows[sq.Y] && ctx.hasClearEnemyRow(gs, sq) {
			return true
		}
		if canVert && ctx.enemyCols[sq.X] && ctx.hasClearEnemyCol(gs, sq) {
			return true
		}
		if !canDiag {
			return false
		}
		sqDiag, sqAnti := sq.X-sq.Y, sq.X+sq.Y
		fromDiag, fromAnti := from.X-from.Y, from.X+from.Y
		newDiagonal := (ctx.enemyDiag[sqDiag] && sqDiag != fromDiag) || (ctx.enemyAntiDiag[sqAnti] && sqAnti != fromAnti)
		return newDiagonal && ctx.hasClearEnemyDiag(gs, sq)
	}
}

// wiggledByFriendly reports whether sq sits close enough to one of the
// piece's own pieces, projected onto this ray, to count as regrouping
// room. Matches the source, which only applies this to vertical and
// horizontal rays ("skip for diagonal for simplicity").
func wiggledByFriendly(ctx *slideContext, from, sq Coordinate, d int64, isVertical, isHorizontal bool) bool {
	if !isVertical && !isHorizontal {
		return false
	}
	for _, f := range ctx.friendly {
		var distToFriendly int64
		if isVertical {
			if util.Abs64(f.X-sq.X) > friendWiggleRoom {
				continue
			}
			distToFriendly = util.Abs64(f.Y - from.Y)
		} else {
			if util.Abs64(f.Y-sq.Y) > friendWiggleRoom {
				continue
			}
			distToFriendly = util.Abs64(f.X - from.X)
		}
		if util.Abs64(d-distToFriendly) <= friendWiggleRoom {
			return true
		}
	}
	return false
}

// interesting reports whether sq, d dir-steps from from, is worth
// emitting as a move on an infinite ray: the piece's first blocker
// always is; otherwise only squares that newly attack an enemy
// (aligned) or sit within wiggle room of the start, a friendly piece, or
// an about-to-be-reached blocker do.
func interesting(gs *GameState, ctx *slideContext, from, sq Coordinate, d, limit int64, found, blockerIsEnemy, isVertical, isHorizontal, canHoriz, canVert, canDiag bool) bool {
	if aligned(gs, ctx, from, sq, isVertical, isHorizontal, canHoriz, canVert, canDiag) {
		return true
	}
	if d <= wiggleRoom {
		return true
	}
	if wiggledByFriendly(ctx, from, sq, d, isVertical, isHorizontal) {
		return true
	}
	if found {
		wr := int64(friendWiggleRoom)
		if blockerIsEnemy {
			wr = wiggleRoom
		}
		if d >= limit-wr {
			return true
		}
	}
	return false
}

// walkSlider steps along dir from from, emitting only the "interesting"
// squares an infinite board calls for (see interesting) instead of the
// full ray to the blocker; this bounds the branching factor on an open
// board without discarding tactically relevant squares. canHoriz/
// canVert/canDiag describe what this direction group can attack along,
// the same way the source computes them once per group rather than per
// individual direction (a Queen evaluates its orthogonal and diagonal
// groups separately).
func (mg *Movegen) walkSlider(gs *GameState, ctx *slideContext, from Coordinate, dir Offset, p Piece, mode GenMode, canHoriz, canVert, canDiag bool) {
	blocker, found := gs.Spatial().NearestAlongRay(gs.Board(), from, dir)
	rules := gs.Rules()

	limit := int64(maxSliderSteps)
	blockerIsEnemy := false
	if found {
		limit = rayStep(from, blocker, dir)
		if target, ok := gs.Board().At(blocker); ok {
			blockerIsEnemy = target.Color != p.Color
		}
	}

	isVertical := dir.Dx == 0
	isHorizontal := dir.Dy == 0

	cur := from
	for d := int64(1); d <= limit; d++ {
		cur = cur.Add(dir)
		if !rules.InBounds(cur) {
			return
		}
		atBlocker := found && d == limit
		if atBlocker || interesting(gs, ctx, from, cur, d, limit, found, blockerIsEnemy, isVertical, isHorizontal, canHoriz, canVert, canDiag) {
			mg.addMove(gs, from, cur, p, mode)
		}
		if atBlocker {
			return
		}
	}
}

// rayStep returns the number of dir-steps from from to reach blocker,
// which NearestAlongRay guarantees sits exactly on that ray.
func rayStep(from, blocker Coordinate, dir Offset) int64 {
	if dir.Dx != 0 {
		return (blocker.X - from.X) / dir.Dx
	}
	return (blocker.Y - from.Y) / dir.Dy
}

// genHuygenMoves emits moves at every prime distance along the four
// orthogonal directions up to (and, for captures, including) the first
// blocker.
func (mg *Movegen) genHuygenMoves(gs *GameState, from Coordinate, p Piece, mode GenMode) {
	for _, dir := range OrthogonalDirections {
		for _, d := range primes.Primes(64) {
			to := from.Add(Offset{Dx: dir.Dx * d, Dy: dir.Dy * d})
			blocked := false
			for s := int64(1); s < d; s++ {
				mid := from.Add(Offset{Dx: dir.Dx * s, Dy: dir.Dy * s})
				if !gs.Board().IsEmpty(mid) {
					blocked = true
					break
				}
			}
			if blocked {
				break
			}
			if !mg.addMove(gs, from, to, p, mode) {
				break
			}
			if target, ok := gs.Board().At(to); ok && target.Color != p.Color {
				break
			}
		}
	}
}

// genRoseMoves emits moves along each of the eight circular arcs a Rose
// can travel, one knight-step turn at a time, stopping an arc as soon as
// it is blocked or a capture is made.
func (mg *Movegen) genRoseMoves(gs *GameState, from Coordinate, p Piece, mode GenMode) {
	for _, first := range KnightDirections {
		cur := from
		prevDir := first
		for step := 0; step < 7; step++ {
			next := cur.Add(prevDir)
			if !mg.addMove(gs, from, next, p, mode) {
				break
			}
			if target, ok := gs.Board().At(next); ok && target.Color != p.Color {
				break
			}
			cur = next
			prevDir = rotateKnightDir(prevDir)
		}
	}
}

// rotateKnightDir returns the next knight vector clockwise around the
// same circular arc, approximating a Rose's continuous turning motion
// as a fixed rotation through the eight knight directions.
func rotateKnightDir(dir Offset) Offset {
	// the eight knight vectors in clockwise angular order
	turnOrder := [8]Offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	for i, d := range turnOrder {
		if d == dir {
			return turnOrder[(i+1)%len(turnOrder)]
		}
	}
	return dir
}

// genCastling emits castling moves for color's royal piece if it and
// the corresponding rook both still carry their special right and the
// squares between and including the king's path are empty and unattacked.
func (mg *Movegen) genCastling(gs *GameState, color Color, mode GenMode) {
	if mode&GenNonCap == 0 {
		return
	}
	royal, ok := gs.FindRoyal(color)
	if !ok || !gs.HasSpecialRight(royal) {
		return
	}
	if IsInCheck(gs, color) {
		return
	}
	for _, dx := range [2]int64{-1, 1} {
		rookFrom := findCastlingRook(gs, royal, color, dx)
		if rookFrom.IsNone() || !gs.HasSpecialRight(rookFrom) {
			continue
		}
		kingTo := Coordinate{X: royal.X + 2*dx, Y: royal.Y}
		rookTo := Coordinate{X: royal.X + dx, Y: royal.Y}
		if !pathClearAndSafe(gs, royal, kingTo, color) {
			continue
		}
		piece, _ := gs.Board().At(royal)
		mg.pseudoLegalMoves.PushBack(NewCastlingMove(royal, kingTo, piece, rookFrom, rookTo))
	}
}

// findCastlingRook scans outward from royal along dx for the nearest
// friendly rook-kind piece, the castling partner on that side.
func findCastlingRook(gs *GameState, royal Coordinate, color Color, dx int64) Coordinate {
	cur := royal
	for i := 0; i < 50; i++ {
		cur = Coordinate{X: cur.X + dx, Y: cur.Y}
		p, ok := gs.Board().At(cur)
		if !ok {
			continue
		}
		if p.Color == color && p.Kind == Rook {
			return cur
		}
		return NoCoordinate
	}
	return NoCoordinate
}

// pathClearAndSafe reports whether every square the royal piece crosses
// between from and to (inclusive of to) is empty (save for the king and
// castling rook themselves) and not attacked by the opponent.
func pathClearAndSafe(gs *GameState, from, to Coordinate, color Color) bool {
	dx := int64(0)
	if to.X > from.X {
		dx = 1
	} else if to.X < from.X {
		dx = -1
	}
	cur := from
	for cur != to {
		cur = Coordinate{X: cur.X + dx, Y: cur.Y}
		if cur != to {
			if !gs.Board().IsEmpty(cur) {
				return false
			}
		}
		if IsSquareAttacked(gs, cur, color.Flip()) {
			return false
		}
	}
	return true
}
