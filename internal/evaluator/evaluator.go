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

// Package evaluator contains structures and functions to calculate
// the value of a position to be used by the search.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/fairyengine/internal/board"
	"github.com/frankkopp/fairyengine/internal/config"
	myLogging "github.com/frankkopp/fairyengine/internal/logging"
	"github.com/frankkopp/fairyengine/internal/movegen"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

var out = message.NewPrinter(language.German)

// GamePhaseMax is the normalizing divisor for the game phase factor: the
// combined value of every non-pawn, non-royal piece on an orthodox
// starting board (2 rooks, 2 knights, 2 bishops, 1 queen per side). Fairy
// armies with heavier pieces simply saturate the factor at 1.0 sooner,
// which is the desired effect - those positions are mid-game-like for
// longer, not a bug to special-case.
var GamePhaseMax = 2 * (2*Rook.ValueOf() + 2*Knight.ValueOf() + 2*Bishop.ValueOf() + Queen.ValueOf())

// Score carries a position's evaluation as seen at two ends of the game:
// the middle game value and the end game value. The final value used by
// search is the two blended by the game phase factor.
type Score struct {
	MidGameValue int32
	EndGameValue int32
}

// Add accumulates o into s.
func (s *Score) Add(o *Score) {
	s.MidGameValue += o.MidGameValue
	s.EndGameValue += o.EndGameValue
}

// Sub subtracts o from s.
func (s *Score) Sub(o *Score) {
	s.MidGameValue -= o.MidGameValue
	s.EndGameValue -= o.EndGameValue
}

// ValueFromScore blends MidGameValue and EndGameValue by phase, where
// phase 1.0 is a full board and 0.0 is a bare-bones endgame.
func (s *Score) ValueFromScore(phase float64) Value {
	return Value(float64(s.MidGameValue)*phase + float64(s.EndGameValue)*(1-phase))
}

// Evaluator evaluates positions by summing material, mobility,
// centralization, pawn structure and simple per-piece heuristics. It
// holds reusable scratch state (a move generator for mobility counts
// and an optional pawn structure cache) so repeated evaluation during
// search does not churn the allocator.
type Evaluator struct {
	log *logging.Logger

	gs   *board.GameState
	us   Color
	them Color

	gamePhaseFactor float64
	score           Score

	mg        *movegen.Movegen
	pawnCache *pawnCache
}

// tmpScore is reused across the per-piece helper functions to avoid
// allocating a fresh Score for every piece evaluated.
var tmpScore = Score{}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		log: myLogging.GetLog("evaluator"),
		mg:  movegen.NewMoveGen(),
	}
	if config.Settings.Eval.UsePawnCache {
		e.pawnCache = newPawnCache()
	} else {
		e.log.Info("Pawn structure cache is disabled in configuration")
	}
	return e
}

// InitEval resets per-call scratch state. Evaluate() calls this
// automatically; it is exported so unit tests can drive evaluation
// helpers directly without a full Evaluate() round trip.
func (e *Evaluator) InitEval(gs *board.GameState) {
	e.gs = gs
	e.us = gs.NextPlayer()
	e.them = e.us.Flip()
	e.gamePhaseFactor = gamePhaseFactor(gs)
	e.score.MidGameValue = 0
	e.score.EndGameValue = 0
}

// gamePhaseFactor returns a value in [0, 1] describing how far gs is
// from the opening (1.0) towards a bare endgame (0.0), based on the
// non-pawn, non-royal material remaining on the board.
func gamePhaseFactor(gs *board.GameState) float64 {
	var total Value
	gs.Board().ForEach(func(_ Coordinate, p Piece) {
		if p.Kind == Pawn || p.Kind.IsRoyal() || p.Kind.IsNeutral() {
			return
		}
		total += p.ValueOf()
	})
	factor := float64(total) / float64(GamePhaseMax)
	if factor > 1 {
		factor = 1
	}
	return factor
}

// Evaluate calculates a value for gs using material, mobility,
// centralization, pawn structure and per-piece heuristics, always
// returned from the view of the side to move.
func (e *Evaluator) Evaluate(gs *board.GameState) Value {
	e.InitEval(gs)
	return e.evaluate()
}

// isInsufficientMaterial reports whether neither side has enough
// material left on the board to ever force mate. Any pawn on the board
// always counts as sufficient, since it can promote; otherwise each
// side's own surviving material is checked independently against the
// mating-material table in materialSurvey.canMateAlone, since one side
// alone having enough material (a lone queen facing a bare king, say)
// already rules out a dead draw regardless of what the other side has.
func isInsufficientMaterial(gs *board.GameState) bool {
	white := newMaterialSurvey()
	black := newMaterialSurvey()
	hasPawn := false
	gs.Board().ForEach(func(c Coordinate, p Piece) {
		if p.Kind.IsRoyal() || p.Kind.IsNeutral() {
			return
		}
		if p.Kind == Pawn {
			hasPawn = true
			return
		}
		if p.Color == White {
			white.add(p.Kind, c)
		} else {
			black.add(p.Kind, c)
		}
	})
	return !hasPawn && !white.canMateAlone() && !black.canMateAlone()
}

// materialSurvey tallies one color's non-royal, non-pawn material for
// the mating-material check: bishops split by the square color they are
// confined to, every other non-mating-alone kind counted by kind, and a
// combined count of pieces that are sufficient to mate completely on
// their own.
type materialSurvey struct {
	minors       map[PieceKind]int
	lightBishops int
	darkBishops  int
	strong       int
}

func newMaterialSurvey() materialSurvey {
	return materialSurvey{minors: make(map[PieceKind]int)}
}

func (m *materialSurvey) add(k PieceKind, c Coordinate) {
	switch {
	case k == Bishop:
		if (c.X+c.Y)%2 == 0 {
			m.darkBishops++
		} else {
			m.lightBishops++
		}
	case isMinorMatingPiece(k):
		m.minors[k]++
	default:
		m.strong++
	}
}

// canMateAlone reports whether this side's surviving material can force
// mate against a bare king without any help from the other side's
// pieces, per the mating-material table: a single piece strong enough to
// mate alone (any rook, queen, rider or multi-mode compound - "3 rooks
// yes", "Amazon always yes") always can; two bishops confined to
// different square colors can; two different minor kinds (e.g. a knight
// and a camel) can coordinate a mate the way a bishop and knight do in
// orthodox chess; three or more of the same minor kind can. A bare king,
// a lone minor, two bishops on one square color ("bishops all one color
// no"), or two of the same minor kind (e.g. two knights) cannot.
func (m *materialSurvey) canMateAlone() bool {
	if m.strong > 0 {
		return true
	}
	if m.lightBishops > 0 && m.darkBishops > 0 {
		return true
	}
	if m.lightBishops+m.darkBishops > 0 {
		for _, n := range m.minors {
			if n > 0 {
				return true
			}
		}
		return false
	}
	distinctMinors := 0
	for _, n := range m.minors {
		if n > 0 {
			distinctMinors++
		}
		if n >= 3 {
			return true
		}
	}
	return distinctMinors >= 2
}

// isMinorMatingPiece reports whether k cannot, alone, force mate against
// a bare king: a piece confined to a single short-range movement mode
// (a pure leaper like Knight/Camel/Giraffe/Zebra, or a fixed-distance
// compass stepper like Guard/Hawk). Any slider, rider, or a compound
// piece combining more than one movement mode (Amazon, Chancellor,
// Archbishop, Centaur) is strong enough to mate on its own.
func isMinorMatingPiece(k PieceKind) bool {
	if k.SlidesOrthogonally() || k.SlidesDiagonally() || k.IsKnightrider() || k.IsPrimeSlider() || k.IsCircularKnight() {
		return false
	}
	modes := 0
	if k.IsLeaper() {
		modes++
	}
	if len(k.CompassDistances()) > 0 {
		modes++
	}
	return modes <= 1
}

func (e *Evaluator) evaluate() Value {
	if isInsufficientMaterial(e.gs) {
		return ValueDraw
	}

	if config.Settings.Eval.UseMaterialEval {
		e.evalMaterial()
	}

	if config.Settings.Eval.UsePositionalEval {
		e.evalCentralization()
	}

	e.score.MidGameValue += int32(config.Settings.Eval.Tempo)

	if config.Settings.Eval.UsePawnEval {
		pawns := e.evaluatePawns()
		e.score.Add(pawns)
	}

	if config.Settings.Eval.UseMobility {
		e.evalMobility()
	}

	if config.Settings.Eval.UseAdvancedPieceEval {
		e.evalSliders()
	}

	if config.Settings.Eval.UseKingEval {
		e.score.Add(e.evalKing(e.us))
		e.score.Sub(e.evalKing(e.them))
	}

	value := e.score.ValueFromScore(e.gamePhaseFactor)
	return value * Value(e.us.Direction())
}

// evalMaterial sums the static value of every piece on the board,
// from white's perspective; Evaluate() reorients by side to move at
// the very end.
func (e *Evaluator) evalMaterial() {
	var white, black Value
	e.gs.Board().ForEach(func(_ Coordinate, p Piece) {
		switch p.Color {
		case White:
			white += p.ValueOf()
		case Black:
			black += p.ValueOf()
		}
	})
	diff := int32(white - black)
	e.score.MidGameValue += diff
	e.score.EndGameValue += diff
}

// evalCentralization rewards pieces that sit close to the board's
// origin. On an unbounded board there is no fixed piece-square table;
// the origin stands in for "the center" since both armies start
// arranged around it.
func (e *Evaluator) evalCentralization() {
	bonus := int32(config.Settings.Eval.CentralizationBonus)
	if bonus == 0 {
		return
	}
	var mid int32
	e.gs.Board().ForEach(func(c Coordinate, p Piece) {
		if p.Kind.IsNeutral() || p.Kind == Pawn {
			return
		}
		d := distanceFromOrigin(c)
		contribution := bonus - d
		if contribution < 0 {
			contribution = 0
		}
		if p.Color == White {
			mid += contribution
		} else {
			mid -= contribution
		}
	})
	e.score.MidGameValue += mid
}

func distanceFromOrigin(c Coordinate) int32 {
	x, y := c.X, c.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	if x > y {
		return int32(x)
	}
	return int32(y)
}

// evalMobility scores the difference in pseudo-legal move counts
// between the two sides. Unlike the source's precomputed attack
// bitboards, pseudo-legal generation here is a real tree walk, so
// this is only cheap enough to run with UseMobility explicitly
// enabled (it is off by default, matching the source's own caution
// around its cost).
func (e *Evaluator) evalMobility() {
	ourMoves := e.mg.GeneratePseudoLegalMovesFor(e.gs, e.us, movegen.GenAll).Len()
	theirMoves := e.mg.GeneratePseudoLegalMovesFor(e.gs, e.them, movegen.GenAll).Len()
	bonus := int32(ourMoves-theirMoves) * int32(config.Settings.Eval.MobilityBonus)
	e.score.MidGameValue += bonus
	e.score.EndGameValue += bonus
}

// evalSliders applies RookOnOpenFileBonus to every orthogonal or
// diagonal slider (bishops and queens included) that shares no file
// with a pawn of its own color. A slider stranded in a corner or with
// no legal advance gets no penalty.
func (e *Evaluator) evalSliders() {
	e.gs.Board().ForEach(func(c Coordinate, p Piece) {
		if !p.Kind.SlidesOrthogonally() && !p.Kind.SlidesDiagonally() {
			return
		}
		bonus := e.sliderFileBonus(c, p)
		if p.Color == White {
			e.score.MidGameValue += bonus
		} else {
			e.score.MidGameValue -= bonus
		}
	})
}

// sliderFileBonus rewards a slider that shares no file with a pawn of
// its own color - the unbounded-board analogue of the classic
// open-file rook bonus.
func (e *Evaluator) sliderFileBonus(c Coordinate, p Piece) int32 {
	ownPawnOnFile := false
	e.gs.Board().ForEach(func(other Coordinate, q Piece) {
		if q.Kind == Pawn && q.Color == p.Color && other.X == c.X {
			ownPawnOnFile = true
		}
	})
	if ownPawnOnFile {
		return 0
	}
	return int32(config.Settings.Eval.RookOnOpenFileBonus)
}

// evalKing scores king safety for color: a bonus for every own piece
// adjacent to the royal square (an improvised pawn-shield/escort
// measure that generalizes past the classic castled-king shield to
// fairy armies without castling). Enemy pieces attacking the squares
// around the royal are not scored.
func (e *Evaluator) evalKing(color Color) *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	royal, found := e.gs.FindRoyal(color)
	if !found {
		return &tmpScore
	}

	var defenders int32
	e.gs.Board().ForEach(func(c Coordinate, p Piece) {
		if p.Color != color || c == royal {
			return
		}
		if distanceFromOrigin(Coordinate{X: c.X - royal.X, Y: c.Y - royal.Y}) <= 1 {
			defenders++
		}
	})
	tmpScore.MidGameValue += defenders * int32(config.Settings.Eval.KingCastlePawnShieldBonus)

	return &tmpScore
}

// Report prints a human-readable breakdown of the last evaluation.
// Used in debugging.
func (e *Evaluator) Report() string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Side to move: %s\n", e.us.String()))
	report.WriteString(out.Sprintf("Game phase factor: %f\n", e.gamePhaseFactor))
	report.WriteString(out.Sprintf("Mid game score: %d\n", e.score.MidGameValue))
	report.WriteString(out.Sprintf("End game score: %d\n", e.score.EndGameValue))
	report.WriteString(out.Sprintf("Eval value (side to move view): %d\n", e.evaluate()))
	return report.String()
}
