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

package search

import (
	. "github.com/frankkopp/fairyengine/internal/attacks"
	. "github.com/frankkopp/fairyengine/internal/board"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

// see runs the static exchange evaluation swap-list algorithm on
// gs for move and returns the net material gain for the side to move
// if the full sequence of recaptures on move.To played out. There is no
// bitboard AttacksTo to intersect here: attacks.AttackersTo walks every
// piece on the board and tests reachability directly, then the result
// is folded back to front exactly as the source's array-based version
// does, negamax-style.
func see(gs *GameState, move Move) Value {
	if move.IsEnPassant() {
		return Value(Pawn.ValueOf())
	}

	target := move.To
	movedPiece, _ := gs.Board().At(move.From)
	side := movedPiece.Color

	var gain [32]Value
	ply := 0

	capturedPiece, hasCapture := gs.Board().At(target)
	if hasCapture {
		gain[ply] = capturedPiece.ValueOf()
	}

	excluded := map[Coordinate]bool{move.From: true}
	currentAttacker := movedPiece
	side = side.Flip()

	for {
		ply++
		if ply == 1 && move.IsPromotion() {
			gain[ply] = move.Promotion.ValueOf() - Pawn.ValueOf() - gain[ply-1]
		} else {
			gain[ply] = currentAttacker.ValueOf() - gain[ply-1]
		}

		if maxValue(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		from, found := leastValuableAttacker(gs, target, side, excluded)
		if !found {
			break
		}
		currentAttacker, _ = gs.Board().At(from)
		excluded[from] = true
		side = side.Flip()
	}

	// gain[ply] assumed a recapture that was never made; fold from ply-1
	for ply > 1 {
		ply--
		gain[ply-1] = -maxValue(-gain[ply-1], gain[ply])
	}
	return gain[0]
}

// leastValuableAttacker returns the cheapest color piece (by static
// value) attacking target, excluding any square in excluded, and
// whether one was found.
func leastValuableAttacker(gs *GameState, target Coordinate, color Color, excluded map[Coordinate]bool) (Coordinate, bool) {
	attackers := AttackersTo(gs, target, color, excluded)
	if len(attackers) == 0 {
		return NoCoordinate, false
	}
	best := attackers[0]
	bestPiece, _ := gs.Board().At(best)
	for _, c := range attackers[1:] {
		p, _ := gs.Board().At(c)
		if p.ValueOf() < bestPiece.ValueOf() {
			best, bestPiece = c, p
		}
	}
	return best, true
}

func maxValue(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}

// SeeGE reports whether the static exchange evaluation of move is
// greater than or equal to threshold. Two cheap cutoffs answer most
// calls without ever building the full swap list: if even taking the
// victim for free and then losing the attacker already clears
// threshold, or if even winning the victim for free falls short of
// it, the outcome is decided before any recapture needs to be found.
// Only the ambiguous remainder - where the attacker could plausibly be
// recaptured and the exchange's actual value depends on who else can
// join in - falls through to the full swap-list evaluation in see.
func SeeGE(gs *GameState, move Move, threshold Value) bool {
	var victimVal Value
	switch {
	case move.IsEnPassant():
		victimVal = Pawn.ValueOf()
	default:
		captured, ok := gs.Board().At(move.To)
		if !ok {
			return ValueZero >= threshold
		}
		victimVal = captured.ValueOf()
	}

	attacker, _ := gs.Board().At(move.From)
	attackerVal := attacker.ValueOf()
	if move.IsPromotion() {
		attackerVal = move.Promotion.ValueOf()
	}

	swap := victimVal - threshold
	if swap < 0 {
		return false
	}
	swap = attackerVal - swap
	if swap <= 0 {
		return true
	}

	return see(gs, move) >= threshold
}
