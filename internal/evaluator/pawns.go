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

package evaluator

import (
	"github.com/frankkopp/fairyengine/internal/config"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

// evaluatePawns scores both sides' pawn structure: doubled, isolated,
// passed, phalanx and defended pawns. The result is keyed in the pawn
// cache by the position's pawn-only zobrist hash, since pawn structure
// is touched by only a fraction of the moves played during a search.
func (e *Evaluator) evaluatePawns() *Score {
	if config.Settings.Eval.UsePawnCache {
		key := e.gs.PawnHash()
		if entry := e.pawnCache.getEntry(key); entry != nil {
			tmpScore.MidGameValue = entry.score.MidGameValue
			tmpScore.EndGameValue = entry.score.EndGameValue
			return &tmpScore
		}
	}

	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	var white, black []Coordinate
	e.gs.Board().ForEach(func(c Coordinate, p Piece) {
		if p.Kind != Pawn {
			return
		}
		if p.Color == White {
			white = append(white, c)
		} else {
			black = append(black, c)
		}
	})

	e.scorePawns(white, black, White)
	e.scorePawns(black, white, Black)

	if config.Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.gs.PawnHash(), &tmpScore)
	}
	return &tmpScore
}

// scorePawns adds ours' structural score (from color's perspective,
// signed into white's favor) given the opposing pawn set theirs.
func (e *Evaluator) scorePawns(ours, theirs []Coordinate, color Color) {
	sign := int32(color.Direction())
	fwd := color.Direction()

	for _, p := range ours {
		doubled := 0
		isolated := true
		phalanx := false
		supported := false
		passed := true

		for _, o := range ours {
			if o == p {
				continue
			}
			if o.X == p.X {
				doubled++
			}
			if o.X == p.X-1 || o.X == p.X+1 {
				isolated = false
				if o.Y == p.Y {
					phalanx = true
				}
				if o.Y == p.Y-fwd {
					supported = true
				}
			}
		}

		for _, o := range theirs {
			if o.X < p.X-1 || o.X > p.X+1 {
				continue
			}
			ahead := (fwd > 0 && o.Y > p.Y) || (fwd < 0 && o.Y < p.Y)
			if ahead {
				passed = false
			}
		}

		if doubled > 0 {
			tmpScore.MidGameValue += sign * int32(config.Settings.Eval.PawnDoubledMidMalus)
			tmpScore.EndGameValue += sign * int32(config.Settings.Eval.PawnDoubledEndMalus)
		}
		if isolated {
			tmpScore.MidGameValue += sign * int32(config.Settings.Eval.PawnIsolatedMidMalus)
			tmpScore.EndGameValue += sign * int32(config.Settings.Eval.PawnIsolatedEndMalus)
		}
		if phalanx {
			tmpScore.MidGameValue += sign * int32(config.Settings.Eval.PawnPhalanxMidBonus)
			tmpScore.EndGameValue += sign * int32(config.Settings.Eval.PawnPhalanxEndBonus)
		}
		if supported {
			tmpScore.MidGameValue += sign * int32(config.Settings.Eval.PawnSupportedMidBonus)
			tmpScore.EndGameValue += sign * int32(config.Settings.Eval.PawnSupportedEndBonus)
		}
		if passed {
			tmpScore.MidGameValue += sign * int32(config.Settings.Eval.PawnPassedMidBonus)
			tmpScore.EndGameValue += sign * int32(config.Settings.Eval.PawnPassedEndBonus)
		}
	}
}
