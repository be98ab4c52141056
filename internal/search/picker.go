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
	"sort"

	"github.com/frankkopp/fairyengine/internal/attacks"
	"github.com/frankkopp/fairyengine/internal/board"
	"github.com/frankkopp/fairyengine/internal/history"
	"github.com/frankkopp/fairyengine/internal/movegen"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

// Stage order stands in for the source's single numeric sort key:
// hash move, then winning captures, killers, then quiets ranked by
// history/continuation score plus the flat countermove bonus below,
// then losing captures and finally the quiets that fell under
// goodQuietThreshold.
const (
	sortCounterMove    = 600_000
	goodQuietThreshold = -14_000
	checkBonus         = 16384
	checkBonusSeeFloor = -75
)

// continuationOffsets are the plies-ago sampled when scoring a quiet
// move's continuation history: the immediately preceding move plus
// three more of the mover's own and the opponent's recent replies, and
// one further back still, mirroring the {0,1,2,3,5}-plies-ago sampling
// pattern from the pack's Rust move orderer (there expressed relative to
// ply-1, here relative to this node directly: offset 1 is ply-1).
var continuationOffsets = [5]int{1, 2, 3, 4, 6}

// pickerStage enumerates the staged-generation pipeline. Stages are
// visited in order; several are skipped outright depending on context
// (evasion collapses every other stage, skipQuiets drops killers and
// both quiet stages).
type pickerStage int

const (
	stageTT pickerStage = iota
	stageEvasionInit
	stageEvasion
	stageCaptureInit
	stageGoodCapture
	stageKiller1
	stageKiller2
	stageQuietInit
	stageGoodQuiet
	stageBadCapture
	stageBadQuiet
	stageDone
)

// scoredMove pairs a move with the ordering score it was sorted by.
type scoredMove struct {
	move  Move
	score int64
}

// MovePicker lazily generates and yields moves for one node, most
// promising first, without ever materializing the full legal move
// list when a cutoff arrives early. Each Search keeps one MovePicker
// per ply (allocated once, reset per node) so recursion never shares
// generation buffers across plies.
type MovePicker struct {
	gs   *board.GameState
	mg   *movegen.Movegen
	hist *history.History

	ttMove      Move
	killer1     Move
	killer2     Move
	counterMove Move
	conts       [5]Move
	ply         int
	inCheck     bool
	skipQuiets  bool

	stage pickerStage

	evasions []scoredMove
	evIdx    int

	captures    []scoredMove
	capIdx      int
	badCaptures []Move
	badCapIdx   int

	quiets  []scoredMove
	quietIdx int
	badQuietIdx int
}

// NewMovePicker builds a picker for the node at gs. killer1/killer2 are
// the ply's killer slots, counterMove the reply table's entry for the
// previous move, both MoveNone if unset. conts holds the moves played
// at continuationOffsets plies before this node (MoveNone where the
// game history does not reach that far back, including at the root);
// ply is this node's distance from the search root, used to gate the
// low-ply history term.
func NewMovePicker(gs *board.GameState, mg *movegen.Movegen, hist *history.History, ttMove, killer1, killer2, counterMove Move, conts [5]Move, ply int, inCheck, skipQuiets bool) *MovePicker {
	return &MovePicker{
		gs:          gs,
		mg:          mg,
		hist:        hist,
		ttMove:      ttMove,
		killer1:     killer1,
		killer2:     killer2,
		counterMove: counterMove,
		conts:       conts,
		ply:         ply,
		inCheck:     inCheck,
		skipQuiets:  skipQuiets,
		stage:       stageTT,
	}
}

// Next returns the next move in staged order, or false when exhausted.
func (mp *MovePicker) Next() (Move, bool) {
	for {
		switch mp.stage {
		case stageTT:
			mp.stage = stageEvasionInit
			if !mp.ttMove.IsNone() && mp.isPseudoLegal(mp.ttMove) {
				return mp.ttMove, true
			}

		case stageEvasionInit:
			if mp.inCheck {
				mp.initEvasions()
				mp.stage = stageEvasion
			} else {
				mp.stage = stageCaptureInit
			}

		case stageEvasion:
			if mp.evIdx < len(mp.evasions) {
				m := mp.evasions[mp.evIdx].move
				mp.evIdx++
				if m.Equal(mp.ttMove) {
					continue
				}
				return m, true
			}
			mp.stage = stageDone

		case stageCaptureInit:
			mp.initCaptures()
			mp.stage = stageGoodCapture

		case stageGoodCapture:
			for mp.capIdx < len(mp.captures) {
				sm := mp.captures[mp.capIdx]
				mp.capIdx++
				if sm.move.Equal(mp.ttMove) {
					continue
				}
				if SeeGE(mp.gs, sm.move, Value(-sm.score/18)) {
					return sm.move, true
				}
				mp.badCaptures = append(mp.badCaptures, sm.move)
			}
			if mp.skipQuiets {
				mp.stage = stageBadCapture
			} else {
				mp.stage = stageKiller1
			}

		case stageKiller1:
			mp.stage = stageKiller2
			if mp.killer1IsUsable() {
				return mp.killer1, true
			}

		case stageKiller2:
			mp.stage = stageQuietInit
			if mp.killer2IsUsable() {
				return mp.killer2, true
			}

		case stageQuietInit:
			mp.initQuiets()
			mp.stage = stageGoodQuiet

		case stageGoodQuiet:
			for mp.quietIdx < len(mp.quiets) {
				sm := mp.quiets[mp.quietIdx]
				mp.quietIdx++
				if sm.score <= goodQuietThreshold {
					mp.badQuietIdx = mp.quietIdx - 1
					mp.stage = stageBadCapture
					goto afterGoodQuiet
				}
				if mp.isKillerOrTT(sm.move) {
					continue
				}
				return sm.move, true
			}
			mp.badQuietIdx = mp.quietIdx
			mp.stage = stageBadCapture
		afterGoodQuiet:

		case stageBadCapture:
			if mp.badCapIdx < len(mp.badCaptures) {
				m := mp.badCaptures[mp.badCapIdx]
				mp.badCapIdx++
				return m, true
			}
			if mp.skipQuiets {
				mp.stage = stageDone
			} else {
				mp.stage = stageBadQuiet
			}

		case stageBadQuiet:
			for mp.badQuietIdx < len(mp.quiets) {
				sm := mp.quiets[mp.badQuietIdx]
				mp.badQuietIdx++
				if mp.isKillerOrTT(sm.move) {
					continue
				}
				return sm.move, true
			}
			mp.stage = stageDone

		case stageDone:
			return MoveNone, false
		}
	}
}

func (mp *MovePicker) isKillerOrTT(m Move) bool {
	return m.Equal(mp.ttMove) || m.Equal(mp.killer1) || m.Equal(mp.killer2)
}

func (mp *MovePicker) killer1IsUsable() bool {
	return !mp.killer1.IsNone() && !mp.killer1.Equal(mp.ttMove) && mp.isQuietPseudoLegal(mp.killer1)
}

func (mp *MovePicker) killer2IsUsable() bool {
	return !mp.killer2.IsNone() && !mp.killer2.Equal(mp.ttMove) && !mp.killer2.Equal(mp.killer1) && mp.isQuietPseudoLegal(mp.killer2)
}

// isPseudoLegal re-checks that a cached move (from the TT, a killer
// slot) still applies to the current position: the right piece still
// stands on From and belongs to the side to move.
func (mp *MovePicker) isPseudoLegal(m Move) bool {
	p, ok := mp.gs.Board().At(m.From)
	if !ok || p.Kind == PkNone {
		return false
	}
	return p.Color == mp.gs.NextPlayer() && p.Kind == m.Piece.Kind
}

// isQuietPseudoLegal additionally requires the destination to be
// empty, since killer moves are only ever quiet moves.
func (mp *MovePicker) isQuietPseudoLegal(m Move) bool {
	if !mp.isPseudoLegal(m) {
		return false
	}
	return mp.gs.Board().IsEmpty(m.To)
}

func (mp *MovePicker) initEvasions() {
	moves := mp.mg.GeneratePseudoLegalMoves(mp.gs, movegen.GenAll)
	mp.evasions = make([]scoredMove, 0, moves.Len())
	moves.ForEach(func(i int) {
		m := moves.At(i)
		mp.evasions = append(mp.evasions, scoredMove{move: m, score: mp.captureOrQuietScore(m)})
	})
	sort.SliceStable(mp.evasions, func(i, j int) bool { return mp.evasions[i].score > mp.evasions[j].score })
}

func (mp *MovePicker) captureOrQuietScore(m Move) int64 {
	if target, ok := mp.gs.Board().At(m.To); ok && target.Kind != PkNone {
		return mvvLva(m.Piece.Kind, target.Kind)
	}
	return mp.hist.MainScore(m.Piece, m.To)
}

func mvvLva(attacker, victim PieceKind) int64 {
	return int64(victim.ValueOf())*10 - int64(attacker.ValueOf())
}

func (mp *MovePicker) initCaptures() {
	moves := mp.mg.GeneratePseudoLegalMoves(mp.gs, movegen.GenCap)
	mp.captures = make([]scoredMove, 0, moves.Len())
	moves.ForEach(func(i int) {
		m := moves.At(i)
		victim, _ := mp.gs.Board().At(m.To)
		if m.IsEnPassant() {
			victim = Piece{Kind: Pawn}
		}
		score := mp.hist.CaptureScore(m.Piece.Kind, victim.Kind) + 7*int64(victim.ValueOf())
		mp.captures = append(mp.captures, scoredMove{move: m, score: score})
	})
	sort.SliceStable(mp.captures, func(i, j int) bool { return mp.captures[i].score > mp.captures[j].score })
}

func (mp *MovePicker) initQuiets() {
	moves := mp.mg.GeneratePseudoLegalMoves(mp.gs, movegen.GenNonCap)
	mp.quiets = make([]scoredMove, 0, moves.Len())
	moves.ForEach(func(i int) {
		m := moves.At(i)
		score := 2 * mp.hist.MainScore(m.Piece, m.To)
		for _, cont := range mp.conts {
			if cont.IsNone() {
				continue
			}
			score += mp.hist.ContinuationScore(cont.Piece, cont.To, m.From, m.To)
		}
		if m.Equal(mp.counterMove) {
			score += sortCounterMove
		}
		movedPiece := m.Piece
		if m.Promotion != PkNone {
			movedPiece = Piece{Kind: m.Promotion, Color: m.Piece.Color}
		}
		if attacks.GivesCheck(mp.gs, m, movedPiece) && SeeGE(mp.gs, m, Value(checkBonusSeeFloor)) {
			score += checkBonus
		}
		if mp.ply < history.LowPlyHistorySize {
			score += 8 * mp.hist.LowPlyScore(mp.ply, m.To) / int64(1+mp.ply)
		}
		mp.quiets = append(mp.quiets, scoredMove{move: m, score: score})
	})
	sort.SliceStable(mp.quiets, func(i, j int) bool { return mp.quiets[i].score > mp.quiets[j].score })
}
