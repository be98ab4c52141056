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
	"github.com/frankkopp/fairyengine/internal/attacks"
	"github.com/frankkopp/fairyengine/internal/board"
	"github.com/frankkopp/fairyengine/internal/config"
	"github.com/frankkopp/fairyengine/internal/movegen"
	"github.com/frankkopp/fairyengine/internal/moveslice"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

// rootSearch runs one depth-limited PVS pass over the already-ordered
// root move list, updating each move's sort value as it returns so the
// caller can re-sort between iterations. completed is false when the
// search was cut off before every root move had been tried, in which
// case the caller should keep the previous iteration's result.
func (s *Search) rootSearch(gs *board.GameState, moves *moveslice.MoveSlice, depth int, alpha, beta Value) (Value, Move, bool) {
	best := ValueMin
	bestMove := moves.At(0)

	for i := 0; i < moves.Len(); i++ {
		if s.shouldStop() {
			return best, bestMove, false
		}
		m := moves.At(i)
		s.nodesVisited++
		s.statistics.CurrentRootMoveIndex = i
		s.statistics.CurrentRootMove = m

		gs.MakeMove(m)
		givesCheck := attacks.IsInCheck(gs, gs.NextPlayer())

		var value Value
		if i == 0 {
			value = -s.negamax(gs, 1, depth-1, -beta, -alpha, m, givesCheck)
		} else {
			value = -s.negamax(gs, 1, depth-1, -alpha-1, -alpha, m, givesCheck)
			if value > alpha && value < beta {
				s.statistics.RootPvsResearches++
				value = -s.negamax(gs, 1, depth-1, -beta, -alpha, m, givesCheck)
			}
		}
		gs.UndoMove()

		moves.Set(i, *m.SetValue(value))

		if value > best {
			best = value
			bestMove = m
			if value > alpha {
				alpha = value
				s.copyChildPv(0, m)
			}
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			break
		}
	}
	return best, bestMove, true
}

// copyChildPv appends ply 1's principal variation behind m into ply
// 0's, so the root's pv always reflects the full line behind the
// current best move.
func (s *Search) copyChildPv(ply int, m Move) {
	pv := s.pv[ply]
	pv.Clear()
	pv.PushBack(m)
	child := s.pv[ply+1]
	for i := 0; i < child.Len(); i++ {
		pv.PushBack(child.At(i))
	}
}

// negamax evaluates gs (the position after the move that led to ply)
// to depth plies from the view of the side to move, with PVS, TT
// probing, null-move pruning, late move reductions/pruning, futility
// pruning and check extensions. prevMove is the move that produced gs,
// for continuation history and counter moves; inCheck reports whether
// the side to move in gs is in check.
func (s *Search) negamax(gs *board.GameState, ply, depth int, alpha, beta Value, prevMove Move, inCheck bool) Value {
	s.nodesVisited++
	s.pv[ply].Clear()
	s.moveStack[ply] = prevMove

	if gs.IsFiftyMoveRule() || gs.IsRepetition(3) {
		return ValueDraw
	}

	if config.Settings.Search.UseMDP {
		alpha = maxValue(alpha, -MateValue+Value(ply))
		beta = minValue(beta, MateValue-Value(ply))
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	if config.Settings.Search.UseExt && config.Settings.Search.UseCheckExt && inCheck {
		depth++
		s.statistics.CheckExtension++
	}

	if depth <= 0 {
		return s.quiescence(gs, ply, alpha, beta, inCheck)
	}

	alphaOrig := alpha
	ttKey := gs.Hash()
	var ttMove Move
	if config.Settings.Search.UseTT {
		if entry, ok := s.tt.Probe(ttKey); ok {
			s.statistics.TTHit++
			if config.Settings.Search.UseTTMove {
				ttMove = entry.MoveOf()
				s.statistics.TTMoveUsed++
			}
			if entry.Depth() >= int8(depth) && config.Settings.Search.UseTTValue {
				v := entry.Value()
				switch entry.Vtype() {
				case EXACT:
					s.statistics.TTCuts++
					return v
				case ALPHA:
					if v <= alpha {
						s.statistics.TTCuts++
						return alpha
					}
				case BETA:
					if v >= beta {
						s.statistics.TTCuts++
						return beta
					}
				}
			}
			s.statistics.TTNoCuts++
		} else {
			s.statistics.TTMiss++
		}
	}

	if ply >= len(s.mg)-1 {
		return s.eval.Evaluate(gs)
	}

	if config.Settings.Search.UseNullMove && !inCheck && depth >= config.Settings.Search.NmpDepth && ply > 0 && hasNonPawnMaterial(gs) {
		r := config.Settings.Search.NmpReduction
		nullValue := s.searchNullMove(gs, ply, depth, r, beta)
		if nullValue >= beta {
			s.statistics.NullMoveCuts++
			if nullValue >= MateThreshold {
				nullValue = beta
			}
			return nullValue
		}
	}

	if config.Settings.Search.UseRFP && !inCheck && depth < len(rfp) && !beta.IsMateValue() {
		staticEval := s.eval.Evaluate(gs)
		if staticEval-rfp[depth] >= beta {
			s.statistics.RfpPrunings++
			return staticEval - rfp[depth]
		}
	}

	skipQuiets := false
	if config.Settings.Search.UseFP && !inCheck && depth < len(fp) && !alpha.IsMateValue() {
		staticEval := s.eval.Evaluate(gs)
		if staticEval+fp[depth] <= alpha {
			skipQuiets = true
		}
	}

	killer1, killer2 := s.killers[ply].first, s.killers[ply].second
	counterMove := s.hist.CounterMove(prevMove)
	var conts [5]Move
	for i, offset := range continuationOffsets {
		conts[i] = s.prevMoveAt(ply, offset)
	}
	picker := NewMovePicker(gs, s.mg[ply], s.hist, ttMove, killer1, killer2, counterMove, conts, ply, inCheck, skipQuiets)

	legalMoves := 0
	quietsTried := make([]Move, 0, 8)
	best := ValueMin
	bestMove := MoveNone

	for {
		m, ok := picker.Next()
		if !ok {
			break
		}
		gs.MakeMove(m)
		if attacks.IsInCheck(gs, m.Piece.Color) {
			gs.UndoMove()
			continue
		}
		legalMoves++
		isCapture := !gs.Board().IsEmpty(m.To) || m.IsEnPassant()
		givesCheck := attacks.IsInCheck(gs, gs.NextPlayer())

		if config.Settings.Search.UseLmp && !inCheck && !isCapture && !givesCheck && depth <= config.Settings.Search.LmrDepth &&
			legalMoves > LmpMovesSearched(depth) {
			gs.UndoMove()
			s.statistics.LmpCuts++
			continue
		}

		reduction := 0
		if config.Settings.Search.UseLmr && depth >= config.Settings.Search.LmrDepth &&
			legalMoves > config.Settings.Search.LmrMovesSearched && !inCheck && !isCapture && !givesCheck {
			reduction = LmrReduction(depth, legalMoves)
			s.statistics.LmrReductions++
		}

		var value Value
		if legalMoves == 1 {
			value = -s.negamax(gs, ply+1, depth-1, -beta, -alpha, m, givesCheck)
		} else {
			searchDepth := depth - 1 - reduction
			if searchDepth < 0 {
				searchDepth = 0
			}
			value = -s.negamax(gs, ply+1, searchDepth, -alpha-1, -alpha, m, givesCheck)
			if value > alpha && (reduction > 0 || value < beta) {
				s.statistics.LmrResearches++
				s.statistics.PvsResearches++
				value = -s.negamax(gs, ply+1, depth-1, -beta, -alpha, m, givesCheck)
			}
		}
		gs.UndoMove()

		if !isCapture {
			quietsTried = append(quietsTried, m)
		}

		if value > best {
			best = value
			bestMove = m
			if value > alpha {
				alpha = value
				s.copyChildPv(ply, m)
			}
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			if legalMoves == 1 {
				s.statistics.BetaCuts1st++
			}
			if !isCapture {
				s.recordQuietCutoff(m, prevMove, depth, quietsTried, ply)
			} else {
				victim, _ := gs.Board().At(m.To)
				s.hist.UpdateCapture(m.Piece.Kind, victim.Kind, depth)
			}
			break
		}
	}

	if legalMoves == 0 {
		if inCheck {
			s.statistics.Checkmates++
			return -MateValue + Value(ply)
		}
		s.statistics.Stalemates++
		return ValueDraw
	}

	if config.Settings.Search.UseTT {
		vtype := EXACT
		if best <= alphaOrig {
			vtype = ALPHA
		} else if best >= beta {
			vtype = BETA
		}
		s.tt.Put(ttKey, bestMove, int8(depth), best, s.eval.Evaluate(gs), vtype)
	}

	return best
}

// prevMoveAt returns the move played offset plies before ply, or
// MoveNone when that far back predates the search root.
func (s *Search) prevMoveAt(ply, offset int) Move {
	idx := ply - offset + 1
	if idx < 0 || idx >= len(s.moveStack) {
		return MoveNone
	}
	return s.moveStack[idx]
}

// recordQuietCutoff updates the killer slots, main history,
// continuation history (at every sampled plies-ago offset, matching
// the same offsets the move picker samples when scoring quiets) and
// low-ply history after a quiet move causes a beta cutoff, and records
// it as the countermove for whatever move produced this node.
func (s *Search) recordQuietCutoff(m, prevMove Move, depth int, tried []Move, ply int) {
	if !m.Equal(s.killers[ply].first) {
		s.killers[ply].second = s.killers[ply].first
		s.killers[ply].first = m
	}
	failed := make([]Move, 0, len(tried))
	for _, t := range tried {
		if !t.Equal(m) {
			failed = append(failed, t)
		}
	}
	s.hist.UpdateMain(m.Piece, m.To, depth, failed)
	for _, offset := range continuationOffsets {
		cont := s.prevMoveAt(ply, offset)
		if cont.IsNone() {
			continue
		}
		s.hist.UpdateContinuation(cont.Piece, cont.To, m.From, m.To, depth)
	}
	s.hist.UpdateLowPly(ply, m.To, depth)
	s.hist.SetCounterMove(prevMove, m)
}

// searchNullMove plays a null move (passes the turn without moving a
// piece) to test whether the position is so good that even giving the
// opponent a free move still fails high, the standard null-move
// pruning heuristic.
func (s *Search) searchNullMove(gs *board.GameState, ply, depth, reduction int, beta Value) Value {
	gs.MakeNullMove()
	v := -s.negamax(gs, ply+1, depth-1-reduction, -beta, -beta+1, MoveNone, false)
	gs.UndoNullMove()
	return v
}

// hasNonPawnMaterial reports whether the side to move has any piece
// besides pawns and its royal, the usual null-move safety gate against
// zugzwang-prone king-and-pawn endings.
func hasNonPawnMaterial(gs *board.GameState) bool {
	color := gs.NextPlayer()
	found := false
	gs.Board().ForEach(func(_ Coordinate, p Piece) {
		if p.Color == color && p.Kind != Pawn && !p.Kind.IsRoyal() && !p.Kind.IsNeutral() {
			found = true
		}
	})
	return found
}

// quiescence extends search past the horizon through captures (only
// those with SEE >= 0 while UseSEE is on) and, when the side to move is
// in check, through every evasion. Quiet moves that give check are not
// searched. A stand-pat score bounds the result
// from below when the side to move has a quiet alternative to capturing.
func (s *Search) quiescence(gs *board.GameState, ply int, alpha, beta Value, inCheck bool) Value {
	s.nodesVisited++
	s.statistics.LeafPositionsEvaluated++

	if !config.Settings.Search.UseQuiescence {
		return s.eval.Evaluate(gs)
	}
	if inCheck {
		s.statistics.CheckInQS++
	}

	var standPat Value
	if !inCheck {
		standPat = s.eval.Evaluate(gs)
		if config.Settings.Search.UseQSStandpat {
			if standPat >= beta {
				s.statistics.StandpatCuts++
				return beta
			}
			if standPat > alpha {
				alpha = standPat
			}
		}
	}

	if ply >= len(s.mg)-1 {
		return standPat
	}

	mg := s.mg[ply]
	mode := movegen.GenCap
	if inCheck {
		mode = movegen.GenAll
	}
	moves := mg.GeneratePseudoLegalMoves(gs, mode)

	best := standPat
	legalMoves := 0
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !inCheck {
			if config.Settings.Search.UseSEE && !SeeGE(gs, m, ValueZero) {
				continue
			}
		}
		gs.MakeMove(m)
		if attacks.IsInCheck(gs, m.Piece.Color) {
			gs.UndoMove()
			continue
		}
		legalMoves++
		givesCheck := attacks.IsInCheck(gs, gs.NextPlayer())
		value := -s.quiescence(gs, ply+1, -beta, -alpha, givesCheck)
		gs.UndoMove()

		if value > best {
			best = value
			if value > alpha {
				alpha = value
			}
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			break
		}
	}

	if inCheck && legalMoves == 0 {
		return -MateValue + Value(ply)
	}
	return best
}

func maxValue(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}

func minValue(a, b Value) Value {
	if a < b {
		return a
	}
	return b
}
