/*
 * VantageGo - UCI chess engine in GO
 *
 * MIT License
 *
 * Copyright (c) 2024-2026 The VantageGo Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	. "github.com/vantagechess/VantageGo/internal/config"
	"github.com/vantagechess/VantageGo/internal/position"
	"github.com/vantagechess/VantageGo/internal/transpositiontable"
	. "github.com/vantagechess/VantageGo/internal/types"
)

// search tuning constants
const (
	// score for a repetition within the search tree - a slight
	// contempt to avoid shuffling into draws from better positions
	drawScore = Value(-50)

	// quiescence ply safety brake
	maxQSearchPly = 100

	// reverse futility pruning
	rfpDepthLimit = 9
	rfpMarginBase = 80
	rfpMarginMult = 90

	// futility pruning
	fpDepthLimit       = 7
	fpMarginBase       = 100
	fpMarginMult       = 100
	fpHistoryThreshold = 512

	// late move pruning
	lmpDepthLimit = 14
	lmpBaseMoves  = 3
	lmpMoveMult   = 6

	// late move reduction
	lmrMinDepth = 2
	lmrMinMoves = 4

	// delta pruning margin in quiescence
	deltaPruningMargin = 200
)

// alphaBeta is the recursive main search function implementing a
// negamax alpha-beta search with transposition table, null move
// pruning, reverse futility pruning, futility pruning, late move
// pruning, late move reductions, check extension and PVS.
func (s *Search) alphaBeta(p *position.Position, depth int, ply int, alpha Value, beta Value) (Value, Move) {

	// cooperative time check every 64 nodes
	if s.nodesVisited&63 == 0 {
		s.checkTime()
	}
	if s.stopConditions() {
		return ValueZero, MoveNone
	}
	s.nodesVisited++

	// hard ply bound - check extensions could otherwise keep the
	// depth from ever reaching the horizon
	if ply >= maxPly-1 {
		return s.eval.Evaluate(p, alpha, beta), MoveNone
	}

	// a single repetition within the search tree is scored as a draw
	// with slight contempt
	if ply > 0 && p.IsRepetition() {
		return drawScore, MoveNone
	}

	// probe the transposition table. The stored move is used for move
	// ordering in any case; the stored value only when the stored
	// depth suffices and the bound type fits our window.
	hashMove := MoveNone
	if Settings.Search.UseTT {
		s.statistics.TTProbes++
		if e := s.tt.Probe(p.ZobristKey()); e != nil {
			s.statistics.TTHits++
			hashMove = e.Move
			if int(e.Depth) >= depth && ply > 0 {
				ttValue := transpositiontable.ValueFromTT(e.Value, ply)
				switch e.Type {
				case transpositiontable.Exact:
					s.statistics.TTCuts++
					return ttValue, e.Move
				case transpositiontable.LowerBound:
					if ttValue >= beta {
						s.statistics.TTCuts++
						return ttValue, e.Move
					}
				case transpositiontable.UpperBound:
					if ttValue <= alpha {
						s.statistics.TTCuts++
						return ttValue, e.Move
					}
				}
			}
		}
	}

	us := p.NextPlayer()
	inCheck := p.IsInCheck(us)

	// check extension - resolves forced sequences and avoids horizon
	// effects on checks
	extension := 0
	if inCheck && Settings.Search.UseCheckExt {
		extension = 1
		s.statistics.CheckExtensions++
	}

	// drop into quiescence at the horizon unless in check
	if depth <= 0 && !inCheck {
		return s.quiescence(p, ply, alpha, beta), MoveNone
	}

	// static eval is shared by reverse futility and futility pruning
	staticEval := ValueZero
	if !inCheck {
		staticEval = s.eval.Evaluate(p, alpha, beta)
	}

	// reverse futility pruning - the position is so far above beta
	// that even a large swing keeps it failing high
	if Settings.Search.UseRFP &&
		depth < rfpDepthLimit && !inCheck && ply > 0 &&
		staticEval-Value(rfpMarginBase+rfpMarginMult*depth) >= beta {
		s.statistics.RfpPrunings++
		return beta, MoveNone
	}

	// null move pruning - giving the opponent a free move while
	// standing above beta. Not used in check, without non pawn
	// material (zugzwang) or below the static eval threshold.
	// Mate range null scores are not trusted (no verification search).
	if Settings.Search.UseNullMove &&
		depth >= 4 && !inCheck &&
		p.HasNonPawnMaterial(us) &&
		staticEval >= beta {
		r := 2
		if depth > 6 {
			r = 3
		}
		undo := p.DoNullMove()
		value, _ := s.alphaBeta(p, depth-r-1, ply+1, -beta, -beta+1)
		value = -value
		p.UndoNullMove(undo)
		if value >= beta && !s.stopConditions() && !value.IsCheckMateValue() {
			s.statistics.NullMoveCuts++
			return beta, MoveNone
		}
	}

	// staged move picker with hash move and killers of this ply
	mp := s.newMovePicker(p, ply, hashMove, false)

	bestValue := -ValueInf
	bestMove := MoveNone
	originalAlpha := alpha
	moveCount := 0

	for m := mp.next(); m != MoveNone; m = mp.next() {
		quiet := !m.IsCapture() && !m.IsPromotion()

		// futility pruning - skip quiet moves when the static eval
		// plus a margin can not reach alpha. Moves with a good
		// history are protected.
		if Settings.Search.UseFP &&
			depth < fpDepthLimit && !inCheck && quiet && moveCount > 0 &&
			s.history[m.From()][m.To()] < fpHistoryThreshold &&
			staticEval+Value(fpMarginBase+fpMarginMult*depth) <= alpha {
			s.statistics.FpPrunings++
			continue
		}

		// late move pruning - once many quiet moves failed to raise
		// alpha the remaining ones are unlikely to be better
		if Settings.Search.UseLmp &&
			depth < lmpDepthLimit && !inCheck && quiet &&
			alpha == originalAlpha &&
			moveCount > lmpBaseMoves+lmpMoveMult*depth {
			s.statistics.LmpPrunings++
			break
		}

		undo := p.DoMove(m)
		var value Value

		if moveCount == 0 || !Settings.Search.UsePVS {
			// first move of the node with the full window (assumed PV)
			value, _ = s.alphaBeta(p, depth-1+extension, ply+1, -beta, -alpha)
			value = -value
		} else {
			// late move reduction for later quiet moves
			r := 0
			if Settings.Search.UseLmr &&
				depth > lmrMinDepth && moveCount > lmrMinMoves &&
				quiet && !inCheck {
				r = 1 + depth/8 + moveCount/20
				if s.history[m.From()][m.To()] > fpHistoryThreshold {
					r--
				}
				if beta-alpha > 1 {
					// PV nodes are reduced less
					r--
				}
				if r < 0 {
					r = 0
				}
				if r > depth-2 {
					r = depth - 2
				}
			}

			// zero window scout search, possibly reduced
			value, _ = s.alphaBeta(p, depth-1-r, ply+1, -alpha-1, -alpha)
			value = -value

			// re-search at full depth when the reduced search was
			// surprisingly good
			if value > alpha && r > 0 {
				s.statistics.LmrResearches++
				value, _ = s.alphaBeta(p, depth-1, ply+1, -alpha-1, -alpha)
				value = -value
			}

			// full window re-search inside a PV window
			if value > alpha && value < beta {
				s.statistics.PvsResearches++
				value, _ = s.alphaBeta(p, depth-1+extension, ply+1, -beta, -alpha)
				value = -value
			}
		}

		p.UndoMove(undo)
		moveCount++

		if s.stopConditions() {
			return ValueZero, MoveNone
		}

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
				bestMove = m
			}
			if value >= beta {
				// fail high - store as lower bound and update the
				// quiet move ordering heuristics
				s.statistics.BetaCuts++
				if moveCount == 1 {
					s.statistics.BetaCutsFirstMove++
				}
				if Settings.Search.UseTT {
					s.tt.Put(p.ZobristKey(), m,
						transpositiontable.ValueToTT(beta, ply), int8(depth),
						transpositiontable.LowerBound)
				}
				if quiet {
					if Settings.Search.UseKiller {
						s.updateKiller(ply, m)
					}
					s.updateHistory(m, depth)
				}
				return beta, m
			}
		}
	}

	// no legal move - checkmate or stalemate
	if moveCount == 0 {
		if inCheck {
			return -ValueCheckMate + Value(ply), MoveNone
		}
		return ValueDraw, MoveNone
	}

	if s.stopConditions() {
		return ValueZero, MoveNone
	}

	if Settings.Search.UseTT {
		valueType := transpositiontable.UpperBound
		if bestValue > originalAlpha {
			valueType = transpositiontable.Exact
		}
		s.tt.Put(p.ZobristKey(), bestMove,
			transpositiontable.ValueToTT(bestValue, ply), int8(depth), valueType)
	}

	return bestValue, bestMove
}

// quiescence resolves the horizon effect by searching captures and
// promotions only until the position is quiet. Stand-pat with the
// static eval, delta pruning and SEE pruning keep the tree small.
func (s *Search) quiescence(p *position.Position, ply int, alpha Value, beta Value) Value {
	if ply > maxQSearchPly {
		return s.eval.Evaluate(p, alpha, beta)
	}

	s.statistics.QNodes++
	standPat := s.eval.Evaluate(p, alpha, beta)
	if !Settings.Search.UseQuiescence {
		return standPat
	}

	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	// captures-only picker - good captures by MVV-LVA, bad last
	mp := s.newMovePicker(p, ply, MoveNone, true)

	for m := mp.next(); m != MoveNone; m = mp.next() {
		s.nodesVisited++
		if s.nodesVisited&63 == 0 {
			s.checkTime()
		}
		if s.stopConditions() {
			return standPat
		}

		isProm := m.IsPromotion()
		isEp := m.IsEnPassant()

		// delta pruning - the captured material plus a margin can not
		// lift the score to alpha. Promotions and en passant are
		// exempt (their gain is not the target square occupant).
		if Settings.Search.UseDeltaPrune && !isProm && !isEp {
			capturedValue := ValueZero
			if victim := p.GetPiece(m.To()); victim != PieceNone {
				capturedValue = victim.ValueOf()
			}
			if standPat+capturedValue+deltaPruningMargin < alpha {
				s.statistics.DeltaPrunings++
				continue
			}
		}

		// SEE pruning - skip captures which lose material in the
		// exchange. The picker already defers them but bad captures
		// still arrive in their own stage.
		if Settings.Search.UseSEE && !isProm && !isEp && !See(p, m, 0) {
			s.statistics.SeePrunings++
			continue
		}

		undo := p.DoMove(m)
		value := -s.quiescence(p, ply+1, -beta, -alpha)
		p.UndoMove(undo)

		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha
}

// updateKiller stores a quiet cutoff move as killer for the ply.
// The previous first killer is shifted to the second slot.
func (s *Search) updateKiller(ply int, m Move) {
	if s.killers[ply][0] != m {
		s.killers[ply][1] = s.killers[ply][0]
		s.killers[ply][0] = m
	}
}

// updateHistory rewards a quiet cutoff move with depth^2
func (s *Search) updateHistory(m Move, depth int) {
	bonus := int64(depth * depth)
	if bonus > 400 {
		bonus = 400
	}
	s.history[m.From()][m.To()] += bonus
}
