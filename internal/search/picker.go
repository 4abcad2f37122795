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
	"github.com/vantagechess/VantageGo/internal/moveslice"
	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
)

// pickerStage is the current stage of the staged move generation
type pickerStage uint8

// The picker stages. If an early move causes a beta cutoff later
// stages are never generated.
const (
	stageHashMove pickerStage = iota
	stageGenCaptures
	stageGoodCaptures
	stageKiller1
	stageKiller2
	stageGenQuiets
	stageQuiets
	stageBadCaptures
	stageDone
)

// bonus for quiet pawn advances in move ordering
const (
	pawnAdvanceMidBonus  = 1000 // reaching rank 4 or 5
	pawnAdvanceHighBonus = 2000 // reaching rank 6 or 7
)

// movePicker enumerates the legal moves of a position lazily in an
// order which maximizes the chance of an early cutoff:
// hash move, good captures (SEE >= 0, MVV-LVA ordered), killers,
// quiets (history ordered) and finally the SEE negative captures.
// In captures-only mode (quiescence) killers and quiets are skipped.
type movePicker struct {
	search       *Search
	p            *position.Position
	stage        pickerStage
	hashMove     Move
	killer1      Move
	killer2      Move
	capturesOnly bool

	// fixed capacity buffers, allocated once per search instance and
	// borrowed by each picker via newMovePicker
	genBuf        *moveslice.MoveSlice
	goodCaptures  *moveslice.MoveSlice
	badCaptures   *moveslice.MoveSlice
	quiets        *moveslice.MoveSlice
	goodCapScores []int32
	quietScores   []int32

	goodCapIdx int
	quietIdx   int
	badCapIdx  int
}

// buffer capacities for the picker stages
const (
	maxCaptures = 64
	maxQuiets   = 256
)

// pickerBuffers are the per-ply reusable buffers of the move picker
type pickerBuffers struct {
	genBuf        moveslice.MoveSlice
	goodCaptures  moveslice.MoveSlice
	badCaptures   moveslice.MoveSlice
	quiets        moveslice.MoveSlice
	goodCapScores []int32
	quietScores   []int32
}

func newPickerBuffers() *pickerBuffers {
	return &pickerBuffers{
		genBuf:        make(moveslice.MoveSlice, 0, 2*maxCaptures),
		goodCaptures:  make(moveslice.MoveSlice, 0, maxCaptures),
		badCaptures:   make(moveslice.MoveSlice, 0, maxCaptures),
		quiets:        make(moveslice.MoveSlice, 0, maxQuiets),
		goodCapScores: make([]int32, 0, maxCaptures),
		quietScores:   make([]int32, 0, maxQuiets),
	}
}

// newMovePicker initializes a picker on the buffers of the given ply
func (s *Search) newMovePicker(p *position.Position, ply int, hashMove Move, capturesOnly bool) *movePicker {
	b := s.pickerBuffers[ply]
	b.genBuf.Clear()
	b.goodCaptures.Clear()
	b.badCaptures.Clear()
	b.quiets.Clear()
	b.goodCapScores = b.goodCapScores[:0]
	b.quietScores = b.quietScores[:0]

	mp := &s.pickers[ply]
	*mp = movePicker{
		search:        s,
		p:             p,
		stage:         stageHashMove,
		hashMove:      hashMove,
		capturesOnly:  capturesOnly,
		genBuf:        &b.genBuf,
		goodCaptures:  &b.goodCaptures,
		badCaptures:   &b.badCaptures,
		quiets:        &b.quiets,
		goodCapScores: b.goodCapScores,
		quietScores:   b.quietScores,
	}
	if !capturesOnly {
		mp.killer1 = s.killers[ply][0]
		mp.killer2 = s.killers[ply][1]
	}
	return mp
}

// next returns the next legal move or MoveNone when all moves are
// exhausted. Loop based state machine, never recursive.
func (mp *movePicker) next() Move {
	mg := mp.search.mg
	p := mp.p
	for {
		switch mp.stage {

		case stageHashMove:
			mp.stage = stageGenCaptures
			if mp.hashMove != MoveNone &&
				mp.isPseudoLegal(mp.hashMove) && mg.IsLegalMove(p, mp.hashMove) {
				return mp.hashMove
			}

		case stageGenCaptures:
			mp.generateAndClassifyCaptures()
			mp.stage = stageGoodCaptures

		case stageGoodCaptures:
			for {
				m := mp.pickBestCapture()
				if m == MoveNone {
					break
				}
				if m.SameAs(mp.hashMove) {
					continue
				}
				if mg.IsLegalMove(p, m) {
					return m
				}
			}
			if mp.capturesOnly {
				mp.stage = stageBadCaptures
			} else {
				mp.stage = stageKiller1
			}

		case stageKiller1:
			mp.stage = stageKiller2
			k := mp.killer1
			if k != MoveNone && !k.IsCapture() && !k.SameAs(mp.hashMove) &&
				mp.isPseudoLegal(k) && mg.IsLegalMove(p, k) {
				return k
			}

		case stageKiller2:
			mp.stage = stageGenQuiets
			k := mp.killer2
			if k != MoveNone && !k.IsCapture() && !k.SameAs(mp.hashMove) &&
				!k.SameAs(mp.killer1) &&
				mp.isPseudoLegal(k) && mg.IsLegalMove(p, k) {
				return k
			}

		case stageGenQuiets:
			mp.generateAndScoreQuiets()
			mp.stage = stageQuiets

		case stageQuiets:
			for {
				m := mp.pickBestQuiet()
				if m == MoveNone {
					break
				}
				if m.SameAs(mp.hashMove) || m.SameAs(mp.killer1) || m.SameAs(mp.killer2) {
					continue
				}
				if mg.IsLegalMove(p, m) {
					return m
				}
			}
			mp.stage = stageBadCaptures

		case stageBadCaptures:
			for mp.badCapIdx < mp.badCaptures.Len() {
				m := mp.badCaptures.At(mp.badCapIdx)
				mp.badCapIdx++
				if m.SameAs(mp.hashMove) {
					continue
				}
				if mg.IsLegalMove(p, m) {
					return m
				}
			}
			mp.stage = stageDone

		case stageDone:
			return MoveNone
		}
	}
}

// mvvLvaScore scores a capture with "most valuable victim, least
// valuable attacker"
func mvvLvaScore(p *position.Position, m Move) int32 {
	if !m.IsCapture() {
		return 0
	}
	if m.IsEnPassant() {
		// victim and attacker are pawns
		return int32(Pawn.ValueOf())*10 - 1
	}
	victim := p.GetPiece(m.To())
	if victim == PieceNone {
		return 0
	}
	return int32(victim.ValueOf())*10 - int32(m.PieceTypeOf().ValueOf())
}

// generateAndClassifyCaptures generates the pseudo-legal captures and
// promotions and splits them by SEE(0) into good and bad buckets.
// Good captures get their MVV-LVA score for selection sorting.
func (mp *movePicker) generateAndClassifyCaptures() {
	p := mp.p
	mp.search.mg.GenerateCaptures(p, mp.genBuf)
	for _, m := range *mp.genBuf {
		if m.SameAs(mp.hashMove) {
			continue
		}
		if See(p, m, 0) {
			mp.goodCaptures.PushBack(m)
			mp.goodCapScores = append(mp.goodCapScores, mvvLvaScore(p, m))
		} else {
			mp.badCaptures.PushBack(m)
		}
	}
}

// generateAndScoreQuiets generates the pseudo-legal quiet moves and
// scores them with the history counters plus a pawn advancement bonus
func (mp *movePicker) generateAndScoreQuiets() {
	p := mp.p
	mp.search.mg.GenerateQuiets(p, mp.quiets)
	us := p.NextPlayer()
	for _, m := range *mp.quiets {
		score := int32(mp.search.history[m.From()][m.To()])
		if m.PieceTypeOf() == Pawn {
			toRank := m.To().RankOf()
			fromRank := m.From().RankOf()
			advancing := (us == White && toRank > fromRank) ||
				(us == Black && toRank < fromRank)
			if advancing {
				if toRank == Rank4 || toRank == Rank5 {
					score += pawnAdvanceMidBonus
				}
				if toRank == Rank6 || toRank == Rank7 {
					score += pawnAdvanceHighBonus
				}
			}
		}
		mp.quietScores = append(mp.quietScores, score)
	}
}

// pickBestCapture selection-sorts the next best good capture
func (mp *movePicker) pickBestCapture() Move {
	if mp.goodCapIdx >= mp.goodCaptures.Len() {
		return MoveNone
	}
	best := mp.goodCapIdx
	for i := mp.goodCapIdx + 1; i < mp.goodCaptures.Len(); i++ {
		if mp.goodCapScores[i] > mp.goodCapScores[best] {
			best = i
		}
	}
	mp.swapCaptures(mp.goodCapIdx, best)
	m := mp.goodCaptures.At(mp.goodCapIdx)
	mp.goodCapIdx++
	return m
}

// pickBestQuiet selection-sorts the next best quiet move
func (mp *movePicker) pickBestQuiet() Move {
	if mp.quietIdx >= mp.quiets.Len() {
		return MoveNone
	}
	best := mp.quietIdx
	for i := mp.quietIdx + 1; i < mp.quiets.Len(); i++ {
		if mp.quietScores[i] > mp.quietScores[best] {
			best = i
		}
	}
	mp.swapQuiets(mp.quietIdx, best)
	m := mp.quiets.At(mp.quietIdx)
	mp.quietIdx++
	return m
}

func (mp *movePicker) swapCaptures(i, j int) {
	if i == j {
		return
	}
	mi, mj := mp.goodCaptures.At(i), mp.goodCaptures.At(j)
	mp.goodCaptures.Set(i, mj)
	mp.goodCaptures.Set(j, mi)
	mp.goodCapScores[i], mp.goodCapScores[j] = mp.goodCapScores[j], mp.goodCapScores[i]
}

func (mp *movePicker) swapQuiets(i, j int) {
	if i == j {
		return
	}
	mi, mj := mp.quiets.At(i), mp.quiets.At(j)
	mp.quiets.Set(i, mj)
	mp.quiets.Set(j, mi)
	mp.quietScores[i], mp.quietScores[j] = mp.quietScores[j], mp.quietScores[i]
}

// isPseudoLegal validates an externally supplied move (hash move,
// killer) against the current position: the moving piece must stand on
// the from square, the destination must not hold a friendly piece or
// the enemy king, the capture flag must match the occupancy and the
// piece specific movement rule must hold including castling path and
// rights and the en passant target.
func (mp *movePicker) isPseudoLegal(m Move) bool {
	p := mp.p
	us := p.NextPlayer()
	from := m.From()
	to := m.To()
	pt := m.PieceTypeOf()

	// the piece must be ours and stand on from
	if p.GetPiece(from) != MakePiece(us, pt) {
		return false
	}
	// the destination may not hold a friendly piece
	if p.OccupiedBb(us).Has(to) {
		return false
	}
	// captures need a victim (except en passant), quiet moves must not
	// have one
	them := us.Flip()
	if m.IsCapture() && !m.IsEnPassant() && !p.OccupiedBb(them).Has(to) {
		return false
	}
	if !m.IsCapture() && p.OccupiedBb(them).Has(to) {
		return false
	}
	// the enemy king can not be captured
	if p.PiecesBb(them, King).Has(to) {
		return false
	}

	switch pt {
	case Pawn:
		if m.IsEnPassant() {
			return p.GetEnPassantSquare() == to && GetPawnAttacks(us, from).Has(to)
		}
		if m.IsCapture() {
			if !GetPawnAttacks(us, from).Has(to) {
				return false
			}
		} else {
			dir := 8 * us.MoveDirection()
			if m.IsDoublePush() {
				if from.RankOf() != us.PawnDoubleRank() ||
					int(to) != int(from)+2*dir {
					return false
				}
				middle := Square(int(from) + dir)
				if p.OccupiedAll().Has(middle) || p.OccupiedAll().Has(to) {
					return false
				}
			} else {
				if int(to) != int(from)+dir || p.OccupiedAll().Has(to) {
					return false
				}
			}
		}
		if m.IsPromotion() && to.RankOf() != us.PromotionRank() {
			return false
		}
		return true
	case Knight, King:
		if m.IsCastling() {
			var right CastlingRights
			if m.Flags() == KingSideCastle {
				right = CastlingWhiteOO << (2 * us)
			} else {
				right = CastlingWhiteOOO << (2 * us)
			}
			return p.CastlingRights().Has(right) &&
				p.OccupiedAll()&CastlingBetweenMask(us, m.Flags()) == 0
		}
		return GetAttacksBb(pt, from, BbZero).Has(to)
	default: // sliders
		return GetAttacksBb(pt, from, p.OccupiedAll()).Has(to)
	}
}
