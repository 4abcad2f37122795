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

// Package evaluator computes a static score for a chess position in
// centipawns. The evaluation is a tapered PeSTO material and piece
// square table base plus mobility, pawn structure, king safety and an
// endgame mop-up term. The score is returned from the perspective of
// the side to move (negamax convention).
package evaluator

import (
	. "github.com/vantagechess/VantageGo/internal/config"
	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
	"github.com/vantagechess/VantageGo/internal/util"
)

// game phase weights
const (
	totalPhase = 24
)

// passed pawn bonus by rank (rank 1 .. rank 8 from the pawn's view)
var passedPawnBonus = [8]int{0, 10, 20, 40, 80, 150, 300, 0}

// Evaluator is a data structure for the evaluation function.
// Create with NewEvaluator()
type Evaluator struct {
	position *position.Position
}

// NewEvaluator creates a new instance of an Evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the static evaluation of the position from the
// perspective of the side to move. When the PeSTO base score is
// already far outside the alpha-beta window (lazy margin) the
// positional terms are skipped.
func (e *Evaluator) Evaluate(p *position.Position, alpha Value, beta Value) Value {
	e.position = p
	us := p.NextPlayer()
	them := us.Flip()

	perspective := 1
	if us == Black {
		perspective = -1
	}

	score := e.pestoEval() * perspective

	if Settings.Eval.UseLazyEval {
		margin := Settings.Eval.LazyMargin
		if score-margin >= int(beta) || score+margin <= int(alpha) {
			return Value(score)
		}
	}

	if Settings.Eval.UseMobility {
		score += e.mobility(us) - e.mobility(them)
	}
	if Settings.Eval.UsePawnStructure {
		score += e.pawnStructure() * perspective
	}
	if Settings.Eval.UseKingSafety {
		score += e.kingSafety(us) - e.kingSafety(them)
		score += e.kingShield(us) - e.kingShield(them)
	}
	if Settings.Eval.UseMopUp {
		score += e.mopUp(us)
	}

	return Value(score)
}

// phase returns the game phase in [0, 24] computed from the remaining
// non pawn material. 24 is the opening, 0 a pure pawn ending.
func (e *Evaluator) phase() int {
	p := e.position
	phase := 0
	for pt := Knight; pt <= Queen; pt++ {
		n := p.PiecesBb(White, pt).PopCount() + p.PiecesBb(Black, pt).PopCount()
		phase += n * pt.GamePhaseValue()
	}
	return util.Min(phase, totalPhase)
}

// pestoEval returns the tapered material and piece square score from
// White's perspective
func (e *Evaluator) pestoEval() int {
	p := e.position
	phase := e.phase()
	mg := 0
	eg := 0
	for pt := Pawn; pt <= King; pt++ {
		wBb := p.PiecesBb(White, pt)
		for wBb != 0 {
			sq := wBb.PopLsb().Flip()
			mg += pieceValueMg[pt] + psqtMg[pt][sq]
			eg += pieceValueEg[pt] + psqtEg[pt][sq]
		}
		bBb := p.PiecesBb(Black, pt)
		for bBb != 0 {
			sq := bBb.PopLsb()
			mg -= pieceValueMg[pt] + psqtMg[pt][sq]
			eg -= pieceValueEg[pt] + psqtEg[pt][sq]
		}
	}
	return (mg*phase + eg*(totalPhase-phase)) / totalPhase
}

// mobility scores bishop and rook pseudo attacks onto non friendly
// squares
func (e *Evaluator) mobility(c Color) int {
	p := e.position
	occ := p.OccupiedAll()
	notUs := ^p.OccupiedBb(c)
	score := 0

	bishops := p.PiecesBb(c, Bishop)
	for bishops != 0 {
		sq := bishops.PopLsb()
		score += (GetAttacksBb(Bishop, sq, occ) & notUs).PopCount() * Settings.Eval.MobilityBishop
	}
	rooks := p.PiecesBb(c, Rook)
	for rooks != 0 {
		sq := rooks.PopLsb()
		score += (GetAttacksBb(Rook, sq, occ) & notUs).PopCount() * Settings.Eval.MobilityRook
	}
	return score
}

// pawnStructure scores doubled, isolated and passed pawns of both
// sides and returns the result from White's perspective
func (e *Evaluator) pawnStructure() int {
	p := e.position
	wp := p.PiecesBb(White, Pawn)
	bp := p.PiecesBb(Black, Pawn)
	wk := p.KingSquare(White)
	bk := p.KingSquare(Black)

	whiteScore := 0
	blackScore := 0

	// doubled pawns - a pawn with another own pawn directly behind it
	whiteScore += (wp & (wp >> 8)).PopCount() * Settings.Eval.DoubledPawnPenalty
	blackScore += (bp & (bp << 8)).PopCount() * Settings.Eval.DoubledPawnPenalty

	// isolated pawns - no own pawn on a neighbour file (file fill)
	wFiles := wp.FileFill()
	bFiles := bp.FileFill()
	wNeighbours := ((wFiles & FileHMask) << 1) | ((wFiles & FileAMask) >> 1)
	bNeighbours := ((bFiles & FileHMask) << 1) | ((bFiles & FileAMask) >> 1)
	whiteScore += (wp &^ wNeighbours).PopCount() * Settings.Eval.IsolatedPawnPenalty
	blackScore += (bp &^ bNeighbours).PopCount() * Settings.Eval.IsolatedPawnPenalty

	// passed pawns
	wIter := wp
	for wIter != 0 {
		sq := wIter.PopLsb()
		if bp&sq.PassedPawnMask(White) != 0 {
			continue
		}
		r := int(sq.RankOf())
		bonus := passedPawnBonus[r]
		// blocked passer - an enemy piece on the stop square
		if r < 7 && p.OccupiedBb(Black).Has(sq+8) {
			bonus += Settings.Eval.BlockedPasserPenalty
		}
		// king tether for advanced passers
		if r >= 4 {
			bonus += (7-SquareDistance(sq, wk))*3 + SquareDistance(sq, bk)*2
		}
		whiteScore += bonus
	}
	bIter := bp
	for bIter != 0 {
		sq := bIter.PopLsb()
		if wp&sq.PassedPawnMask(Black) != 0 {
			continue
		}
		r := int(sq.RankOf())
		bonus := passedPawnBonus[7-r]
		if r > 0 && p.OccupiedBb(White).Has(sq-8) {
			bonus += Settings.Eval.BlockedPasserPenalty
		}
		if r <= 3 {
			bonus += (7-SquareDistance(sq, bk))*3 + SquareDistance(sq, wk)*2
		}
		blackScore += bonus
	}

	return whiteScore - blackScore
}

// kingSafety counts enemy pieces attacking the 3x3 zone around the
// king. The penalty tapers off towards the endgame.
func (e *Evaluator) kingSafety(c Color) int {
	p := e.position
	them := c.Flip()
	kingSq := p.KingSquare(c)

	// 3x3 zone around the king
	b := kingSq.Bb()
	zone := b | ((b << 1) & FileAMask) | ((b >> 1) & FileHMask)
	zone |= zone.ShiftNorth() | zone.ShiftSouth()

	occ := p.OccupiedAll()
	attackCount := 0
	for pt := Knight; pt <= Queen; pt++ {
		attackers := p.PiecesBb(them, pt)
		for attackers != 0 {
			from := attackers.PopLsb()
			if GetAttacksBb(pt, from, occ)&zone != 0 {
				attackCount++
			}
		}
	}
	if attackCount == 0 {
		return 0
	}
	return -(attackCount * Settings.Eval.KingZoneAttackWeight * e.phase()) / totalPhase
}

// kingShield scores friendly pawns on the rank directly in front of
// the king on its own and the adjacent files
func (e *Evaluator) kingShield(c Color) int {
	p := e.position
	kingSq := p.KingSquare(c)

	var shieldRank Rank
	if c == White {
		if kingSq.RankOf() == Rank8 {
			return 0
		}
		shieldRank = kingSq.RankOf() + 1
	} else {
		if kingSq.RankOf() == Rank1 {
			return 0
		}
		shieldRank = kingSq.RankOf() - 1
	}

	shieldMask := ((FileA_Bb << kingSq.FileOf()) | kingSq.NeighbourFilesMask()) & shieldRank.Bb()
	shieldCount := (p.PiecesBb(c, Pawn) & shieldMask).PopCount()

	score := shieldCount * Settings.Eval.KingShieldBonus
	if shieldCount == 0 {
		score += Settings.Eval.KingOpenShieldMalus
	}
	return score
}

// mopUp pushes the enemy king towards the corners and draws the own
// king close in won endgames. Only active with few pieces on the board
// and a clear material advantage.
func (e *Evaluator) mopUp(us Color) int {
	p := e.position
	them := us.Flip()

	totalPieces := 0
	for pt := Pawn; pt <= Queen; pt++ {
		totalPieces += p.PiecesBb(White, pt).PopCount() + p.PiecesBb(Black, pt).PopCount()
	}
	if totalPieces > 10 {
		return 0
	}
	if e.material(us) < e.material(them)+200 {
		return 0
	}

	myKing := p.KingSquare(us)
	enemyKing := p.KingSquare(them)

	// Manhattan distance of the enemy king from the board center,
	// doubled to stay in integers (2 on the four center squares, 14 in a corner)
	er := int(enemyKing.RankOf())
	ef := int(enemyKing.FileOf())
	centerDist := util.Abs(2*er-7) + util.Abs(2*ef-7)

	kingDist := ManhattanDistance(myKing, enemyKing)

	return 10*centerDist + 4*(14-kingDist)
}

// material returns the tapered material sum of one side
func (e *Evaluator) material(c Color) int {
	p := e.position
	phase := e.phase()
	mg := 0
	eg := 0
	for pt := Pawn; pt <= Queen; pt++ {
		n := p.PiecesBb(c, pt).PopCount()
		mg += pieceValueMg[pt] * n
		eg += pieceValueEg[pt] * n
	}
	return (mg*phase + eg*(totalPhase-phase)) / totalPhase
}
