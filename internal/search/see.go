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
	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
)

// See returns true iff the static material outcome of playing the move
// and all subsequent recaptures on the destination square is at least
// the given threshold, from the moving side's perspective.
// Implemented as a swap-off iteration choosing the least valuable
// attacker each turn, with x-ray attacks revealed by removing slider
// capable pieces from the occupancy.
func See(p *position.Position, m Move, threshold Value) bool {
	toSq := m.To()
	fromSq := m.From()

	// initial gain - value of the captured piece plus a possible
	// promotion surplus
	var value Value
	if m.IsEnPassant() {
		value = Pawn.ValueOf()
	} else {
		target := p.GetPiece(toSq)
		if target == PieceNone {
			return threshold <= 0
		}
		value = target.ValueOf()
	}
	if m.IsPromotion() {
		value += m.PromotionType().ValueOf() - Pawn.ValueOf()
	}
	if value < threshold {
		return false
	}

	// after a promotion the piece standing on the square is the
	// promoted piece, not the pawn
	nextVictim := m.PieceTypeOf()
	if m.IsPromotion() {
		nextVictim = m.PromotionType()
	}

	var gain [32]Value
	d := 0
	gain[d] = value

	// remove the initial attacker and collect all attackers to the
	// destination square
	occ := p.OccupiedAll()
	occ.PopSquare(fromSq)
	attackers := attacksTo(p, toSq, occ)
	sideToMove := p.NextPlayer().Flip()

	for {
		d++
		attackerSq := leastValuableAttacker(p, attackers, sideToMove)
		if attackerSq == SqNone {
			break
		}

		attackers.PopSquare(attackerSq)
		occ.PopSquare(attackerSq)

		// re-derive attackers when a slider capable piece moved to
		// reveal x-ray attacks behind it
		attackerType := p.GetPiece(attackerSq).TypeOf()
		if attackerType == Bishop || attackerType == Rook || attackerType == Queen {
			attackers = attacksTo(p, toSq, occ)
			attackers.PopSquare(attackerSq)
		}

		if d >= 31 {
			break
		}

		gain[d] = nextVictim.ValueOf() - gain[d-1]
		nextVictim = p.GetPiece(attackerSq).TypeOf()
		sideToMove = sideToMove.Flip()
	}

	// back-propagate: each side only continues the exchange when it
	// does not lose material by it
	for d > 1 {
		d--
		gain[d-1] = -maxValue(-gain[d-1], gain[d])
	}
	return gain[0] >= threshold
}

// attacksTo returns a bitboard of all pieces of both colors which
// attack the given square under the given occupancy. En passant is not
// considered, it is irrelevant for the swap-off.
func attacksTo(p *position.Position, sq Square, occ Bitboard) Bitboard {
	whitePawns := GetPawnAttacks(Black, sq) & p.PiecesBb(White, Pawn)
	blackPawns := GetPawnAttacks(White, sq) & p.PiecesBb(Black, Pawn)
	knights := GetAttacksBb(Knight, sq, BbZero) &
		(p.PiecesBb(White, Knight) | p.PiecesBb(Black, Knight))
	kings := GetAttacksBb(King, sq, BbZero) &
		(p.PiecesBb(White, King) | p.PiecesBb(Black, King))
	bishopQueens := p.PiecesBb(White, Bishop) | p.PiecesBb(Black, Bishop) |
		p.PiecesBb(White, Queen) | p.PiecesBb(Black, Queen)
	rookQueens := p.PiecesBb(White, Rook) | p.PiecesBb(Black, Rook) |
		p.PiecesBb(White, Queen) | p.PiecesBb(Black, Queen)
	diag := GetAttacksBb(Bishop, sq, occ) & bishopQueens
	orth := GetAttacksBb(Rook, sq, occ) & rookQueens

	return (whitePawns | blackPawns | knights | kings | diag | orth) & occ
}

// leastValuableAttacker returns the square of the least valuable
// attacker of the given side within the attackers bitboard or SqNone
func leastValuableAttacker(p *position.Position, attackers Bitboard, side Color) Square {
	sideAttackers := attackers & p.OccupiedBb(side)
	if sideAttackers == 0 {
		return SqNone
	}
	for pt := Pawn; pt <= King; pt++ {
		if subset := sideAttackers & p.PiecesBb(side, pt); subset != 0 {
			return subset.Lsb()
		}
	}
	return SqNone
}

func maxValue(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
