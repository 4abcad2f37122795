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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardSquares(t *testing.T) {
	b := BbZero
	b.PushSquare(SqA1)
	b.PushSquare(SqH8)
	b.PushSquare(SqE4)
	assert.Equal(t, 3, b.PopCount())
	assert.True(t, b.Has(SqE4))
	assert.False(t, b.Has(SqE5))
	b.PopSquare(SqE4)
	assert.Equal(t, 2, b.PopCount())
	assert.Equal(t, SqA1, b.Lsb())
}

func TestBitboardPopLsb(t *testing.T) {
	b := SqC3.Bb() | SqF7.Bb()
	assert.Equal(t, SqC3, b.PopLsb())
	assert.Equal(t, SqF7, b.PopLsb())
	assert.Equal(t, SqNone, b.PopLsb())
	assert.Equal(t, BbZero, b)
}

func TestFileRankBb(t *testing.T) {
	assert.Equal(t, FileA_Bb, FileA.Bb())
	assert.Equal(t, FileH_Bb, FileH.Bb())
	assert.Equal(t, Rank4_Bb, Rank4.Bb())
	assert.Equal(t, 8, FileC.Bb().PopCount())
}

func TestSquareDistances(t *testing.T) {
	assert.Equal(t, 7, SquareDistance(SqA1, SqH8))
	assert.Equal(t, 1, SquareDistance(SqE4, SqD5))
	assert.Equal(t, 0, SquareDistance(SqE4, SqE4))
	assert.Equal(t, 14, ManhattanDistance(SqA1, SqH8))
	assert.Equal(t, 2, ManhattanDistance(SqE4, SqD5))
}

func TestPseudoAttacks(t *testing.T) {
	// knight in the corner has 2 attacks, in the center 8
	assert.Equal(t, 2, GetAttacksBb(Knight, SqA1, BbZero).PopCount())
	assert.Equal(t, 8, GetAttacksBb(Knight, SqE4, BbZero).PopCount())
	// king in the corner has 3 attacks, in the center 8
	assert.Equal(t, 3, GetAttacksBb(King, SqH1, BbZero).PopCount())
	assert.Equal(t, 8, GetAttacksBb(King, SqD4, BbZero).PopCount())
	// pawn attacks
	assert.Equal(t, SqD3.Bb()|SqF3.Bb(), GetPawnAttacks(White, SqE2))
	assert.Equal(t, SqD5.Bb()|SqF5.Bb(), GetPawnAttacks(Black, SqE6))
	assert.Equal(t, SqB3.Bb(), GetPawnAttacks(White, SqA2))
}

func TestMagicAttacks(t *testing.T) {
	// rook on an empty board
	assert.Equal(t, 14, GetAttacksBb(Rook, SqE4, BbZero).PopCount())
	assert.Equal(t, GetPseudoAttacks(Rook, SqA1), GetAttacksBb(Rook, SqA1, BbZero))

	// rook with a blocker on e6 - attacks include the blocker square
	// but nothing behind it
	occ := SqE6.Bb()
	attacks := GetAttacksBb(Rook, SqE4, occ)
	assert.True(t, attacks.Has(SqE5))
	assert.True(t, attacks.Has(SqE6))
	assert.False(t, attacks.Has(SqE7))
	assert.False(t, attacks.Has(SqE8))

	// bishop with blockers
	occ = SqF5.Bb() | SqC2.Bb()
	attacks = GetAttacksBb(Bishop, SqE4, occ)
	assert.True(t, attacks.Has(SqF5))
	assert.False(t, attacks.Has(SqG6))
	assert.True(t, attacks.Has(SqC2))
	assert.False(t, attacks.Has(SqB1))
	assert.True(t, attacks.Has(SqH1))

	// queen is the union of rook and bishop
	assert.Equal(t,
		GetAttacksBb(Rook, SqD5, occ)|GetAttacksBb(Bishop, SqD5, occ),
		GetAttacksBb(Queen, SqD5, occ))
}

func TestMagicAttacksAgainstRayScan(t *testing.T) {
	// cross check the magic tables against the slow ray scan for a
	// number of occupancies
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}
	occupancies := []Bitboard{
		BbZero,
		SqE4.Bb() | SqD5.Bb() | SqB2.Bb() | SqG7.Bb(),
		Rank2_Bb | Rank7_Bb,
		FileD_Bb | Rank4_Bb,
	}
	for _, occ := range occupancies {
		for sq := SqA1; sq <= SqH8; sq++ {
			assert.Equal(t, slidingAttack(&rookDirections, sq, occ),
				GetAttacksBb(Rook, sq, occ), "rook attacks from %s", sq.String())
			assert.Equal(t, slidingAttack(&bishopDirections, sq, occ),
				GetAttacksBb(Bishop, sq, occ), "bishop attacks from %s", sq.String())
		}
	}
}

func TestPassedPawnMask(t *testing.T) {
	mask := SqE4.PassedPawnMask(White)
	assert.True(t, mask.Has(SqE5))
	assert.True(t, mask.Has(SqD7))
	assert.True(t, mask.Has(SqF6))
	assert.False(t, mask.Has(SqE3))
	assert.False(t, mask.Has(SqC5))

	mask = SqD5.PassedPawnMask(Black)
	assert.True(t, mask.Has(SqD4))
	assert.True(t, mask.Has(SqC2))
	assert.True(t, mask.Has(SqE3))
	assert.False(t, mask.Has(SqD6))
}

func TestFileFill(t *testing.T) {
	b := SqE4.Bb() | SqA7.Bb()
	filled := b.FileFill()
	assert.Equal(t, FileE_Bb|FileA_Bb, filled)
}

func TestCastlingMasksAndRights(t *testing.T) {
	assert.Equal(t, SqF1.Bb()|SqG1.Bb(), CastlingBetweenMask(White, KingSideCastle))
	assert.Equal(t, SqB8.Bb()|SqC8.Bb()|SqD8.Bb(), CastlingBetweenMask(Black, QueenSideCastle))
	assert.Equal(t, CastlingWhite, GetCastlingRights(SqE1))
	assert.Equal(t, CastlingWhiteOO, GetCastlingRights(SqH1))
	assert.Equal(t, CastlingBlackOOO, GetCastlingRights(SqA8))
	assert.Equal(t, CastlingNone, GetCastlingRights(SqD4))
}
