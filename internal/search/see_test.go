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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantagechess/VantageGo/internal/movegen"
	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
)

func seeMove(t *testing.T, fen string, uci string) (*position.Position, Move) {
	t.Helper()
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)
	mg := movegen.NewMoveGen()
	m := mg.GetMoveFromUci(p, uci)
	assert.NotEqual(t, MoveNone, m, "move %s not legal in %s", uci, fen)
	return p, m
}

func TestSeeSimpleWinningCapture(t *testing.T) {
	// rook takes an undefended pawn
	p, m := seeMove(t, "1k1r4/1pp4p/p7/4p3/8/P5P1/1PP4P/2K1R3 w - - 0 1", "e1e5")
	assert.True(t, See(p, m, 0))
	assert.True(t, See(p, m, 100))
	assert.False(t, See(p, m, 101))
}

func TestSeeLosingCapture(t *testing.T) {
	// knight takes a defended pawn and is recaptured - loses material
	p, m := seeMove(t, "1k1r3q/1ppn3p/p4b2/4p3/8/P2N2P1/1PP1R1BP/2K1Q3 w - - 0 1", "d3e5")
	assert.False(t, See(p, m, 0))
}

func TestSeeEqualExchange(t *testing.T) {
	// pawn takes pawn, recaptured by the queen on d8 - net zero
	p, m := seeMove(t, "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "e4d5")
	assert.True(t, See(p, m, 0))
	assert.False(t, See(p, m, 1))
	assert.False(t, See(p, m, 101))
}

func TestSeeXrayAttacks(t *testing.T) {
	// doubled rooks behind each other - the exchange on d5 is backed
	// up by the second rook
	p, m := seeMove(t, "3r3k/3r4/8/3p4/8/8/3R4/3R3K w - - 0 1", "d2d5")
	// RxP, rxR, RxR, rxR: gain 100 - 500 + 500 - 500 => losing
	assert.False(t, See(p, m, 0))
}

func TestSeeQueenTakesDefendedPawn(t *testing.T) {
	// queen takes a pawn defended by a pawn - disaster
	p, m := seeMove(t, "4k3/8/1p6/2p5/8/8/5Q2/4K3 w - - 0 1", "f2c5")
	assert.False(t, See(p, m, 0))
}

func TestSeeNonCapture(t *testing.T) {
	// a quiet move to a safe square passes threshold 0
	p, m := seeMove(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a4")
	assert.True(t, See(p, m, 0))
	assert.False(t, See(p, m, 1))
}

func TestSeePromotionCapture(t *testing.T) {
	// promotion capture - wins the knight and the promotion surplus
	p, m := seeMove(t, "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7b8q")
	assert.True(t, See(p, m, 0))
	assert.True(t, See(p, m, 300))

	// quiet promotions do not enter the swap-off - they are treated
	// like quiet moves
	p2, m2 := seeMove(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8q")
	assert.True(t, See(p2, m2, 0))
	assert.False(t, See(p2, m2, 1))
}
