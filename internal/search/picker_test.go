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

	"github.com/vantagechess/VantageGo/internal/moveslice"
	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
)

func collectPickerMoves(s *Search, p *position.Position, hashMove Move, capturesOnly bool) []Move {
	mp := s.newMovePicker(p, 0, hashMove, capturesOnly)
	var moves []Move
	for m := mp.next(); m != MoveNone; m = mp.next() {
		moves = append(moves, m)
	}
	return moves
}

func TestPickerYieldsAllLegalMoves(t *testing.T) {
	fens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	s := NewSearch()
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		assert.NoError(t, err)

		ml := moveslice.NewMoveSlice(MaxMoves)
		s.mg.GenerateLegalMoves(p, ml)

		picked := collectPickerMoves(s, p, MoveNone, false)
		assert.Equal(t, ml.Len(), len(picked), "picker move count on %s", fen)

		for _, m := range picked {
			assert.True(t, ml.Contains(m), "picker yielded non-legal move %s on %s", m.StringUci(), fen)
		}
	}
}

func TestPickerNoDuplicates(t *testing.T) {
	s := NewSearch()
	p, _ := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	// set a hash move and killers which are all valid in the position
	// to provoke duplicates
	mg := s.mg
	hashMove := mg.GetMoveFromUci(p, "e2a6")
	s.killers[0][0] = mg.GetMoveFromUci(p, "e1d1")
	s.killers[0][1] = mg.GetMoveFromUci(p, "a1b1")

	picked := collectPickerMoves(s, p, hashMove, false)
	seen := map[string]bool{}
	for _, m := range picked {
		uci := m.StringUci()
		assert.False(t, seen[uci], "duplicate move %s", uci)
		seen[uci] = true
	}

	ml := moveslice.NewMoveSlice(MaxMoves)
	mg.GenerateLegalMoves(p, ml)
	assert.Equal(t, ml.Len(), len(picked))
}

func TestPickerHashMoveFirst(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	hashMove := s.mg.GetMoveFromUci(p, "e2e4")
	picked := collectPickerMoves(s, p, hashMove, false)
	assert.True(t, len(picked) > 0)
	assert.True(t, picked[0].SameAs(hashMove))
}

func TestPickerInvalidHashMoveIsSkipped(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	// e2e5 is not a legal pawn move - the picker must not yield it
	bogus := CreateMove(SqE2, SqE5, Pawn, PtNone, Quiet)
	picked := collectPickerMoves(s, p, bogus, false)
	assert.Equal(t, 20, len(picked))
	for _, m := range picked {
		assert.False(t, m.SameAs(bogus))
	}
}

func TestPickerCapturesOnlyMode(t *testing.T) {
	s := NewSearch()
	p, _ := position.NewPositionFen("r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4")
	picked := collectPickerMoves(s, p, MoveNone, true)
	assert.True(t, len(picked) > 0)
	for _, m := range picked {
		assert.True(t, m.IsCapture() || m.IsPromotion(),
			"captures-only mode yielded quiet move %s", m.StringUci())
	}
}

func TestPickerGoodCapturesBeforeBad(t *testing.T) {
	s := NewSearch()
	// white can win a pawn with the bishop (good) or throw the queen
	// at a defended pawn (bad)
	p, _ := position.NewPositionFen("rnb1kbnr/ppp1pppp/8/3p4/2B5/4Q3/PPPP1PPP/RNB1K1NR w KQkq - 0 1")
	picked := collectPickerMoves(s, p, MoveNone, true)
	assert.True(t, len(picked) >= 2)

	goodIdx := -1
	badIdx := -1
	for i, m := range picked {
		switch m.StringUci() {
		case "c4d5":
			goodIdx = i
		case "e3e7":
			badIdx = i
		}
	}
	assert.True(t, goodIdx >= 0, "good capture c4d5 missing")
	assert.True(t, badIdx >= 0, "bad capture e3e7 missing")
	assert.Less(t, goodIdx, badIdx, "good capture must be yielded before bad capture")
}

func TestPickerKillerOrdering(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	killer := s.mg.GetMoveFromUci(p, "b1c3")
	s.killers[0][0] = killer

	picked := collectPickerMoves(s, p, MoveNone, false)
	// no captures in the start position - the killer must come first
	assert.True(t, picked[0].SameAs(killer))
}

func TestPickerMvvLvaOrdering(t *testing.T) {
	s := NewSearch()
	// two good captures: pawn takes queen and pawn takes knight -
	// the queen capture must come first
	p, _ := position.NewPositionFen("4k3/8/8/2q1n3/3P4/8/8/4K3 w - - 0 1")
	picked := collectPickerMoves(s, p, MoveNone, true)
	assert.True(t, len(picked) >= 2)
	assert.Equal(t, "d4c5", picked[0].StringUci())
}
