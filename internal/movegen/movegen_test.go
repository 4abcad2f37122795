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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantagechess/VantageGo/internal/moveslice"
	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
)

func legalMoves(t *testing.T, fen string) (*Movegen, *position.Position, *moveslice.MoveSlice) {
	t.Helper()
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)
	mg := NewMoveGen()
	ml := moveslice.NewMoveSlice(MaxMoves)
	mg.GenerateLegalMoves(p, ml)
	return mg, p, ml
}

func TestStartPositionMoves(t *testing.T) {
	_, _, ml := legalMoves(t, position.StartFen)
	assert.Equal(t, 20, ml.Len())
}

func TestKiwipeteMoves(t *testing.T) {
	_, _, ml := legalMoves(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.Equal(t, 48, ml.Len())
}

func TestNoDuplicateMoves(t *testing.T) {
	_, _, ml := legalMoves(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	seen := map[Move]bool{}
	for _, m := range *ml {
		assert.False(t, seen[m], "duplicate move %s", m.StringUci())
		seen[m] = true
	}
}

func TestAllGeneratedMovesAreLegal(t *testing.T) {
	mg, p, ml := legalMoves(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	for _, m := range *ml {
		us := p.NextPlayer()
		undo := p.DoMove(m)
		assert.False(t, p.IsInCheck(us), "move %s leaves king in check", m.StringUci())
		p.UndoMove(undo)
	}
	_ = mg
}

func TestEnPassantGeneration(t *testing.T) {
	// from startpos apply e2e4 a7a6 e4e5 d7d5 - e5d6 ep must be
	// among the legal moves
	mg := NewMoveGen()
	p := position.NewPosition()
	for _, uci := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		m := mg.GetMoveFromUci(p, uci)
		assert.NotEqual(t, MoveNone, m, "move %s not found", uci)
		p.DoMove(m)
	}
	ml := moveslice.NewMoveSlice(MaxMoves)
	mg.GenerateLegalMoves(p, ml)
	epMove := MoveNone
	for _, m := range *ml {
		if m.IsEnPassant() {
			epMove = m
		}
	}
	assert.NotEqual(t, MoveNone, epMove)
	assert.Equal(t, "e5d6", epMove.StringUci())

	// execute it - the d5 pawn is removed, a white pawn stands on d6
	p.DoMove(epMove)
	assert.Equal(t, MakePiece(White, Pawn), p.GetPiece(SqD6))
	assert.Equal(t, PieceNone, p.GetPiece(SqD5))
}

func TestCastlingGeneration(t *testing.T) {
	// both castles legal
	_, _, ml := legalMoves(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	castles := 0
	for _, m := range *ml {
		if m.IsCastling() {
			castles++
		}
	}
	assert.Equal(t, 2, castles)

	// king side path attacked by the rook on f8 - only queen side
	// castling remains
	_, _, ml = legalMoves(t, "5r1k/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	castles = 0
	for _, m := range *ml {
		if m.IsCastling() {
			assert.Equal(t, QueenSideCastle, m.Flags())
			castles++
		}
	}
	assert.Equal(t, 1, castles)

	// castling while in check is not legal
	_, _, ml = legalMoves(t, "4r2k/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	for _, m := range *ml {
		assert.False(t, m.IsCastling())
	}
}

func TestPromotionGeneration(t *testing.T) {
	_, _, ml := legalMoves(t, "5n2/4P3/8/8/8/8/8/k3K3 w - - 0 1")
	promotions := 0
	promotionCaptures := 0
	for _, m := range *ml {
		if m.IsPromotion() {
			promotions++
			if m.IsCapture() {
				promotionCaptures++
			}
		}
	}
	// 4 quiet promotions on e8 and 4 promotion captures on f8
	assert.Equal(t, 8, promotions)
	assert.Equal(t, 4, promotionCaptures)
}

func TestCheckEvasions(t *testing.T) {
	// king in check - only evasions are legal
	mg, p, ml := legalMoves(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	assert.True(t, p.HasCheck())
	for _, m := range *ml {
		assert.True(t, mg.IsLegalMove(p, m))
	}
	assert.Greater(t, ml.Len(), 0)
}

func TestStalematePosition(t *testing.T) {
	mg, p, ml := legalMoves(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.Equal(t, 0, ml.Len())
	assert.False(t, p.HasCheck())
	assert.Equal(t, Stalemate, mg.PositionStatus(p))
}

func TestGetMoveFromUci(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	m := mg.GetMoveFromUci(p, "e2e4")
	assert.True(t, m.IsDoublePush())
	assert.Equal(t, MoveNone, mg.GetMoveFromUci(p, "e2e5"))
	assert.Equal(t, MoveNone, mg.GetMoveFromUci(p, "xxxx"))

	// promotion
	p2, _ := position.NewPositionFen("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	m = mg.GetMoveFromUci(p2, "a7a8q")
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.PromotionType())

	// castling as king two square move
	p3, _ := position.NewPositionFen("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	m = mg.GetMoveFromUci(p3, "e1g1")
	assert.True(t, m.IsCastling())
}

func TestGetMoveFromSan(t *testing.T) {
	mg := NewMoveGen()
	p := position.NewPosition()
	assert.Equal(t, "g1f3", mg.GetMoveFromSan(p, "Nf3").StringUci())
	assert.Equal(t, "e2e4", mg.GetMoveFromSan(p, "e4").StringUci())
	assert.Equal(t, MoveNone, mg.GetMoveFromSan(p, "Ne4"))

	// capture and check suffix
	p2, _ := position.NewPositionFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	assert.Equal(t, "e4d5", mg.GetMoveFromSan(p2, "exd5").StringUci())

	// disambiguation by file
	p3, _ := position.NewPositionFen("4k3/8/8/8/8/8/4K3/R6R w - - 0 1")
	assert.Equal(t, "a1d1", mg.GetMoveFromSan(p3, "Rad1").StringUci())
	assert.Equal(t, "h1d1", mg.GetMoveFromSan(p3, "Rhd1").StringUci())
	assert.Equal(t, MoveNone, mg.GetMoveFromSan(p3, "Rd1"))

	// castling
	p4, _ := position.NewPositionFen("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	assert.Equal(t, "e1g1", mg.GetMoveFromSan(p4, "O-O").StringUci())
	assert.Equal(t, "e1c1", mg.GetMoveFromSan(p4, "O-O-O").StringUci())

	// promotion
	p5, _ := position.NewPositionFen("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	assert.Equal(t, "a7a8q", mg.GetMoveFromSan(p5, "a8=Q").StringUci())
}

func TestPositionStatusDraws(t *testing.T) {
	mg := NewMoveGen()

	// fifty move rule
	p, _ := position.NewPositionFen("r5k1/8/8/8/8/8/8/R5K1 w - - 99 1")
	m := mg.GetMoveFromUci(p, "a1b1")
	p.DoMove(m)
	assert.Equal(t, 100, p.HalfMoveClock())
	assert.Equal(t, DrawFiftyMoves, mg.PositionStatus(p))

	// 75 move rule has priority over fifty move
	p2, _ := position.NewPositionFen("r5k1/8/8/8/8/8/8/R5K1 w - - 150 1")
	assert.Equal(t, DrawSeventyFiveMoves, mg.PositionStatus(p2))

	// dead position
	p3, _ := position.NewPositionFen("8/8/8/8/8/4k3/8/3NK3 w - - 0 1")
	assert.Equal(t, DrawInsufficientMaterial, mg.PositionStatus(p3))

	// checkmate
	p4, _ := position.NewPositionFen("4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	assert.Equal(t, Checkmate, mg.PositionStatus(p4))

	// in play
	p5 := position.NewPosition()
	assert.Equal(t, InPlay, mg.PositionStatus(p5))
}

func TestThreefoldStatus(t *testing.T) {
	mg := NewMoveGen()
	p, _ := position.NewPositionFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	moves := []string{"e1d1", "e8d8", "d1e1", "d8e8", "e1d1", "e8d8", "d1e1", "d8e8"}
	for _, uci := range moves {
		m := mg.GetMoveFromUci(p, uci)
		assert.NotEqual(t, MoveNone, m)
		p.DoMove(m)
	}
	assert.Equal(t, DrawThreefold, mg.PositionStatus(p))
}
