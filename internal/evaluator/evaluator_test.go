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

package evaluator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
)

// mirrorFen mirrors a position vertically and swaps the colors of all
// pieces, the side to move, castling rights and the en passant rank.
// The resulting position is the exact color-mirror of the input.
func mirrorFen(fen string) string {
	parts := strings.Fields(fen)

	swapCase := func(s string) string {
		var os strings.Builder
		for _, c := range s {
			switch {
			case c >= 'a' && c <= 'z':
				os.WriteRune(c - 32)
			case c >= 'A' && c <= 'Z':
				os.WriteRune(c + 32)
			default:
				os.WriteRune(c)
			}
		}
		return os.String()
	}

	ranks := strings.Split(parts[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	board := swapCase(strings.Join(ranks, "/"))

	stm := "w"
	if parts[1] == "w" {
		stm = "b"
	}

	castling := parts[2]
	if castling != "-" {
		castling = swapCase(castling)
		// keep the usual KQkq order
		var os strings.Builder
		for _, c := range "KQkq" {
			if strings.ContainsRune(castling, c) {
				os.WriteRune(c)
			}
		}
		castling = os.String()
	}

	ep := parts[3]
	if ep != "-" {
		if ep[1] == '3' {
			ep = string(ep[0]) + "6"
		} else {
			ep = string(ep[0]) + "3"
		}
	}

	result := []string{board, stm, castling, ep}
	result = append(result, parts[4:]...)
	return strings.Join(result, " ")
}

func evaluate(t *testing.T, fen string) Value {
	t.Helper()
	p, err := position.NewPositionFen(fen)
	assert.NoError(t, err)
	e := NewEvaluator()
	return e.Evaluate(p, -ValueInf, ValueInf)
}

func TestStartPositionIsBalanced(t *testing.T) {
	assert.Equal(t, ValueZero, evaluate(t, position.StartFen))
}

func TestEvaluationSymmetry(t *testing.T) {
	fens := []string{
		position.StartFen + "",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r5k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
	}
	e := NewEvaluator()
	for _, fen := range fens {
		p, err := position.NewPositionFen(fen)
		assert.NoError(t, err)
		m, err := position.NewPositionFen(mirrorFen(fen))
		assert.NoError(t, err)
		v1 := e.Evaluate(p, -ValueInf, ValueInf)
		v2 := e.Evaluate(m, -ValueInf, ValueInf)
		assert.Equal(t, v1, v2, "evaluation must be color symmetric: %s", fen)
	}
}

func TestMaterialAdvantage(t *testing.T) {
	// white is a queen up
	v := evaluate(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Greater(t, int(v), 700)
	// the same from black's perspective is negative
	v = evaluate(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	assert.Less(t, int(v), -700)
}

func TestLazyEvalPreservesCorrectness(t *testing.T) {
	// close to the window bounds the full evaluation must be used -
	// a full window evaluation equals itself when re-run with the
	// resulting score inside the window
	p, _ := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	e := NewEvaluator()
	full := e.Evaluate(p, -ValueInf, ValueInf)
	inWindow := e.Evaluate(p, full-10, full+10)
	assert.Equal(t, full, inWindow)
}

func TestKingShield(t *testing.T) {
	// castled king with intact pawn shield vs a naked king
	safe := evaluate(t, "6k1/5ppp/8/8/8/8/5PPP/6K1 w - - 0 1")
	// white pawn shield removed
	unsafe := evaluate(t, "6k1/5ppp/8/8/8/5PPP/8/6K1 w - - 0 1")
	assert.Greater(t, int(safe), int(unsafe))
}

func TestPassedPawnBonus(t *testing.T) {
	// a lone white passed pawn on a6 - white must be clearly better
	withPasser := evaluate(t, "4k3/8/P7/8/8/8/8/4K3 w - - 0 1")
	withoutPasser := evaluate(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Greater(t, int(withPasser), int(withoutPasser))
}

func TestMopUpPrefersCorneredKing(t *testing.T) {
	// KQ vs K - the enemy king on the edge scores better for the
	// attacker than in the center
	cornered := evaluate(t, "7k/8/5K2/8/8/8/8/1Q6 w - - 0 1")
	centered := evaluate(t, "8/8/4k3/8/8/8/8/1Q2K3 w - - 0 1")
	assert.Greater(t, int(cornered), int(centered))
}

func TestDoubledAndIsolatedPawns(t *testing.T) {
	// healthy structure vs doubled isolated pawns with equal material
	healthy := evaluate(t, "4k3/8/8/8/8/8/2PPP3/4K3 w - - 0 1")
	crippled := evaluate(t, "4k3/8/8/8/2P5/8/2P1P3/4K3 w - - 0 1")
	assert.Greater(t, int(healthy), int(crippled))
}
