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
	"regexp"
	"strings"

	"github.com/vantagechess/VantageGo/internal/moveslice"
	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
)

var regexUciMove = regexp.MustCompile("^([a-h][1-8])([a-h][1-8])([nbrq])?$")

// GetMoveFromUci returns the move which matches the given UCI move
// string (e.g. e2e4, e7e8q) on the position or MoveNone when the
// string is not a legal move in the position. Castling is expressed
// as the king's two square move (e1g1 etc.).
func (mg *Movegen) GetMoveFromUci(p *position.Position, uciMove string) Move {
	matches := regexUciMove.FindStringSubmatch(strings.TrimSpace(uciMove))
	if matches == nil {
		return MoveNone
	}
	from := MakeSquare(matches[1])
	to := MakeSquare(matches[2])
	promoType := PtNone
	if matches[3] != "" {
		promoType = MakePieceTypeFromChar(matches[3][0])
	}

	ml := moveslice.NewMoveSlice(MaxMoves)
	mg.GenerateLegalMoves(p, ml)
	for _, m := range *ml {
		if m.From() == from && m.To() == to && m.PromotionType() == promoType {
			return m
		}
	}
	return MoveNone
}

var regexSanMove = regexp.MustCompile("^([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?([!?+#]*)?$")

// GetMoveFromSan returns the move which matches the given SAN move
// string (e.g. Nf3, exd5, e8=Q, O-O) on the position or MoveNone when
// the string could not be matched to exactly one legal move.
func (mg *Movegen) GetMoveFromSan(p *position.Position, sanMove string) Move {
	san := strings.TrimSpace(sanMove)
	matches := regexSanMove.FindStringSubmatch(san)
	if matches == nil {
		return MoveNone
	}

	pieceStr := matches[1]
	disambFile := matches[2]
	disambRank := matches[3]
	targetStr := matches[4]
	promoStr := matches[6]

	ml := moveslice.NewMoveSlice(MaxMoves)
	mg.GenerateLegalMoves(p, ml)

	// castling
	if targetStr == "O-O" || targetStr == "O-O-O" {
		wanted := KingSideCastle
		if targetStr == "O-O-O" {
			wanted = QueenSideCastle
		}
		for _, m := range *ml {
			if m.Flags() == wanted {
				return m
			}
		}
		return MoveNone
	}

	targetSq := MakeSquare(targetStr)
	pt := Pawn
	if pieceStr != "" {
		pt = MakePieceTypeFromChar(pieceStr[0])
	}
	promoType := PtNone
	if promoStr != "" {
		promoType = MakePieceTypeFromChar(promoStr[0])
	}

	found := MoveNone
	matchCount := 0
	for _, m := range *ml {
		if m.To() != targetSq || m.PieceTypeOf() != pt || m.PromotionType() != promoType {
			continue
		}
		if disambFile != "" && m.From().FileOf().String() != disambFile {
			continue
		}
		if disambRank != "" && m.From().RankOf().String() != disambRank {
			continue
		}
		found = m
		matchCount++
	}
	if matchCount != 1 {
		return MoveNone
	}
	return found
}
