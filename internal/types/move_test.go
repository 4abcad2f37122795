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

func TestCreateMove(t *testing.T) {
	m := CreateMove(SqE2, SqE4, Pawn, PtNone, DoublePush)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Pawn, m.PieceTypeOf())
	assert.True(t, m.IsDoublePush())
	assert.False(t, m.IsCapture())
	assert.Equal(t, "e2e4", m.StringUci())
}

func TestMoveFlags(t *testing.T) {
	m := CreateMove(SqE5, SqD6, Pawn, PtNone, EnPassant)
	assert.True(t, m.IsCapture())
	assert.True(t, m.IsEnPassant())
	assert.False(t, m.IsPromotion())
	assert.False(t, m.IsQuiet())

	m = CreateMove(SqE7, SqE8, Pawn, Queen, Promotion)
	assert.True(t, m.IsPromotion())
	assert.False(t, m.IsCapture())
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "e7e8q", m.StringUci())

	m = CreateMove(SqB7, SqA8, Pawn, Knight, PromotionCapture)
	assert.True(t, m.IsPromotion())
	assert.True(t, m.IsCapture())
	assert.Equal(t, "b7a8n", m.StringUci())

	m = CreateMove(SqE1, SqG1, King, PtNone, KingSideCastle)
	assert.True(t, m.IsCastling())
	assert.True(t, m.IsQuiet())
	assert.Equal(t, "e1g1", m.StringUci())
}

func TestMoveNone(t *testing.T) {
	assert.False(t, MoveNone.IsValid())
	assert.Equal(t, "0000", MoveNone.StringUci())
}

func TestMoveSameAs(t *testing.T) {
	m1 := CreateMove(SqE2, SqE4, Pawn, PtNone, DoublePush)
	m2 := CreateMove(SqE2, SqE4, Pawn, PtNone, Quiet)
	assert.True(t, m1.SameAs(m2))
	m3 := CreateMove(SqE2, SqE3, Pawn, PtNone, Quiet)
	assert.False(t, m1.SameAs(m3))
}

func TestSquareConversion(t *testing.T) {
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqNone, MakeSquare("j9"))
	assert.Equal(t, "h8", SqH8.String())
	assert.Equal(t, SqA8, SqA1.Flip())
	assert.Equal(t, SqE4, SqE5.Flip())
	assert.Equal(t, SqNone, SqH4.To(East))
	assert.Equal(t, SqA2, SqA1.To(North))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "cp 23", Value(23).String())
	assert.Equal(t, "cp -100", Value(-100).String())
	// mate in 1 found at ply 1
	assert.Equal(t, "mate 1", (ValueCheckMate - 1).String())
	// mated in 2 plys
	assert.Equal(t, "mate -1", (-ValueCheckMate + 2).String())
	assert.True(t, (ValueCheckMate - 3).IsCheckMateValue())
	assert.False(t, Value(500).IsCheckMateValue())
}
