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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/vantagechess/VantageGo/internal/types"
)

func TestMoveSliceBasics(t *testing.T) {
	ms := NewMoveSlice(16)
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 16, ms.Cap())

	m1 := CreateMove(SqE2, SqE4, Pawn, PtNone, DoublePush)
	m2 := CreateMove(SqG1, SqF3, Knight, PtNone, Quiet)
	ms.PushBack(m1)
	ms.PushBack(m2)
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, m1, ms.At(0))
	assert.True(t, ms.Contains(m2))

	assert.Equal(t, m2, ms.PopBack())
	assert.Equal(t, 1, ms.Len())

	ms.Clear()
	assert.Equal(t, 0, ms.Len())
	assert.Equal(t, 16, ms.Cap())
}

func TestMoveSliceClone(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateMove(SqE2, SqE4, Pawn, PtNone, DoublePush))
	clone := ms.Clone()
	assert.Equal(t, ms.Len(), clone.Len())
	clone.PushBack(CreateMove(SqD2, SqD4, Pawn, PtNone, DoublePush))
	assert.NotEqual(t, ms.Len(), clone.Len())
}

func TestMoveSliceStringUci(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(CreateMove(SqE2, SqE4, Pawn, PtNone, DoublePush))
	ms.PushBack(CreateMove(SqE7, SqE5, Pawn, PtNone, DoublePush))
	assert.Equal(t, "e2e4 e7e5", ms.StringUci())
}
