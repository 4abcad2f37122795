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

package movelist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/vantagechess/VantageGo/internal/types"
)

func TestMoveListBasics(t *testing.T) {
	ml := NewMoveList()
	assert.Equal(t, 0, ml.Len())

	m1 := CreateMove(SqE2, SqE4, Pawn, PtNone, DoublePush)
	m2 := CreateMove(SqE7, SqE5, Pawn, PtNone, DoublePush)
	ml.PushBack(m1)
	ml.PushBack(m2)
	assert.Equal(t, 2, ml.Len())
	assert.Equal(t, m1, ml.Front())
	assert.Equal(t, m2, ml.Back())

	assert.Equal(t, "e2e4 e7e5", ml.StringUci())

	assert.Equal(t, m1, ml.PopFront())
	assert.Equal(t, 1, ml.Len())
	ml.Clear()
	assert.Equal(t, 0, ml.Len())
}
