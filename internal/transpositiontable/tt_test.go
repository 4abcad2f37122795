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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
)

func TestNewTtTable(t *testing.T) {
	tt := NewTtTable(2)
	// the largest power of two of entries fitting into 2 MB
	assert.Equal(t, uint64(65536), tt.Capacity())
	assert.Equal(t, uint64(0), tt.Len())

	// capacity is always a power of two
	tt = NewTtTable(3)
	assert.Equal(t, uint64(0), tt.Capacity()&(tt.Capacity()-1))
}

func TestPutAndProbe(t *testing.T) {
	tt := NewTtTable(1)
	key := position.Key(0xDEADBEEF12345678)
	m := CreateMove(SqE2, SqE4, Pawn, PtNone, DoublePush)

	tt.Put(key, m, Value(123), 7, Exact)
	assert.Equal(t, uint64(1), tt.Len())

	e := tt.Probe(key)
	assert.NotNil(t, e)
	assert.Equal(t, m, e.Move)
	assert.Equal(t, Value(123), e.Value)
	assert.Equal(t, int8(7), e.Depth)
	assert.Equal(t, Exact, e.Type)

	// a different key misses
	assert.Nil(t, tt.Probe(key^1))
}

func TestReplacementPolicy(t *testing.T) {
	tt := NewTtTable(1)
	key := position.Key(42)
	m1 := CreateMove(SqE2, SqE4, Pawn, PtNone, DoublePush)
	m2 := CreateMove(SqD2, SqD4, Pawn, PtNone, DoublePush)

	tt.Put(key, m1, Value(10), 8, Exact)

	// shallower entries of the same generation do not replace
	tt.Put(key, m2, Value(20), 3, Exact)
	e := tt.Probe(key)
	assert.Equal(t, m1, e.Move)
	assert.Equal(t, int8(8), e.Depth)

	// equal or deeper entries replace
	tt.Put(key, m2, Value(20), 8, LowerBound)
	e = tt.Probe(key)
	assert.Equal(t, m2, e.Move)
	assert.Equal(t, LowerBound, e.Type)

	// entries of a prior generation are replaced regardless of depth
	tt.NewSearch()
	tt.Put(key, m1, Value(30), 1, UpperBound)
	e = tt.Probe(key)
	assert.Equal(t, int8(1), e.Depth)
	assert.Equal(t, Value(30), e.Value)
}

func TestBestMovePreservation(t *testing.T) {
	tt := NewTtTable(1)
	key := position.Key(4711)
	m := CreateMove(SqG1, SqF3, Knight, PtNone, Quiet)

	tt.Put(key, m, Value(50), 5, Exact)
	// storing without a move keeps the existing move
	tt.Put(key, MoveNone, Value(60), 6, LowerBound)
	e := tt.Probe(key)
	assert.Equal(t, m, e.Move)
	assert.Equal(t, Value(60), e.Value)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(position.Key(1), MoveNone, Value(1), 1, Exact)
	assert.Equal(t, uint64(1), tt.Len())
	tt.Clear()
	assert.Equal(t, uint64(0), tt.Len())
	assert.Nil(t, tt.Probe(position.Key(1)))
}

func TestMateValueNormalization(t *testing.T) {
	// a mate found 5 plies from the root stored at ply 3 must probe
	// back correctly at a different ply
	mateAtRoot := ValueCheckMate - 5

	stored := ValueToTT(mateAtRoot, 3)
	assert.Equal(t, ValueCheckMate-2, stored)

	probed := ValueFromTT(stored, 1)
	assert.Equal(t, ValueCheckMate-3, probed)

	// negative mate scores mirror
	matedAtRoot := -ValueCheckMate + 5
	stored = ValueToTT(matedAtRoot, 3)
	assert.Equal(t, -ValueCheckMate+2, stored)
	probed = ValueFromTT(stored, 1)
	assert.Equal(t, -ValueCheckMate+3, probed)

	// non mate scores pass through unchanged
	assert.Equal(t, Value(123), ValueToTT(123, 10))
	assert.Equal(t, Value(-123), ValueFromTT(-123, 10))
}
