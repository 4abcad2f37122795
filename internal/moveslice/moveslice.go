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

// Package moveslice provides a data structure for storing moves in a
// flat slice. It is mainly used for move generation buffers and the
// principal variation and avoids allocations in hot paths when created
// with sufficient capacity.
package moveslice

import (
	"strings"

	. "github.com/vantagechess/VantageGo/internal/types"
)

// MoveSlice represents a list of moves based on a slice
type MoveSlice []Move

// NewMoveSlice creates a new move slice with the given capacity
// and 0 elements
func NewMoveSlice(cap int) *MoveSlice {
	moves := make(MoveSlice, 0, cap)
	return &moves
}

// Len returns the number of moves currently stored in the slice
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns the capacity of the slice
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends an element at the end of the slice
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the move from the back of the slice.
// If the slice is empty, the call panics.
func (ms *MoveSlice) PopBack() Move {
	if len(*ms) <= 0 {
		panic("MoveSlice: PopBack() called on empty slice")
	}
	backMove := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return backMove
}

// At returns the move at index i
func (ms *MoveSlice) At(i int) Move {
	return (*ms)[i]
}

// Set sets the move at index i
func (ms *MoveSlice) Set(i int, move Move) {
	(*ms)[i] = move
}

// Clear removes all moves from the slice, but retains the current capacity
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Contains reports whether the slice holds a move equal to m
func (ms *MoveSlice) Contains(m Move) bool {
	for _, move := range *ms {
		if move == m {
			return true
		}
	}
	return false
}

// Clone copies the slice into a newly allocated MoveSlice
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make(MoveSlice, len(*ms), cap(*ms))
	copy(dest, *ms)
	return &dest
}

// StringUci returns a string with a space separated list of all moves
// in the list in UCI protocol format
func (ms *MoveSlice) StringUci() string {
	var os strings.Builder
	for i, m := range *ms {
		if i > 0 {
			os.WriteString(" ")
		}
		os.WriteString(m.StringUci())
	}
	return os.String()
}
