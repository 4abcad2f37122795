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
	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
)

// ValueType is the bound type of a stored search result
type ValueType uint8

// Constants for value types
const (
	// Exact - the value is the exact result of a full window search
	Exact ValueType = 0
	// LowerBound - the value is from a fail high (beta cutoff)
	LowerBound ValueType = 1
	// UpperBound - the value is from a fail low (no move improved alpha)
	UpperBound ValueType = 2
)

func (vt ValueType) String() string {
	switch vt {
	case Exact:
		return "EXACT"
	case LowerBound:
		return "LOWER"
	case UpperBound:
		return "UPPER"
	}
	return "NONE"
}

// TtEntry is a single slot of the transposition table
type TtEntry struct {
	Key        position.Key // zobrist key of the stored position
	Move       Move         // best move of the stored search, MoveNone if unknown
	Value      Value        // search value, mate values relative to the node
	Depth      int8         // remaining search depth of the stored search
	Type       ValueType    // bound type of the value
	Generation uint8        // search generation the entry was stored in
}

// TtEntrySize is the size in bytes of one entry including alignment
// padding (8 key + 4 move + 2 value + 1 depth + 1 type + 1 generation,
// padded to a multiple of 8)
const TtEntrySize = 24
