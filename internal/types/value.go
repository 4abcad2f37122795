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
	"strconv"
	"strings"
)

// Value represents the positional value of a chess position in centipawns
type Value int16

// Constants for values
const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueInf                Value = 32000
	ValueNA                 Value = -ValueInf - 1
	ValueCheckMate          Value = 31000
	ValueCheckMateThreshold Value = 30000
)

// MaxDepth is the maximum search depth and ply the engine supports
const MaxDepth = 128

// MaxMoves is the maximum number of moves expected in any position.
// Used as a safe capacity for move buffers.
const MaxMoves = 256

// IsValid checks if value is within the valid range
func (v Value) IsValid() bool {
	return v >= -ValueInf && v <= ValueInf
}

// IsCheckMateValue returns true if value is above the check mate
// threshold, i.e. encodes a mate distance
func (v Value) IsCheckMateValue() bool {
	return v >= ValueCheckMateThreshold || v <= -ValueCheckMateThreshold
}

// String returns a UCI compatible representation of the value,
// either "cp <v>" or "mate <moves>"
func (v Value) String() string {
	var os strings.Builder
	if v.IsCheckMateValue() {
		os.WriteString("mate ")
		var plies Value
		if v > ValueZero {
			plies = ValueCheckMate - v
		} else {
			plies = -ValueCheckMate - v
		}
		os.WriteString(strconv.Itoa(int((plies + plies.sign()) / 2)))
	} else {
		os.WriteString("cp ")
		os.WriteString(strconv.Itoa(int(v)))
	}
	return os.String()
}

func (v Value) sign() Value {
	if v < 0 {
		return -1
	}
	return 1
}
