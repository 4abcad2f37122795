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

package search

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var outLimits = message.NewPrinter(language.English)

// Limits is a data structure to hold all information about how a
// search of the chess games shall be controlled. They are usually
// set through the UCI "go" command.
type Limits struct {
	// no time control - search until stopped or max depth reached
	Infinite bool

	// depth limit in plys
	Depth int

	// fixed time per move
	MoveTime time.Duration

	// remaining times and increments of the game clock
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration

	// number of moves to the next time control, 0 if unknown
	MovesToGo int

	// TimeControl is true when the search must manage its time
	// (MoveTime or game clock given)
	TimeControl bool
}

// NewSearchLimits creates a new Limits instance with defaults
// (infinite search limited only by max depth)
func NewSearchLimits() *Limits {
	return &Limits{Depth: maxSearchDepth}
}

func (sl *Limits) String() string {
	var os strings.Builder
	os.WriteString(outLimits.Sprintf("infinite: %v, depth: %d, movetime: %d ms, ",
		sl.Infinite, sl.Depth, sl.MoveTime.Milliseconds()))
	os.WriteString(outLimits.Sprintf("wtime: %d ms, btime: %d ms, winc: %d ms, binc: %d ms, movestogo: %d",
		sl.WhiteTime.Milliseconds(), sl.BlackTime.Milliseconds(),
		sl.WhiteInc.Milliseconds(), sl.BlackInc.Milliseconds(), sl.MovesToGo))
	return os.String()
}
