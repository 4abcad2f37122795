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

// Package uciInterface defines the interface between the search and
// the UCI protocol handler to break the import cycle between the
// search and the uci packages.
package uciInterface

import (
	"time"

	. "github.com/vantagechess/VantageGo/internal/types"
)

// UciDriver is the interface the search uses to report its progress
// and results to the UCI user interface
type UciDriver interface {
	// SendReadyOk sends "readyok" to the UCI user interface
	SendReadyOk()

	// SendInfoString sends an "info string" message
	SendInfoString(info string)

	// SendIterationEndInfo sends the result of a completed iteration
	// of the iterative deepening search
	SendIterationEndInfo(depth int, value Value, nodes uint64, nps uint64, searchTime time.Duration, pv string)

	// SendResult sends the final "bestmove" of the search
	SendResult(bestMove Move)
}
