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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vantagechess/VantageGo/internal/logging"
	"github.com/vantagechess/VantageGo/internal/moveslice"
	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
)

var out = message.NewPrinter(language.English)

// Perft is class to test move generation of the chess engine.
type Perft struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checkmates uint64
	stopFlag   bool

	// pre-allocated move buffers per ply to avoid allocation in the
	// perft hot path
	buffers [MaxDepth]*moveslice.MoveSlice
	mg      *Movegen
}

// NewPerft creates a new empty Perft instance
func NewPerft() *Perft {
	p := &Perft{mg: NewMoveGen()}
	for i := 0; i < MaxDepth; i++ {
		p.buffers[i] = moveslice.NewMoveSlice(MaxMoves)
	}
	return p
}

// Stop can be used when perft is running in a goroutine to stop it
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerft is using the given fen and depth to start a perft
// measurement. When verbose is true it also counts captures, en
// passants, castles, promotions and checkmates.
func (perft *Perft) StartPerft(fen string, depth int, verbose bool) uint64 {
	log := logging.GetLog()
	perft.stopFlag = false
	perft.resetCounter()

	p, err := position.NewPositionFen(fen)
	if err != nil {
		log.Errorf("perft could not parse fen: %s", fen)
		return 0
	}

	log.Infof("Performing PERFT Test for Depth %d", depth)
	start := time.Now()

	if verbose {
		perft.perftVerbose(p, depth)
	} else {
		perft.Nodes = perft.perft(p, depth)
	}

	elapsed := time.Since(start)
	log.Info(out.Sprintf("PERFT Test for Depth %d: %d nodes in %d ms (%d nps)",
		depth, perft.Nodes, elapsed.Milliseconds(),
		uint64(float64(perft.Nodes)/(float64(elapsed.Nanoseconds())/1e9))))

	return perft.Nodes
}

// Perft runs a plain node count perft on an existing position
func (perft *Perft) Perft(p *position.Position, depth int) uint64 {
	perft.resetCounter()
	perft.Nodes = perft.perft(p, depth)
	return perft.Nodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.Captures = 0
	perft.EnPassants = 0
	perft.Castles = 0
	perft.Promotions = 0
	perft.Checkmates = 0
}

// plain perft only counting leaf nodes
func (perft *Perft) perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if perft.stopFlag {
		return 0
	}
	ml := perft.buffers[depth]
	ml.Clear()
	perft.mg.GenerateLegalMoves(p, ml)
	if depth == 1 {
		return uint64(ml.Len())
	}
	var nodes uint64
	for _, m := range *ml {
		undo := p.DoMove(m)
		nodes += perft.perft(p, depth-1)
		p.UndoMove(undo)
	}
	return nodes
}

// verbose perft counting move type details at the leaves
func (perft *Perft) perftVerbose(p *position.Position, depth int) {
	if depth == 0 {
		perft.Nodes++
		return
	}
	if perft.stopFlag {
		return
	}
	ml := perft.buffers[depth]
	ml.Clear()
	perft.mg.GenerateLegalMoves(p, ml)
	for _, m := range *ml {
		if depth == 1 {
			if m.IsCapture() {
				perft.Captures++
			}
			if m.IsEnPassant() {
				perft.EnPassants++
			}
			if m.IsCastling() {
				perft.Castles++
			}
			if m.IsPromotion() {
				perft.Promotions++
			}
		}
		undo := p.DoMove(m)
		if depth == 1 && p.HasCheck() && !perft.mg.HasLegalMove(p) {
			perft.Checkmates++
		}
		perft.perftVerbose(p, depth-1)
		p.UndoMove(undo)
	}
}
