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

// Package uci contains the UciHandler data structure and functionality
// to handle the UCI protocol communication between a chess user
// interface and the engine.
package uci

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/vantagechess/VantageGo/internal/logging"
	"github.com/vantagechess/VantageGo/internal/movegen"
	"github.com/vantagechess/VantageGo/internal/movelist"
	"github.com/vantagechess/VantageGo/internal/position"
	"github.com/vantagechess/VantageGo/internal/search"
	. "github.com/vantagechess/VantageGo/internal/types"
	"github.com/vantagechess/VantageGo/internal/version"
)

var out = message.NewPrinter(language.English)

// UciHandler handles all communication with the chess ui via UCI
// and controls options and search.
// Create an instance with NewUciHandler()
type UciHandler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	log    *logging.Logger
	uciLog *logging.Logger

	myMoveGen   *movegen.Movegen
	mySearch    *search.Search
	myPosition  *position.Position
	myPerft     *movegen.Perft
	moveHistory *movelist.MoveList
}

// NewUciHandler creates a new UciHandler instance.
// Input / Output io can be replaced by changing the instance's
// InIo and OutIo members.
func NewUciHandler() *UciHandler {
	u := &UciHandler{
		InIo:        bufio.NewScanner(os.Stdin),
		OutIo:       bufio.NewWriter(os.Stdout),
		log:         myLogging.GetLog(),
		uciLog:      myLogging.GetUciLog(),
		myMoveGen:   movegen.NewMoveGen(),
		mySearch:    search.NewSearch(),
		myPosition:  position.NewPosition(),
		myPerft:     movegen.NewPerft(),
		moveHistory: movelist.NewMoveList(),
	}
	u.mySearch.SetUciHandler(u)
	return u
}

// Loop starts the main loop to receive commands through the input
// stream (pipe or user). Returns on "quit".
func (u *UciHandler) Loop() {
	u.loop()
}

// Command handles a single line of UCI protocol aka command.
// Returns the uci response as string output.
// Mostly useful for debugging and unit testing.
func (u *UciHandler) Command(cmd string) string {
	tmp := u.OutIo
	buffer := new(bytes.Buffer)
	u.OutIo = bufio.NewWriter(buffer)
	u.handleReceivedCommand(cmd)
	_ = u.OutIo.Flush()
	u.OutIo = tmp
	return buffer.String()
}

// ///////////////////////////////////////////////////////////
// UciDriver interface (search -> ui)
// ///////////////////////////////////////////////////////////

// SendReadyOk sends "readyok" to the UCI user interface
func (u *UciHandler) SendReadyOk() {
	u.send("readyok")
}

// SendInfoString sends an "info string" message
func (u *UciHandler) SendInfoString(info string) {
	u.send("info string " + info)
}

// SendIterationEndInfo sends the result of a completed iteration
func (u *UciHandler) SendIterationEndInfo(depth int, value Value, nodes uint64, nps uint64, searchTime time.Duration, pv string) {
	u.send(out.Sprintf("info depth %d score %s nodes %d nps %d time %d pv %s",
		depth, value.String(), nodes, nps, searchTime.Milliseconds(), pv))
}

// SendResult sends the final "bestmove" of a search
func (u *UciHandler) SendResult(bestMove Move) {
	u.send("bestmove " + bestMove.StringUci())
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

func (u *UciHandler) loop() {
	for u.InIo.Scan() {
		cmd := strings.TrimSpace(u.InIo.Text())
		if cmd == "" {
			continue
		}
		u.uciLog.Debugf("<< %s", cmd)
		if !u.handleReceivedCommand(cmd) {
			break
		}
	}
}

// handleReceivedCommand dispatches one UCI command line.
// Returns false on "quit".
func (u *UciHandler) handleReceivedCommand(cmd string) bool {
	tokens := strings.Fields(cmd)
	if len(tokens) == 0 {
		return true
	}
	switch tokens[0] {
	case "uci":
		u.uciCommand()
	case "isready":
		u.mySearch.IsReady()
	case "setoption":
		u.setOptionCommand(tokens)
	case "ucinewgame":
		u.newGameCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.mySearch.StopSearch()
	case "ponderhit":
		// pondering is not supported - ignore
	case "register", "debug":
		// not supported - ignore
	case "d", "display":
		u.send(u.myPosition.String())
	case "fen":
		u.send(u.myPosition.StringFen())
	case "perft":
		u.perftCommand(tokens)
	case "bench":
		u.benchCommand(tokens)
	case "quit":
		u.mySearch.StopSearch()
		u.mySearch.WaitWhileSearching()
		return false
	default:
		u.log.Warningf("Unknown UCI command: %s", cmd)
		u.SendInfoString("unknown command " + cmd)
	}
	return true
}

func (u *UciHandler) uciCommand() {
	u.send("id name VantageGo " + version.Version())
	u.send("id author VantageGo Authors")
	u.sendOptions()
	u.send("uciok")
}

func (u *UciHandler) newGameCommand() {
	if u.mySearch.IsSearching() {
		u.mySearch.StopSearch()
		u.mySearch.WaitWhileSearching()
	}
	u.myPosition = position.NewPosition()
	u.moveHistory.Clear()
	u.mySearch.NewGame()
}

// positionCommand handles "position [startpos | fen <fen>] [moves ...]".
// Illegal or unparsable moves are rejected with a diagnostic and the
// remaining moves are ignored.
func (u *UciHandler) positionCommand(tokens []string) {
	i := 1
	fen := position.StartFen
	if i < len(tokens) && tokens[i] == "startpos" {
		i++
	} else if i < len(tokens) && tokens[i] == "fen" {
		i++
		var fenParts []string
		for i < len(tokens) && tokens[i] != "moves" {
			fenParts = append(fenParts, tokens[i])
			i++
		}
		fen = strings.Join(fenParts, " ")
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		u.log.Errorf("position command with invalid fen: %s (%s)", fen, err)
		u.SendInfoString("invalid fen " + fen)
		return
	}
	u.myPosition = p
	u.moveHistory.Clear()

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := u.myMoveGen.GetMoveFromUci(u.myPosition, tokens[i])
			if m == MoveNone {
				u.log.Errorf("position command with illegal move: %s", tokens[i])
				u.SendInfoString("illegal move " + tokens[i])
				return
			}
			u.myPosition.DoMove(m)
			u.moveHistory.PushBack(m)
		}
	}
}

// goCommand handles the "go" command and its parameters and starts
// the search
func (u *UciHandler) goCommand(tokens []string) {
	sl := search.NewSearchLimits()
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "depth":
			if i+1 < len(tokens) {
				sl.Depth = parseIntOr(tokens[i+1], sl.Depth)
				i++
			}
		case "movetime":
			if i+1 < len(tokens) {
				sl.MoveTime = time.Duration(parseIntOr(tokens[i+1], 0)) * time.Millisecond
				sl.TimeControl = true
				i++
			}
		case "wtime":
			if i+1 < len(tokens) {
				sl.WhiteTime = time.Duration(parseIntOr(tokens[i+1], 0)) * time.Millisecond
				sl.TimeControl = true
				i++
			}
		case "btime":
			if i+1 < len(tokens) {
				sl.BlackTime = time.Duration(parseIntOr(tokens[i+1], 0)) * time.Millisecond
				sl.TimeControl = true
				i++
			}
		case "winc":
			if i+1 < len(tokens) {
				sl.WhiteInc = time.Duration(parseIntOr(tokens[i+1], 0)) * time.Millisecond
				i++
			}
		case "binc":
			if i+1 < len(tokens) {
				sl.BlackInc = time.Duration(parseIntOr(tokens[i+1], 0)) * time.Millisecond
				i++
			}
		case "movestogo":
			if i+1 < len(tokens) {
				sl.MovesToGo = parseIntOr(tokens[i+1], 0)
				i++
			}
		case "infinite":
			sl.Infinite = true
			sl.TimeControl = false
		case "ponder":
			// pondering is not supported - ignore
		}
		i++
	}
	u.mySearch.StartSearch(*u.myPosition, *sl)
}

// perftCommand runs perft on the current position
// usage: perft <depth>
func (u *UciHandler) perftCommand(tokens []string) {
	depth := 5
	if len(tokens) > 1 {
		depth = parseIntOr(tokens[1], depth)
	}
	start := time.Now()
	nodes := u.myPerft.Perft(u.myPosition, depth)
	elapsed := time.Since(start)
	u.send(out.Sprintf("info string perft depth %d nodes %d time %d ms",
		depth, nodes, elapsed.Milliseconds()))
}

// benchCommand runs a fixed set of positions with a fixed depth to
// get a repeatable node count and nps measure
// usage: bench [depth]
func (u *UciHandler) benchCommand(tokens []string) {
	depth := 6
	if len(tokens) > 1 {
		depth = parseIntOr(tokens[1], depth)
	}

	benchFens := []string{
		position.StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	}

	totalNodes := uint64(0)
	start := time.Now()
	for _, fen := range benchFens {
		p, err := position.NewPositionFen(fen)
		if err != nil {
			continue
		}
		sl := search.NewSearchLimits()
		sl.Depth = depth
		u.mySearch.StartSearch(*p, *sl)
		u.mySearch.WaitWhileSearching()
		totalNodes += u.mySearch.NodesVisited()
	}
	elapsed := time.Since(start)
	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(totalNodes) / elapsed.Seconds())
	}
	u.send(out.Sprintf("info string bench depth %d nodes %d time %d ms nps %d",
		depth, totalNodes, elapsed.Milliseconds(), nps))
}

func (u *UciHandler) send(s string) {
	u.uciLog.Debugf(">> %s", s)
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}

func parseIntOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
