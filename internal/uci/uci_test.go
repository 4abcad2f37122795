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

package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantagechess/VantageGo/internal/config"
	"github.com/vantagechess/VantageGo/internal/position"
)

func TestUciCommand(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("uci")
	assert.Contains(t, response, "id name VantageGo")
	assert.Contains(t, response, "id author")
	assert.Contains(t, response, "option name Hash")
	assert.Contains(t, response, "uciok")
}

func TestIsReady(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("isready")
	assert.Contains(t, response, "readyok")
}

func TestPositionCommand(t *testing.T) {
	u := NewUciHandler()

	u.Command("position startpos")
	assert.Equal(t, position.StartFen, u.myPosition.StringFen())

	u.Command("position startpos moves e2e4 e7e5")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		u.myPosition.StringFen())
	assert.Equal(t, 2, u.moveHistory.Len())

	u.Command("position fen r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.Equal(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		u.myPosition.StringFen())
}

func TestPositionCommandIllegalMove(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("position startpos moves e2e4 e2e4")
	assert.Contains(t, response, "illegal move")
	// the first legal move was applied, the rest ignored
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		u.myPosition.StringFen())
}

func TestPositionCommandInvalidFen(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("position fen not/a/valid/fen w - - 0 1")
	assert.Contains(t, response, "invalid fen")
}

func TestDisplayAndFenCommands(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos")
	assert.Contains(t, u.Command("fen"), position.StartFen)
	assert.Contains(t, u.Command("d"), "+---+")
}

func TestSetOption(t *testing.T) {
	u := NewUciHandler()
	oldSize := config.Settings.Search.TTSize
	defer func() { config.Settings.Search.TTSize = oldSize }()

	u.Command("setoption name Hash value 8")
	assert.Equal(t, 8, config.Settings.Search.TTSize)

	u.Command("setoption name OwnBook value true")
	assert.True(t, config.Settings.Search.UseBook)
	u.Command("setoption name OwnBook value false")
	assert.False(t, config.Settings.Search.UseBook)
}

func TestGoAndStop(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos")
	response := u.Command("go depth 3")
	_ = response
	u.mySearch.WaitWhileSearching()
	result := u.mySearch.LastSearchResult()
	assert.Equal(t, 3, result.Depth)
	assert.True(t, result.BestMove.IsValid())
}

func TestGoMovetimeParsing(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos")
	u.Command("go movetime 200")
	u.mySearch.WaitWhileSearching()
	assert.True(t, u.mySearch.LastSearchResult().BestMove.IsValid())
}

func TestUnknownCommand(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("hello world")
	assert.Contains(t, response, "unknown command")
}

func TestPerftCommand(t *testing.T) {
	u := NewUciHandler()
	u.Command("position startpos")
	response := u.Command("perft 3")
	assert.Contains(t, response, "8,902")
}
