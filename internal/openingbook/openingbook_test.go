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

package openingbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantagechess/VantageGo/internal/movegen"
	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
)

func writeTempBook(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSimpleBook(t *testing.T) {
	path := writeTempBook(t, "simple.txt", `
e2e4 e7e5 g1f3 b8c6
e2e4 c7c5 g1f3 d7d6
d2d4 d7d5 c2c4 e7e6
`)
	book := NewBook()
	assert.NoError(t, book.Initialize(path, "Simple"))
	assert.Equal(t, 3, book.NumberOfGames())
	assert.True(t, book.NumberOfEntries() > 3)

	// the start position must have two continuations: e2e4 and d2d4
	p := position.NewPosition()
	entry, ok := book.GetEntry(p.ZobristKey())
	assert.True(t, ok)
	assert.Equal(t, 2, len(entry.Moves))

	m := book.GetRandomMove(p)
	assert.NotEqual(t, MoveNone, m)
	uci := m.StringUci()
	assert.True(t, uci == "e2e4" || uci == "d2d4", "unexpected book move %s", uci)

	// after 1.e4 e5 2.Nf3 the book knows b8c6
	mg := movegen.NewMoveGen()
	for _, mv := range []string{"e2e4", "e7e5", "g1f3"} {
		p.DoMove(mg.GetMoveFromUci(p, mv))
	}
	m = book.GetRandomMove(p)
	assert.Equal(t, "b8c6", m.StringUci())
}

func TestSanBook(t *testing.T) {
	path := writeTempBook(t, "san.txt", `
1. e4 e5 2. Nf3 Nc6 3. Bb5 1-0
1. d4 Nf6 2. c4 e6 1/2-1/2
`)
	book := NewBook()
	assert.NoError(t, book.Initialize(path, "San"))
	assert.Equal(t, 2, book.NumberOfGames())

	p := position.NewPosition()
	m := book.GetRandomMove(p)
	uci := m.StringUci()
	assert.True(t, uci == "e2e4" || uci == "d2d4", "unexpected book move %s", uci)
}

func TestBookMiss(t *testing.T) {
	path := writeTempBook(t, "small.txt", "e2e4 e7e5\n")
	book := NewBook()
	assert.NoError(t, book.Initialize(path, "Simple"))

	// a position not in the book yields MoveNone
	p, _ := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.Equal(t, MoveNone, book.GetRandomMove(p))
}

func TestBookCache(t *testing.T) {
	path := writeTempBook(t, "cached.txt", "e2e4 e7e5 g1f3\n")
	book := NewBook()
	assert.NoError(t, book.Initialize(path, "Simple"))

	// the cache file was written and a second book loads from it
	_, err := os.Stat(path + ".cache")
	assert.NoError(t, err)

	book2 := NewBook()
	assert.NoError(t, book2.Initialize(path, "Simple"))
	assert.Equal(t, book.NumberOfEntries(), book2.NumberOfEntries())
	assert.Equal(t, book.NumberOfGames(), book2.NumberOfGames())

	p := position.NewPosition()
	assert.Equal(t, "e2e4", book2.GetRandomMove(p).StringUci())
}

func TestUnknownFormat(t *testing.T) {
	path := writeTempBook(t, "bad.txt", "e2e4\n")
	book := NewBook()
	assert.Error(t, book.Initialize(path, "Pgn"))
}
