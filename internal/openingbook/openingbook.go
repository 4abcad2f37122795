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

// Package openingbook reads game databases of different formats into
// an internal data structure keyed by the engine's zobrist keys. It
// can then be queried for a book move on a certain position.
//
// Supported formats are currently:
//
// "Simple" for files storing a game per line in from-square to-square
// (UCI) notation
//
// "San" for files with lines of moves in SAN notation
//
// Loading a large book takes a while, therefore the processed book is
// cached to disk with gob and reloaded from there when possible.
package openingbook

import (
	"bufio"
	"encoding/gob"
	"errors"
	"math/rand"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/vantagechess/VantageGo/internal/logging"
	"github.com/vantagechess/VantageGo/internal/movegen"
	"github.com/vantagechess/VantageGo/internal/movelist"
	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
	"github.com/vantagechess/VantageGo/internal/util"
)

var out = message.NewPrinter(language.English)

// Successor represents a tuple of a move and the zobrist key of the
// position the move leads to
type Successor struct {
	Move      uint32
	NextEntry uint64
}

// BookEntry represents one position in the book with a usage counter
// and links to the positions reachable by the stored moves
type BookEntry struct {
	ZobristKey uint64
	Counter    int
	Moves      []Successor
}

// Book is the opening book data structure. Create with NewBook() and
// fill with Initialize().
type Book struct {
	log         *logging.Logger
	bookMap     map[uint64]BookEntry
	rootEntry   uint64
	numEntries  int
	numGames    int
	initialized bool
}

// NewBook creates a new empty opening book
func NewBook() *Book {
	return &Book{
		log: myLogging.GetLog(),
	}
}

// NumberOfEntries returns the number of positions in the book
func (b *Book) NumberOfEntries() int {
	return b.numEntries
}

// NumberOfGames returns the number of games read into the book
func (b *Book) NumberOfGames() int {
	return b.numGames
}

// Initialize reads game data from the given file into the book.
// Format must be "Simple" or "San". A cache file (<path>.cache) is
// used when it is newer than the book file.
func (b *Book) Initialize(bookPath string, format string) error {
	if b.initialized {
		return nil
	}

	path, err := util.ResolveFile(bookPath)
	if err != nil {
		return err
	}

	startTime := time.Now()

	// try cache first
	if b.loadFromCache(path) {
		b.initialized = true
		b.log.Info(out.Sprintf("Opening book loaded from cache with %d positions from %d games in %d ms",
			b.numEntries, b.numGames, time.Since(startTime).Milliseconds()))
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	b.bookMap = make(map[uint64]BookEntry)

	// the root entry is the starting position
	root := position.NewPosition()
	b.rootEntry = uint64(root.ZobristKey())
	b.bookMap[b.rootEntry] = BookEntry{ZobristKey: b.rootEntry}

	scanner := bufio.NewScanner(file)
	lines := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines++
		switch strings.ToLower(format) {
		case "simple":
			b.processSimpleLine(line)
		case "san":
			b.processSanLine(line)
		default:
			return errors.New("unknown book format: " + format)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	b.numEntries = len(b.bookMap)
	b.initialized = true

	b.log.Info(out.Sprintf("Opening book with %d positions from %d games created in %d ms",
		b.numEntries, b.numGames, time.Since(startTime).Milliseconds()))

	b.saveToCache(path)
	return nil
}

// GetEntry returns the book entry for the given zobrist key
func (b *Book) GetEntry(key position.Key) (BookEntry, bool) {
	e, ok := b.bookMap[uint64(key)]
	return e, ok
}

// GetRandomMove returns a random move from the book for the given
// position weighted by how often the successor positions were reached
// in the book games. Returns MoveNone when the position is not in the
// book or has no continuations.
func (b *Book) GetRandomMove(p *position.Position) Move {
	if !b.initialized {
		return MoveNone
	}
	entry, ok := b.bookMap[uint64(p.ZobristKey())]
	if !ok || len(entry.Moves) == 0 {
		return MoveNone
	}

	totalWeight := 0
	weights := make([]int, len(entry.Moves))
	for i, successor := range entry.Moves {
		w := 1
		if next, ok := b.bookMap[successor.NextEntry]; ok && next.Counter > 0 {
			w = next.Counter
		}
		weights[i] = w
		totalWeight += w
	}

	pick := rand.Intn(totalWeight)
	for i, successor := range entry.Moves {
		if pick < weights[i] {
			return Move(successor.Move)
		}
		pick -= weights[i]
	}
	return Move(entry.Moves[0].Move)
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// processSimpleLine reads one game of space separated UCI moves
// (a concatenated string of 4-character moves is accepted as well)
func (b *Book) processSimpleLine(line string) {
	var moveStrings []string
	if strings.ContainsAny(line, " \t") {
		moveStrings = strings.Fields(line)
	} else {
		for i := 0; i+4 <= len(line); i += 4 {
			moveStrings = append(moveStrings, line[i:i+4])
		}
	}
	b.processGame(moveStrings, false)
}

var regexMoveNumber = regexp.MustCompile(`^\d+\.*$`)
var regexResult = regexp.MustCompile(`^(1-0|0-1|1/2-1/2|\*)$`)

// processSanLine reads one game of SAN moves, skipping move numbers
// and results
func (b *Book) processSanLine(line string) {
	var moveStrings []string
	for _, token := range strings.Fields(line) {
		if regexMoveNumber.MatchString(token) || regexResult.MatchString(token) {
			continue
		}
		moveStrings = append(moveStrings, token)
	}
	b.processGame(moveStrings, true)
}

// processGame plays the moves of one game from the start position and
// stores every reached position into the book
func (b *Book) processGame(moveStrings []string, san bool) {
	mg := movegen.NewMoveGen()
	p := position.NewPosition()
	played := movelist.NewMoveList()

	for _, ms := range moveStrings {
		var m Move
		if san {
			m = mg.GetMoveFromSan(p, ms)
		} else {
			m = mg.GetMoveFromUci(p, ms)
		}
		if m == MoveNone {
			// stop at the first unreadable move, keep the prefix
			break
		}

		curKey := uint64(p.ZobristKey())
		p.DoMove(m)
		nextKey := uint64(p.ZobristKey())
		played.PushBack(m)

		// add or update the next entry
		nextEntry, ok := b.bookMap[nextKey]
		if !ok {
			nextEntry = BookEntry{ZobristKey: nextKey}
		}
		nextEntry.Counter++
		b.bookMap[nextKey] = nextEntry

		// link the move in the current entry
		curEntry := b.bookMap[curKey]
		exists := false
		for _, successor := range curEntry.Moves {
			if successor.Move == uint32(m) {
				exists = true
				break
			}
		}
		if !exists {
			curEntry.Moves = append(curEntry.Moves, Successor{Move: uint32(m), NextEntry: nextKey})
			b.bookMap[curKey] = curEntry
		}
	}

	if played.Len() > 0 {
		b.numGames++
	}
}

// bookCache is the gob serialized form of the book
type bookCache struct {
	BookMap   map[uint64]BookEntry
	RootEntry uint64
	NumGames  int
}

func (b *Book) cachePath(path string) string {
	return path + ".cache"
}

// loadFromCache loads the book from the gob cache when the cache is
// newer than the book file
func (b *Book) loadFromCache(path string) bool {
	cache := b.cachePath(path)
	cacheInfo, err := os.Stat(cache)
	if err != nil {
		return false
	}
	bookInfo, err := os.Stat(path)
	if err == nil && bookInfo.ModTime().After(cacheInfo.ModTime()) {
		return false
	}
	f, err := os.Open(cache)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	var data bookCache
	if err := gob.NewDecoder(bufio.NewReader(f)).Decode(&data); err != nil {
		b.log.Warningf("Could not decode book cache %s: %s", cache, err)
		return false
	}
	b.bookMap = data.BookMap
	b.rootEntry = data.RootEntry
	b.numGames = data.NumGames
	b.numEntries = len(b.bookMap)
	return true
}

// saveToCache serializes the book to the gob cache file
func (b *Book) saveToCache(path string) {
	cache := b.cachePath(path)
	f, err := os.Create(cache)
	if err != nil {
		b.log.Warningf("Could not create book cache %s: %s", cache, err)
		return
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	data := bookCache{BookMap: b.bookMap, RootEntry: b.rootEntry, NumGames: b.numGames}
	if err := gob.NewEncoder(w).Encode(&data); err != nil {
		b.log.Warningf("Could not encode book cache %s: %s", cache, err)
		return
	}
	_ = w.Flush()
}
