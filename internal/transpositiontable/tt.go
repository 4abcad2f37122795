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

// Package transpositiontable implements a transposition table (cache)
// data structure and functionality for a chess engine search.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. This is especially relevant
// for Resize and Clear which should not be called while searching.
package transpositiontable

import (
	"math"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/vantagechess/VantageGo/internal/logging"
	"github.com/vantagechess/VantageGo/internal/position"
	. "github.com/vantagechess/VantageGo/internal/types"
)

var out = message.NewPrinter(language.English)

const (
	// MB is the number of bytes in a megabyte
	MB = 1024 * 1024
	// MaxSizeInMB is the maximal memory usage of the tt
	MaxSizeInMB = 65_536
)

// TtTable is the actual transposition table object holding data and
// state. Create with NewTtTable()
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	generation         uint8

	Stats TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfOverwrites uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable with the given number of MBytes as
// the maximum of memory usage. The actual size is the largest power of
// two of entries fitting into this budget (at least 1 entry).
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt table. All entries and the generation counter
// will be cleared.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	sizeInByte := uint64(sizeInMByte) * MB
	if sizeInByte < TtEntrySize {
		sizeInByte = TtEntrySize
	}
	tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(sizeInByte/TtEntrySize))))
	tt.hashKeyMask = tt.maxNumberOfEntries - 1
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.generation = 0
	tt.log.Debug(out.Sprintf("TT Size %d MByte, Capacity %d entries",
		tt.maxNumberOfEntries*TtEntrySize/MB, tt.maxNumberOfEntries))
}

// NewSearch increases the generation counter. Entries from prior
// generations are replaced more aggressively.
func (tt *TtTable) NewSearch() {
	tt.generation++
}

// Clear clears all entries of the tt
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.generation = 0
	tt.Stats = TtStats{}
}

// Put stores a search result into the tt. The caller must have
// normalized mate values to be relative to the node (ValueToTT).
// Replacement: empty slot, equal or greater depth, or an entry of a
// prior search generation. An existing best move is preserved when the
// incoming entry has none.
func (tt *TtTable) Put(key position.Key, move Move, value Value, depth int8, valueType ValueType) {
	e := &tt.data[tt.hash(key)]
	tt.Stats.numberOfPuts++

	if e.Key == 0 {
		tt.numberOfEntries++
	} else if depth < e.Depth && e.Generation == tt.generation {
		return
	} else {
		tt.Stats.numberOfOverwrites++
	}

	// preserve an existing best move when we store without one - the
	// picker validates externally supplied moves anyway
	if move == MoveNone && e.Move != MoveNone {
		move = e.Move
	}

	e.Key = key
	e.Move = move
	e.Value = value
	e.Depth = depth
	e.Type = valueType
	e.Generation = tt.generation
}

// Probe returns a pointer to the tt entry for the key or nil when the
// slot holds a different position. The caller decides how to use the
// entry based on its bound type and depth and converts mate values
// back with ValueFromTT.
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.Key == key {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Len returns the number of non empty entries in the tt
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// Capacity returns the maximum number of entries of the tt
func (tt *TtTable) Capacity() uint64 {
	return tt.maxNumberOfEntries
}

// Hashfull returns how full the transposition table is in permill as
// per UCI
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: capacity %d entries, filled %d (%d permill), puts %d, overwrites %d, probes %d, hits %d, misses %d",
		tt.maxNumberOfEntries, tt.numberOfEntries, tt.Hashfull(),
		tt.Stats.numberOfPuts, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, tt.Stats.numberOfMisses)
}

// ValueToTT converts a mate value relative to the root into a mate
// value relative to the node before storing it to the tt
func ValueToTT(value Value, ply int) Value {
	if value >= ValueCheckMateThreshold {
		return value + Value(ply)
	}
	if value <= -ValueCheckMateThreshold {
		return value - Value(ply)
	}
	return value
}

// ValueFromTT converts a stored mate value relative to the node back
// into a mate value relative to the root after probing
func ValueFromTT(value Value, ply int) Value {
	if value >= ValueCheckMateThreshold {
		return value - Value(ply)
	}
	if value <= -ValueCheckMateThreshold {
		return value + Value(ply)
	}
	return value
}

// hash generates the internal index for the data array
func (tt *TtTable) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
