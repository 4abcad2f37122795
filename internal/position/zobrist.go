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

package position

import (
	. "github.com/vantagechess/VantageGo/internal/types"
)

// zobristSeed is the fixed seed for the zobrist key generation.
// Keys must be stable for the lifetime of the process as transposition
// tables and the opening book cache depend on them.
const zobristSeed uint64 = 1070372

// helper data structure for zobrist keys of chess positions
type zobrist struct {
	// one key per color, piece type and square
	pieces [ColorLength][PtLength][SqLength]Key
	// one key per castling right in WK, WQ, BK, BQ bit order
	castling [4]Key
	// one key per en passant file
	epFile [8]Key
	// XORed in when Black is to move
	sideToMove Key
}

var zobristKeys = zobrist{}

func initZobrist() {
	r := newRandom(zobristSeed)
	for c := 0; c < ColorLength; c++ {
		for pt := 0; pt < PtLength; pt++ {
			for sq := 0; sq < SqLength; sq++ {
				zobristKeys.pieces[c][pt][sq] = Key(r.nonZeroRand64())
			}
		}
	}
	for i := 0; i < 4; i++ {
		zobristKeys.castling[i] = Key(r.nonZeroRand64())
	}
	for f := 0; f < 8; f++ {
		zobristKeys.epFile[f] = Key(r.nonZeroRand64())
	}
	zobristKeys.sideToMove = Key(r.nonZeroRand64())
}

// castlingDelta XORs the keys of all rights which differ between old
// and new into the given hash
func castlingDelta(hash Key, old CastlingRights, new CastlingRights) Key {
	d := old ^ new
	for i := 0; i < 4; i++ {
		if d&(1<<i) != 0 {
			hash ^= zobristKeys.castling[i]
		}
	}
	return hash
}

// epFileToHash returns the file of the en passant square if it should
// contribute to the hash this ply, i.e. only when the side to move has
// a pawn which could pseudo-legally capture onto the en passant square
// (pins are ignored). This relaxed rule keeps transpositionally equal
// positions at the same key even when their FENs differ by a dead
// en passant square.
func (p *Position) epFileToHash() (File, bool) {
	ep := p.enPassantSquare
	if ep == SqNone {
		return FileNone, false
	}
	r := ep.RankOf()
	if r != Rank3 && r != Rank6 {
		return FileNone, false
	}
	us := p.nextPlayer
	// squares from which one of our pawns attacks the ep square are
	// exactly the squares an enemy pawn on the ep square would attack
	if GetPawnAttacks(us.Flip(), ep)&p.piecesBb[us][Pawn] != 0 {
		return ep.FileOf(), true
	}
	return FileNone, false
}

// computeZobristFull recomputes the zobrist key of the position from
// scratch. This is the specification of the incremental updates and is
// used by debug assertions and after FEN setup.
func (p *Position) computeZobristFull() Key {
	var hash Key
	for c := Color(0); c < Color(ColorLength); c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.piecesBb[c][pt]
			for bb != 0 {
				sq := bb.PopLsb()
				hash ^= zobristKeys.pieces[c][pt][sq]
			}
		}
	}
	if p.nextPlayer == Black {
		hash ^= zobristKeys.sideToMove
	}
	hash = castlingDelta(hash, CastlingNone, p.castlingRights)
	if f, ok := p.epFileToHash(); ok {
		hash ^= zobristKeys.epFile[f]
	}
	return hash
}

// RefreshZobrist recomputes and stores the zobrist key from the current
// state. Test helpers which set fields directly must call this before
// using the position.
func (p *Position) RefreshZobrist() {
	p.zobristKey = p.computeZobristFull()
}
