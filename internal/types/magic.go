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

// Magic holds all magic bitboards relevant for a single square.
// The "fancy" magic bitboard approach as used by Stockfish.
// See https://www.chessprogramming.org/Magic_Bitboards
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index calculates the index into the attack table:
//
//	occ &= mask; occ *= magic; occ >>= shift
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Magic
	occ >>= m.Shift
	return uint(occ)
}

// magic bitboards - rook and bishop attacks
var (
	rookTable    []Bitboard
	rookMagics   [SqLength]Magic
	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic
)

// initMagicBitboards computes all rook and bishop attacks at startup
func initMagicBitboards() {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)

	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)
}

// initMagics searches magic numbers for all squares of one slider kind
// and fills the attack tables as a side effect of verifying each magic.
func initMagics(table *[]Bitboard, magics *[SqLength]Magic, directions *[4]Direction) {

	// PRNG seeds per rank to pick the correct magics in a short time
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	occupancy := [4096]Bitboard{}
	reference := [4096]Bitboard{}
	epoch := [4096]int{}
	var edges, b Bitboard
	cnt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {

		// Board edges are not considered in the relevant occupancies
		edges = ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		// Given a square the mask is the bitboard of sliding attacks from
		// the square computed on an empty board. The index must be big
		// enough to contain all the attacks for each possible subset of
		// the mask, hence the shift of 64 minus the number of mask bits.
		m := &(*magics)[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		// The attack tables of the squares share one backing array with
		// individual offsets ("fancy" magic bitboards).
		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Use the Carry-Rippler trick to enumerate all subsets of the mask
		// and store the corresponding sliding attack bitboard in reference.
		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])

		// Find a magic for the square picking up an (almost) random number
		// until we find one that passes the verification test. The attack
		// table is built up as a side effect of the verification; epoch
		// avoids resetting the table after every failed attempt.
		for i := 0; i < size; {
			for m.Magic = 0; ; {
				m.Magic = Bitboard(rng.sparseRand())
				if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack calculates sliding attacks along the given directions for
// the given square and board occupation by scanning the rays. Too slow for
// move generation but fine for pre-computing.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			s = s.To(directions[i])
			if s == SqNone {
				break
			}
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// PrnG is a xorshift64star pseudo random number generator used to find
// magic numbers. Based on code by Sebastiano Vigna (2014).
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand generates numbers with only 1/8th of their bits set on
// average which is what good magic candidates look like.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
