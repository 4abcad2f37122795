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

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/vantagechess/VantageGo/internal/util"
)

// Bitboard is a 64 bit unsigned int with 1 bit for each square on the board
type Bitboard uint64

// Various constant bitboards
const (
	BbZero Bitboard = Bitboard(0)
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb Bitboard = FileA_Bb << 1
	FileC_Bb Bitboard = FileA_Bb << 2
	FileD_Bb Bitboard = FileA_Bb << 3
	FileE_Bb Bitboard = FileA_Bb << 4
	FileF_Bb Bitboard = FileA_Bb << 5
	FileG_Bb Bitboard = FileA_Bb << 6
	FileH_Bb Bitboard = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb Bitboard = Rank1_Bb << (8 * 1)
	Rank3_Bb Bitboard = Rank1_Bb << (8 * 2)
	Rank4_Bb Bitboard = Rank1_Bb << (8 * 3)
	Rank5_Bb Bitboard = Rank1_Bb << (8 * 4)
	Rank6_Bb Bitboard = Rank1_Bb << (8 * 5)
	Rank7_Bb Bitboard = Rank1_Bb << (8 * 6)
	Rank8_Bb Bitboard = Rank1_Bb << (8 * 7)

	FileAMask Bitboard = ^FileA_Bb
	FileHMask Bitboard = ^FileH_Bb
)

// Bb returns a Bitboard of the square by accessing the pre calculated
// square to bitboard array.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets the corresponding bit of the bitboard for the square
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare removes the corresponding bit of the bitboard for the square
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has tests if a square (bit) is set
func (b Bitboard) Has(s Square) bool {
	return b&sqBb[s] != 0
}

// Lsb returns the least significant bit of the 64-bit Bb.
// This translates directly to the Square which is returned.
// If the bitboard is empty SqNone will be returned.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square and removes it from the bitboard.
// The given bitboard is changed directly.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b = *b & (*b - 1)
	return lsb
}

// PopCount returns the number of one bits ("population count") in b.
// This equals the number of squares set in a Bitboard
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ShiftNorth moves all bits of the bitboard one rank up
func (b Bitboard) ShiftNorth() Bitboard {
	return b << 8
}

// ShiftSouth moves all bits of the bitboard one rank down
func (b Bitboard) ShiftSouth() Bitboard {
	return b >> 8
}

// FileFill smears all bits of the bitboard up and down their file.
// Used to detect whether a file holds any pawns.
func (b Bitboard) FileFill() Bitboard {
	b |= b >> 8
	b |= b >> 16
	b |= b >> 32
	b |= b << 8
	b |= b << 16
	b |= b << 32
	return b
}

// String returns a string representation of the 64 bits
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", b)
}

// StringBoard returns a string representation of the Bb
// as a board of 8x8 squares
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if (b & SquareOf(f, Rank8-r).Bb()) > 0 {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// StringGrouped returns a string representation of the 64 bits grouped in 8.
// Order is LSB to msb ==> A1 B1 ... G8 H8
func (b Bitboard) StringGrouped() string {
	var os strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
		if (b & (BbOne << i)) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	os.WriteString(fmt.Sprintf(" (%d)", b))
	return os.String()
}

// FileDistance returns the absolute distance in squares between two files
func FileDistance(f1 File, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in squares between two ranks
func RankDistance(r1 Rank, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance (king moves) between
// two squares
func SquareDistance(s1 Square, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

// ManhattanDistance returns the taxicab distance between two squares
func ManhattanDistance(s1 Square, s2 Square) int {
	return FileDistance(s1.FileOf(), s2.FileOf()) + RankDistance(s1.RankOf(), s2.RankOf())
}

// GetAttacksBb returns a bitboard representing all the squares attacked by a
// piece of the given type pt (not pawn) placed on 'sq'.
// For sliding pieces this uses the pre-computed magic bitboard attack arrays.
// For Knight and King the occupied Bitboard is ignored (can be BbZero)
// as for these non sliders the pre-computed pseudo attacks are used
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)]
	case Rook:
		return rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Queen:
		return bishopMagics[sq].Attacks[bishopMagics[sq].index(occupied)] |
			rookMagics[sq].Attacks[rookMagics[sq].index(occupied)]
	case Knight, King:
		return pseudoAttacks[pt][sq]
	default:
		panic(fmt.Sprintf("GetAttacksBb called with invalid piece type %d", pt))
	}
}

// GetPseudoAttacks returns a Bb of possible attacks of a piece
// as if on an empty board
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns a Bb of possible attacks of a pawn
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// PassedPawnMask returns a bitboard with all squares on which an
// opponent pawn could stop this pawn (own file and neighbour files,
// ranks ahead). AND it with the opponent pawn bitboard to test whether
// a pawn is passed.
func (sq Square) PassedPawnMask(c Color) Bitboard {
	return passedPawnMask[c][sq]
}

// NeighbourFilesMask returns a Bb of the files east and west of the square
func (sq Square) NeighbourFilesMask() Bitboard {
	return neighbourFilesMask[sq]
}

// CastlingBetweenMask returns the squares between king and rook which
// must be empty for the castling encoded by the given flag
func CastlingBetweenMask(c Color, flag MoveFlags) Bitboard {
	if flag == KingSideCastle {
		return kingSideBetween[c]
	}
	return queenSideBetween[c]
}

// GetCastlingRights returns the CastlingRights which are lost when a
// piece moves from or to this square (king and rook home squares)
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRightsBb[sq]
}

// ////////////////////
// Private
// ////////////////////

// helper arrays - pre computed in initBb
var (
	// pre computed square to square bitboard array
	sqBb [SqLength]Bitboard

	// pre computed Chebyshev distance between squares
	squareDistance [SqLength][SqLength]int

	// pre computed pawn attacks for each color for each square
	pawnAttacks [ColorLength][SqLength]Bitboard

	// pre computed attacks for knight, king and slider pseudo attacks
	pseudoAttacks [PtLength][SqLength]Bitboard

	// pre computed masks to test for passed pawns
	passedPawnMask [ColorLength][SqLength]Bitboard

	// pre computed masks of the files next to a square
	neighbourFilesMask [SqLength]Bitboard

	// squares between king and rook which must be empty for castling
	kingSideBetween  [ColorLength]Bitboard
	queenSideBetween [ColorLength]Bitboard

	// castling rights lost when a move touches this square
	castlingRightsBb [SqLength]CastlingRights
)

// Returns a Bb of the square by shifting the square onto an empty
// bitboard. Usually one would use Bb() after initialization.
func (sq Square) bitboard() Bitboard {
	return Bitboard(uint64(1) << sq)
}

// Pre computes various bitboards to avoid runtime calculation
func initBb() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = sq.bitboard()
	}

	squareDistancePreCompute()
	pseudoAttacksPreCompute()
	neighbourMasksPreCompute()
	passedPawnMaskPreCompute()
	castleMasksPreCompute()
	initMagicBitboards()
}

// Chebyshev distance between squares
func squareDistancePreCompute() {
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for sq2 := SqA1; sq2 <= SqH8; sq2++ {
			if sq1 != sq2 {
				squareDistance[sq1][sq2] =
					util.Max(FileDistance(sq1.FileOf(), sq2.FileOf()), RankDistance(sq1.RankOf(), sq2.RankOf()))
			}
		}
	}
}

// pre compute all possible attacked squares per color, piece and square
func pseudoAttacksPreCompute() {
	kingSteps := []Direction{Northwest, North, Northeast, West, East, Southwest, South, Southeast}
	knightSteps := []int8{17, 15, 10, 6, -6, -10, -15, -17}

	for sq := SqA1; sq <= SqH8; sq++ {
		// king
		for _, d := range kingSteps {
			if to := sq.To(d); to != SqNone {
				pseudoAttacks[King][sq] |= sqBb[to]
			}
		}
		// knight - filter wrap arounds via distance check
		for _, step := range knightSteps {
			to := Square(int8(sq) + step)
			if to.IsValid() && SquareDistance(sq, to) == 2 {
				pseudoAttacks[Knight][sq] |= sqBb[to]
			}
		}
		// pawns
		for _, d := range []Direction{Northwest, Northeast} {
			if to := sq.To(d); to != SqNone {
				pawnAttacks[White][sq] |= sqBb[to]
			}
		}
		for _, d := range []Direction{Southwest, Southeast} {
			if to := sq.To(d); to != SqNone {
				pawnAttacks[Black][sq] |= sqBb[to]
			}
		}
	}

	// sliding pieces pseudo attacks (empty board)
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}
	for sq := SqA1; sq <= SqH8; sq++ {
		pseudoAttacks[Rook][sq] = slidingAttack(&rookDirections, sq, BbZero)
		pseudoAttacks[Bishop][sq] = slidingAttack(&bishopDirections, sq, BbZero)
		pseudoAttacks[Queen][sq] = pseudoAttacks[Rook][sq] | pseudoAttacks[Bishop][sq]
	}
}

// masks for the files left and right of a square
func neighbourMasksPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f := sq.FileOf()
		if f > FileA {
			neighbourFilesMask[sq] |= FileA_Bb << (f - 1)
		}
		if f < FileH {
			neighbourFilesMask[sq] |= FileA_Bb << (f + 1)
		}
	}
}

// pre computes passed pawn masks - own file plus neighbour files on
// all ranks ahead of the square
func passedPawnMaskPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		fileCone := (FileA_Bb << sq.FileOf()) | neighbourFilesMask[sq]
		var northOf, southOf Bitboard
		for r := sq.RankOf() + 1; r.IsValid(); r++ {
			northOf |= r.Bb()
		}
		for r := Rank1; r < sq.RankOf(); r++ {
			southOf |= r.Bb()
		}
		passedPawnMask[White][sq] = fileCone & northOf
		passedPawnMask[Black][sq] = fileCone & southOf
	}
}

func castleMasksPreCompute() {
	kingSideBetween[White] = sqBb[SqF1] | sqBb[SqG1]
	kingSideBetween[Black] = sqBb[SqF8] | sqBb[SqG8]
	queenSideBetween[White] = sqBb[SqB1] | sqBb[SqC1] | sqBb[SqD1]
	queenSideBetween[Black] = sqBb[SqB8] | sqBb[SqC8] | sqBb[SqD8]

	castlingRightsBb[SqE1] = CastlingWhite
	castlingRightsBb[SqA1] = CastlingWhiteOOO
	castlingRightsBb[SqH1] = CastlingWhiteOO
	castlingRightsBb[SqE8] = CastlingBlack
	castlingRightsBb[SqA8] = CastlingBlackOOO
	castlingRightsBb[SqH8] = CastlingBlackOO
}
