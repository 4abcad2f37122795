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

// PieceType is a set of constants for the six chess piece types
type PieceType uint8

// Constants for piece types. The numbering (Pawn=0 .. King=5) is shared
// by the mailbox encoding, the zobrist tables and the move encoding.
const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
	PtLength int = 6
)

// IsValid checks if pt is a valid piece type
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

var pieceTypeToChar = "PNBRQK-"

// Char returns a single char string representation of a piece type
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

var pieceTypeToString = [7]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "None"}

func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

// base values used by move ordering and SEE
var pieceTypeValue = [7]Value{100, 320, 330, 500, 900, 20000, 0}

// ValueOf returns the exchange value of the piece type in centipawns
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// values for calculating the game phase by adding up the number
// of pieces of a type times this value
var gamePhaseValue = [7]int{0, 1, 1, 2, 4, 0, 0}

// GamePhaseValue returns the game phase contribution of the piece type
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// MakePieceTypeFromChar returns the piece type for a FEN/SAN letter
// (case insensitive) or PtNone if the letter is not a piece
func MakePieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return PtNone
}
