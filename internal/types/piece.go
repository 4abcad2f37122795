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

// Piece is a set of constants for pieces in chess. A piece combines
// color and piece type into the mailbox encoding (color<<3)|pieceType.
// PieceNone (0xFF) marks an empty square.
type Piece uint8

// Constants for pieces
const (
	WhitePawn   Piece = 0x00
	WhiteKnight Piece = 0x01
	WhiteBishop Piece = 0x02
	WhiteRook   Piece = 0x03
	WhiteQueen  Piece = 0x04
	WhiteKing   Piece = 0x05
	BlackPawn   Piece = 0x08
	BlackKnight Piece = 0x09
	BlackBishop Piece = 0x0A
	BlackRook   Piece = 0x0B
	BlackQueen  Piece = 0x0C
	BlackKing   Piece = 0x0D
	PieceNone   Piece = 0xFF
)

// MakePiece creates the piece given by color and piece type
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((uint8(c) << 3) | uint8(pt))
}

// ColorOf returns the color of the given piece
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the given piece
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the exchange value of the piece in centipawns
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

// IsValid checks if p represents a valid piece
func (p Piece) IsValid() bool {
	return p != PieceNone && p.ColorOf().IsValid() && p.TypeOf().IsValid()
}

var pieceToChar = "PNBRQK??pnbrqk"

// Char returns the FEN letter of the piece (upper case for White)
// or "-" for PieceNone
func (p Piece) Char() string {
	if p == PieceNone {
		return "-"
	}
	return string(pieceToChar[p])
}

// MakePieceFromChar returns the piece for a FEN letter
// or PieceNone if the letter is not a valid piece
func MakePieceFromChar(c byte) Piece {
	pt := MakePieceTypeFromChar(c)
	if pt == PtNone {
		return PieceNone
	}
	if c >= 'a' {
		return MakePiece(Black, pt)
	}
	return MakePiece(White, pt)
}
