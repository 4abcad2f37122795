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
	"strings"
)

// Move is a 32bit unsigned int type for encoding chess moves as a
// primitive data type.
//
//	BITMAP 32-bit
//	2 2 2 1 1 1 1 1 1 | 1 1 1 1 0 0 | 0 0 0 0 0 0 0 0 0 0
//	1 0 9 8 7 6 5 4 3 | 2 1 0 9 8 7 | 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	-----------------------------------------------------
//	                                            1 1 1 1 1 1  to
//	                                1 1 1 1 1 1              from
//	                          1 1 1                          piece type
//	                    1 1 1                                promotion piece type
//	          1 1 1 1                                        move flags
type Move uint32

// MoveNone is an empty non valid move. It encodes as a1a1 which can
// never be generated so the zero value of Move is safe to use as
// "no move".
const MoveNone Move = 0

// MoveFlags is the 4-bit move flag nibble. The capture bit (0x4) and
// the promotion bit (0x8) can be tested independently of the special
// move encodings in the low two bits.
type MoveFlags uint8

// Constants for move flags
const (
	Quiet            MoveFlags = 0x0
	DoublePush       MoveFlags = 0x1
	KingSideCastle   MoveFlags = 0x2
	QueenSideCastle  MoveFlags = 0x3
	Capture          MoveFlags = 0x4
	EnPassant        MoveFlags = 0x5
	Promotion        MoveFlags = 0x8
	PromotionCapture MoveFlags = 0xC
)

const (
	fromShift  = 6
	pieceShift = 12
	promShift  = 15
	flagsShift = 18

	sqMask    Move = 0x3F
	pieceMask Move = 0x7 << pieceShift
	promMask  Move = 0x7 << promShift
	flagsMask Move = 0xF << flagsShift
)

// CreateMove returns an encoded Move instance.
// promType must be PtNone for non promotion moves.
func CreateMove(from Square, to Square, pt PieceType, promType PieceType, flags MoveFlags) Move {
	return Move(to) |
		Move(from)<<fromShift |
		Move(pt)<<pieceShift |
		Move(promType)<<promShift |
		Move(flags)<<flagsShift
}

// To returns the to-Square of the move
func (m Move) To() Square {
	return Square(m & sqMask)
}

// From returns the from-Square of the move
func (m Move) From() Square {
	return Square((m >> fromShift) & sqMask)
}

// PieceTypeOf returns the type of the moving piece
func (m Move) PieceTypeOf() PieceType {
	return PieceType((m & pieceMask) >> pieceShift)
}

// PromotionType returns the piece type promoted to or PtNone
// when the move is not a promotion
func (m Move) PromotionType() PieceType {
	return PieceType((m & promMask) >> promShift)
}

// Flags returns the move flag nibble
func (m Move) Flags() MoveFlags {
	return MoveFlags((m & flagsMask) >> flagsShift)
}

// IsCapture reports whether the move captures a piece (incl. en passant)
func (m Move) IsCapture() bool {
	return m.Flags()&Capture != 0
}

// IsPromotion reports whether the move promotes a pawn
func (m Move) IsPromotion() bool {
	return m.Flags()&Promotion != 0
}

// IsEnPassant reports whether the move is an en passant capture
func (m Move) IsEnPassant() bool {
	return m.Flags() == EnPassant
}

// IsCastling reports whether the move is a castling move
func (m Move) IsCastling() bool {
	f := m.Flags()
	return f == KingSideCastle || f == QueenSideCastle
}

// IsDoublePush reports whether the move is a pawn double push
func (m Move) IsDoublePush() bool {
	return m.Flags() == DoublePush
}

// IsQuiet reports whether the move neither captures nor promotes
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsValid checks if the move has valid squares and a valid piece type.
// MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PieceTypeOf().IsValid()
}

// SameAs compares from, to and promotion type of two moves ignoring
// the flag nibble. Used to match externally supplied moves (hash,
// killer, book) against generated moves.
func (m Move) SameAs(o Move) bool {
	return m.From() == o.From() && m.To() == o.To() && m.PromotionType() == o.PromotionType()
}

// StringUci returns a string representation of the move in
// UCI protocol format (e.g. e2e4, e7e8q)
func (m Move) StringUci() string {
	if !m.IsValid() {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.IsPromotion() {
		os.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return os.String()
}

// String returns a detailed string representation of the move
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s piece:%s flags:%-0.4b }",
		m.StringUci(), m.PieceTypeOf().Char(), m.Flags())
}
