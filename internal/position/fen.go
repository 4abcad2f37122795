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
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	. "github.com/vantagechess/VantageGo/internal/types"
)

// regex for first part of fen (position of pieces)
var regexFenPos = regexp.MustCompile("^[0-8pPnNbBrRqQkK/]+$")

// regex for next player color in fen
var regexWorB = regexp.MustCompile("^[w|b]$")

// regex for castling rights in fen
var regexCastlingRights = regexp.MustCompile("^(K?Q?k?q?|-)$")

// regex for en passant square in fen
var regexEnPassant = regexp.MustCompile("^([a-h][36]|-)$")

// setupBoard sets up a board based on a fen. This is basically
// the only way to get a valid position instance.
// The repetition history starts empty; a FEN position has no known
// ancestors.
func (p *Position) setupBoard(fen string) error {

	// clear everything
	*p = Position{}
	for sq := SqA1; sq < SqNone; sq++ {
		p.board[sq] = PieceNone
	}
	p.enPassantSquare = SqNone
	p.fullMoveNumber = 1
	p.history = make([]Key, 0, 16)

	// We will analyse the fen and only require the initial board layout part.
	// All other parts will have defaults. E.g. next player is white,
	// no castling rights, no en passant.
	fen = strings.TrimSpace(fen)
	fenParts := strings.Fields(fen)

	if len(fenParts) == 0 {
		return errors.New("fen must not be empty")
	}

	// piece placement
	if !regexFenPos.MatchString(fenParts[0]) {
		return fmt.Errorf("fen position has invalid characters: %s", fenParts[0])
	}
	ranks := strings.Split(fenParts[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen position must have 8 ranks: %s", fenParts[0])
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			piece := MakePieceFromChar(c)
			if piece == PieceNone {
				return fmt.Errorf("fen position has invalid piece %c", c)
			}
			if !f.IsValid() {
				return fmt.Errorf("fen position rank %s too long", rankStr)
			}
			p.putPiece(piece, SquareOf(f, r))
			f++
		}
		if f != FileNone {
			return fmt.Errorf("fen position rank %s does not fill 8 files", rankStr)
		}
	}

	// next player
	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return fmt.Errorf("fen next player is invalid: %s", fenParts[1])
		}
		if fenParts[1] == "b" {
			p.nextPlayer = Black
		}
	}

	// castling rights
	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return fmt.Errorf("fen castling rights are invalid: %s", fenParts[2])
		}
		for j := 0; j < len(fenParts[2]); j++ {
			switch fenParts[2][j] {
			case 'K':
				p.castlingRights.Add(CastlingWhiteOO)
			case 'Q':
				p.castlingRights.Add(CastlingWhiteOOO)
			case 'k':
				p.castlingRights.Add(CastlingBlackOO)
			case 'q':
				p.castlingRights.Add(CastlingBlackOOO)
			}
		}
	}

	// en passant square. The fen may name a square which is not
	// capturable - it is stored but the zobrist key only contains
	// capturable en passant squares (relaxed hashing rule).
	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return fmt.Errorf("fen en passant square is invalid: %s", fenParts[3])
		}
		if fenParts[3] != "-" {
			p.enPassantSquare = MakeSquare(fenParts[3])
		}
	}

	// half move clock
	if len(fenParts) >= 5 {
		n, err := strconv.Atoi(fenParts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("fen half move clock is invalid: %s", fenParts[4])
		}
		p.halfMoveClock = n
	}

	// full move number
	if len(fenParts) >= 6 {
		n, err := strconv.Atoi(fenParts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("fen full move number is invalid: %s", fenParts[5])
		}
		p.fullMoveNumber = n
	}

	// a king of each color must exist
	if p.piecesBb[White][King].PopCount() != 1 || p.piecesBb[Black][King].PopCount() != 1 {
		return errors.New("fen position must have exactly one king per side")
	}

	p.RefreshZobrist()
	return nil
}

// StringFen returns a string with the FEN of the current position
func (p *Position) StringFen() string {
	var fen strings.Builder

	// pieces
	for r := Rank8; ; r-- {
		emptySquares := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				emptySquares++
				continue
			}
			if emptySquares > 0 {
				fen.WriteString(strconv.Itoa(emptySquares))
				emptySquares = 0
			}
			fen.WriteString(pc.Char())
		}
		if emptySquares > 0 {
			fen.WriteString(strconv.Itoa(emptySquares))
		}
		if r == Rank1 {
			break
		}
		fen.WriteString("/")
	}

	// next player
	fen.WriteString(" ")
	fen.WriteString(p.nextPlayer.String())

	// castling rights
	fen.WriteString(" ")
	fen.WriteString(p.castlingRights.String())

	// en passant
	fen.WriteString(" ")
	fen.WriteString(p.enPassantSquare.String())

	// half move clock and full move number
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.halfMoveClock))
	fen.WriteString(" ")
	fen.WriteString(strconv.Itoa(p.fullMoveNumber))

	return fen.String()
}
