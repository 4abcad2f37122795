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

// Package position represents data structures and functions for a
// chess board and its position. It uses bitboards and an 8x8 mailbox
// board, zobrist keys for transposition tables and a repetition history
// which is truncated on irreversible moves.
//
// Create a new instance with NewPosition() to get the chess start
// position or NewPositionFen(fen) for any position.
package position

import (
	"strings"

	"github.com/vantagechess/VantageGo/internal/assert"
	. "github.com/vantagechess/VantageGo/internal/types"
)

var initialized = false

// initialize package
func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

// StartFen is a string with the fen position for a standard chess game
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Key is used for zobrist keys in chess positions.
// Zobrist keys need all 64 bits for distribution
type Key uint64

// Position represents the chess board and its state.
// It uses bitboards per color and piece type, an 8x8 mailbox board,
// castling rights, en passant state, move clocks, an incrementally
// updated zobrist key and the repetition history of prior keys within
// the current irreversible window.
//
// Needs to be created with NewPosition() or NewPositionFen(fen)
type Position struct {
	// bitboards per color and piece type; pairwise disjoint
	piecesBb [ColorLength][PtLength]Bitboard
	// derived occupancy bitboards; always the union of piecesBb
	occupiedBb  [ColorLength]Bitboard
	occupiedAll Bitboard
	// mailbox with the piece per square or PieceNone
	board [SqLength]Piece

	nextPlayer      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	fullMoveNumber  int

	// the zobrist key, updated incrementally by every state change
	zobristKey Key

	// zobrist keys of the prior positions since the last irreversible
	// move (capture, pawn move or promotion)
	history []Key
}

// Undo holds everything needed to take back a move: the move itself,
// the captured piece (if any) and its square, the prior en passant,
// castling rights and clocks, and - on irreversible moves - a snapshot
// of the repetition history before it was truncated.
type Undo struct {
	Move               Move
	CapturedPiece      Piece
	CapturedSq         Square
	PrevCastlingRights CastlingRights
	PrevEnPassant      Square
	PrevHalfMoveClock  int
	PrevFullMoveNumber int
	PrevHistory        []Key
}

// NullUndo holds the state to take back a null move
type NullUndo struct {
	PrevEnPassant Square
}

// NewPosition creates a new position with the start position
func NewPosition() *Position {
	p, _ := NewPositionFen(StartFen)
	return p
}

// NewPositionFen creates a new position with the given fen or returns
// an error when the fen could not be parsed
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.setupBoard(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// //////////////////////////////////////////////////////
// Do / Undo moves
// //////////////////////////////////////////////////////

// DoMove executes the given move on the position and returns the undo
// record to take it back. The move must be pseudo-legal for the
// position, otherwise the behavior is undefined.
func (p *Position) DoMove(m Move) Undo {
	prevZobrist := p.zobristKey
	us := p.nextPlayer
	them := us.Flip()
	from := m.From()
	to := m.To()
	pt := m.PieceTypeOf()

	undo := Undo{
		Move:               m,
		CapturedPiece:      PieceNone,
		CapturedSq:         SqNone,
		PrevCastlingRights: p.castlingRights,
		PrevEnPassant:      p.enPassantSquare,
		PrevHalfMoveClock:  p.halfMoveClock,
		PrevFullMoveNumber: p.fullMoveNumber,
	}

	// the en passant hash contribution depends on the side to move so
	// it has to leave the hash before anything else changes
	if f, ok := p.epFileToHash(); ok {
		p.zobristKey ^= zobristKeys.epFile[f]
	}
	p.enPassantSquare = SqNone

	// resolve capture
	if m.IsEnPassant() {
		capSq := Square(int(to) - 8*us.MoveDirection())
		undo.CapturedPiece = p.board[capSq]
		undo.CapturedSq = capSq
		p.removePiece(capSq)
	} else if p.board[to] != PieceNone {
		undo.CapturedPiece = p.board[to]
		undo.CapturedSq = to
		p.removePiece(to)
	}

	// castling rights: king or rook leaving a home square and captures
	// of a rook on its home square are all covered by the square table
	oldRights := p.castlingRights
	newRights := oldRights
	newRights.Remove(GetCastlingRights(from) | GetCastlingRights(to))
	if newRights != oldRights {
		p.zobristKey = castlingDelta(p.zobristKey, oldRights, newRights)
		p.castlingRights = newRights
	}

	// new en passant square on double pushes
	if m.IsDoublePush() {
		p.enPassantSquare = Square(int(from) + 8*us.MoveDirection())
	}

	// apply the move
	p.removePiece(from)
	if m.IsPromotion() {
		p.putPiece(MakePiece(us, m.PromotionType()), to)
	} else {
		p.putPiece(MakePiece(us, pt), to)
	}
	if m.IsCastling() {
		rookFrom, rookTo := rookCastlingSquares(to)
		p.removePiece(rookFrom)
		p.putPiece(MakePiece(us, Rook), rookTo)
	}

	// clocks
	if undo.CapturedPiece != PieceNone || pt == Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if us == Black {
		p.fullMoveNumber++
	}

	// flip side to move
	p.nextPlayer = them
	p.zobristKey ^= zobristKeys.sideToMove

	// the new en passant contribution depends on the new side to move
	if f, ok := p.epFileToHash(); ok {
		p.zobristKey ^= zobristKeys.epFile[f]
	}

	// repetition history: the window resets on irreversible moves;
	// the pre-move key is always pushed
	irreversible := undo.CapturedPiece != PieceNone || pt == Pawn || m.IsPromotion()
	if irreversible {
		undo.PrevHistory = p.history
		p.history = make([]Key, 0, 16)
	}
	p.history = append(p.history, prevZobrist)

	if assert.DEBUG {
		assert.Assert(p.zobristKey == p.computeZobristFull(),
			"zobrist parity after DoMove %s", m.StringUci())
		assert.Assert(p.enPassantSquare == SqNone ||
			(p.nextPlayer == White && p.enPassantSquare.RankOf() == Rank6) ||
			(p.nextPlayer == Black && p.enPassantSquare.RankOf() == Rank3),
			"en passant square on invalid rank after DoMove %s", m.StringUci())
	}

	return undo
}

// UndoMove takes back the move described by the given undo record.
// DoMove and UndoMove form an involution: undoing the returned record
// restores the position bitwise, including zobrist key and history.
func (p *Position) UndoMove(undo Undo) {
	m := undo.Move
	them := p.nextPlayer
	us := them.Flip()

	// XOR out the current en passant contribution first (depends on
	// the current side to move)
	if f, ok := p.epFileToHash(); ok {
		p.zobristKey ^= zobristKeys.epFile[f]
	}

	// flip side back
	p.nextPlayer = us
	p.zobristKey ^= zobristKeys.sideToMove

	// castling rights
	if p.castlingRights != undo.PrevCastlingRights {
		p.zobristKey = castlingDelta(p.zobristKey, p.castlingRights, undo.PrevCastlingRights)
	}
	p.castlingRights = undo.PrevCastlingRights

	// clocks
	p.halfMoveClock = undo.PrevHalfMoveClock
	p.fullMoveNumber = undo.PrevFullMoveNumber

	// take back the moved piece
	p.removePiece(m.To())
	p.putPiece(MakePiece(us, m.PieceTypeOf()), m.From())

	// restore a captured piece
	if undo.CapturedPiece != PieceNone {
		p.putPiece(undo.CapturedPiece, undo.CapturedSq)
	}

	// take back the castling rook
	if m.IsCastling() {
		rookFrom, rookTo := rookCastlingSquares(m.To())
		p.removePiece(rookTo)
		p.putPiece(MakePiece(us, Rook), rookFrom)
	}

	// restore the prior en passant square and its hash contribution
	p.enPassantSquare = undo.PrevEnPassant
	if f, ok := p.epFileToHash(); ok {
		p.zobristKey ^= zobristKeys.epFile[f]
	}

	// repetition history
	p.history = p.history[:len(p.history)-1]
	if undo.PrevHistory != nil {
		p.history = undo.PrevHistory
	}

	if assert.DEBUG {
		assert.Assert(p.zobristKey == p.computeZobristFull(),
			"zobrist parity after UndoMove %s", m.StringUci())
	}
}

// DoNullMove passes the turn to the opponent. Used by null move
// pruning in the search.
func (p *Position) DoNullMove() NullUndo {
	p.history = append(p.history, p.zobristKey)
	undo := NullUndo{PrevEnPassant: p.enPassantSquare}
	if f, ok := p.epFileToHash(); ok {
		p.zobristKey ^= zobristKeys.epFile[f]
	}
	p.enPassantSquare = SqNone
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristKeys.sideToMove
	return undo
}

// UndoNullMove takes back a null move
func (p *Position) UndoNullMove(undo NullUndo) {
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristKeys.sideToMove
	p.enPassantSquare = undo.PrevEnPassant
	if f, ok := p.epFileToHash(); ok {
		p.zobristKey ^= zobristKeys.epFile[f]
	}
	p.history = p.history[:len(p.history)-1]
}

// rookCastlingSquares returns the rook from and to squares for the
// castling move given by the king's destination square
func rookCastlingSquares(kingTo Square) (Square, Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	}
	panic("invalid castling destination " + kingTo.String())
}

// //////////////////////////////////////////////////////
// Attacks and checks
// //////////////////////////////////////////////////////

// IsAttacked reports whether the given square is attacked by at least
// one piece of the given color
func (p *Position) IsAttacked(sq Square, by Color) bool {
	// non sliders
	if GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0 {
		return true
	}
	if GetAttacksBb(Knight, sq, BbZero)&p.piecesBb[by][Knight] != 0 {
		return true
	}
	if GetAttacksBb(King, sq, BbZero)&p.piecesBb[by][King] != 0 {
		return true
	}
	// sliders
	occ := p.occupiedAll
	rookAttacks := GetAttacksBb(Rook, sq, occ)
	if rookAttacks&(p.piecesBb[by][Rook]|p.piecesBb[by][Queen]) != 0 {
		return true
	}
	bishopAttacks := GetAttacksBb(Bishop, sq, occ)
	return bishopAttacks&(p.piecesBb[by][Bishop]|p.piecesBb[by][Queen]) != 0
}

// IsInCheck reports whether the king of the given color is attacked
func (p *Position) IsInCheck(c Color) bool {
	return p.IsAttacked(p.KingSquare(c), c.Flip())
}

// HasCheck reports whether the side to move is in check
func (p *Position) HasCheck() bool {
	return p.IsInCheck(p.nextPlayer)
}

// //////////////////////////////////////////////////////
// Repetitions and material
// //////////////////////////////////////////////////////

// RepetitionCount returns the number of occurrences of the current
// position counting the current position itself and all entries of the
// repetition history window
func (p *Position) RepetitionCount() int {
	count := 1
	for _, k := range p.history {
		if k == p.zobristKey {
			count++
		}
	}
	return count
}

// IsRepetition reports whether the current position occurred at least
// once before within the current irreversible window. Used by the
// search to score in-tree cycles.
func (p *Position) IsRepetition() bool {
	for i := len(p.history) - 1; i >= 0; i-- {
		if p.history[i] == p.zobristKey {
			return true
		}
	}
	return false
}

// CheckRepetitions reports whether the current position occurred at
// least n times in total (current occurrence included)
func (p *Position) CheckRepetitions(n int) bool {
	return p.RepetitionCount() >= n
}

// HasInsufficientMaterial reports whether the position is a dead
// position from which no side can deliver mate.
// Any pawn, rook or queen means sufficient material. Otherwise a lone
// minor piece, two knights against a bare king or one minor piece per
// side cannot force mate. KBB vs K and KBN vs K can.
func (p *Position) HasInsufficientMaterial() bool {
	if p.piecesBb[White][Pawn]|p.piecesBb[Black][Pawn]|
		p.piecesBb[White][Rook]|p.piecesBb[Black][Rook]|
		p.piecesBb[White][Queen]|p.piecesBb[Black][Queen] != 0 {
		return false
	}
	wn := p.piecesBb[White][Knight].PopCount()
	bn := p.piecesBb[Black][Knight].PopCount()
	wMinors := p.piecesBb[White][Bishop].PopCount() + wn
	bMinors := p.piecesBb[Black][Bishop].PopCount() + bn
	switch wMinors + bMinors {
	case 0, 1:
		return true
	case 2:
		// two knights on one side or one minor each cannot mate;
		// KBB vs K and KBN vs K remain playable
		return wn == 2 || bn == 2 || (wMinors == 1 && bMinors == 1)
	}
	return false
}

// HasNonPawnMaterial reports whether the given color has at least one
// piece which is not a pawn or the king. Guards null move pruning
// against zugzwang-prone endings.
func (p *Position) HasNonPawnMaterial(c Color) bool {
	return p.piecesBb[c][Knight]|p.piecesBb[c][Bishop]|
		p.piecesBb[c][Rook]|p.piecesBb[c][Queen] != 0
}

// //////////////////////////////////////////////////////
// Accessors
// //////////////////////////////////////////////////////

// ZobristKey returns the current zobrist key for the position
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// NextPlayer returns the color of the next player for the position
func (p *Position) NextPlayer() Color {
	return p.nextPlayer
}

// GetPiece returns the piece on the given square or PieceNone
func (p *Position) GetPiece(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the bitboard of all pieces of the given color and type
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// OccupiedAll returns the bitboard of all occupied squares
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedAll
}

// OccupiedBb returns the bitboard of all occupied squares of one color
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.occupiedBb[c]
}

// KingSquare returns the square of the king of the given color
func (p *Position) KingSquare(c Color) Square {
	return p.piecesBb[c][King].Lsb()
}

// GetEnPassantSquare returns the en passant target square or SqNone
func (p *Position) GetEnPassantSquare() Square {
	return p.enPassantSquare
}

// CastlingRights returns the castling rights of the position
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// HalfMoveClock returns the number of half moves since the last pawn
// move or capture
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the full move number of the game
func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// HistoryLength returns the number of positions stored in the current
// repetition window
func (p *Position) HistoryLength() int {
	return len(p.history)
}

// String returns a string representation of the position
// as a board and the fen string
func (p *Position) String() string {
	var os strings.Builder
	os.WriteString(p.StringBoard())
	os.WriteString(p.StringFen())
	return os.String()
}

// StringBoard returns a string representation of the board
// as an 8x8 matrix
func (p *Position) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			os.WriteString("| ")
			pc := p.board[SquareOf(f, Rank8-r)]
			if pc == PieceNone {
				os.WriteString("  ")
			} else {
				os.WriteString(pc.Char() + " ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// //////////////////////////////////////////////////////
// Private
// //////////////////////////////////////////////////////

// putPiece places the piece on the square and updates bitboards,
// mailbox and zobrist key
func (p *Position) putPiece(piece Piece, sq Square) {
	c := piece.ColorOf()
	pt := piece.TypeOf()
	if assert.DEBUG {
		assert.Assert(p.board[sq] == PieceNone, "putPiece on occupied square %s", sq.String())
	}
	p.board[sq] = piece
	p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c].PushSquare(sq)
	p.occupiedAll.PushSquare(sq)
	p.zobristKey ^= zobristKeys.pieces[c][pt][sq]
}

// removePiece removes the piece from the square and updates bitboards,
// mailbox and zobrist key
func (p *Position) removePiece(sq Square) Piece {
	piece := p.board[sq]
	if assert.DEBUG {
		assert.Assert(piece != PieceNone, "removePiece on empty square %s", sq.String())
	}
	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[c][pt].PopSquare(sq)
	p.occupiedBb[c].PopSquare(sq)
	p.occupiedAll.PopSquare(sq)
	p.zobristKey ^= zobristKeys.pieces[c][pt][sq]
	return piece
}
