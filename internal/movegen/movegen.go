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

// Package movegen contains functionality to create moves on a chess
// position. It implements pseudo-legal move generation for all piece
// types, the legality filter and castling legality. Sliding attacks
// come from the magic bitboard tables in the types package.
package movegen

import (
	. "github.com/vantagechess/VantageGo/internal/types"

	"github.com/vantagechess/VantageGo/internal/moveslice"
	"github.com/vantagechess/VantageGo/internal/position"
)

// Movegen is a data structure holding the buffers needed for move
// generation. Each parallel user (search instance, perft) needs its
// own instance.
type Movegen struct {
	scratch *moveslice.MoveSlice
}

// NewMoveGen creates a new instance of a move generator
func NewMoveGen() *Movegen {
	return &Movegen{
		scratch: moveslice.NewMoveSlice(MaxMoves),
	}
}

// GeneratePseudoLegalMoves generates all pseudo-legal moves for the
// next player of the position into the given move list. Pseudo-legal
// moves obey piece movement, blocker and own-color rules but may leave
// the own king in check. The enemy king is never a capture target.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, ml *moveslice.MoveSlice) {
	mg.GenerateCaptures(p, ml)
	mg.GenerateQuiets(p, ml)
}

// GenerateCaptures generates all pseudo-legal capturing moves and all
// promotions (capturing and quiet) into the given move list
func (mg *Movegen) GenerateCaptures(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	them := us.Flip()
	enemyWithoutKing := p.OccupiedBb(them) &^ p.PiecesBb(them, King)
	occ := p.OccupiedAll()

	mg.generatePawnCaptures(p, us, enemyWithoutKing, ml)

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(us, pt)
		for pieces != 0 {
			from := pieces.PopLsb()
			targets := GetAttacksBb(pt, from, occ) & enemyWithoutKing
			for targets != 0 {
				to := targets.PopLsb()
				ml.PushBack(CreateMove(from, to, pt, PtNone, Capture))
			}
		}
	}

	kingSq := p.KingSquare(us)
	targets := GetAttacksBb(King, kingSq, BbZero) & enemyWithoutKing
	for targets != 0 {
		to := targets.PopLsb()
		ml.PushBack(CreateMove(kingSq, to, King, PtNone, Capture))
	}
}

// GenerateQuiets generates all pseudo-legal non-capturing moves
// without promotions into the given move list. Castling moves are
// checked for empty in-between squares only; attacked squares are left
// to the legality filter.
func (mg *Movegen) GenerateQuiets(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	occ := p.OccupiedAll()
	empty := ^occ

	mg.generatePawnQuiets(p, us, empty, ml)

	for pt := Knight; pt <= Queen; pt++ {
		pieces := p.PiecesBb(us, pt)
		for pieces != 0 {
			from := pieces.PopLsb()
			targets := GetAttacksBb(pt, from, occ) & empty
			for targets != 0 {
				to := targets.PopLsb()
				ml.PushBack(CreateMove(from, to, pt, PtNone, Quiet))
			}
		}
	}

	kingSq := p.KingSquare(us)
	targets := GetAttacksBb(King, kingSq, BbZero) & empty
	for targets != 0 {
		to := targets.PopLsb()
		ml.PushBack(CreateMove(kingSq, to, King, PtNone, Quiet))
	}

	// castling - the right must be set and the squares between king
	// and rook must be empty
	cr := p.CastlingRights()
	if us == White {
		if cr.Has(CastlingWhiteOO) && occ&CastlingBetweenMask(White, KingSideCastle) == 0 {
			ml.PushBack(CreateMove(SqE1, SqG1, King, PtNone, KingSideCastle))
		}
		if cr.Has(CastlingWhiteOOO) && occ&CastlingBetweenMask(White, QueenSideCastle) == 0 {
			ml.PushBack(CreateMove(SqE1, SqC1, King, PtNone, QueenSideCastle))
		}
	} else {
		if cr.Has(CastlingBlackOO) && occ&CastlingBetweenMask(Black, KingSideCastle) == 0 {
			ml.PushBack(CreateMove(SqE8, SqG8, King, PtNone, KingSideCastle))
		}
		if cr.Has(CastlingBlackOOO) && occ&CastlingBetweenMask(Black, QueenSideCastle) == 0 {
			ml.PushBack(CreateMove(SqE8, SqC8, King, PtNone, QueenSideCastle))
		}
	}
}

// GenerateLegalMoves generates all legal moves for the next player of
// the position into the given move list. Every legal move appears
// exactly once; the order within the list is unspecified.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, ml *moveslice.MoveSlice) {
	mg.scratch.Clear()
	mg.GeneratePseudoLegalMoves(p, mg.scratch)
	for _, m := range *mg.scratch {
		if mg.IsLegalMove(p, m) {
			ml.PushBack(m)
		}
	}
}

// HasLegalMove reports whether the next player has at least one legal
// move. Terminates early and is therefore cheaper than generating all
// legal moves when only mate/stalemate needs to be decided.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	mg.scratch.Clear()
	mg.GeneratePseudoLegalMoves(p, mg.scratch)
	for _, m := range *mg.scratch {
		if mg.IsLegalMove(p, m) {
			return true
		}
	}
	return false
}

// IsLegalMove reports whether the given pseudo-legal move does not
// leave the own king in check. Castling moves are checked for an
// attack-free king path instead.
func (mg *Movegen) IsLegalMove(p *position.Position, m Move) bool {
	if m.IsCastling() {
		return mg.IsLegalCastling(p, m)
	}
	us := p.NextPlayer()
	undo := p.DoMove(m)
	legal := !p.IsInCheck(us)
	p.UndoMove(undo)
	return legal
}

// IsLegalCastling verifies that the king is not currently in check,
// does not pass through an attacked square and does not land on one
func (mg *Movegen) IsLegalCastling(p *position.Position, m Move) bool {
	us := p.NextPlayer()
	them := us.Flip()
	from := m.From()
	to := m.To()
	var middle Square
	if m.Flags() == KingSideCastle {
		middle = from + 1
	} else {
		middle = from - 1
	}
	for _, sq := range [3]Square{from, middle, to} {
		if p.IsAttacked(sq, them) {
			return false
		}
	}
	return true
}

// ////////////////////
// Private
// ////////////////////

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func (mg *Movegen) generatePawnCaptures(p *position.Position, us Color, enemyWithoutKing Bitboard, ml *moveslice.MoveSlice) {
	pawns := p.PiecesBb(us, Pawn)
	empty := ^p.OccupiedAll()
	promoRank := us.PromotionRank().Bb()

	// captures incl. promotion captures
	attackers := pawns
	for attackers != 0 {
		from := attackers.PopLsb()
		targets := GetPawnAttacks(us, from) & enemyWithoutKing
		for targets != 0 {
			to := targets.PopLsb()
			if to.Bb()&promoRank != 0 {
				for _, promo := range promotionTypes {
					ml.PushBack(CreateMove(from, to, Pawn, promo, PromotionCapture))
				}
			} else {
				ml.PushBack(CreateMove(from, to, Pawn, PtNone, Capture))
			}
		}
	}

	// quiet promotions
	var promoPushes Bitboard
	if us == White {
		promoPushes = (pawns << 8) & empty & promoRank
	} else {
		promoPushes = (pawns >> 8) & empty & promoRank
	}
	for promoPushes != 0 {
		to := promoPushes.PopLsb()
		from := Square(int(to) - 8*us.MoveDirection())
		for _, promo := range promotionTypes {
			ml.PushBack(CreateMove(from, to, Pawn, promo, Promotion))
		}
	}

	// en passant - the captured pawn must exist and the target square
	// must be empty
	ep := p.GetEnPassantSquare()
	if ep != SqNone && empty.Has(ep) {
		capSq := Square(int(ep) - 8*us.MoveDirection())
		if p.GetPiece(capSq) == MakePiece(us.Flip(), Pawn) {
			attackers := GetPawnAttacks(us.Flip(), ep) & pawns
			for attackers != 0 {
				from := attackers.PopLsb()
				ml.PushBack(CreateMove(from, ep, Pawn, PtNone, EnPassant))
			}
		}
	}
}

func (mg *Movegen) generatePawnQuiets(p *position.Position, us Color, empty Bitboard, ml *moveslice.MoveSlice) {
	pawns := p.PiecesBb(us, Pawn)
	promoRank := us.PromotionRank().Bb()

	var singlePushes, doublePushes Bitboard
	if us == White {
		singlePushes = (pawns << 8) & empty &^ promoRank
		doublePushes = ((((pawns & Rank2_Bb) << 8) & empty) << 8) & empty
	} else {
		singlePushes = (pawns >> 8) & empty &^ promoRank
		doublePushes = ((((pawns & Rank7_Bb) >> 8) & empty) >> 8) & empty
	}

	for singlePushes != 0 {
		to := singlePushes.PopLsb()
		from := Square(int(to) - 8*us.MoveDirection())
		ml.PushBack(CreateMove(from, to, Pawn, PtNone, Quiet))
	}
	for doublePushes != 0 {
		to := doublePushes.PopLsb()
		from := Square(int(to) - 16*us.MoveDirection())
		ml.PushBack(CreateMove(from, to, Pawn, PtNone, DoublePush))
	}
}
