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

package movegen

import (
	"github.com/vantagechess/VantageGo/internal/position"
)

// GameStatus represents the result of the game state evaluation of a
// position
type GameStatus uint8

// Constants for game states in order of their priority
const (
	InPlay GameStatus = iota
	DrawFivefold
	DrawSeventyFiveMoves
	DrawInsufficientMaterial
	DrawThreefold
	DrawFiftyMoves
	Checkmate
	Stalemate
)

var gameStatusToString = [8]string{
	"in play",
	"draw by fivefold repetition",
	"draw by 75-move rule",
	"draw by insufficient material",
	"draw by threefold repetition",
	"draw by fifty-move rule",
	"checkmate",
	"stalemate",
}

func (gs GameStatus) String() string {
	return gameStatusToString[gs]
}

// IsDraw reports whether the status is one of the draw states
func (gs GameStatus) IsDraw() bool {
	return gs >= DrawFivefold && gs <= DrawFiftyMoves
}

// PositionStatus determines the game status of the given position.
// Priority (highest first): fivefold repetition and the 75-move rule
// end the game automatically, then a dead position, then the claimable
// threefold and fifty-move draws, finally mate, stalemate or in-play
// decided over the legal moves.
func (mg *Movegen) PositionStatus(p *position.Position) GameStatus {
	hmc := p.HalfMoveClock()

	if p.CheckRepetitions(5) {
		return DrawFivefold
	}
	if hmc >= 150 {
		return DrawSeventyFiveMoves
	}
	if p.HasInsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	if p.CheckRepetitions(3) {
		return DrawThreefold
	}
	if hmc >= 100 {
		return DrawFiftyMoves
	}

	if !mg.HasLegalMove(p) {
		if p.HasCheck() {
			return Checkmate
		}
		return Stalemate
	}
	return InPlay
}
