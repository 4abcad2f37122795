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

package config

// evalConfiguration is a data structure to hold the configuration of
// the evaluator. Weights are in centipawns.
type evalConfiguration struct {
	UseLazyEval bool
	LazyMargin  int

	UseMobility    bool
	MobilityBishop int
	MobilityRook   int

	UsePawnStructure     bool
	DoubledPawnPenalty   int
	IsolatedPawnPenalty  int
	BlockedPasserPenalty int

	UseKingSafety        bool
	KingZoneAttackWeight int
	KingShieldBonus      int
	KingOpenShieldMalus  int

	UseMopUp bool
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Eval.UseLazyEval = true
	Settings.Eval.LazyMargin = 200

	Settings.Eval.UseMobility = true
	Settings.Eval.MobilityBishop = 5
	Settings.Eval.MobilityRook = 3

	Settings.Eval.UsePawnStructure = true
	Settings.Eval.DoubledPawnPenalty = -10
	Settings.Eval.IsolatedPawnPenalty = -15
	Settings.Eval.BlockedPasserPenalty = -50

	Settings.Eval.UseKingSafety = true
	Settings.Eval.KingZoneAttackWeight = 15
	Settings.Eval.KingShieldBonus = 20
	Settings.Eval.KingOpenShieldMalus = -30

	Settings.Eval.UseMopUp = true
}
