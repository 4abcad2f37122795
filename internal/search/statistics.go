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

package search

// Statistics are extra data and measurements collected during a
// search. They are reset on every StartSearch and mainly serve
// debugging and feature measurement.
type Statistics struct {
	BetaCuts          uint64
	BetaCutsFirstMove uint64
	TTProbes          uint64
	TTHits            uint64
	TTCuts            uint64
	RfpPrunings       uint64
	NullMoveCuts      uint64
	FpPrunings        uint64
	LmpPrunings       uint64
	LmrResearches     uint64
	PvsResearches     uint64
	AspirationFails   uint64
	QNodes            uint64
	DeltaPrunings     uint64
	SeePrunings       uint64
	CheckExtensions   uint64
}

func (st *Statistics) String() string {
	return out.Sprintf("beta cuts: %d (%d%% first move), tt probes: %d, tt hits: %d, tt cuts: %d, "+
		"rfp: %d, null cuts: %d, fp: %d, lmp: %d, lmr re-searches: %d, pvs re-searches: %d, "+
		"aspiration fails: %d, qnodes: %d, delta prunings: %d, see prunings: %d, check extensions: %d",
		st.BetaCuts, (100*st.BetaCutsFirstMove)/(1+st.BetaCuts),
		st.TTProbes, st.TTHits, st.TTCuts,
		st.RfpPrunings, st.NullMoveCuts, st.FpPrunings, st.LmpPrunings,
		st.LmrResearches, st.PvsResearches,
		st.AspirationFails, st.QNodes, st.DeltaPrunings, st.SeePrunings, st.CheckExtensions)
}
