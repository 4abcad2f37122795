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

// searchConfiguration is a data structure to hold the configuration of
// an instance of a search. Most entries toggle or tune one search
// feature so features can be measured in isolation.
type searchConfiguration struct {
	// Opening book
	UseBook    bool
	BookPath   string
	BookFile   string
	BookFormat string

	// Quiescence search
	UseQuiescence bool
	UseSEE        bool
	UseDeltaPrune bool

	// Move ordering
	UsePVS    bool
	UseKiller bool

	// Transposition Table
	UseTT  bool
	TTSize int

	// Prunings before move generation
	UseRFP      bool
	UseNullMove bool

	// Check extension
	UseCheckExt bool

	// Prunings after move generation but before making the move
	UseFP  bool
	UseLmp bool
	UseLmr bool

	// Aspiration windows in iterative deepening
	UseAspiration    bool
	AspirationWindow int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UseBook = false
	Settings.Search.BookPath = "./assets/books"
	Settings.Search.BookFile = ""
	Settings.Search.BookFormat = "Simple"

	Settings.Search.UseQuiescence = true
	Settings.Search.UseSEE = true
	Settings.Search.UseDeltaPrune = true

	Settings.Search.UsePVS = true
	Settings.Search.UseKiller = true

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64

	Settings.Search.UseRFP = true
	Settings.Search.UseNullMove = true

	Settings.Search.UseCheckExt = true

	Settings.Search.UseFP = true
	Settings.Search.UseLmp = true
	Settings.Search.UseLmr = true

	Settings.Search.UseAspiration = true
	Settings.Search.AspirationWindow = 50
}
