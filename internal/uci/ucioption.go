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

package uci

import (
	"strconv"
	"strings"

	"github.com/vantagechess/VantageGo/internal/config"
)

// optionHandler is a function to handle a "setoption" command
type optionHandler func(u *UciHandler, value string)

// uciOption defines one UCI option with its announcement string and
// its handler
type uciOption struct {
	NameID      string
	HandleOption optionHandler
	OptionDef   string
}

// uciOptions lists all options the engine announces after "uci"
var uciOptions = []uciOption{
	{
		NameID:      "Hash",
		OptionDef:   "option name Hash type spin default 64 min 1 max 65536",
		HandleOption: func(u *UciHandler, value string) {
			if size, err := strconv.Atoi(value); err == nil && size > 0 {
				config.Settings.Search.TTSize = size
				u.mySearch.ResizeCache()
			}
		},
	},
	{
		NameID:      "Clear Hash",
		OptionDef:   "option name Clear Hash type button",
		HandleOption: func(u *UciHandler, value string) {
			u.mySearch.ClearHash()
		},
	},
	{
		NameID:      "OwnBook",
		OptionDef:   "option name OwnBook type check default false",
		HandleOption: func(u *UciHandler, value string) {
			config.Settings.Search.UseBook = value == "true"
		},
	},
	{
		NameID:      "Use SEE",
		OptionDef:   "option name Use SEE type check default true",
		HandleOption: func(u *UciHandler, value string) {
			config.Settings.Search.UseSEE = value == "true"
		},
	},
}

// sendOptions announces all available options to the user interface
func (u *UciHandler) sendOptions() {
	for _, option := range uciOptions {
		u.send(option.OptionDef)
	}
}

// setOptionCommand handles "setoption name <id> [value <x>]"
func (u *UciHandler) setOptionCommand(tokens []string) {
	var name, value string
	i := 1
	if i < len(tokens) && tokens[i] == "name" {
		i++
		var nameParts []string
		for i < len(tokens) && tokens[i] != "value" {
			nameParts = append(nameParts, tokens[i])
			i++
		}
		name = strings.Join(nameParts, " ")
	}
	if i < len(tokens) && tokens[i] == "value" {
		i++
		value = strings.Join(tokens[i:], " ")
	}
	if name == "" {
		u.log.Warning("setoption without option name")
		return
	}
	for _, option := range uciOptions {
		if strings.EqualFold(option.NameID, name) {
			option.HandleOption(u, value)
			return
		}
	}
	u.log.Warningf("setoption with unknown option: %s", name)
}
