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

// Package logging is a helper for the "github.com/op/go-logging"
// package to reduce the lines of code within each go file to one line.
// The functions return Logger instances which are configured with
// the necessary backends and formatters.
package logging

import (
	golog "log"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/vantagechess/VantageGo/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger
	uciLog      *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
	uciFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
	uciLog = logging.MustGetLogger("UCI ")
}

// GetLog returns an instance of a standard Logger preconfigured with an
// os.Stdout backend and a "normal" logging format (e.g. time - file - level)
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns an instance of a special Logger preconfigured
// for the search to stdout with the configured search log level
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetTestLog returns an instance of a special Logger preconfigured for
// tests
func GetTestLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(leveled)
	return testLog
}

// GetUciLog returns an instance of a special Logger preconfigured for
// logging the UCI protocol communication. Writes to a log file when
// configured, otherwise to stdout with level critical only.
func GetUciLog() *logging.Logger {
	if config.Settings.Log.UciLog {
		logPath := config.Settings.Log.LogPath
		_ = os.MkdirAll(logPath, 0o755)
		f, err := os.OpenFile(filepath.Join(logPath, "vantagego_ucilog.log"),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err == nil {
			backend := logging.NewLogBackend(f, "", golog.Lmsgprefix)
			formatted := logging.NewBackendFormatter(backend, uciFormat)
			leveled := logging.AddModuleLevel(formatted)
			leveled.SetLevel(logging.DEBUG, "")
			uciLog.SetBackend(leveled)
			return uciLog
		}
	}
	backend := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, uciFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.CRITICAL, "")
	uciLog.SetBackend(leveled)
	return uciLog
}
