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

// VantageGo - a UCI chess engine.
// Started without arguments the engine runs the UCI protocol loop on
// stdin/stdout. Command line flags provide access to perft, a nodes
// per second benchmark and the EPD test suite runner.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vantagechess/VantageGo/internal/config"
	"github.com/vantagechess/VantageGo/internal/logging"
	"github.com/vantagechess/VantageGo/internal/movegen"
	"github.com/vantagechess/VantageGo/internal/position"
	"github.com/vantagechess/VantageGo/internal/search"
	"github.com/vantagechess/VantageGo/internal/testsuite"
	"github.com/vantagechess/VantageGo/internal/uci"
	"github.com/vantagechess/VantageGo/internal/util"
	"github.com/vantagechess/VantageGo/internal/version"
)

var out = message.NewPrinter(language.English)

func main() {
	// command line args
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	bookPath := flag.String("bookpath", "", "path to opening book files")
	bookFile := flag.String("bookfile", "", "opening book file within the book path")
	bookFormat := flag.String("bookformat", "", "format of the opening book\n(Simple|San)")
	testSuite := flag.String("testsuite", "", "path to file containing EPD tests")
	testMovetime := flag.Int("testtime", 2000, "search time for each test position in milliseconds")
	testSearchDepth := flag.Int("testdepth", 0, "search depth limit for each test position")
	perftDepth := flag.Int("perft", 0, "starts perft on the start position with the given depth\nuse -fen to provide a different position")
	fen := flag.String("fen", position.StartFen, "fen for perft and nps test")
	nps := flag.Int("nps", 0, "starts a nodes per second test searching the given amount of seconds\nuse -fen to provide a different position")
	profileFlag := flag.String("profile", "", "write a cpu or mem profile\n(cpu|mem)")
	flag.Parse()

	// print version info and exit
	if *versionInfo {
		printVersionInfo()
		return
	}

	// profiling
	switch *profileFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	// this needs to be set before config.Setup() is called,
	// otherwise the default path will be used
	config.ConfFile = *configFile
	config.Setup()

	// after reading the configuration file and the defaults,
	// overwrite settings with command line options
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if *bookPath != "" {
		config.Settings.Search.BookPath = *bookPath
	}
	if *bookFile != "" {
		config.Settings.Search.BookFile = *bookFile
		config.Settings.Search.UseBook = true
	}
	if *bookFormat != "" {
		config.Settings.Search.BookFormat = *bookFormat
	}

	// reset the standard logger to the actual configured level
	logging.GetLog()

	// nps test
	if *nps != 0 {
		config.Settings.Search.UseBook = false
		s := search.NewSearch()
		p, err := position.NewPositionFen(*fen)
		if err != nil {
			fmt.Println("Invalid fen:", *fen)
			os.Exit(1)
		}
		sl := search.NewSearchLimits()
		sl.TimeControl = true
		sl.MoveTime = time.Duration(*nps) * time.Second
		s.StartSearch(*p, *sl)
		s.WaitWhileSearching()
		out.Println("NPS: ", util.Nps(s.NodesVisited(), s.LastSearchResult().SearchTime))
		return
	}

	// perft
	if *perftDepth != 0 {
		perft := movegen.NewPerft()
		for i := 1; i <= *perftDepth; i++ {
			perft.StartPerft(*fen, i, true)
		}
		return
	}

	// execute test suite if a test file is given
	if *testSuite != "" {
		ts, err := testsuite.NewTestSuite(*testSuite,
			time.Duration(*testMovetime)*time.Millisecond, *testSearchDepth)
		if err != nil {
			fmt.Println("Could not read test suite:", err)
			os.Exit(1)
		}
		ts.RunTests()
		return
	}

	// start the uci handler and wait for communication with the
	// chess user interface
	u := uci.NewUciHandler()
	u.Loop()
}

func printVersionInfo() {
	out.Printf("VantageGo %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
