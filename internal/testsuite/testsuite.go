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

// Package testsuite provides a way to run chess test suites in the
// EPD format against the engine's search. Each EPD line holds a
// position and a best move ("bm") operation in SAN notation:
//
//	<FEN> bm <SAN>; id "name";
//
// The runner searches each position for a fixed time or depth and
// compares the engine's choice against the expected move.
package testsuite

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/vantagechess/VantageGo/internal/logging"
	"github.com/vantagechess/VantageGo/internal/movegen"
	"github.com/vantagechess/VantageGo/internal/position"
	"github.com/vantagechess/VantageGo/internal/search"
	. "github.com/vantagechess/VantageGo/internal/types"
	"github.com/vantagechess/VantageGo/internal/util"
)

var out = message.NewPrinter(language.English)

// TestResult is the result of one EPD test
type TestResult uint8

// Constants for test results
const (
	NotTested TestResult = iota
	Success
	Failed
	Skipped
)

// Test represents one EPD test line
type Test struct {
	ID       string
	Fen      string
	TargetMove Move
	Expected string
	Actual   Move
	Result   TestResult
	Nodes    uint64
}

// TestSuite represents a set of EPD tests and runs them against the
// search
type TestSuite struct {
	FilePath   string
	Tests      []*Test
	Time       time.Duration
	Depth      int
	log        *logging.Logger
	mg         *movegen.Movegen
}

// NewTestSuite reads the given EPD file into a TestSuite instance.
// Unreadable lines are logged and skipped.
func NewTestSuite(filePath string, searchTime time.Duration, depth int) (*TestSuite, error) {
	ts := &TestSuite{
		FilePath: filePath,
		Time:     searchTime,
		Depth:    depth,
		log:      myLogging.GetTestLog(),
		mg:       movegen.NewMoveGen(),
	}
	if err := ts.readTestFile(); err != nil {
		return nil, err
	}
	return ts, nil
}

// RunTests runs all tests of the suite and prints a result table
func (ts *TestSuite) RunTests() {
	if len(ts.Tests) == 0 {
		ts.log.Warning("Test suite has no tests")
		return
	}

	startTime := time.Now()
	s := search.NewSearch()

	ts.log.Info(out.Sprintf("Running test suite %s with %d tests (time %d ms, depth %d)",
		ts.FilePath, len(ts.Tests), ts.Time.Milliseconds(), ts.Depth))

	for i, test := range ts.Tests {
		ts.runSingleTest(s, test)
		ts.log.Info(out.Sprintf("Test %d/%d %s: %s - expected %s, got %s",
			i+1, len(ts.Tests), test.ID, resultString(test.Result),
			test.Expected, test.Actual.StringUci()))
	}

	elapsed := time.Since(startTime)
	successCount := 0
	failedCount := 0
	skippedCount := 0
	var totalNodes uint64
	for _, test := range ts.Tests {
		switch test.Result {
		case Success:
			successCount++
		case Failed:
			failedCount++
		case Skipped:
			skippedCount++
		}
		totalNodes += test.Nodes
	}

	ts.log.Info(out.Sprintf("Test suite %s finished in %d ms: %d of %d successful (%d failed, %d skipped), %d nodes (%d nps)",
		ts.FilePath, elapsed.Milliseconds(), successCount, len(ts.Tests),
		failedCount, skippedCount, totalNodes, util.Nps(totalNodes, elapsed)))
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// runSingleTest searches the test position and compares the result
func (ts *TestSuite) runSingleTest(s *search.Search, test *Test) {
	p, err := position.NewPositionFen(test.Fen)
	if err != nil {
		test.Result = Skipped
		return
	}

	sl := search.NewSearchLimits()
	if ts.Depth > 0 {
		sl.Depth = ts.Depth
	}
	if ts.Time > 0 {
		sl.MoveTime = ts.Time
		sl.TimeControl = true
	}

	s.NewGame()
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()

	result := s.LastSearchResult()
	test.Actual = result.BestMove
	test.Nodes = result.Nodes

	if test.Actual.SameAs(test.TargetMove) {
		test.Result = Success
	} else {
		test.Result = Failed
	}
}

var regexTrailingComments = regexp.MustCompile(";.*$")

// readTestFile reads and parses the EPD file of this suite
func (ts *TestSuite) readTestFile() error {
	path, err := util.ResolveFile(ts.FilePath)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	lineCount := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineCount++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		test, ok := ts.parseEpdLine(line)
		if !ok {
			ts.log.Warningf("Could not parse EPD line %d: %s", lineCount, line)
			continue
		}
		ts.Tests = append(ts.Tests, test)
	}
	return scanner.Err()
}

var regexEpdBm = regexp.MustCompile(`bm\s+([^;]+);`)
var regexEpdID = regexp.MustCompile(`id\s+"([^"]+)"`)

// parseEpdLine parses one EPD line into a Test. The best move is
// converted from SAN to an engine move on the position.
func (ts *TestSuite) parseEpdLine(line string) (*Test, bool) {
	bmMatch := regexEpdBm.FindStringSubmatch(line)
	if bmMatch == nil {
		return nil, false
	}
	fenEnd := strings.Index(line, " bm ")
	if fenEnd < 0 {
		return nil, false
	}
	fen := strings.TrimSpace(line[:fenEnd])

	p, err := position.NewPositionFen(fen)
	if err != nil {
		return nil, false
	}

	// several best moves may be given - we only use the first
	sanMove := strings.Fields(strings.TrimSpace(bmMatch[1]))[0]
	sanMove = regexTrailingComments.ReplaceAllString(sanMove, "")
	m := ts.mg.GetMoveFromSan(p, sanMove)
	if m == MoveNone {
		return nil, false
	}

	test := &Test{
		Fen:        fen,
		TargetMove: m,
		Expected:   sanMove,
	}
	if idMatch := regexEpdID.FindStringSubmatch(line); idMatch != nil {
		test.ID = idMatch[1]
	} else {
		test.ID = fen
	}
	return test, true
}

func resultString(r TestResult) string {
	switch r {
	case Success:
		return "SUCCESS"
	case Failed:
		return "FAILED"
	case Skipped:
		return "SKIPPED"
	}
	return "NOT TESTED"
}
