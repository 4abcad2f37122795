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

package testsuite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeTempEpd(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.epd")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadEpdFile(t *testing.T) {
	path := writeTempEpd(t, `
6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - bm Re8; id "back rank mate";
rnb1kbnr/pppppppp/8/8/8/3q4/PPPPPPPP/RNBQKBNR w KQkq - bm exd3; id "free queen";
# a comment line
this is not an epd line
`)
	ts, err := NewTestSuite(path, 100*time.Millisecond, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(ts.Tests))
	assert.Equal(t, "back rank mate", ts.Tests[0].ID)
	assert.Equal(t, "e1e8", ts.Tests[0].TargetMove.StringUci())
	assert.Equal(t, "e2d3", ts.Tests[1].TargetMove.StringUci())
}

func TestRunSmallSuite(t *testing.T) {
	path := writeTempEpd(t, `6k1/5ppp/8/8/8/8/5PPP/4R1K1 w - - bm Re8; id "mate in 1";
`)
	ts, err := NewTestSuite(path, 0, 6)
	assert.NoError(t, err)
	ts.RunTests()
	assert.Equal(t, Success, ts.Tests[0].Result)
	assert.Equal(t, "e1e8", ts.Tests[0].Actual.StringUci())
}

func TestMissingFile(t *testing.T) {
	_, err := NewTestSuite("does-not-exist.epd", time.Second, 0)
	assert.Error(t, err)
}
