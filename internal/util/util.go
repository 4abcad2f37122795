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

// Package util provides some utility functions missing in the GO
// standard library
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Abs returns the absolute value of an int
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Min returns the smaller of two ints
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of two ints
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Min64 returns the smaller of two int64
func Min64(x, y int64) int64 {
	if x < y {
		return x
	}
	return y
}

// Nps calculates nodes per second from nodes and duration
func Nps(nodes uint64, duration time.Duration) uint64 {
	if duration.Nanoseconds() == 0 {
		return 0
	}
	return uint64(float64(nodes) / duration.Seconds())
}

// TimeTrack logs the time between the start time and the call.
// Usage: defer util.TimeTrack(time.Now(), "some label")
func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	fmt.Printf("%s took %s\n", name, elapsed)
}

// MemStat returns a string with information about the current memory usage
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return fmt.Sprintf("Alloc = %d MB, TotalAlloc = %d MB, Sys = %d MB, NumGC = %d",
		mem.Alloc/(1<<20), mem.TotalAlloc/(1<<20), mem.Sys/(1<<20), mem.NumGC)
}

// ResolveFile tries to find the given file relative to the working
// directory or the executable's directory and returns an absolute path.
func ResolveFile(file string) (string, error) {
	if filepath.IsAbs(file) {
		return file, nil
	}
	if _, err := os.Stat(file); err == nil {
		return filepath.Abs(file)
	}
	exe, err := os.Executable()
	if err != nil {
		return file, err
	}
	candidate := filepath.Join(filepath.Dir(exe), file)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return file, fmt.Errorf("could not resolve file %s", file)
}
