//go:build !debug
// +build !debug

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

// Package assert is a helper to allow assert tests in a standardized
// and simple manner. Assertions are compiled away unless the build tag
// "debug" is set. Wrap calls in "if assert.DEBUG { ... }" so the GO
// compiler can eliminate the whole statement in release builds.
package assert

// DEBUG if this is set to "true" asserts are evaluated
const DEBUG = false

// Assert checks the given condition and panics with the given message
// if it evaluates to false. No-op in release builds.
func Assert(test bool, msg string, a ...interface{}) {}
