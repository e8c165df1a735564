// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides a simple leveled logging layer on top of
// [log/slog], with a package-level user verbosity level that
// command-line tools set from their flags.
package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// which logging and printing messages should be shown. Messages at
// levels at or above this level are shown. The default is
// [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so if both vv and q are
// specified, the result is still Debug.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// print writes the message to standard error if the given level is at
// or above [UserLevel].
func print(level slog.Level, a ...any) {
	if level < UserLevel {
		return
	}
	fmt.Fprintln(os.Stderr, a...)
}

// PrintlnDebug prints the given arguments to standard error
// if [UserLevel] is [slog.LevelDebug] or lower.
func PrintlnDebug(a ...any) { print(slog.LevelDebug, a...) }

// PrintlnInfo prints the given arguments to standard error
// if [UserLevel] is [slog.LevelInfo] or lower.
func PrintlnInfo(a ...any) { print(slog.LevelInfo, a...) }

// PrintlnWarn prints the given arguments to standard error
// if [UserLevel] is [slog.LevelWarn] or lower.
func PrintlnWarn(a ...any) { print(slog.LevelWarn, a...) }

// PrintlnError prints the given arguments to standard error
// if [UserLevel] is [slog.LevelError] or lower.
func PrintlnError(a ...any) { print(slog.LevelError, a...) }
