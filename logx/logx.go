// Copyright (c) 2026, The Crosswalk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx selects the slog level for user-facing logging and
// builds the text loggers used by the netmat tool.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// UserLevel is the verbosity level that the user has selected for
// what logging messages should be shown. Messages at levels at or
// above this level are shown. The default is [slog.LevelInfo],
// [slog.LevelDebug] when built with the debug tag, and
// [slog.LevelWarn] when built with the release tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] for the given user flags:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [UserLevel])
//
// The flags are evaluated in that order.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return UserLevel
	}
}

// ParseLevel returns the level of the given name: debug, info, warn
// (or warning) or error, in any case. An empty name is [UserLevel].
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return UserLevel, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return UserLevel, fmt.Errorf("logx: unknown log level %q", name)
}

// NewLogger returns a text logger writing to w at [UserLevel].
func NewLogger(w io.Writer) *slog.Logger {
	return NewLevelLogger(w, UserLevel)
}

// NewLevelLogger returns a text logger writing to w at the given level.
func NewLevelLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetDefaultLogger sets [slog.Default] to a text logger writing to w
// at [UserLevel], and returns it.
func SetDefaultLogger(w io.Writer) *slog.Logger {
	logger := NewLogger(w)
	slog.SetDefault(logger)
	return logger
}
