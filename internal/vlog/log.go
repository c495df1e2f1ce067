// internal/vlog/log.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// A thin slog wrapper with file rotation via lumberjack, modeled on
// mmp-vice's pkg/log. The performance engine itself (pkg/aviation) is
// pure and never touches a logger; this package exists for the CLI's
// diagnostics — subcommand dispatch, batch-run progress, and request
// errors.
package vlog

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger with a nil-safe Debug/Info and rotation
// configured up front, so callers never have to construct a handler.
type Logger struct {
	*slog.Logger
	LogFile string
}

// New builds a Logger that writes JSON-formatted records to logFile,
// rotated by lumberjack once it crosses maxSizeMB. If logFile is empty,
// records go to stderr instead and no rotation occurs.
func New(logFile string, level string, maxSizeMB int) *Logger {
	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	case "":
		// default to info
	default:
		fmt.Fprintf(os.Stderr, "%s: invalid log level, defaulting to info\n", level)
	}

	var handler slog.Handler
	if logFile == "" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	} else {
		lj := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    maxSizeMB,
			MaxBackups: 3,
			MaxAge:     14,
			Compress:   true,
		}
		handler = slog.NewJSONHandler(lj, &slog.HandlerOptions{Level: lvl})
	}

	return &Logger{Logger: slog.New(handler), LogFile: logFile}
}

// Debug is nil-safe: a nil *Logger silently discards debug records,
// which lets callers pass around a possibly-unconfigured logger
// without a nil check at every call site.
func (l *Logger) Debug(msg string, args ...any) {
	if l != nil {
		l.Logger.Debug(msg, args...)
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil {
		l.Logger.Info(msg, args...)
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	if l == nil {
		slog.Warn(msg, args...)
		return
	}
	l.Logger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	if l == nil {
		slog.Error(msg, args...)
		return
	}
	l.Logger.Error(msg, args...)
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), LogFile: l.LogFile}
}
