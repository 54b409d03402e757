package coll

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(NoopLogger())
}

// NoopLogger returns a logger that discards all output.
func NoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// SetLogger installs the logger used to report buffer and table growth.
// Passing nil restores the discarding default.
//
// Growth events are logged at debug level, so the logger's handler decides
// whether they are emitted.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = NoopLogger()
	}
	pkgLogger.Store(l)
}

// Logger returns the currently installed package logger.
func Logger() *slog.Logger {
	return pkgLogger.Load()
}

func logResize(oldCap, newCap int, elemSize uintptr) {
	l := pkgLogger.Load()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("buffer resized",
		"old_cap", oldCap,
		"new_cap", newCap,
		"elem_size", elemSize,
	)
}

func logRehash(oldBuckets, newBuckets, length int) {
	l := pkgLogger.Load()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("table rehashed",
		"old_buckets", oldBuckets,
		"new_buckets", newBuckets,
		"len", length,
	)
}
