// Package logging defines a minimal structured-logging interface used across
// the project. Implementations wrap slog (default) or zerolog.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/rs/zerolog"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "starting server", "addr", addr, "mode", mode)
type Logger interface {
	// Debug logs verbose diagnostics.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const (
	FormatSlog    = "slog"
	FormatZerolog = "zerolog"
)

// New builds an info-level JSON logger writing to w. Unknown formats fall
// back to slog.
func New(format string, w io.Writer) Logger {
	return NewWithLevel(format, w, "info")
}

// NewWithLevel is New with a minimum level: "debug", "info", "warn" or
// "error".
func NewWithLevel(format string, w io.Writer, level string) Logger {
	lvl := parseLevel(level)
	if format == FormatZerolog {
		return NewZerologLogger(zerolog.New(w).Level(zerologLevel(lvl)).With().Timestamp().Logger())
	}
	return newSlogJSON(w, lvl)
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
