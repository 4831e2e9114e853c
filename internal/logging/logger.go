// Package logging defines the structured-logging interface used across the
// client. Implementations wrap slog (default) and zerolog.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request sent", "method", "GET", "path", "/courses/list.php")
type Logger interface {
	// Debug logs diagnostic detail such as individual HTTP round trips.
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

// Backend names accepted by New.
const (
	BackendSlog    = "slog"
	BackendZerolog = "zerolog"
)

// New builds a Logger for the named backend writing to w (os.Stderr when nil).
// Unknown backends fall back to slog.
func New(backend, level string, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendZerolog:
		return NewZerologLogger(w, level)
	default:
		return NewSlogLogger(w, level)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(io.Discard, "error")
}
