// Package logging defines the small structured-logging interface used
// across the pokedex core. The cache and state layers log and swallow
// storage failures instead of propagating them, so they only depend on
// this interface, not on a concrete logging backend.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs:
//
//	log.Warn(ctx, "cache write failed", "key", key, "err", err)
type Logger interface {
	// Debug logs fine-grained diagnostic messages.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions (e.g. a best-effort
	// cache write that failed).
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given
	// key-value pairs.
	With(args ...any) Logger
}
