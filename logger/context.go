// Package logger carries a *slog.Logger through context so request
// handlers and outbound clients share one annotated logger.
package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// FromContext retrieves the logger stored in ctx, falling back to
// slog.Default when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// WithRequestID annotates the context logger with a request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithLogger(ctx, FromContext(ctx).With("request_id", requestID))
}
