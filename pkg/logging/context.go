package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

// loggerKey is the context key for the logger.
const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}

	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}

	return Default()
}

// Ctx returns a logger from the context or the default logger.
// This is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithField adds a single field to the logger in the context.
func WithField(ctx context.Context, key string, value any) context.Context {
	logger := FromContext(ctx)
	newLogger := logger.With().Interface(key, value).Logger()
	return WithLogger(ctx, &newLogger)
}

// WithProvider adds LLM provider context to the logger.
func WithProvider(ctx context.Context, provider string) context.Context {
	logger := FromContext(ctx)
	newLogger := logger.With().Str("provider", provider).Logger()
	return WithLogger(ctx, &newLogger)
}

// WithCommand adds command context to the logger.
func WithCommand(ctx context.Context, command string) context.Context {
	logger := FromContext(ctx)
	newLogger := logger.With().Str("command", command).Logger()
	return WithLogger(ctx, &newLogger)
}
