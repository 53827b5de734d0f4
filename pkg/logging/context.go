package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey int

const (
	loggerKey contextKey = iota
)

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

// HasLogger reports whether a logger was attached to ctx with WithLogger.
func HasLogger(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	logger, ok := ctx.Value(loggerKey).(*zerolog.Logger)
	return ok && logger != nil
}

func withField(ctx context.Context, key string, value any) context.Context {
	logger := addField(FromContext(ctx).With(), key, value).Logger()
	return WithLogger(ctx, &logger)
}

// WithOperation adds the logical operation name to the logger.
func WithOperation(ctx context.Context, operation string) context.Context {
	return withField(ctx, "operation", operation)
}

// WithGroup adds the endpoint group (tvl, coins, ...) to the logger.
func WithGroup(ctx context.Context, group string) context.Context {
	return withField(ctx, "group", group)
}

// WithEndpoint adds the resolved endpoint URL to the logger.
func WithEndpoint(ctx context.Context, endpoint string) context.Context {
	return withField(ctx, "endpoint", endpoint)
}
