package surfgo

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with surfgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithFamily adds the descriptor family to the logger.
func (l *Logger) WithFamily(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("family", name),
	}
}

// WithCodec adds the envelope codec name to the logger.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("codec", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogDecode logs a single blob decode.
func (l *Logger) LogDecode(ctx context.Context, index, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decode failed",
			"index", index,
			"bytes", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"index", index,
			"bytes", size,
		)
	}
}

// LogSkip logs a malformed blob that was skipped.
func (l *Logger) LogSkip(ctx context.Context, index int, err error) {
	l.WarnContext(ctx, "skipping malformed blob",
		"index", index,
		"error", err,
	)
}

// LogBatch logs a batch load.
func (l *Logger) LogBatch(ctx context.Context, count, skipped int, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "batch load failed",
			"total", count,
			"error", err,
		)
	case skipped > 0:
		l.WarnContext(ctx, "batch load completed with skipped blobs",
			"total", count,
			"skipped", skipped,
			"loaded", count-skipped,
		)
	default:
		l.InfoContext(ctx, "batch load completed",
			"count", count,
		)
	}
}
