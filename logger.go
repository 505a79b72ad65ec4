package slidego

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/slidego/puzzle"
)

// Logger wraps slog.Logger with slidego-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKey adds a state key field to the logger.
func (l *Logger) WithKey(key puzzle.Ordinal) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", uint64(key.Key())),
	}
}

// WithRun adds a run identifier field to the logger.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run", id),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogInsertFailure logs an insert that could not allocate storage.
func (l *Logger) LogInsertFailure(ctx context.Context, key puzzle.Ordinal, states int, err error) {
	l.ErrorContext(ctx, "insert failed",
		"key", uint64(key.Key()),
		"states", states,
		"error", err,
	)
}

// LogTableLinked logs the growth of the table chain.
func (l *Logger) LogTableLinked(ctx context.Context, tables int, states int, memoryBytes int64) {
	l.InfoContext(ctx, "table linked",
		"tables", tables,
		"states", states,
		"memory_bytes", memoryBytes,
	)
}

// LogProgress logs the size of the visited set.
func (l *Logger) LogProgress(ctx context.Context, states, tables int, memoryBytes int64) {
	l.InfoContext(ctx, "search progress",
		"states", states,
		"tables", tables,
		"memory_bytes", memoryBytes,
	)
}

// LogClose logs the release of a session.
func (l *Logger) LogClose(ctx context.Context, states, tables int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "close failed",
			"states", states,
			"tables", tables,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "session closed",
			"states", states,
			"tables", tables,
		)
	}
}
