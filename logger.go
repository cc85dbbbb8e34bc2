package secretmanager

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/secretmanager/apierror"
)

// Logger wraps slog.Logger with client-specific context.
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

// WithMethod adds the RPC method name to the logger.
func (l *Logger) WithMethod(method string) *Logger {
	return &Logger{
		Logger: l.Logger.With("method", method),
	}
}

// WithResource adds the resource name a call operates on.
func (l *Logger) WithResource(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("resource", name),
	}
}

// WithRequestID adds the per-call request ID.
func (l *Logger) WithRequestID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("request_id", id),
	}
}

// LogCall logs a completed RPC. status is zero when no response arrived.
func (l *Logger) LogCall(ctx context.Context, status int, duration time.Duration, err error) {
	if err != nil {
		kind, _ := apierror.KindOf(err)
		l.WarnContext(ctx, "call failed",
			"status", status,
			"duration", duration,
			"kind", kind.Name(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "call completed",
			"status", status,
			"duration", duration,
		)
	}
}
