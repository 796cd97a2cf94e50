package biom

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with biom-specific context.
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

// WithTableID adds a table id field to the logger.
func (l *Logger) WithTableID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table_id", id),
	}
}

// WithShape adds observation/sample count fields to the logger.
func (l *Logger) WithShape(observations, samples int) *Logger {
	return &Logger{
		Logger: l.Logger.With("observations", observations, "samples", samples),
	}
}

// WithAxis adds an axis field to the logger.
func (l *Logger) WithAxis(axis Axis) *Logger {
	return &Logger{
		Logger: l.Logger.With("axis", string(axis)),
	}
}

// LogConstruct logs a table construction.
func (l *Logger) LogConstruct(observations, samples int, err error) {
	if err != nil {
		l.Error("construct failed",
			"observations", observations,
			"samples", samples,
			"error", err,
		)
	} else {
		l.Debug("table constructed",
			"observations", observations,
			"samples", samples,
		)
	}
}

// LogFilter logs a filter operation.
func (l *Logger) LogFilter(axis Axis, before, kept int, err error) {
	if err != nil {
		l.Error("filter failed",
			"axis", string(axis),
			"before", before,
			"error", err,
		)
	} else {
		l.Debug("filter completed",
			"axis", string(axis),
			"before", before,
			"kept", kept,
		)
	}
}

// LogTransform logs a transform operation.
func (l *Logger) LogTransform(axis Axis, err error) {
	if err != nil {
		l.Error("transform failed",
			"axis", string(axis),
			"error", err,
		)
	} else {
		l.Debug("transform completed",
			"axis", string(axis),
		)
	}
}

// LogMerge logs a merge operation.
func (l *Logger) LogMerge(observations, samples int, err error) {
	if err != nil {
		l.Error("merge failed",
			"error", err,
		)
	} else {
		l.Debug("merge completed",
			"observations", observations,
			"samples", samples,
		)
	}
}

// LogEncode logs an interchange encode operation.
func (l *Logger) LogEncode(matrixType string, bytes int, err error) {
	if err != nil {
		l.Error("encode failed",
			"matrix_type", matrixType,
			"error", err,
		)
	} else {
		l.Debug("encode completed",
			"matrix_type", matrixType,
			"bytes", bytes,
		)
	}
}

// LogDecode logs an interchange decode operation.
func (l *Logger) LogDecode(observations, samples int, err error) {
	if err != nil {
		l.Error("decode failed",
			"error", err,
		)
	} else {
		l.Debug("decode completed",
			"observations", observations,
			"samples", samples,
		)
	}
}
