package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the structured logger shared by every layer. It embeds
// *slog.Logger, so Info/Warn/Error/Log take key-value pairs.
type Logger struct {
	*slog.Logger
}

// NewLogger writes text at debug level in development and JSON at info
// level otherwise, both to stdout.
func NewLogger(development bool) *Logger {
	return New(os.Stdout, development)
}

// New builds a Logger that writes to w.
func New(w io.Writer, development bool) *Logger {
	var handler slog.Handler
	if development {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// WithFields returns a child logger that always includes the given fields
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{Logger: l.Logger.With(args...)}
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
