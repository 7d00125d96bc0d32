// Package logging builds the client's slog logger and carries it through
// contexts.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, w)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("action", "subscribe")))
//	logging.FromContext(ctx).InfoContext(ctx, "subscription started")
//
// Failures are logged with the action or operation name and the whole
// chain under "error":
//
//	logger.ErrorContext(ctx, "create todo failed",
//	    slog.String("operation", "createTodo"),
//	    slog.Any("error", err),
//	)
//
// Every handler redacts credentials, tokens and authorization codes before
// they reach the output.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn or
// error and falls back to info; format "text" selects the text handler and
// anything else JSON. Debug logging adds source locations.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// OpenOutput opens the log destination. An empty path means stderr, whose
// close is a no-op; a file is appended to and created with mode 0600, since
// the TUI sends its log there and records can name the signed-in user.
func OpenOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stderr, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return f, f.Close, nil
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
