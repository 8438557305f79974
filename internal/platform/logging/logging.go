// Package logging builds the service's slog loggers and carries the
// request-scoped logger through contexts.
//
//	logger := logging.New("info", "json", os.Stderr, slog.String("service", "dossier"))
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).WarnContext(ctx, "font unavailable, using Helvetica")
//
// Error logs name the operation and the session or template involved and
// attach the whole chain with slog.Any("error", err). Values of personal
// record fields never reach the output: keys listed in PersonalFields and
// values shaped like identity or phone numbers are masked.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New returns a redacting logger writing to w. level is one of debug,
// info, warn (or warning) and error, defaulting to info; format "text"
// selects the text handler and anything else JSON. Debug loggers add
// source locations. attrs are attached to every record.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
