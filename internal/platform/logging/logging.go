// Package logging builds the service's slog loggers and carries the request
// logger through the context.
//
//	logger := logging.New("info", "json", os.Stderr, slog.String("service", "sitecav"))
//	ctx = logging.WithLogger(ctx, logger)
//	ctx = logging.With(ctx, slog.String("admin", sub))
//	logging.FromContext(ctx).InfoContext(ctx, "order saved")
//
// Error logs carry the operation, the collection or entity involved and the
// full chain via slog.Any("error", err):
//
//	logger.ErrorContext(ctx, "failed to commit order",
//	    slog.String("operation", "Collection.Commit"),
//	    slog.String("collection", "gallery_photos"),
//	    slog.Any("error", err),
//	)
//
// Credentials are masked by the handler itself (see IsSensitiveHeader), so a
// header map or config struct logged by mistake does not leak keys.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New creates a logger writing to w. level is debug, info, warn or error
// (anything else means info); format "text" selects the text handler and
// any other value JSON. Debug loggers include the source location. attrs
// are attached to every record.
func New(level, format string, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	lvl := parseLevel(level)
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if format == "text" {
		h = slog.NewTextHandler(w, opts)
	}
	if len(attrs) > 0 {
		h = h.WithAttrs(attrs)
	}
	return slog.New(h)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// With stores the context's logger enriched with args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
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
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
