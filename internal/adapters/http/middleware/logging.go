package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-dossier-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// Logging stores a request-scoped logger carrying the request and
// correlation IDs in the context and logs each request's completion. Server
// errors log at ERROR and client errors at WARN. Health probes only log at
// DEBUG.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request started",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("headers", headerValues(r.Header)),
				)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			child.Log(ctx, completionLevel(r, rw.statusCode), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func completionLevel(r *http.Request, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case strings.HasPrefix(r.URL.Path, "/health/"):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// headerValues flattens h into a slog group with credential headers masked.
func headerValues(h http.Header) slog.Value {
	attrs := make([]slog.Attr, 0, len(h))
	for _, key := range slices.Sorted(maps.Keys(h)) {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(h[key], ",")))
	}
	return slog.GroupValue(attrs...)
}
