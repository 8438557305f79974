package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/dto"
)

// errPanic is what clients see after a recovered panic.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a 500 problem response. The panic
// value and stack go to the log and the active span only. Nothing is
// written when the handler already started its response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				ctx := r.Context()
				logger.ErrorContext(ctx, "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("route", routePattern(r)),
					slog.String("request_id", RequestIDFromContext(ctx)),
				)

				span := trace.SpanFromContext(ctx)
				span.RecordError(fmt.Errorf("panic: %v", v))
				span.SetStatus(codes.Error, "panic")

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
