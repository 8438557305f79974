package middleware

import (
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/dto"
)

// Timeout bounds each request by timeout. The handler sees the deadline on
// its context and its response is buffered; when the deadline passes first,
// the buffer is dropped and the client gets a 504 problem response. Later
// handler writes fail with http.ErrHandlerTimeout. A non-positive timeout
// disables the bound.
//
// The budget should exceed compose.timeout so that a slow composition is
// reported as the service's own 503 rather than a gateway timeout.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				// Re-raised on the serving goroutine so Recovery sees it.
				panic(v)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.copyTo(w)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				writeTimeoutProblem(w, r)
			}
		})
	}
}

// timeoutWriter holds the handler's response until it finishes in time.
type timeoutWriter struct {
	mu       sync.Mutex
	header   http.Header
	buf      []byte
	status   int
	timedOut bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if tw.status == 0 {
		tw.status = http.StatusOK
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.status != 0 {
		return
	}
	tw.status = code
}

// copyTo replays the buffered response. tw.mu must be held.
func (tw *timeoutWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), tw.header)
	if tw.status != 0 {
		w.WriteHeader(tw.status)
	}
	if len(tw.buf) > 0 {
		_, _ = w.Write(tw.buf)
	}
}

func writeTimeoutProblem(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusGatewayTimeout)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(http.StatusGatewayTimeout),
		Status:   http.StatusGatewayTimeout,
		Detail:   "request exceeded its deadline",
		Instance: r.RequestURI,
	})
}
