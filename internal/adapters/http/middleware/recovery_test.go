package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/middleware"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func serveRecovery(logger *slog.Logger, h http.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/abc/submit", http.NoBody)
	middleware.Recovery(logger)(h).ServeHTTP(rec, req)
	return rec
}

func TestRecovery_PassesThrough(t *testing.T) {
	t.Parallel()

	rec := serveRecovery(discardLogger(), func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRecovery_PanicBecomesProblem(t *testing.T) {
	t.Parallel()

	for _, v := range []any{"compose exploded", 42, struct{}{}} {
		rec := serveRecovery(discardLogger(), func(http.ResponseWriter, *http.Request) {
			panic(v)
		})

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "Internal Server Error", body["title"])
		assert.Equal(t, "internal error", body["detail"])
	}
}

func TestRecovery_LogsPanicAndStack(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	serveRecovery(testLogger(&buf), func(http.ResponseWriter, *http.Request) {
		panic("layout index out of range")
	})

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "layout index out of range")
	assert.Contains(t, out, "goroutine")
}

func TestRecovery_KeepsStartedResponse(t *testing.T) {
	t.Parallel()

	rec := serveRecovery(discardLogger(), func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("partial"))
		panic("late panic")
	})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestRecovery_RepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serveRecovery(discardLogger(), func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		})
	})
}
