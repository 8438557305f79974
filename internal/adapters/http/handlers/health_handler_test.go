package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-dossier-service/mocks"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	resp := decodeJSON[map[string]string](t, rec)
	assert.Equal(t, "ok", resp["status"])
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		results map[string]error
		code    int
		want    dto.HealthResponse
	}{
		{
			name:    "all healthy",
			results: map[string]error{"asset-server": nil, "sqlite": nil},
			code:    http.StatusOK,
			want: dto.HealthResponse{
				Status: "ready",
				Checks: map[string]string{"asset-server": "ok", "sqlite": "ok"},
			},
		},
		{
			name: "one failing",
			results: map[string]error{
				"asset-server": errors.New("circuit breaker open"),
				"sqlite":       nil,
			},
			code: http.StatusServiceUnavailable,
			want: dto.HealthResponse{
				Status:  "not_ready",
				Checks:  map[string]string{"asset-server": "circuit breaker open", "sqlite": "ok"},
				Failing: []string{"asset-server"},
			},
		},
		{
			name:    "no checkers",
			results: map[string]error{},
			code:    http.StatusOK,
			want:    dto.HealthResponse{Status: "ready", Checks: map[string]string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry)

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.code)
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			assert.Equal(t, tt.want, decodeJSON[dto.HealthResponse](t, rec))
		})
	}
}
