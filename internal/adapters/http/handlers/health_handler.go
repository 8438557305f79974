package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler returns a handler reporting the checks in registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process is alive if it answers.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]string{"status": dto.HealthOK})
}

// Readiness handles GET /health/ready: 200 when every check passes, 503
// otherwise. The session store and the asset server are the usual checks.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.ToHealthResponse(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if resp.Status != dto.HealthReady {
		code = http.StatusServiceUnavailable
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.String("failing", strings.Join(resp.Failing, ",")),
		)
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}
