package dto

import (
	"maps"
	"slices"
)

// Health states reported by the probe endpoints.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the readiness probe body. Checks maps each checker to
// "ok" or its error text; Failing lists the failing checkers by name.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Failing []string          `json:"failing,omitempty"`
}

// ToHealthResponse summarizes registry results. A nil error is healthy.
func ToHealthResponse(results map[string]error) HealthResponse {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	for _, name := range slices.Sorted(maps.Keys(results)) {
		if err := results[name]; err != nil {
			resp.Checks[name] = err.Error()
			resp.Failing = append(resp.Failing, name)
			continue
		}
		resp.Checks[name] = HealthOK
	}
	if len(resp.Failing) > 0 {
		resp.Status = HealthNotReady
	}
	return resp
}
