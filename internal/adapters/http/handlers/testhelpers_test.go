package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

const testSessionID = "0b7c51e2-4a39-4c55-9a3e-2f1f0c1d9a10"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sessionRequest(method, path string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", "application/json")
	}
	return withChiParams(req, map[string]string{"id": testSessionID})
}

func validOutcome(stepID int) *ports.StepOutcome {
	return &ports.StepOutcome{
		Session: &wizard.Session{
			ID:         testSessionID,
			TemplateID: "private_sector",
			StepID:     stepID,
			Flags:      wizard.Flags{},
			Record:     record.New(),
			CreatedAt:  testTime,
			UpdatedAt:  testTime,
		},
		Step: &wizard.StepDefinition{
			ID:     stepID,
			Name:   "identity",
			Title:  "Identity",
			Fields: []validate.FieldRule{{Key: "full_name"}, {Key: "dob"}},
		},
		Accepted: true,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
