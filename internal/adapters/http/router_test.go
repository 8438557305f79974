package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/go-dossier-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
	"github.com/jsamuelsen11/go-dossier-service/mocks"
)

type testRouter struct {
	handler  http.Handler
	wizard   *mocks.MockWizardService
	docs     *mocks.MockDocumentService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) testRouter {
	t.Helper()
	wiz := mocks.NewMockWizardService(t)
	docs := mocks.NewMockDocumentService(t)
	registry := mocks.NewMockHealthRegistry(t)

	router := adapthttp.NewRouter(
		handlers.NewSessionHandler(wiz, 0),
		handlers.NewDocumentHandler(docs, 0),
		handlers.NewHealthHandler(registry),
		middlewares...,
	)
	return testRouter{handler: router, wizard: wiz, docs: docs, registry: registry}
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/templates"},
		{http.MethodPost, "/api/v1/sessions"},
		{http.MethodGet, "/api/v1/sessions/{id}"},
		{http.MethodDelete, "/api/v1/sessions/{id}"},
		{http.MethodPost, "/api/v1/sessions/{id}/submit"},
		{http.MethodPost, "/api/v1/sessions/{id}/back"},
		{http.MethodPut, "/api/v1/sessions/{id}/flags"},
		{http.MethodPost, "/api/v1/sessions/{id}/document"},
		{http.MethodPost, "/api/v1/documents"},
		{http.MethodPost, "/api/v1/documents:batch"},
	}

	chiRouter, ok := tr.handler.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	tr := newTestRouter(t, testMW)
	tr.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	tr.handler.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListTemplates(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.wizard.EXPECT().Templates(mock.Anything).Return([]wizard.Template{{ID: "private_sector"}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	tr.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_IntegrationBatchRoute(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.docs.EXPECT().ComposeBatch(mock.Anything, mock.Anything).Return([]ports.BatchResult{{Err: context.Canceled}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents:batch",
		strings.NewReader(`{"documents":[{"template":"private_sector"}]}`))
	tr.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_SessionIDReachesService(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)
	tr.wizard.EXPECT().Delete(mock.Anything, "sess-42").Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/sessions/sess-42", nil)
	tr.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	tr.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	tr := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/sessions", nil)
	tr.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
