// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Middleware registered
// here sees the matched route pattern once the handler returns.
func NewRouter(
	sessionHandler *handlers.SessionHandler,
	documentHandler *handlers.DocumentHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/templates", sessionHandler.ListTemplates)

		// Wizard sessions.
		r.Post("/sessions", sessionHandler.StartSession)
		r.Get("/sessions/{id}", sessionHandler.GetSession)
		r.Delete("/sessions/{id}", sessionHandler.DeleteSession)
		r.Post("/sessions/{id}/submit", sessionHandler.Submit)
		r.Post("/sessions/{id}/back", sessionHandler.Back)
		r.Put("/sessions/{id}/flags", sessionHandler.SetFlags)
		r.Post("/sessions/{id}/document", sessionHandler.Document)

		// Stateless composition.
		r.Post("/documents", documentHandler.Compose)
		r.Post("/documents:batch", documentHandler.ComposeBatch)
	})

	return r
}
