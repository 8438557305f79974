package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/layout"
)

// LayoutWarningsHeader carries one overflow warning per header value.
const LayoutWarningsHeader = "X-Layout-Warnings"

// sessionID extracts the session id path parameter.
func sessionID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{"id": "is required"},
		}
	}
	return id, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeDocument streams a rendered document. Overflow warnings travel as
// response headers so the body stays the raw document.
func writeDocument(w http.ResponseWriter, r *http.Request, doc *layout.Document, filename string) {
	h := w.Header()
	h.Set("Content-Type", doc.ContentType)
	h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	for _, warn := range doc.Warnings {
		h.Add(LayoutWarningsHeader, warn.String())
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Bytes); err != nil {
		slog.WarnContext(r.Context(), "failed to write document", slog.Any("error", err))
	}
}

// defaultMaxBodyBytes is the JSON body limit when none is configured (1 MB).
const defaultMaxBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to limit bytes to prevent resource exhaustion. On failure, it
// writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any, limit int64) bool {
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T, limit int64) bool {
	if !decodeJSONBody(w, r, dst, limit) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
