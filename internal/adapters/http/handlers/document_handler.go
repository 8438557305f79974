package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

// DocumentHandler handles stateless document composition.
type DocumentHandler struct {
	docs    ports.DocumentService
	maxBody int64
}

// NewDocumentHandler creates a new DocumentHandler. A non-positive maxBody
// selects the 1 MB default.
func NewDocumentHandler(docs ports.DocumentService, maxBody int64) *DocumentHandler {
	return &DocumentHandler{docs: docs, maxBody: maxBody}
}

// Compose handles POST /api/v1/documents.
func (h *DocumentHandler) Compose(w http.ResponseWriter, r *http.Request) {
	var req dto.ComposeRequest
	if !decodeAndValidate(w, r, &req, h.maxBody) {
		return
	}

	doc, err := h.docs.Compose(r.Context(), req.ToPort())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeDocument(w, r, doc, req.Template+".pdf")
}

// ComposeBatch handles POST /api/v1/documents:batch. The response is 200
// even when entries fail; each entry carries its own problem details.
func (h *DocumentHandler) ComposeBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchRequest
	if !decodeAndValidate(w, r, &req, h.maxBody) {
		return
	}

	results := h.docs.ComposeBatch(r.Context(), req.ToPort())

	writeJSON(w, http.StatusOK, dto.ToBatchResponse(results))
}
