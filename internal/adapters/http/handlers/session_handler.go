package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

// SessionHandler handles the wizard endpoints: template listing and the
// lifecycle of a session.
type SessionHandler struct {
	wizard  ports.WizardService
	maxBody int64
}

// NewSessionHandler creates a new SessionHandler. A non-positive maxBody
// selects the 1 MB default.
func NewSessionHandler(wizard ports.WizardService, maxBody int64) *SessionHandler {
	return &SessionHandler{wizard: wizard, maxBody: maxBody}
}

// ListTemplates handles GET /api/v1/templates.
func (h *SessionHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToTemplateListResponse(h.wizard.Templates(r.Context())))
}

// StartSession handles POST /api/v1/sessions.
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req dto.StartSessionRequest
	if !decodeAndValidate(w, r, &req, h.maxBody) {
		return
	}

	out, err := h.wizard.Start(r.Context(), req.Template, req.Flags)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/sessions/"+out.Session.ID)
	writeJSON(w, http.StatusCreated, dto.ToSessionResponse(out))
}

// GetSession handles GET /api/v1/sessions/{id}.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	out, err := h.wizard.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(out))
}

// Submit handles POST /api/v1/sessions/{id}/submit. Step issues are a 200
// with accepted=false; only keys the step does not collect are a 400.
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SubmitRequest
	if !decodeAndValidate(w, r, &req, h.maxBody) {
		return
	}

	out, err := h.wizard.Submit(r.Context(), id, req.RawInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(out))
}

// Back handles POST /api/v1/sessions/{id}/back.
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	out, err := h.wizard.Back(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(out))
}

// SetFlags handles PUT /api/v1/sessions/{id}/flags.
func (h *SessionHandler) SetFlags(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.FlagsRequest
	if !decodeAndValidate(w, r, &req, h.maxBody) {
		return
	}

	out, err := h.wizard.SetFlags(r.Context(), id, req.Flags)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(out))
}

// DeleteSession handles DELETE /api/v1/sessions/{id}.
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.wizard.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Document handles POST /api/v1/sessions/{id}/document.
func (h *SessionHandler) Document(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	doc, err := h.wizard.Document(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeDocument(w, r, doc, id+".pdf")
}
