package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/layout"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
	"github.com/jsamuelsen11/go-dossier-service/mocks"
)

func newSessionHandler(t *testing.T) (*handlers.SessionHandler, *mocks.MockWizardService) {
	t.Helper()
	svc := mocks.NewMockWizardService(t)
	return handlers.NewSessionHandler(svc, 0), svc
}

// --- ListTemplates ---

func TestListTemplates_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Templates(mock.Anything).Return([]wizard.Template{
		{ID: "private_sector", Name: "Private sector", Sequence: []int{1, 2, 3}},
		{ID: "civil_service", Name: "Civil service", Sequence: []int{1, 2, 4}},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	h.ListTemplates(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TemplateListResponse](t, rec)
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
}

// --- StartSession ---

func TestStartSession_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	flags := map[string]bool{"has_spouse": true}
	svc.EXPECT().Start(mock.Anything, "private_sector", flags).Return(validOutcome(1), nil)

	body := jsonBody(t, dto.StartSessionRequest{Template: "private_sector", Flags: flags})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", body)
	req.Header.Set("Content-Type", "application/json")
	h.StartSession(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	if got := rec.Header().Get("Location"); got != "/api/v1/sessions/"+testSessionID {
		t.Errorf("Location = %q", got)
	}
	resp := decodeJSON[dto.SessionResponse](t, rec)
	if resp.StepID != 1 || resp.Step == nil || resp.Step.Name != "identity" {
		t.Errorf("unexpected session response: %+v", resp)
	}
}

func TestStartSession_MissingTemplate(t *testing.T) {
	t.Parallel()
	h, _ := newSessionHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", jsonBody(t, map[string]any{}))
	h.StartSession(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestStartSession_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newSessionHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewBufferString("{not json"))
	h.StartSession(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestStartSession_UnknownTemplate(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Start(mock.Anything, "nope", map[string]bool(nil)).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"template": `unknown: "nope"`}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", jsonBody(t, dto.StartSessionRequest{Template: "nope"}))
	h.StartSession(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- GetSession ---

func TestGetSession_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Get(mock.Anything, testSessionID).Return(validOutcome(2), nil)

	rec := httptest.NewRecorder()
	h.GetSession(rec, sessionRequest(http.MethodGet, "/api/v1/sessions/"+testSessionID, nil))

	requireStatus(t, rec, http.StatusOK)
}

func TestGetSession_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Get(mock.Anything, testSessionID).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	h.GetSession(rec, sessionRequest(http.MethodGet, "/api/v1/sessions/"+testSessionID, nil))

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetSession_MissingID(t *testing.T) {
	t.Parallel()
	h, _ := newSessionHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/sessions/", nil), map[string]string{"id": " "})
	h.GetSession(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Submit ---

func TestSubmit_Accepted(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	want := record.RawInput{Fields: map[string]any{"full_name": "Nguyen Van An"}}
	svc.EXPECT().Submit(mock.Anything, testSessionID, want).Return(validOutcome(2), nil)

	body := jsonBody(t, dto.SubmitRequest{Fields: want.Fields})
	rec := httptest.NewRecorder()
	h.Submit(rec, sessionRequest(http.MethodPost, "/api/v1/sessions/"+testSessionID+"/submit", body))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SessionResponse](t, rec)
	if !resp.Accepted {
		t.Error("Accepted = false, want true")
	}
}

func TestSubmit_IssuesAreNotErrors(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	out := validOutcome(1)
	out.Accepted = false
	out.Issues = []validate.Issue{{Location: "full_name", Message: "Full name is required"}}
	svc.EXPECT().Submit(mock.Anything, testSessionID, mock.Anything).Return(out, nil)

	rec := httptest.NewRecorder()
	h.Submit(rec, sessionRequest(http.MethodPost, "/api/v1/sessions/"+testSessionID+"/submit", jsonBody(t, dto.SubmitRequest{})))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SessionResponse](t, rec)
	if resp.Accepted || len(resp.Issues) != 1 {
		t.Errorf("Accepted = %v, Issues = %v", resp.Accepted, resp.Issues)
	}
}

func TestSubmit_UndeclaredKey(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Submit(mock.Anything, testSessionID, mock.Anything).
		Return(nil, domain.NewSchemaError("fields.salary", "not collected by step %d", 1))

	body := jsonBody(t, dto.SubmitRequest{Fields: map[string]any{"salary": "100"}})
	rec := httptest.NewRecorder()
	h.Submit(rec, sessionRequest(http.MethodPost, "/api/v1/sessions/"+testSessionID+"/submit", body))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "body.fields.salary" {
		t.Errorf("Errors = %+v", resp.Errors)
	}
}

// --- Back ---

func TestBack_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Back(mock.Anything, testSessionID).Return(validOutcome(1), nil)

	rec := httptest.NewRecorder()
	h.Back(rec, sessionRequest(http.MethodPost, "/api/v1/sessions/"+testSessionID+"/back", nil))

	requireStatus(t, rec, http.StatusOK)
}

// --- SetFlags ---

func TestSetFlags_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	flags := map[string]bool{"has_children": false}
	svc.EXPECT().SetFlags(mock.Anything, testSessionID, flags).Return(validOutcome(7), nil)

	rec := httptest.NewRecorder()
	h.SetFlags(rec, sessionRequest(http.MethodPut, "/api/v1/sessions/"+testSessionID+"/flags", jsonBody(t, dto.FlagsRequest{Flags: flags})))

	requireStatus(t, rec, http.StatusOK)
}

func TestSetFlags_MissingFlags(t *testing.T) {
	t.Parallel()
	h, _ := newSessionHandler(t)

	rec := httptest.NewRecorder()
	h.SetFlags(rec, sessionRequest(http.MethodPut, "/api/v1/sessions/"+testSessionID+"/flags", jsonBody(t, map[string]any{})))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- DeleteSession ---

func TestDeleteSession_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Delete(mock.Anything, testSessionID).Return(nil)

	rec := httptest.NewRecorder()
	h.DeleteSession(rec, sessionRequest(http.MethodDelete, "/api/v1/sessions/"+testSessionID, nil))

	requireStatus(t, rec, http.StatusNoContent)
}

func TestDeleteSession_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Delete(mock.Anything, testSessionID).Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	h.DeleteSession(rec, sessionRequest(http.MethodDelete, "/api/v1/sessions/"+testSessionID, nil))

	requireStatus(t, rec, http.StatusNotFound)
}

// --- Document ---

func TestDocument_Success(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Document(mock.Anything, testSessionID).Return(&layout.Document{
		Bytes:       []byte("%PDF-1.3 test"),
		ContentType: "application/pdf",
		Warnings: []layout.OverflowWarning{
			{Group: "education", Page: 1, Dropped: 2, Reason: "max rows"},
			{Group: "family", Page: 2, Dropped: 1, Reason: "max rows"},
		},
	}, nil)

	rec := httptest.NewRecorder()
	h.Document(rec, sessionRequest(http.MethodPost, "/api/v1/sessions/"+testSessionID+"/document", nil))

	requireStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if got := rec.Header().Values(handlers.LayoutWarningsHeader); len(got) != 2 {
		t.Errorf("%s = %v, want 2 values", handlers.LayoutWarningsHeader, got)
	}
	if rec.Body.String() != "%PDF-1.3 test" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestDocument_Incomplete(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Document(mock.Anything, testSessionID).Return(nil, domain.ErrConflict)

	rec := httptest.NewRecorder()
	h.Document(rec, sessionRequest(http.MethodPost, "/api/v1/sessions/"+testSessionID+"/document", nil))

	requireStatus(t, rec, http.StatusConflict)
}

func TestDocument_CanvasUnavailable(t *testing.T) {
	t.Parallel()
	h, svc := newSessionHandler(t)

	svc.EXPECT().Document(mock.Anything, testSessionID).
		Return(nil, &domain.ResourceError{Resource: "canvases/private_sector.yaml", Fatal: true, Err: domain.ErrNotFound})

	rec := httptest.NewRecorder()
	h.Document(rec, sessionRequest(http.MethodPost, "/api/v1/sessions/"+testSessionID+"/document", nil))

	requireStatus(t, rec, http.StatusBadGateway)
}
