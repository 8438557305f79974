package dto_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-dossier-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/layout"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func TestToSessionResponse(t *testing.T) {
	t.Parallel()

	outcome := &ports.StepOutcome{
		Session: &wizard.Session{
			ID:         "sess-1",
			TemplateID: "private_sector",
			StepID:     3,
			Flags:      wizard.Flags{wizard.FlagHasSpouse: true},
			Record:     record.New(),
			CreatedAt:  testTime,
			UpdatedAt:  testTime,
		},
		Step: &wizard.StepDefinition{
			ID:     3,
			Name:   "contact",
			Title:  "Contact",
			Fields: []validate.FieldRule{{Key: "phone"}, {Key: "email"}},
			Tables: []validate.TableRule{{Group: "education"}},
		},
		Accepted: false,
		Issues:   []validate.Issue{{Location: "phone", Message: "Phone is required"}},
	}

	got := dto.ToSessionResponse(outcome)

	assert.Equal(t, "sess-1", got.ID)
	assert.Equal(t, 3, got.StepID)
	assert.Equal(t, map[string]bool{"has_spouse": true}, got.Flags)
	assert.Equal(t, "2026-02-12T15:04:05Z", got.CreatedAt)
	require.NotNil(t, got.Step)
	assert.Equal(t, []string{"phone", "email"}, got.Step.Fields)
	assert.Equal(t, []string{"education"}, got.Step.Groups)
	assert.Len(t, got.Issues, 1)
}

func TestToSessionResponse_StartState(t *testing.T) {
	t.Parallel()

	got := dto.ToSessionResponse(&ports.StepOutcome{
		Session: &wizard.Session{ID: "sess-1", Record: record.New()},
	})

	assert.Nil(t, got.Step)
	assert.NotNil(t, got.Issues)
	assert.Empty(t, got.Issues)
}

func TestToBatchResponse(t *testing.T) {
	t.Parallel()

	results := []ports.BatchResult{
		{Document: &layout.Document{
			Bytes:       []byte("%PDF-1.3"),
			ContentType: "application/pdf",
			Warnings:    []layout.OverflowWarning{{Group: "education", Page: 1, Dropped: 2}},
		}},
		{Err: &domain.ValidationError{Fields: map[string]string{"full_name": "Full name is required"}}},
	}

	got := dto.ToBatchResponse(results)

	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 1, got.Failed)
	assert.Equal(t, []byte("%PDF-1.3"), got.Documents[0].Content)
	assert.Len(t, got.Documents[0].Warnings, 1)
	require.NotNil(t, got.Documents[1].Error)
	assert.Equal(t, http.StatusBadRequest, got.Documents[1].Error.Status)
	assert.Equal(t, 1, got.Documents[1].Index)
}

func TestToTemplateListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToTemplateListResponse([]wizard.Template{
		{ID: "private_sector", Name: "Private sector", FormCode: "HK01", Sequence: []int{1, 2, 16}},
	})

	assert.Equal(t, 1, got.Count)
	assert.Equal(t, []int{1, 2, 16}, got.Templates[0].Steps)
}
