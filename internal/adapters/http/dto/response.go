// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain/layout"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

// TemplateResponse represents a dossier template in HTTP responses.
type TemplateResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	FormCode    string `json:"form_code,omitempty"`
	Steps       []int  `json:"steps"`
}

// TemplateListResponse represents the template catalog.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Count     int                `json:"count"`
}

// ToTemplateListResponse converts domain templates to an HTTP response DTO.
func ToTemplateListResponse(templates []wizard.Template) TemplateListResponse {
	items := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		items[i] = TemplateResponse{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			FormCode:    t.FormCode,
			Steps:       t.Sequence,
		}
	}
	return TemplateListResponse{Templates: items, Count: len(items)}
}

// StepResponse describes the step a session sits on.
type StepResponse struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Fields   []string `json:"fields"`
	Groups   []string `json:"groups"`
}

// SessionResponse represents a wizard session and the outcome of the last
// operation on it.
type SessionResponse struct {
	ID         string           `json:"id"`
	TemplateID string           `json:"template_id"`
	StepID     int              `json:"step_id"`
	Completed  bool             `json:"completed"`
	Flags      map[string]bool  `json:"flags"`
	Record     record.Record    `json:"record"`
	Step       *StepResponse    `json:"step"`
	Accepted   bool             `json:"accepted"`
	Issues     []validate.Issue `json:"issues"`
	CreatedAt  string           `json:"created_at"`
	UpdatedAt  string           `json:"updated_at"`
}

// ToSessionResponse converts a step outcome to an HTTP response DTO.
func ToSessionResponse(o *ports.StepOutcome) SessionResponse {
	s := o.Session

	flags := make(map[string]bool, len(s.Flags))
	for f, v := range s.Flags {
		flags[f.String()] = v
	}

	issues := o.Issues
	if issues == nil {
		issues = []validate.Issue{}
	}

	resp := SessionResponse{
		ID:         s.ID,
		TemplateID: s.TemplateID,
		StepID:     s.StepID,
		Completed:  s.Completed,
		Flags:      flags,
		Record:     s.Record,
		Accepted:   o.Accepted,
		Issues:     issues,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  s.UpdatedAt.Format(time.RFC3339),
	}

	if o.Step != nil {
		groups := make([]string, len(o.Step.Tables))
		for i, t := range o.Step.Tables {
			groups[i] = t.Group
		}
		resp.Step = &StepResponse{
			ID:       o.Step.ID,
			Name:     o.Step.Name,
			Title:    o.Step.Title,
			Subtitle: o.Step.Subtitle,
			Fields:   o.Step.FieldKeys(),
			Groups:   groups,
		}
	}

	return resp
}

// DocumentItem is one entry of a batch response. Exactly one of Content and
// Error is set.
type DocumentItem struct {
	Index       int                      `json:"index"`
	ContentType string                   `json:"content_type,omitempty"`
	Content     []byte                   `json:"content,omitempty"`
	Warnings    []layout.OverflowWarning `json:"warnings,omitempty"`
	Error       *ErrorResponse           `json:"error,omitempty"`
}

// BatchResponse represents the result of batch composition in input order.
type BatchResponse struct {
	Documents []DocumentItem `json:"documents"`
	Count     int            `json:"count"`
	Failed    int            `json:"failed"`
}

// ToBatchResponse converts batch results to an HTTP response DTO. Content
// is base64 encoded by encoding/json.
func ToBatchResponse(results []ports.BatchResult) BatchResponse {
	resp := BatchResponse{
		Documents: make([]DocumentItem, len(results)),
		Count:     len(results),
	}
	for i, res := range results {
		item := DocumentItem{Index: i}
		if res.Err != nil {
			item.Error = NewItemError(res.Err)
			resp.Failed++
		} else {
			item.ContentType = res.Document.ContentType
			item.Content = res.Document.Bytes
			item.Warnings = res.Document.Warnings
		}
		resp.Documents[i] = item
	}
	return resp
}
