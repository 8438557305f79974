package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

const msgRequired = "is required"

// StartSessionRequest represents the JSON body for opening a wizard session.
type StartSessionRequest struct {
	Template string          `json:"template"`
	Flags    map[string]bool `json:"flags,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *StartSessionRequest) Validate() error {
	if strings.TrimSpace(r.Template) == "" {
		return &domain.ValidationError{Fields: map[string]string{"template": msgRequired}}
	}
	return nil
}

// SubmitRequest carries the values of one step. Keys the current step does
// not collect are rejected by the service, not here.
type SubmitRequest struct {
	Fields map[string]any              `json:"fields,omitempty"`
	Groups map[string][]map[string]any `json:"groups,omitempty"`
}

// Validate accepts any shape; an empty submission is re-validated as is.
func (r *SubmitRequest) Validate() error { return nil }

// RawInput converts the request to assembler input.
func (r *SubmitRequest) RawInput() record.RawInput {
	return record.RawInput{Fields: r.Fields, Groups: r.Groups}
}

// FlagsRequest represents the JSON body for updating session flags.
type FlagsRequest struct {
	Flags map[string]bool `json:"flags"`
}

// Validate checks that a flag map was sent.
func (r *FlagsRequest) Validate() error {
	if r.Flags == nil {
		return &domain.ValidationError{Fields: map[string]string{"flags": msgRequired}}
	}
	return nil
}

// ComposeRequest represents the JSON body for a stateless document.
type ComposeRequest struct {
	Template string                      `json:"template"`
	Flags    map[string]bool             `json:"flags,omitempty"`
	Fields   map[string]any              `json:"fields,omitempty"`
	Groups   map[string][]map[string]any `json:"groups,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *ComposeRequest) Validate() error {
	if strings.TrimSpace(r.Template) == "" {
		return &domain.ValidationError{Fields: map[string]string{"template": msgRequired}}
	}
	return nil
}

// ToPort converts the request to the service port type.
func (r *ComposeRequest) ToPort() ports.ComposeRequest {
	return ports.ComposeRequest{
		Template: r.Template,
		Flags:    r.Flags,
		Input:    record.RawInput{Fields: r.Fields, Groups: r.Groups},
	}
}

// BatchRequest represents the JSON body for batch composition.
type BatchRequest struct {
	Documents []ComposeRequest `json:"documents"`
}

// Validate checks that the batch is not empty and every entry names a
// template.
func (r *BatchRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Documents) == 0 {
		fields["documents"] = "must not be empty"
	}
	for i := range r.Documents {
		if strings.TrimSpace(r.Documents[i].Template) == "" {
			fields[fmt.Sprintf("documents[%d].template", i)] = msgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPort converts every entry to the service port type.
func (r *BatchRequest) ToPort() []ports.ComposeRequest {
	out := make([]ports.ComposeRequest, len(r.Documents))
	for i := range r.Documents {
		out[i] = r.Documents[i].ToPort()
	}
	return out
}
