package wizard

import (
	"slices"
	"time"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
)

// Session is the isolated state of one wizard run.
type Session struct {
	ID         string           `json:"id"`
	TemplateID string           `json:"template_id"`
	StepID     int              `json:"step_id"`
	Flags      Flags            `json:"flags"`
	Record     record.Record    `json:"record"`
	Issues     []validate.Issue `json:"issues,omitempty"`
	Completed  bool             `json:"completed"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	cp := *s
	cp.Flags = s.Flags.With(nil)
	cp.Record = s.Record.Clone()
	cp.Issues = slices.Clone(s.Issues)
	return &cp
}
