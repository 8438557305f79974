package ports

import (
	"context"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain/layout"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/record"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/validate"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
)

// WizardService defines the service port for driving a dossier through its
// template's steps. Implemented by the application layer; called by the HTTP
// handlers and the terminal wizard.
//
// Step validation failures are not errors: they come back as issues on the
// StepOutcome and the session stays on its step.
type WizardService interface {
	// Templates returns the available dossier templates in catalog order.
	Templates(ctx context.Context) []wizard.Template

	// Start opens a session for templateID, positioned on the first visible
	// step under flags.
	// Returns domain.ErrValidation for an unknown template or flag.
	Start(ctx context.Context, templateID string, flags map[string]bool) (*StepOutcome, error)

	// Get returns the session and its current step.
	// Returns domain.ErrNotFound if the session does not exist.
	Get(ctx context.Context, id string) (*StepOutcome, error)

	// Submit merges raw into the session record and validates the current
	// step. On success the session advances; on the last step it completes.
	// Returns domain.ErrSchema when raw names a key the current step does
	// not collect.
	Submit(ctx context.Context, id string, raw record.RawInput) (*StepOutcome, error)

	// Back moves the session to the previous visible step.
	Back(ctx context.Context, id string) (*StepOutcome, error)

	// SetFlags updates session flags. A current step that becomes skipped
	// is left for the nearest visible one.
	// Returns domain.ErrValidation for an unknown flag.
	SetFlags(ctx context.Context, id string, flags map[string]bool) (*StepOutcome, error)

	// Delete discards a session.
	// Returns domain.ErrNotFound if the session does not exist.
	Delete(ctx context.Context, id string) error

	// Document renders the session record with its template's layout.
	// Returns domain.ErrConflict until the session reaches its last step.
	Document(ctx context.Context, id string) (*layout.Document, error)
}

// StepOutcome is the session after an operation, plus the step it now sits
// on. Step is nil at the start state.
type StepOutcome struct {
	Session  *wizard.Session
	Step     *wizard.StepDefinition
	Accepted bool
	Issues   []validate.Issue
}

// DocumentService defines the service port for composing documents outside
// a wizard session.
type DocumentService interface {
	// Generate composes and renders an already-validated record.
	// Returns a fatal *domain.ResourceError when the canvas cannot be loaded
	// or composition exceeds its time budget.
	Generate(ctx context.Context, templateID string, rec record.Record) (*layout.Document, error)

	// Compose assembles raw, validates it against every visible step of the
	// template and renders it.
	// Returns a *domain.ValidationError listing every issue when the record
	// is not valid.
	Compose(ctx context.Context, req ComposeRequest) (*layout.Document, error)

	// ComposeBatch runs Compose over reqs with bounded concurrency. Results
	// keep input order; each carries its own error.
	ComposeBatch(ctx context.Context, reqs []ComposeRequest) []BatchResult
}

// ComposeRequest is one stateless document request.
type ComposeRequest struct {
	Template string
	Flags    map[string]bool
	Input    record.RawInput
}

// BatchResult is the outcome of one ComposeBatch entry.
type BatchResult struct {
	Document *layout.Document
	Err      error
}
