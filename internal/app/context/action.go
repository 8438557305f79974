package appctx

import (
	"context"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
)

var _ domain.Action = Func{}

// Func adapts plain functions to domain.Action. A nil Undo makes rollback a
// no-op.
type Func struct {
	Desc string
	Do   func(ctx context.Context) error
	Undo func(ctx context.Context) error
}

// Execute runs Do.
func (f Func) Execute(ctx context.Context) error {
	return f.Do(ctx)
}

// Rollback runs Undo when set.
func (f Func) Rollback(ctx context.Context) error {
	if f.Undo == nil {
		return nil
	}
	return f.Undo(ctx)
}

// Description names the action in logs and errors.
func (f Func) Description() string { return f.Desc }
