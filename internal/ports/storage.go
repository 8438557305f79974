package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
)

// SessionRepository persists wizard sessions between steps.
// Implemented by the in-memory and SQLite storage adapters.
type SessionRepository interface {
	// Create stores a new session.
	// Returns domain.ErrConflict if a session with the same ID exists.
	Create(ctx context.Context, s *wizard.Session) error

	// Get returns a copy of the stored session.
	// Returns domain.ErrNotFound if the session does not exist.
	Get(ctx context.Context, id string) (*wizard.Session, error)

	// Save replaces a stored session.
	// Returns domain.ErrNotFound if the session does not exist.
	Save(ctx context.Context, s *wizard.Session) error

	// Delete removes a session.
	// Returns domain.ErrNotFound if the session does not exist.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes sessions last updated before cutoff and returns
	// how many were removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int, error)
}
