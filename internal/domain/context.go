package domain

import "context"

// Action is a unit of persistence work with a compensating rollback.
// Wizard operations stage actions and commit them once the step outcome is
// known, so a failed write never leaves a half-updated session behind.
type Action interface {
	// Execute performs the write. Implementations should be idempotent.
	Execute(ctx context.Context) error

	// Rollback reverses a successful Execute. It is never called after a
	// failed Execute.
	Rollback(ctx context.Context) error

	// Description names the action in logs (e.g. "save session 1f0c...").
	Description() string
}

// WriteStager is the domain's view of the per-operation unit of work.
type WriteStager interface {
	// Stage records entity under key for read-your-writes and queues action
	// for commit.
	Stage(key string, entity any, action Action) error
}
