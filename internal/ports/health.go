package ports

import "context"

// HealthChecker is a dependency the readiness probe asks about: the SQLite
// session store and the remote asset server implement it.
type HealthChecker interface {
	// Name labels the dependency in readiness reports ("sqlite",
	// "asset-server").
	Name() string

	// HealthCheck returns nil when the dependency can serve requests. It
	// must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects the checkers wired at startup.
type HealthRegistry interface {
	// Register adds checker. A later checker with the same name replaces
	// the earlier result.
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns the outcome by name; nil
	// means healthy.
	CheckAll(ctx context.Context) map[string]error
}
