package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/platform/logging"
)

// Commit executes staged actions in order. When one fails, the actions
// before it are rolled back in reverse order and the failure is returned
// wrapped with the action's description. Rollback errors are logged only.
//
// The scope is committed after the first call whatever its outcome; a
// second call returns ErrAlreadyCommitted.
func (sc *Scope) Commit(ctx context.Context) error {
	sc.queueMu.Lock()
	if sc.committed {
		sc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	sc.committed = true
	items := sc.items
	sc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, item := range items {
		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "Scope.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", item.Description()),
		)

		if err := item.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, initiating rollback",
				slog.String("operation", "Scope.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", item.Description()),
				slog.Any("error", err),
			)
			rollback(ctx, items[:i], logger)
			return fmt.Errorf("executing %s: %w", item.Description(), err)
		}
	}

	return nil
}

func rollback(ctx context.Context, done []domain.Action, logger *slog.Logger) {
	for i := len(done) - 1; i >= 0; i-- {
		item := done[i]
		if err := item.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "Scope.Commit"),
				slog.Int("step", i+1),
				slog.String("action", item.Description()),
				slog.Any("error", err),
			)
		}
	}
}
