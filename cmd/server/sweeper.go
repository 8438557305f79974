package main

import (
	"context"
	"log/slog"
	"time"
)

type sessionPurger interface {
	PurgeExpired(ctx context.Context, ttl time.Duration) (int, error)
}

// runSweeper purges sessions idle for longer than ttl every interval until
// ctx is done. A failed sweep is retried on the next tick.
func runSweeper(ctx context.Context, p sessionPurger, ttl, interval time.Duration, logger *slog.Logger) {
	if ttl <= 0 || interval <= 0 {
		logger.InfoContext(ctx, "session sweeper disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// PurgeExpired logs its own count and failures.
			_, _ = p.PurgeExpired(ctx, ttl)
		}
	}
}
