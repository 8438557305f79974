package httpclient

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-dossier-service/internal/platform/logging"
)

// jitterFraction bounds jitter at ±25% of the computed delay.
const jitterFraction = 0.25

// doWithRetry sends req up to maxAttempts times. Bodies are replayed through
// req.GetBody, so a request with a body but no GetBody is sent once.
// The result is written to resp so the caller owns closing it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	attempts := c.retry.maxAttempts
	if !replayable(req) {
		attempts = 1
	}

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, req, attempt, lastErr); err != nil {
				return err
			}
			if err := rewind(req); err != nil {
				return err
			}
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return err
			}
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == attempts-1 {
			*resp = r
			return lastErr
		}
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}

	return lastErr
}

func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody || req.GetBody != nil
}

func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	delay := backoff(attempt, c.retry)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff returns the delay before retry number attempt (1-indexed): the
// exponential delay capped at maxInterval, then jittered.
func backoff(attempt int, p retryPolicy) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))
	delay = math.Min(delay, float64(p.maxInterval))

	jitter := delay * jitterFraction
	delay = math.Max(0, delay+jitter*(2*secureRandFloat64()-1))

	return time.Duration(delay)
}

// secureRandFloat64 returns a float64 in [0, 1) built from 53 random bits.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// isRetryable reports whether a transport error is worth retrying. Caller
// cancellation and deadlines are final; everything else is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus treats 429 and 5xx as transient.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
