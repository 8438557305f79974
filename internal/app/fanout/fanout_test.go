package fanout_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-dossier-service/internal/app/fanout"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	got := fanout.Run(context.Background(), 4, []string(nil), func(context.Context, string) (int, error) {
		t.Fatal("fn must not be called")
		return 0, nil
	})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRun_PreservesOrderWithMixedOutcomes(t *testing.T) {
	t.Parallel()

	items := []int{5, 1, 4, 2, 3}
	errOdd := errors.New("odd")

	got := fanout.Run(context.Background(), 2, items, func(_ context.Context, n int) (string, error) {
		time.Sleep(time.Duration(n) * time.Millisecond)
		if n%2 == 1 {
			return "", fmt.Errorf("item %d: %w", n, errOdd)
		}
		return fmt.Sprintf("doc-%d", n), nil
	})

	require.Len(t, got, len(items))
	for i, n := range items {
		if n%2 == 1 {
			assert.ErrorIs(t, got[i].Err, errOdd, "item %d", i)
			continue
		}
		require.NoError(t, got[i].Err)
		assert.Equal(t, fmt.Sprintf("doc-%d", n), got[i].Value)
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	items := make([]int, 12)

	fanout.Run(context.Background(), 3, items, func(context.Context, int) (struct{}, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestRun_ZeroWorkersRunsSequentially(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	got := fanout.Run(context.Background(), 0, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		if c := inFlight.Add(1); c > peak.Load() {
			peak.Store(c)
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
		return n * 10, nil
	})

	assert.Equal(t, int32(1), peak.Load())
	assert.Equal(t, 30, got[2].Value)
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	got := fanout.Run(ctx, 1, []int{1, 2, 3}, func(context.Context, int) (int, error) {
		calls.Add(1)
		return 0, nil
	})

	assert.Zero(t, calls.Load())
	for _, r := range got {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}
