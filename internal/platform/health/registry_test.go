package health_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-dossier-service/internal/platform/health"
	"github.com/jsamuelsen11/go-dossier-service/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll_Results(t *testing.T) {
	t.Parallel()

	refused := errors.New("dial tcp: connection refused")
	locked := errors.New("database is locked")

	tests := []struct {
		name     string
		checkers func(t *testing.T) []*mocks.MockHealthChecker
		want     map[string]error
	}{
		{
			name:     "no checkers",
			checkers: func(*testing.T) []*mocks.MockHealthChecker { return nil },
			want:     map[string]error{},
		},
		{
			name: "all healthy",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "sqlite", nil), checker(t, "asset-server", nil)}
			},
			want: map[string]error{"sqlite": nil, "asset-server": nil},
		},
		{
			name: "asset server down",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "sqlite", nil), checker(t, "asset-server", refused)}
			},
			want: map[string]error{"sqlite": nil, "asset-server": refused},
		},
		{
			name: "same name registered twice keeps the later result",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "sqlite", nil), checker(t, "sqlite", locked)}
			},
			want: map[string]error{"sqlite": locked},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers(t) {
				r.Register(c)
			}

			got := r.CheckAll(t.Context())
			require.NotNil(t, got)
			require.Len(t, got, len(tt.want))
			for name, want := range tt.want {
				assert.ErrorIs(t, got[name], want, name)
			}
		})
	}
}

func TestCheckAll_PassesCallerContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("asset-server")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(c)

	assert.ErrorIs(t, r.CheckAll(ctx)["asset-server"], context.Canceled)
}

func TestCheckAll_SlowCheckerTimesOut(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("asset-server")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(slow)
	r.Register(checker(t, "sqlite", nil))

	start := time.Now()
	got := r.CheckAll(t.Context())

	assert.ErrorIs(t, got["asset-server"], context.DeadlineExceeded)
	assert.NoError(t, got["sqlite"])
	assert.Less(t, time.Since(start), time.Second)
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	// Each check waits for the other to start, so a sequential registry
	// would hit the check timeout instead.
	var started atomic.Int32
	both := make(chan struct{})
	rendezvous := func(ctx context.Context) error {
		if started.Add(1) == 2 {
			close(both)
		}
		select {
		case <-both:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r := health.New(health.WithCheckTimeout(time.Second))
	for _, name := range []string{"sqlite", "asset-server"} {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(name)
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(rendezvous)
		r.Register(c)
	}

	for name, err := range r.CheckAll(t.Context()) {
		assert.NoError(t, err, name)
	}
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		if i%2 == 0 {
			wg.Go(func() {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("sqlite").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			})
			continue
		}
		wg.Go(func() { r.CheckAll(context.Background()) })
	}
	wg.Wait()

	assert.Len(t, r.CheckAll(context.Background()), 1)
}

func TestWithCheckTimeout_IgnoresNonPositive(t *testing.T) {
	t.Parallel()

	r := health.New(health.WithCheckTimeout(0))
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("sqlite")
	c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		if !ok || time.Until(deadline) <= health.DefaultCheckTimeout/2 {
			return errors.New("default timeout not applied")
		}
		return nil
	})
	r.Register(c)

	assert.NoError(t, r.CheckAll(t.Context())["sqlite"])
}
