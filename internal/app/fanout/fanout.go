// Package fanout runs a function over a slice with a fixed number of
// workers and returns one result per input, in input order. The document
// service uses it for batch composition.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight.
// maxWorkers below 1 is treated as 1.
//
// Items still waiting for a worker when ctx is done get ctx.Err() without
// fn being called. Calls already running are left to observe ctx
// themselves. Run returns after every item has a result; an empty input
// yields an empty, non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	maxWorkers = max(maxWorkers, 1)

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		}()
	}

	wg.Wait()
	return results
}
