// Package appctx provides the operation scope used by the wizard service to
// read a session once and stage its writes.
//
// A Scope wraps context.Context with a memo of fetched values and a queue of
// staged actions. Writes become visible to later reads in the same scope
// immediately, and reach storage only on Commit:
//
//	sc := appctx.New(ctx)
//	sess, err := appctx.GetOrFetch(sc, "session:"+id, load)
//	err = sc.Stage("session:"+id, next, saveAction)
//	err = sc.Commit(ctx)
//
// A Scope serves one operation and is discarded afterwards.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
)

var _ domain.WriteStager = (*Scope)(nil)

// ErrAlreadyCommitted is returned when Stage, AddAction or Commit is called
// on a Scope that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: scope already committed")

// ErrNilAction is returned when a nil Action is staged.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when the memoized value under a
// key has a different type than requested.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// Scope is an operation-scoped context with memoized reads and staged
// writes. Reads are meant for the goroutine that owns the operation; the
// action queue is guarded so staging may happen from helpers.
type Scope struct {
	context.Context

	cache map[string]cacheEntry

	queueMu   sync.Mutex
	items     []domain.Action
	committed bool
}

type cacheEntry struct {
	value any
	err   error
}

// New creates an empty Scope around ctx.
func New(ctx context.Context) *Scope {
	return &Scope{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// GetOrFetch returns the memoized value for key or calls fetchFn and
// memoizes its result. Errors are memoized too, so a missing session is
// looked up once per operation.
func GetOrFetch[T any](sc *Scope, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := sc.cache[key]; ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(sc.Context)
	sc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Stage replaces the memoized value under key with entity and queues action
// for Commit.
func (sc *Scope) Stage(key string, entity any, action domain.Action) error {
	if err := sc.AddAction(action); err != nil {
		return err
	}
	sc.cache[key] = cacheEntry{value: entity}
	return nil
}

// AddAction queues action for Commit without touching the memo.
func (sc *Scope) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	sc.queueMu.Lock()
	defer sc.queueMu.Unlock()

	if sc.committed {
		return ErrAlreadyCommitted
	}
	sc.items = append(sc.items, action)
	return nil
}

// Execute runs action immediately, outside the commit queue. It also works
// after Commit.
func (sc *Scope) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(sc.Context)
}
