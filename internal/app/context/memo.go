package appctx

import "sync"

// Memo keeps values by key for the lifetime of a service, such as parsed
// canvases shared by every composition. Concurrent misses on one key may
// both load; the first stored value wins.
type Memo[K comparable, V any] struct {
	mu   sync.RWMutex
	vals map[K]V
}

// NewMemo returns an empty Memo.
func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{vals: make(map[K]V)}
}

// Load returns the value stored for key.
func (m *Memo[K, V]) Load(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vals[key]
	return v, ok
}

// Store keeps v for key unless a value is already there, and returns the
// value that stays.
func (m *Memo[K, V]) Store(key K, v V) V {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.vals[key]; ok {
		return cur
	}
	m.vals[key] = v
	return v
}

// Len reports how many keys are stored.
func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.vals)
}
