// Package memory keeps wizard sessions in process memory. Sessions are lost
// on restart; use the sqlite package when they must survive one.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-dossier-service/internal/domain"
	"github.com/jsamuelsen11/go-dossier-service/internal/domain/wizard"
	"github.com/jsamuelsen11/go-dossier-service/internal/ports"
)

var _ ports.SessionRepository = (*Store)(nil)

// Store is a SessionRepository over a map. Sessions are cloned on the way in
// and out so callers never share state with the store.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*wizard.Session
}

// New returns an empty Store.
func New() *Store {
	return &Store{sessions: make(map[string]*wizard.Session)}
}

func (s *Store) Create(_ context.Context, sess *wizard.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ID]; ok {
		return fmt.Errorf("session %s: %w", sess.ID, domain.ErrConflict)
	}
	s.sessions[sess.ID] = sess.Clone()
	return nil
}

func (s *Store) Get(_ context.Context, id string) (*wizard.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return sess.Clone(), nil
}

func (s *Store) Save(_ context.Context, sess *wizard.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sess.ID]; !ok {
		return fmt.Errorf("session %s: %w", sess.ID, domain.ErrNotFound)
	}
	s.sessions[sess.ID] = sess.Clone()
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	delete(s.sessions, id)
	return nil
}

func (s *Store) DeleteExpired(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n, nil
}
