package session

import (
	"context"
	"sync"
	"time"

	"github.com/idms/employee-portal/internal/domain"
)

// memoryStore keeps sessions in a process-local map. Expiry is checked
// passively at lookup; there is no background sweep.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemoryStore returns an empty in-memory session store.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]domain.Session)}
}

func (s *memoryStore) Create(ctx context.Context, sess *domain.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if sess.IsExpired() {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, nil
	}
	return &sess, nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
