package repository

import (
	"context"
	"sync"

	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"
)

// SessionMemoryRepository keeps sessions in process memory. Used when
// SESSION_STORE=memory and in tests; sessions do not survive a restart.
type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.Session
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: map[string]entities.Session{}}
}

func (r *SessionMemoryRepository) Save(_ context.Context, s entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return nil
}

func (r *SessionMemoryRepository) GetByID(_ context.Context, id string) (entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id], nil
}

func (r *SessionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
