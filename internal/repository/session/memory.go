package session

import (
	"context"
	"sync"
	"time"

	"shopping-cart/internal/domain"

	"github.com/google/uuid"
)

type memoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewMemory keeps sessions in process memory; they are lost on restart.
func NewMemory() Repository {
	return &memoryRepo{sessions: make(map[string]*Session), now: time.Now}
}

func (r *memoryRepo) Create(_ context.Context, userType string) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		Cart:      domain.NewCart(userType),
		CreatedAt: r.now().UTC(),
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s, nil
}

func (r *memoryRepo) Get(_ context.Context, id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *memoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}
