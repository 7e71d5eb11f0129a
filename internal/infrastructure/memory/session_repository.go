// Package memory implementa repositorios en memoria para un solo proceso.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/internal/domain/repository"
)

// SessionRepo guarda sesiones en un mapa protegido por mutex. Se pierden al reiniciar.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

var _ repository.SessionRepository = (*SessionRepo)(nil)

// NewSessionRepository crea el repositorio vacío.
func NewSessionRepository() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]entity.Session)}
}

func (r *SessionRepo) Create(_ context.Context, s *entity.Session) error {
	if s == nil || s.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; ok {
		return domain.ErrConflict
	}
	r.sessions[s.ID] = *s
	return nil
}

func (r *SessionRepo) GetByID(_ context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *SessionRepo) UpdateTokens(_ context.Context, id, accessToken, refreshToken string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.AccessToken = accessToken
	s.RefreshToken = refreshToken
	s.UpdatedAt = at
	r.sessions[id] = s
	return nil
}

func (r *SessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *SessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}
