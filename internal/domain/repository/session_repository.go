package repository

import (
	"context"
	"time"

	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
)

// SessionRepository define el puerto de persistencia para las sesiones del BFF (DIP).
// GetByID devuelve (nil, nil) cuando la sesión no existe.
type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	UpdateTokens(ctx context.Context, id, accessToken, refreshToken string, at time.Time) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
