package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// Querier es lo que SessionRepo necesita de *pgxpool.Pool o pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL.
type SessionRepo struct {
	db Querier
}

// NewSessionRepository construye el adaptador de persistencia para sesiones.
func NewSessionRepository(db Querier) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create persiste una sesión nueva.
func (r *SessionRepo) Create(ctx context.Context, s *entity.Session) error {
	query := `
		INSERT INTO bff_sessions (id, user_id, user_name, role, access_token, refresh_token, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.UserID, s.UserName, s.Role, s.AccessToken, s.RefreshToken,
		nullTime(s.ExpiresAt), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión; (nil, nil) si no existe.
func (r *SessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	query := `
		SELECT id, user_id, user_name, role, access_token, refresh_token, expires_at, created_at, updated_at
		FROM bff_sessions WHERE id = $1`
	var s entity.Session
	var expires *time.Time
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.UserName, &s.Role, &s.AccessToken, &s.RefreshToken,
		&expires, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if expires != nil {
		s.ExpiresAt = *expires
	}
	return &s, nil
}

// UpdateTokens guarda los tokens rotados por un refresh.
func (r *SessionRepo) UpdateTokens(ctx context.Context, id, accessToken, refreshToken string, at time.Time) error {
	query := `UPDATE bff_sessions SET access_token = $2, refresh_token = $3, updated_at = $4 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, accessToken, refreshToken, at)
	if err != nil {
		return fmt.Errorf("update session tokens: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la sesión (logout).
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM bff_sessions WHERE id = $1`, id)
	if err != nil && !isInvalidText(err) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired elimina las sesiones vencidas y devuelve cuántas borró.
func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bff_sessions WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
