package memory

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
)

func newSession(id string, expires time.Time) *entity.Session {
	return &entity.Session{
		ID:           id,
		UserID:       gofakeit.UUID(),
		UserName:     gofakeit.Name(),
		Role:         entity.RoleStaff,
		AccessToken:  gofakeit.LetterN(32),
		RefreshToken: gofakeit.LetterN(32),
		ExpiresAt:    expires,
	}
}

func TestSessionRepo_CrearYObtener(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	s := newSession("s-1", time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, s.AccessToken, got.AccessToken)

	got.AccessToken = "mutado"
	again, _ := repo.GetByID(ctx, "s-1")
	assert.Equal(t, s.AccessToken, again.AccessToken, "GetByID devuelve una copia")
}

func TestSessionRepo_InexistenteDevuelveNil(t *testing.T) {
	got, err := NewSessionRepository().GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionRepo_IDDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	require.NoError(t, repo.Create(ctx, newSession("s-1", time.Time{})))
	assert.ErrorIs(t, repo.Create(ctx, newSession("s-1", time.Time{})), domain.ErrConflict)
}

func TestSessionRepo_UpdateTokens(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	require.NoError(t, repo.Create(ctx, newSession("s-1", time.Time{})))

	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateTokens(ctx, "s-1", "a2", "r2", at))
	got, _ := repo.GetByID(ctx, "s-1")
	assert.Equal(t, "a2", got.AccessToken)
	assert.Equal(t, "r2", got.RefreshToken)
	assert.Equal(t, at, got.UpdatedAt)

	assert.ErrorIs(t, repo.UpdateTokens(ctx, "otra", "a", "r", at), domain.ErrNotFound)
}

func TestSessionRepo_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	now := time.Now()
	require.NoError(t, repo.Create(ctx, newSession("vencida", now.Add(-time.Minute))))
	require.NoError(t, repo.Create(ctx, newSession("vigente", now.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newSession("sin-vencimiento", time.Time{})))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	gone, _ := repo.GetByID(ctx, "vencida")
	assert.Nil(t, gone)
	kept, _ := repo.GetByID(ctx, "vigente")
	assert.NotNil(t, kept)
}
