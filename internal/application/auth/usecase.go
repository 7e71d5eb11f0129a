package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/application/ports"
	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/internal/domain/repository"
	"github.com/jhoicas/textile-backoffice/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login contra el backend, sesión del BFF y logout.
type AuthUseCase struct {
	api        ports.AuthAPI
	sessions   repository.SessionRepository
	jwtCfg     JWTConfig
	sessionTTL time.Duration
	now        func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(api ports.AuthAPI, sessions repository.SessionRepository, jwtCfg JWTConfig, sessionTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{api: api, sessions: sessions, jwtCfg: jwtCfg, sessionTTL: sessionTTL, now: time.Now}
}

// Login autentica contra el backend, guarda sus tokens en una sesión nueva y emite el JWT del BFF.
// Credenciales rechazadas por el backend devuelven ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	res, err := uc.api.Login(ctx, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	now := uc.now()
	role := res.User.Role
	if role == "" {
		role = entity.RoleStaff
	}
	name := res.User.Name
	if name == "" {
		name = in.Username
	}
	sess := &entity.Session{
		ID:           uuid.New().String(),
		UserID:       res.User.ID,
		UserName:     name,
		Role:         role,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	expMinutes := uc.jwtCfg.ExpMinutes
	if uc.sessionTTL > 0 {
		sess.ExpiresAt = now.Add(uc.sessionTTL)
		if ttl := int(uc.sessionTTL / time.Minute); expMinutes <= 0 || ttl < expMinutes {
			expMinutes = ttl
		}
	}
	if err := uc.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, sess.ID, sess.UserID, sess.Role, uc.jwtCfg.Issuer, expMinutes)
	if err != nil {
		_ = uc.sessions.Delete(ctx, sess.ID)
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: now.Add(time.Duration(expMinutes) * time.Minute),
		User:      toUserResponse(sess),
	}, nil
}

// Authenticate valida el JWT del BFF y carga la sesión. Sesión inexistente o vencida devuelve
// ErrSessionExpired; token inválido devuelve ErrUnauthorized.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	sess, err := uc.sessions.GetByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, domain.ErrSessionExpired
	}
	if sess.Expired(uc.now()) {
		_ = uc.sessions.Delete(ctx, sess.ID)
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

// Logout cierra la sesión en el backend (best effort) y la elimina localmente.
func (uc *AuthUseCase) Logout(ctx context.Context, sess *entity.Session) error {
	if sess == nil {
		return nil
	}
	backendErr := uc.api.Logout(ctx, sess)
	if err := uc.sessions.Delete(ctx, sess.ID); err != nil {
		return err
	}
	if backendErr != nil && !errors.Is(backendErr, domain.ErrUnauthorized) {
		return fmt.Errorf("logout en backend: %w", backendErr)
	}
	return nil
}

// Me datos del usuario de la sesión.
func (uc *AuthUseCase) Me(sess *entity.Session) dto.UserResponse {
	return toUserResponse(sess)
}

func toUserResponse(s *entity.Session) dto.UserResponse {
	return dto.UserResponse{ID: s.UserID, Name: s.UserName, Role: s.Role}
}
