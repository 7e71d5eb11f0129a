package ports

import (
	"context"

	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
)

// ListQuery parámetros de búsqueda y paginación que se reenvían al backend.
type ListQuery struct {
	Search  string
	Page    int
	Limit   int
	Filters map[string]string
}

// PageMeta metadatos de paginación devueltos por el backend.
type PageMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// BackendAPI puerto de salida hacia el API REST que persiste todo.
// Cada llamada recibe explícitamente la sesión cuyas credenciales se usan.
type BackendAPI interface {
	List(ctx context.Context, sess *entity.Session, path string, q ListQuery, out any) (*PageMeta, error)
	Get(ctx context.Context, sess *entity.Session, path string, out any) error
	Create(ctx context.Context, sess *entity.Session, path string, in, out any) error
	Update(ctx context.Context, sess *entity.Session, path string, in, out any) error
	Delete(ctx context.Context, sess *entity.Session, path string) error
}

// AuthUser datos del usuario autenticado según el backend.
type AuthUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// AuthResult resultado del login en el backend.
type AuthResult struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         AuthUser `json:"user"`
}

// AuthAPI puerto de autenticación contra el backend.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Logout(ctx context.Context, sess *entity.Session) error
}
