package dto

import (
	"strings"
	"time"

	"github.com/jhoicas/textile-backoffice/internal/domain"
)

// LoginRequest credenciales del usuario.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate verifica que vengan usuario y contraseña.
func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return domain.Invalid("username", "es requerido")
	}
	if r.Password == "" {
		return domain.Invalid("password", "es requerido")
	}
	return nil
}

// UserResponse usuario autenticado.
type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// LoginResponse token del BFF y datos del usuario.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
