package entity

import "time"

// Roles conocidos por el BFF.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Session sesión del BFF: guarda las credenciales del backend de un usuario autenticado.
// Los tokens nunca salen hacia el navegador.
type Session struct {
	ID           string
	UserID       string
	UserName     string
	Role         string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Expired indica si la sesión venció en el instante now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
