package http

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/textile-backoffice/internal/application/auth"
	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
)

// LocalSession clave de la sesión autenticada en c.Locals.
const LocalSession = "session"

// AuthMiddleware autentica por Bearer token o por la cookie de sesión y deja la sesión en
// c.Locals. Sin sesión válida responde 401 con redirect al login.
func AuthMiddleware(uc *auth.AuthUseCase, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := ""
		if authHeader := c.Get("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c, "INVALID_TOKEN", "formato: Bearer <token>")
			}
			token = strings.TrimSpace(parts[1])
		} else if cookieName != "" {
			token = c.Cookies(cookieName)
		}
		if token == "" {
			return unauthorized(c, "MISSING_TOKEN", "autenticación requerida")
		}
		sess, err := uc.Authenticate(c.UserContext(), token)
		if err != nil {
			return handleError(c, err)
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// RequireRole exige que la sesión tenga alguno de los roles indicados. Va después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return unauthorized(c, "UNAUTHORIZED", "autenticación requerida")
		}
		if !slices.Contains(roles, sess.Role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + sess.Role + "' no tiene permisos para esta acción",
			})
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después del middleware de auth).
func GetSession(c *fiber.Ctx) *entity.Session {
	sess, _ := c.Locals(LocalSession).(*entity.Session)
	return sess
}

// GetRole devuelve el rol de la sesión o "" si no hay sesión.
func GetRole(c *fiber.Ctx) string {
	if sess := GetSession(c); sess != nil {
		return sess.Role
	}
	return ""
}
