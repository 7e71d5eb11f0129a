package backend

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/textile-backoffice/internal/domain"
)

// APIError respuesta no 2xx del backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: HTTP %d", e.Status)
	}
	return fmt.Sprintf("backend: HTTP %d: %s", e.Status, e.Message)
}

// Unwrap traduce el status HTTP al error de dominio equivalente.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	default:
		return domain.ErrUpstream
	}
}

func isUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
