package dto

import (
	"time"

	"github.com/jhoicas/textile-backoffice/internal/domain"
)

// Valores de paginación.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPageResponse calcula TotalPages a partir de total y limit.
func NewPageResponse(page, limit, total int) PageResponse {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return PageResponse{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// ListResponse lista paginada genérica.
type ListResponse[T any] struct {
	Items []T          `json:"items"`
	Page  PageResponse `json:"page"`
}

// Option par valor/etiqueta para los selects de los formularios.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ErrorResponse cuerpo de error HTTP. Redirect indica al navegador a dónde ir (ej. /login).
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// DateLayout formato de fechas intercambiado con el backend.
const DateLayout = "2006-01-02"

func validDate(field, value string, required bool) error {
	if value == "" {
		if required {
			return domain.Invalid(field, "es requerido")
		}
		return nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return domain.Invalid(field, "debe tener formato AAAA-MM-DD")
	}
	return nil
}

func required(field, value string) error {
	if value == "" {
		return domain.Invalid(field, "es requerido")
	}
	return nil
}
