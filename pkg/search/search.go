// Package search normaliza términos de búsqueda y ordena opciones con la colación indonesia.
package search

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// MaxTermLength limita el término enviado al backend.
const MaxTermLength = 100

// Normalize aplica NFKC (convierte caracteres de ancho completo y ligaduras), colapsa espacios
// y recorta a MaxTermLength runas.
func Normalize(term string) string {
	term = norm.NFKC.String(term)
	term = strings.Join(strings.Fields(term), " ")
	if r := []rune(term); len(r) > MaxTermLength {
		term = strings.TrimSpace(string(r[:MaxTermLength]))
	}
	return term
}

// SortByLabel ordena in-place con la colación de language.Indonesian, ignorando mayúsculas.
// collate.Collator no es seguro para uso concurrente; se crea uno por llamada.
func SortByLabel[T any](items []T, label func(T) string) {
	c := collate.New(language.Indonesian, collate.IgnoreCase, collate.Numeric)
	slices.SortStableFunc(items, func(a, b T) int {
		return c.CompareString(label(a), label(b))
	})
}
