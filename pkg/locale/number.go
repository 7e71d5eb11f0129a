// Package locale implementa la conversión entre números y texto con la convención indonesia:
// "." agrupa miles y "," separa decimales (ej. "1.500,75" = 1500.75).
package locale

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyNumber   = errors.New("locale: número vacío")
	ErrInvalidNumber = errors.New("locale: número inválido")
)

// normalize quita los separadores de miles y convierte la primera coma en punto decimal.
func normalize(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.TrimSpace(strings.Replace(s, ",", ".", 1))
}

// Parse convierte un texto local a número. Vacío devuelve 0; un texto no numérico devuelve NaN.
// Los llamadores que quieran el comportamiento "parsed || 0" deben pasar el resultado por OrZero.
func Parse(s string) float64 {
	if s == "" {
		return 0
	}
	n := normalize(s)
	if n == "" {
		return 0
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil || math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

// ParseValue acepta lo que llega de un JSON decodificado: nil, texto local o número.
func ParseValue(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case string:
		return Parse(x)
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint64:
		return float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case decimal.Decimal:
		return x.InexactFloat64()
	default:
		return math.NaN()
	}
}

// OrZero reemplaza NaN por 0. Tras esta coalescencia un valor que vale 0 y uno que no se pudo
// interpretar son indistinguibles; usar ParseStrict cuando la diferencia importe.
func OrZero(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}

// ParseStrict es la variante con error: distingue vacío, inválido y cero.
func ParseStrict(s string) (float64, error) {
	n := normalize(s)
	if n == "" {
		return 0, ErrEmptyNumber
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, ErrInvalidNumber
	}
	return f, nil
}

// ParseDecimal aplica la misma normalización pero devuelve un decimal exacto (montos).
func ParseDecimal(s string) (decimal.Decimal, error) {
	n := normalize(s)
	if n == "" {
		return decimal.Zero, ErrEmptyNumber
	}
	d, err := decimal.NewFromString(n)
	if err != nil {
		return decimal.Zero, ErrInvalidNumber
	}
	return d, nil
}
