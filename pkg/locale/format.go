package locale

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	groupSeparator   = "."
	decimalSeparator = ","

	defaultMinFractionDigits = 0
	defaultMaxFractionDigits = 3
)

type formatOptions struct {
	min int
	max int
}

// FormatOption ajusta los dígitos fraccionarios al formatear.
type FormatOption func(*formatOptions)

// MinFractionDigits fija la cantidad mínima de decimales (rellena con ceros).
func MinFractionDigits(n int) FormatOption {
	return func(o *formatOptions) { o.min = n }
}

// MaxFractionDigits fija la cantidad máxima de decimales (redondea).
func MaxFractionDigits(n int) FormatOption {
	return func(o *formatOptions) { o.max = n }
}

// FractionDigits fija mínimo y máximo a la vez.
func FractionDigits(min, max int) FormatOption {
	return func(o *formatOptions) {
		o.min = min
		o.max = max
	}
}

func buildOptions(opts []FormatOption) formatOptions {
	o := formatOptions{min: defaultMinFractionDigits, max: defaultMaxFractionDigits}
	for _, opt := range opts {
		opt(&o)
	}
	if o.min < 0 {
		o.min = 0
	}
	if o.max < o.min {
		o.max = o.min
	}
	return o
}

// Format muestra un número con agrupación de miles "." y coma decimal.
// Redondea mitad hacia afuera sobre la representación decimal más corta del float.
func Format(v float64, opts ...FormatOption) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return FormatDecimal(decimal.NewFromFloat(v), opts...)
}

// FormatNullable devuelve "0" cuando no hay valor.
func FormatNullable(v *float64, opts ...FormatOption) string {
	if v == nil {
		return "0"
	}
	return Format(*v, opts...)
}

// FormatDecimal es Format para decimales exactos (montos).
func FormatDecimal(d decimal.Decimal, opts ...FormatOption) string {
	o := buildOptions(opts)
	rounded := d.Round(int32(o.max))

	fixed := rounded.Abs().StringFixed(int32(o.max))
	intPart, frac, _ := strings.Cut(fixed, ".")
	frac = strings.TrimRight(frac, "0")
	if len(frac) < o.min {
		frac += strings.Repeat("0", o.min-len(frac))
	}

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString(groupDigits(intPart))
	if frac != "" {
		b.WriteString(decimalSeparator)
		b.WriteString(frac)
	}
	return b.String()
}

// groupDigits inserta el separador de miles cada tres dígitos desde la derecha.
// Recibe solo dígitos ASCII.
func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(groupSeparator)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
