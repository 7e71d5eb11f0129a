package locale

import "strings"

// EmptyReset define a qué vuelve un campo cuando el usuario borra todo.
type EmptyReset int

const (
	ResetToEmpty EmptyReset = iota // el campo queda en ""
	ResetToZero                    // el campo queda en "0"
)

func (r EmptyReset) value() string {
	if r == ResetToZero {
		return "0"
	}
	return ""
}

// FieldKind clasifica los campos numéricos de los formularios.
type FieldKind string

const (
	FieldWeight   FieldKind = "weight"   // pesos en kg (producción, fórmulas)
	FieldQuantity FieldKind = "quantity" // cantidades de líneas de compra/venta
	FieldMoney    FieldKind = "money"    // precios, pagos, límites de crédito
)

// ResetFor devuelve la política de vaciado de cada tipo de campo: los montos vuelven a "0",
// pesos y cantidades quedan vacíos para que el usuario vea el placeholder.
func ResetFor(kind FieldKind) EmptyReset {
	if kind == FieldMoney {
		return ResetToZero
	}
	return ResetToEmpty
}

// FormatTyping reformatea el texto de un campo numérico después de cada tecla.
func FormatTyping(s string) string {
	return FormatTypingWith(s, ResetToEmpty)
}

// FormatTypingWith elimina todo lo que no sea dígito o coma, colapsa las comas extra dentro de la
// parte decimal, agrupa la parte entera y reengancha la parte decimal tal cual.
// Aplicarla sobre su propia salida devuelve la misma cadena.
func FormatTypingWith(s string, reset EmptyReset) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return reset.value()
	}

	intPart, frac, hasComma := strings.Cut(cleaned, decimalSeparator)
	if hasComma {
		frac = strings.ReplaceAll(frac, decimalSeparator, "")
	}

	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}

	out := groupDigits(intPart)
	if hasComma {
		out += decimalSeparator + frac
	}
	return out
}
