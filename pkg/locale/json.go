package locale

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

var jsonNull = []byte("null")

// Number es un float64 que en JSON acepta número, texto local ("1.500,75") o null.
// Los valores no interpretables se coalescen a 0.
type Number float64

// Float64 devuelve el valor como float64.
func (n Number) Float64() float64 { return float64(n) }

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Number(OrZero(Parse(s)))
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(n), 'f', -1, 64)), nil
}

// Decimal envuelve decimal.Decimal con la misma tolerancia de entrada que Number.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal construye un Decimal desde un decimal.Decimal.
func NewDecimal(d decimal.Decimal) Decimal { return Decimal{Decimal: d} }

func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		d.Decimal = decimal.Zero
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseDecimal(s)
		if err != nil {
			v = decimal.Zero
		}
		d.Decimal = v
		return nil
	}
	v, err := decimal.NewFromString(string(b))
	if err != nil {
		v = decimal.Zero
	}
	d.Decimal = v
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal.String()), nil
}
