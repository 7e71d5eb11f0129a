package locale_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

func TestParse_ValoresVaciosDevuelvenCero(t *testing.T) {
	assert.Equal(t, 0.0, locale.Parse(""))
	assert.Equal(t, 0.0, locale.ParseValue(nil))
	assert.Equal(t, 0.0, locale.ParseValue(""))
}

func TestParse_FormatoIndonesio(t *testing.T) {
	cases := map[string]float64{
		"1.500,75":     1500.75,
		"1.500":        1500,
		"0,5":          0.5,
		"12":           12,
		"1.234.567,89": 1234567.89,
		"-2.000,5":     -2000.5,
		" 3,25 ":       3.25,
	}
	for in, want := range cases {
		assert.Equal(t, want, locale.Parse(in), "entrada %q", in)
	}
}

func TestParse_SoloLaPrimeraComaEsDecimal(t *testing.T) {
	// "1,2,3" → "1.2,3" no es un número válido
	assert.True(t, math.IsNaN(locale.Parse("1,2,3")))
}

func TestParse_TextoInvalidoDevuelveNaN(t *testing.T) {
	assert.True(t, math.IsNaN(locale.Parse("abc")))
	assert.True(t, math.IsNaN(locale.Parse("12kg")))
	assert.Equal(t, 0.0, locale.OrZero(locale.Parse("abc")))
}

func TestParseValue_Numeros(t *testing.T) {
	assert.Equal(t, 10.5, locale.ParseValue(10.5))
	assert.Equal(t, 7.0, locale.ParseValue(7))
	assert.Equal(t, 3.0, locale.ParseValue(json.Number("3")))
	assert.Equal(t, 2.5, locale.ParseValue(decimal.RequireFromString("2.5")))
	assert.True(t, math.IsNaN(locale.ParseValue(struct{}{})))
}

func TestParseStrict_DistingueVacioInvalidoYCero(t *testing.T) {
	_, err := locale.ParseStrict("")
	assert.ErrorIs(t, err, locale.ErrEmptyNumber)

	_, err = locale.ParseStrict("x")
	assert.ErrorIs(t, err, locale.ErrInvalidNumber)

	v, err := locale.ParseStrict("0")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = locale.ParseStrict("1.500,75")
	require.NoError(t, err)
	assert.Equal(t, 1500.75, v)
}

func TestParseDecimal_Exacto(t *testing.T) {
	d, err := locale.ParseDecimal("12.345.678,01")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("12345678.01")))

	_, err = locale.ParseDecimal("uno")
	assert.ErrorIs(t, err, locale.ErrInvalidNumber)
}

func TestFormat_AgrupacionYComa(t *testing.T) {
	assert.Equal(t, "1.500,75", locale.Format(1500.75))
	assert.Equal(t, "0,5", locale.Format(0.5))
	assert.Equal(t, "1.234.567", locale.Format(1234567))
	assert.Equal(t, "999", locale.Format(999))
	assert.Equal(t, "-2.000,5", locale.Format(-2000.5))
	assert.Equal(t, "0", locale.Format(0))
}

func TestFormat_DigitosFraccionarios(t *testing.T) {
	assert.Equal(t, "1.234.567,89", locale.Format(1234567.891, locale.MaxFractionDigits(2)))
	assert.Equal(t, "5,00", locale.Format(5, locale.FractionDigits(2, 2)))
	assert.Equal(t, "3,1", locale.Format(3.1, locale.MinFractionDigits(1)))
	assert.Equal(t, "1,333", locale.Format(4.0/3.0))
	assert.Equal(t, "2", locale.Format(1.5, locale.MaxFractionDigits(0)))
	// min mayor que max: max se ajusta a min
	assert.Equal(t, "1,2500", locale.Format(1.25, locale.FractionDigits(4, 2)))
}

func TestFormatNullable_NilEsCero(t *testing.T) {
	assert.Equal(t, "0", locale.FormatNullable(nil))
	v := 1500.0
	assert.Equal(t, "1.500", locale.FormatNullable(&v))
}

func TestFormatDecimal(t *testing.T) {
	d := decimal.RequireFromString("2500000.5")
	assert.Equal(t, "2.500.000,50", locale.FormatDecimal(d, locale.FractionDigits(2, 2)))
}

// format(parse(s)) conserva el valor numérico de s.
func TestFormatParse_IdaYVueltaPorValor(t *testing.T) {
	inputs := []string{"1.500,75", "1.500", "0,5", "12,000", "1.000.000,125", "7"}
	for _, s := range inputs {
		v := locale.Parse(s)
		again := locale.Parse(locale.Format(v))
		assert.Equal(t, v, again, "entrada %q", s)
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	var payload struct {
		A locale.Number `json:"a"`
		B locale.Number `json:"b"`
		C locale.Number `json:"c"`
		D locale.Number `json:"d"`
		E locale.Number `json:"e"`
	}
	raw := `{"a": "1.500,75", "b": 12.5, "c": null, "d": "abc", "e": ""}`
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	assert.Equal(t, 1500.75, payload.A.Float64())
	assert.Equal(t, 12.5, payload.B.Float64())
	assert.Equal(t, 0.0, payload.C.Float64())
	assert.Equal(t, 0.0, payload.D.Float64())
	assert.Equal(t, 0.0, payload.E.Float64())

	out, err := json.Marshal(payload.A)
	require.NoError(t, err)
	assert.Equal(t, "1500.75", string(out))
}

func TestDecimal_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Price locale.Decimal `json:"price"`
		Paid  locale.Decimal `json:"paid"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price": "25.000,50", "paid": 100}`), &payload))
	assert.True(t, payload.Price.Equal(decimal.RequireFromString("25000.5")))
	assert.True(t, payload.Paid.Equal(decimal.NewFromInt(100)))

	out, err := json.Marshal(payload.Price)
	require.NoError(t, err)
	assert.Equal(t, "25000.5", string(out))
}
