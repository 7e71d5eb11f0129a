package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

func TestFormatTyping_Ejemplos(t *testing.T) {
	cases := map[string]string{
		"1500":                 "1.500",
		"1500,7":               "1.500,7",
		"1.500,75":             "1.500,75",
		"1234567":              "1.234.567",
		"12a3b4":               "1.234",
		"1,2,3":                "1,23",
		",5":                   "0,5",
		"0,":                   "0,",
		"007":                  "7",
		"000":                  "0",
		"Rp 2.500":             "2.500",
		"1,500,":               "1,500",
		"12345678901234567890": "12.345.678.901.234.567.890",
	}
	for in, want := range cases {
		assert.Equal(t, want, locale.FormatTyping(in), "entrada %q", in)
	}
}

func TestFormatTyping_VacioSegunPolitica(t *testing.T) {
	assert.Equal(t, "", locale.FormatTyping(""))
	assert.Equal(t, "", locale.FormatTyping("abc"))
	assert.Equal(t, "0", locale.FormatTypingWith("", locale.ResetToZero))
	assert.Equal(t, "0", locale.FormatTypingWith("kg", locale.ResetToZero))
}

func TestResetFor(t *testing.T) {
	assert.Equal(t, locale.ResetToZero, locale.ResetFor(locale.FieldMoney))
	assert.Equal(t, locale.ResetToEmpty, locale.ResetFor(locale.FieldWeight))
	assert.Equal(t, locale.ResetToEmpty, locale.ResetFor(locale.FieldQuantity))
}

func TestFormatTyping_Idempotente(t *testing.T) {
	inputs := []string{
		"", "0", "1", "12", "123", "1234", "1.234", "1234,5", "1,2,3,4", ",,", ",",
		"abc", "00012,00", "9.9.9.9", "1 000 000,25", "٣٤", "12,3a4", "-15,5", "1e5",
	}
	for _, reset := range []locale.EmptyReset{locale.ResetToEmpty, locale.ResetToZero} {
		for _, in := range inputs {
			once := locale.FormatTypingWith(in, reset)
			twice := locale.FormatTypingWith(once, reset)
			assert.Equal(t, once, twice, "entrada %q", in)
		}
	}
}

// El texto formateado al teclear se interpreta con Parse sin perder valor.
func TestFormatTyping_CompatibleConParse(t *testing.T) {
	assert.Equal(t, 1500.75, locale.Parse(locale.FormatTyping("1500,75")))
	assert.Equal(t, 1234567.0, locale.Parse(locale.FormatTyping("1234567")))
}
