package dto

// ParseRequest valor a interpretar: número, texto local o null.
type ParseRequest struct {
	Value any `json:"value"`
}

// ParseResponse Number ya coalescido a 0; Valid indica si el texto era un número.
type ParseResponse struct {
	Number  float64 `json:"number"`
	Valid   bool    `json:"valid"`
	Display string  `json:"display"`
}

// TypingRequest texto del campo tras la última tecla. Field: weight | quantity | money.
type TypingRequest struct {
	Value string `json:"value"`
	Field string `json:"field"`
}

// TypingResponse texto reformateado.
type TypingResponse struct {
	Value string `json:"value"`
}

// FormatResponse número formateado para mostrar.
type FormatResponse struct {
	Text string `json:"text"`
}
