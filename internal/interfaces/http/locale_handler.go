package http

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

// LocaleHandler expone el formato numérico indonesio (público, sin sesión).
type LocaleHandler struct{}

// NewLocaleHandler construye el handler.
func NewLocaleHandler() *LocaleHandler { return &LocaleHandler{} }

// Parse godoc
// @Summary      Interpretar número local
// @Description  "1.250,5" → 1250.5. Texto inválido devuelve number 0 y valid false.
// @Tags         locale
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ParseRequest  true  "Valor"
// @Success      200   {object}  dto.ParseResponse
// @Router       /api/locale/parse [post]
func (h *LocaleHandler) Parse(c *fiber.Ctx) error {
	var in dto.ParseRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	parsed := locale.ParseValue(in.Value)
	number := locale.OrZero(parsed)
	return c.JSON(dto.ParseResponse{
		Number:  number,
		Valid:   !math.IsNaN(parsed),
		Display: locale.Format(number),
	})
}

// Typing godoc
// @Summary      Reformatear un campo mientras se escribe
// @Description  field: weight | quantity (vacío → "") o money (vacío → "0").
// @Tags         locale
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TypingRequest  true  "Texto y tipo de campo"
// @Success      200   {object}  dto.TypingResponse
// @Router       /api/locale/typing [post]
func (h *LocaleHandler) Typing(c *fiber.Ctx) error {
	var in dto.TypingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	reset := locale.ResetFor(locale.FieldKind(in.Field))
	return c.JSON(dto.TypingResponse{Value: locale.FormatTypingWith(in.Value, reset)})
}

// Format godoc
// @Summary      Formatear número para mostrar
// @Tags         locale
// @Produce      json
// @Param        value  query  string  true   "Número (punto decimal o texto local)"
// @Param        min    query  int     false  "Mínimo de decimales"  default(0)
// @Param        max    query  int     false  "Máximo de decimales"  default(3)
// @Success      200    {object}  dto.FormatResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/locale/format [get]
func (h *LocaleHandler) Format(c *fiber.Ctx) error {
	raw := c.Query("value")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		v = locale.Parse(raw)
	}
	minDigits := c.QueryInt("min", 0)
	maxDigits := c.QueryInt("max", 3)
	if minDigits < 0 || maxDigits < 0 || maxDigits > 20 || minDigits > 20 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min y max deben estar entre 0 y 20", Field: "max"})
	}
	return c.JSON(dto.FormatResponse{Text: locale.Format(v, locale.FractionDigits(minDigits, maxDigits))})
}
