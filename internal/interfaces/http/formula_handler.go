package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/application/usecase"
	"github.com/jhoicas/textile-backoffice/pkg/locale"
)

// FormulaHandler escalado de fórmulas y hoja de producción.
type FormulaHandler struct {
	uc *usecase.FormulaUseCase
}

// NewFormulaHandler construye el handler.
func NewFormulaHandler(uc *usecase.FormulaUseCase) *FormulaHandler {
	return &FormulaHandler{uc: uc}
}

// Scale godoc
// @Summary      Escalar fórmula al peso real
// @Description  actual_weight acepta número o texto con formato indonesio ("1.250,5"). Sin peso devuelve la receta base.
// @Tags         knit-formulas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID de la fórmula"
// @Param        body  body  dto.ScaleRequest  true  "Peso real"
// @Success      200   {object}  dto.ScaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/knit-formulas/{id}/scale [post]
func (h *FormulaHandler) Scale(c *fiber.Ctx) error {
	var in dto.ScaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Scale(c.UserContext(), GetSession(c), c.Params("id"), in.ActualWeight.Float64())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ProductionSheet godoc
// @Summary      Hoja de producción en PDF
// @Tags         knit-formulas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id      path   string  true  "ID de la fórmula"
// @Param        weight  query  string  true  "Peso real (ej. 1.250,5)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/knit-formulas/{id}/sheet.pdf [get]
func (h *FormulaHandler) ProductionSheet(c *fiber.Ctx) error {
	weight := locale.OrZero(locale.Parse(c.Query("weight")))
	id := c.Params("id")
	file, err := h.uc.ProductionSheet(c.UserContext(), GetSession(c), id, weight)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="produccion-%s.pdf"`, id))
	return c.Send(file)
}
