package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/application/usecase"
)

// ReceivableHandler cuentas por cobrar.
type ReceivableHandler struct {
	uc *usecase.ReceivableUseCase
}

// NewReceivableHandler construye el handler.
func NewReceivableHandler(uc *usecase.ReceivableUseCase) *ReceivableHandler {
	return &ReceivableHandler{uc: uc}
}

// List godoc
// @Summary      Listar cuentas por cobrar
// @Tags         receivables
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Búsqueda"
// @Param        buyer_id  query  string  false  "Comprador"
// @Param        status    query  string  false  "open | partial | paid"
// @Param        risk      query  string  false  "low | medium | high"
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.ReceivableListResponse
// @Router       /api/receivables [get]
func (h *ReceivableHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetSession(c), listQuery(c, usecase.ReceivableFilters))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener cuenta por cobrar
// @Tags         receivables
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  entity.Receivable
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receivables/{id} [get]
func (h *ReceivableHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// RecordPayment godoc
// @Summary      Registrar abono
// @Tags         receivables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID"
// @Param        body  body  dto.PaymentRequest  true  "Monto (número o texto local), fecha y nota"
// @Success      201   {object}  entity.Receivable
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/receivables/{id}/payments [post]
func (h *ReceivableHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RecordPayment(c.UserContext(), GetSession(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
