package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/textile-backoffice/internal/application/usecase"
)

// DashboardHandler pantalla de inicio.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetSession(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
