package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/application/ports"
	"github.com/jhoicas/textile-backoffice/internal/application/usecase"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CatalogHandler handler CRUD genérico para un recurso del backend.
// Las rutas de cada recurso están documentadas en docs/swagger.json.
type CatalogHandler[T any, In usecase.Request] struct {
	uc       *usecase.CatalogUseCase[T, In]
	filename string
}

// NewCatalogHandler construye el handler. filename es la base del nombre del .xlsx exportado.
func NewCatalogHandler[T any, In usecase.Request](uc *usecase.CatalogUseCase[T, In], filename string) *CatalogHandler[T, In] {
	return &CatalogHandler[T, In]{uc: uc, filename: filename}
}

// Register monta las rutas del recurso. deleteGuard restringe el borrado (ej. RequireRole admin).
func (h *CatalogHandler[T, In]) Register(r fiber.Router, deleteGuard fiber.Handler) {
	r.Get("/", h.List)
	r.Get("/options", h.Options)
	r.Get("/export.xlsx", h.Export)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", deleteGuard, h.Delete)
}

// List GET /  ?search=&page=&limit=&<filtros>
func (h *CatalogHandler[T, In]) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetSession(c), listQuery(c, h.uc.Filters()))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Get GET /:id
func (h *CatalogHandler[T, In]) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetSession(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Create POST /
func (h *CatalogHandler[T, In]) Create(c *fiber.Ctx) error {
	var in In
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetSession(c), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /:id
func (h *CatalogHandler[T, In]) Update(c *fiber.Ctx) error {
	var in In
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetSession(c), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /:id
func (h *CatalogHandler[T, In]) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetSession(c), c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Options GET /options?search=
func (h *CatalogHandler[T, In]) Options(c *fiber.Ctx) error {
	out, err := h.uc.Options(c.UserContext(), GetSession(c), searchTerm(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Export GET /export.xlsx  mismos filtros que List; ignora page y limit.
func (h *CatalogHandler[T, In]) Export(c *fiber.Ctx) error {
	file, err := h.uc.Export(c.UserContext(), GetSession(c), listQuery(c, h.uc.Filters()))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Attachment(fmt.Sprintf("%s-%s.xlsx", h.filename, time.Now().Format("20060102")))
	return c.Send(file)
}

func searchTerm(c *fiber.Ctx) string {
	if s := c.Query("search"); s != "" {
		return s
	}
	return c.Query("q")
}

// listQuery lee búsqueda, paginación y los filtros permitidos del query string.
func listQuery(c *fiber.Ctx, filters []string) ports.ListQuery {
	q := ports.ListQuery{
		Search:  searchTerm(c),
		Page:    c.QueryInt("page", dto.DefaultPage),
		Limit:   c.QueryInt("limit", dto.DefaultLimit),
		Filters: make(map[string]string, len(filters)),
	}
	for _, k := range filters {
		if v := c.Query(k); v != "" {
			q.Filters[k] = v
		}
	}
	return q
}
