package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/application/ports"
	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/pkg/search"
)

// Request cuerpo de alta/edición que sabe validarse.
type Request interface {
	Validate() error
}

// Column columna del export a Excel.
type Column[T any] struct {
	Header string
	Value  func(T) any
}

// PrepareFunc completa un request validado antes de enviarlo al backend (totales, materiales).
type PrepareFunc[In Request] func(ctx context.Context, sess *entity.Session, in *In) error

// Resource describe un recurso del backend administrado desde el back office.
type Resource[T any, In Request] struct {
	Name    string   // nombre de la hoja exportada
	Path    string   // ruta en el backend, ej. /inventory
	Filters []string // filtros de query aceptados y reenviados
	Label   func(T) string
	Value   func(T) string
	Columns []Column[T]
	Prepare PrepareFunc[In]
}

// ExportConfig límites del export a Excel.
type ExportConfig struct {
	MaxRows  int
	PageSize int
}

// CatalogUseCase casos de uso CRUD genéricos sobre un recurso del backend.
type CatalogUseCase[T any, In Request] struct {
	backend  ports.BackendAPI
	exporter ports.SpreadsheetExporter
	res      Resource[T, In]
	export   ExportConfig
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase[T any, In Request](backend ports.BackendAPI, exporter ports.SpreadsheetExporter, res Resource[T, In], export ExportConfig) *CatalogUseCase[T, In] {
	if export.PageSize <= 0 || export.PageSize > dto.MaxLimit {
		export.PageSize = dto.MaxLimit
	}
	if export.MaxRows <= 0 {
		export.MaxRows = 5000
	}
	return &CatalogUseCase[T, In]{backend: backend, exporter: exporter, res: res, export: export}
}

// Filters filtros aceptados por el recurso.
func (uc *CatalogUseCase[T, In]) Filters() []string { return uc.res.Filters }

// List lista con búsqueda, filtros y paginación.
func (uc *CatalogUseCase[T, In]) List(ctx context.Context, sess *entity.Session, q ports.ListQuery) (*dto.ListResponse[T], error) {
	q = uc.normalizeQuery(q)
	items := []T{}
	meta, err := uc.backend.List(ctx, sess, uc.res.Path, q, &items)
	if err != nil {
		return nil, err
	}
	return &dto.ListResponse[T]{Items: items, Page: pageFrom(meta, q, len(items))}, nil
}

// Get obtiene un registro por ID.
func (uc *CatalogUseCase[T, In]) Get(ctx context.Context, sess *entity.Session, id string) (*T, error) {
	path, err := uc.itemPath(id)
	if err != nil {
		return nil, err
	}
	var out T
	if err := uc.backend.Get(ctx, sess, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create valida, prepara y crea el registro en el backend.
func (uc *CatalogUseCase[T, In]) Create(ctx context.Context, sess *entity.Session, in In) (*T, error) {
	if err := uc.prepare(ctx, sess, &in); err != nil {
		return nil, err
	}
	var out T
	if err := uc.backend.Create(ctx, sess, uc.res.Path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update valida, prepara y actualiza el registro.
func (uc *CatalogUseCase[T, In]) Update(ctx context.Context, sess *entity.Session, id string, in In) (*T, error) {
	path, err := uc.itemPath(id)
	if err != nil {
		return nil, err
	}
	if err := uc.prepare(ctx, sess, &in); err != nil {
		return nil, err
	}
	var out T
	if err := uc.backend.Update(ctx, sess, path, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina el registro.
func (uc *CatalogUseCase[T, In]) Delete(ctx context.Context, sess *entity.Session, id string) error {
	path, err := uc.itemPath(id)
	if err != nil {
		return err
	}
	return uc.backend.Delete(ctx, sess, path)
}

// Options pares valor/etiqueta para selects, ordenados con collation indonesia.
func (uc *CatalogUseCase[T, In]) Options(ctx context.Context, sess *entity.Session, term string) ([]dto.Option, error) {
	if uc.res.Label == nil || uc.res.Value == nil {
		return nil, fmt.Errorf("%s: el recurso no define opciones: %w", uc.res.Path, domain.ErrInvalidInput)
	}
	items := []T{}
	q := ports.ListQuery{Search: search.Normalize(term), Page: 1, Limit: dto.MaxLimit}
	if _, err := uc.backend.List(ctx, sess, uc.res.Path, q, &items); err != nil {
		return nil, err
	}
	opts := lo.Map(items, func(it T, _ int) dto.Option {
		return dto.Option{Value: uc.res.Value(it), Label: uc.res.Label(it)}
	})
	search.SortByLabel(opts, func(o dto.Option) string { return o.Label })
	return opts, nil
}

// Export recorre las páginas del listado (hasta MaxRows) y genera un .xlsx.
func (uc *CatalogUseCase[T, In]) Export(ctx context.Context, sess *entity.Session, q ports.ListQuery) ([]byte, error) {
	if uc.exporter == nil || len(uc.res.Columns) == 0 {
		return nil, fmt.Errorf("%s: el recurso no es exportable: %w", uc.res.Path, domain.ErrInvalidInput)
	}
	q = uc.normalizeQuery(q)
	q.Limit = uc.export.PageSize
	var all []T
	for page := 1; len(all) < uc.export.MaxRows; page++ {
		q.Page = page
		items := []T{}
		meta, err := uc.backend.List(ctx, sess, uc.res.Path, q, &items)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < q.Limit || (meta != nil && len(all) >= meta.Total) {
			break
		}
	}
	if len(all) > uc.export.MaxRows {
		all = all[:uc.export.MaxRows]
	}
	return uc.exporter.Export(uc.sheet(all))
}

func (uc *CatalogUseCase[T, In]) sheet(items []T) ports.Sheet {
	headers := lo.Map(uc.res.Columns, func(c Column[T], _ int) string { return c.Header })
	rows := lo.Map(items, func(it T, _ int) []any {
		return lo.Map(uc.res.Columns, func(c Column[T], _ int) any { return c.Value(it) })
	})
	return ports.Sheet{Name: uc.res.Name, Headers: headers, Rows: rows}
}

func (uc *CatalogUseCase[T, In]) prepare(ctx context.Context, sess *entity.Session, in *In) error {
	if err := (*in).Validate(); err != nil {
		return err
	}
	if uc.res.Prepare != nil {
		return uc.res.Prepare(ctx, sess, in)
	}
	return nil
}

func (uc *CatalogUseCase[T, In]) itemPath(id string) (string, error) {
	return itemPath(uc.res.Path, id)
}

func (uc *CatalogUseCase[T, In]) normalizeQuery(q ports.ListQuery) ports.ListQuery {
	q = NormalizeQuery(q)
	q.Filters = lo.PickByKeys(q.Filters, uc.res.Filters)
	return q
}

// NormalizeQuery aplica los valores por defecto de paginación y normaliza la búsqueda.
func NormalizeQuery(q ports.ListQuery) ports.ListQuery {
	if q.Page < 1 {
		q.Page = dto.DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = dto.DefaultLimit
	}
	if q.Limit > dto.MaxLimit {
		q.Limit = dto.MaxLimit
	}
	q.Search = search.Normalize(q.Search)
	q.Filters = lo.OmitBy(q.Filters, func(_ string, v string) bool { return strings.TrimSpace(v) == "" })
	return q
}

func itemPath(base, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", domain.Invalid("id", "es requerido")
	}
	return base + "/" + url.PathEscape(id), nil
}

func pageFrom(meta *ports.PageMeta, q ports.ListQuery, n int) dto.PageResponse {
	if meta == nil {
		return dto.NewPageResponse(q.Page, q.Limit, n)
	}
	page, limit := meta.Page, meta.Limit
	if page < 1 {
		page = q.Page
	}
	if limit < 1 {
		limit = q.Limit
	}
	return dto.NewPageResponse(page, limit, meta.Total)
}
