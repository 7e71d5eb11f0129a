package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/jhoicas/textile-backoffice/internal/application/ports"
	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
)

// backendCall una escritura recibida por el fake, con el cuerpo ya serializado a JSON.
type backendCall struct {
	Method string
	Path   string
	Body   []byte
}

// fakeBackend simula el API REST: listas paginadas y objetos por ruta, copiados vía JSON.
type fakeBackend struct {
	mu      sync.Mutex
	lists   map[string][]any
	objects map[string]any
	failOn  map[string]error
	queries map[string][]ports.ListQuery
	writes  []backendCall
	reply   any
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		lists:   map[string][]any{},
		objects: map[string]any{},
		failOn:  map[string]error{},
		queries: map[string][]ports.ListQuery{},
	}
}

func copyJSON(src, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func (f *fakeBackend) List(_ context.Context, _ *entity.Session, path string, q ports.ListQuery, out any) (*ports.PageMeta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries[path] = append(f.queries[path], q)
	if err := f.failOn[path]; err != nil {
		return nil, err
	}
	all := f.lists[path]
	start := (q.Page - 1) * q.Limit
	if start > len(all) {
		start = len(all)
	}
	end := start + q.Limit
	if end > len(all) {
		end = len(all)
	}
	page := append([]any{}, all[start:end]...)
	if err := copyJSON(page, out); err != nil {
		return nil, err
	}
	return &ports.PageMeta{Page: q.Page, Limit: q.Limit, Total: len(all)}, nil
}

func (f *fakeBackend) Get(_ context.Context, _ *entity.Session, path string, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failOn[path]; err != nil {
		return err
	}
	obj, ok := f.objects[path]
	if !ok {
		return domain.ErrNotFound
	}
	return copyJSON(obj, out)
}

func (f *fakeBackend) write(method, path string, in, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failOn[path]; err != nil {
		return err
	}
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	f.writes = append(f.writes, backendCall{Method: method, Path: path, Body: body})
	if out == nil {
		return nil
	}
	if f.reply != nil {
		return copyJSON(f.reply, out)
	}
	return json.Unmarshal(body, out)
}

func (f *fakeBackend) Create(_ context.Context, _ *entity.Session, path string, in, out any) error {
	return f.write("POST", path, in, out)
}

func (f *fakeBackend) Update(_ context.Context, _ *entity.Session, path string, in, out any) error {
	return f.write("PUT", path, in, out)
}

func (f *fakeBackend) Delete(_ context.Context, _ *entity.Session, path string) error {
	return f.write("DELETE", path, nil, nil)
}

func (f *fakeBackend) lastWrite() backendCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.writes) == 0 {
		return backendCall{}
	}
	return f.writes[len(f.writes)-1]
}

func (f *fakeBackend) listCalls(path string) []ports.ListQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[path]
}

func (f *fakeBackend) setList(path string, items ...any) {
	f.lists[path] = items
}

// fakeExporter guarda la última hoja exportada.
type fakeExporter struct {
	sheet ports.Sheet
}

func (e *fakeExporter) Export(sheet ports.Sheet) ([]byte, error) {
	e.sheet = sheet
	return []byte("xlsx:" + strings.Join(sheet.Headers, ",")), nil
}

// fakeSheets guarda los datos de la última hoja de producción.
type fakeSheets struct {
	data ports.ProductionSheet
}

func (s *fakeSheets) GenerateProductionSheet(_ context.Context, data ports.ProductionSheet) ([]byte, error) {
	s.data = data
	return []byte("%PDF-fake"), nil
}

var testSession = &entity.Session{ID: "sess-1", UserID: "u-1", UserName: "Dewi", Role: entity.RoleStaff}
