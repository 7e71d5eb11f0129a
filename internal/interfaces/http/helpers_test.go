package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/textile-backoffice/internal/application/auth"
	"github.com/jhoicas/textile-backoffice/internal/application/dto"
	"github.com/jhoicas/textile-backoffice/internal/application/ports"
	"github.com/jhoicas/textile-backoffice/internal/application/usecase"
	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/textile-backoffice/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testIssuer     = "textile-backoffice-test"
	testExpMin     = 60
	testCookieName = "session_token"
)

// fakeAuthAPI acepta cualquier contraseña y asigna el rol pedido como nombre de usuario.
type fakeAuthAPI struct{}

func (fakeAuthAPI) Login(_ context.Context, username, _ string) (*ports.AuthResult, error) {
	return &ports.AuthResult{
		AccessToken:  "access-" + username,
		RefreshToken: "refresh-" + username,
		User:         ports.AuthUser{ID: "u-" + username, Name: username, Role: username},
	}, nil
}

func (fakeAuthAPI) Logout(context.Context, *entity.Session) error { return nil }

// memBackend backend en memoria: objetos por ruta y listas por recurso.
type memBackend struct {
	mu      sync.Mutex
	objects map[string]any
	lists   map[string][]any
	created map[string][]byte
}

func newMemBackend() *memBackend {
	return &memBackend{objects: map[string]any{}, lists: map[string][]any{}, created: map[string][]byte{}}
}

func roundTrip(src, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func (b *memBackend) List(_ context.Context, _ *entity.Session, path string, q ports.ListQuery, out any) (*ports.PageMeta, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := b.lists[path]
	if items == nil {
		items = []any{}
	}
	return &ports.PageMeta{Page: q.Page, Limit: q.Limit, Total: len(items)}, roundTrip(items, out)
}

func (b *memBackend) Get(_ context.Context, _ *entity.Session, path string, out any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	obj, ok := b.objects[path]
	if !ok {
		return domain.ErrNotFound
	}
	return roundTrip(obj, out)
}

func (b *memBackend) Create(_ context.Context, _ *entity.Session, path string, in, out any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	b.created[path] = body
	if obj, ok := b.objects[path]; ok {
		return roundTrip(obj, out)
	}
	return json.Unmarshal(body, out)
}

func (b *memBackend) Update(ctx context.Context, sess *entity.Session, path string, in, out any) error {
	return b.Create(ctx, sess, path, in, out)
}

func (b *memBackend) Delete(_ context.Context, _ *entity.Session, path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.objects[path]; !ok {
		return domain.ErrNotFound
	}
	delete(b.objects, path)
	return nil
}

// fakeSheets generador de PDF mínimo.
type fakeSheets struct{}

func (fakeSheets) GenerateProductionSheet(context.Context, ports.ProductionSheet) ([]byte, error) {
	return []byte("%PDF-1.3 fake"), nil
}

// fakeExporter exportador mínimo.
type fakeExporter struct{}

func (fakeExporter) Export(sheet ports.Sheet) ([]byte, error) {
	return []byte(strings.Join(sheet.Headers, ",")), nil
}

// testEnv app completa con backend en memoria.
type testEnv struct {
	app     *fiber.App
	backend *memBackend
	authUC  *auth.AuthUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	backend := newMemBackend()
	sessions := memory.NewSessionRepository()
	authUC := auth.NewAuthUseCase(fakeAuthAPI{}, sessions, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, time.Hour)
	formulaUC := usecase.NewFormulaUseCase(backend, fakeSheets{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		Catalogs:     apphttp.NewCatalogs(backend, fakeExporter{}, formulaUC, usecase.ExportConfig{MaxRows: 100, PageSize: 50}),
		FormulaUC:    formulaUC,
		ReceivableUC: usecase.NewReceivableUseCase(backend),
		DashboardUC:  usecase.NewDashboardUseCase(backend),
		Cookie:       apphttp.CookieConfig{Name: testCookieName},
		Logger:       zerolog.Nop(),
	})
	return &testEnv{app: app, backend: backend, authUC: authUC}
}

// login inicia sesión con el rol indicado y devuelve el header Authorization.
func (e *testEnv) login(t *testing.T, role string) string {
	t.Helper()
	res, err := e.authUC.Login(context.Background(), dto.LoginRequest{Username: role, Password: "x"})
	require.NoError(t, err, "debe iniciarse sesión")
	return "Bearer " + res.Token
}

// do lanza una petición y devuelve status y cuerpo.
func (e *testEnv) do(t *testing.T, method, path, authHeader, body string) (int, []byte, *http.Response) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw, resp
}

func decodeError(t *testing.T, raw []byte) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
