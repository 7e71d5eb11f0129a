// Package backend es el cliente HTTP del API REST que persiste inventario, producción y ventas.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/textile-backoffice/internal/application/ports"
	"github.com/jhoicas/textile-backoffice/internal/domain"
	"github.com/jhoicas/textile-backoffice/internal/domain/entity"
	"github.com/jhoicas/textile-backoffice/internal/domain/repository"
)

var (
	_ ports.BackendAPI = (*Client)(nil)
	_ ports.AuthAPI    = (*Client)(nil)
)

const (
	defaultTimeout      = 15 * time.Second
	defaultMaxBodyBytes = 4 << 20

	refreshPath = "/auth/refresh"
	loginPath   = "/auth/login"
	logoutPath  = "/auth/logout"
)

// Config parámetros del cliente.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxBodyBytes int64
}

// Client cliente único del backend. Se construye al arrancar y se inyecta en los casos de uso.
// Ante un 401 refresca los tokens de la sesión una sola vez y reintenta la petición.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   repository.SessionRepository
	log        zerolog.Logger
	maxBody    int64
	refreshes  singleflight.Group
	now        func() time.Time
}

// NewClient construye el cliente. sessions persiste los tokens refrescados.
func NewClient(cfg Config, sessions repository.SessionRepository, log zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		sessions:   sessions,
		log:        log,
		maxBody:    cfg.MaxBodyBytes,
		now:        time.Now,
	}
}

// envelope formato de todas las respuestas del backend.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Meta    *ports.PageMeta `json:"meta"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (e *envelope) decode(out any) error {
	if out == nil || e == nil || len(e.Data) == 0 || bytes.Equal(e.Data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("backend: deserializar data: %w", err)
	}
	return nil
}

// ── Recursos ─────────────────────────────────────────────────────────────────

func (c *Client) List(ctx context.Context, sess *entity.Session, path string, q ports.ListQuery, out any) (*ports.PageMeta, error) {
	query := url.Values{}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	for k, v := range q.Filters {
		query.Set(k, v)
	}
	env, err := c.withSession(ctx, sess, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	if err := env.decode(out); err != nil {
		return nil, err
	}
	return env.Meta, nil
}

func (c *Client) Get(ctx context.Context, sess *entity.Session, path string, out any) error {
	env, err := c.withSession(ctx, sess, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	return env.decode(out)
}

func (c *Client) Create(ctx context.Context, sess *entity.Session, path string, in, out any) error {
	env, err := c.withSession(ctx, sess, http.MethodPost, path, nil, in)
	if err != nil {
		return err
	}
	return env.decode(out)
}

func (c *Client) Update(ctx context.Context, sess *entity.Session, path string, in, out any) error {
	env, err := c.withSession(ctx, sess, http.MethodPut, path, nil, in)
	if err != nil {
		return err
	}
	return env.decode(out)
}

func (c *Client) Delete(ctx context.Context, sess *entity.Session, path string) error {
	_, err := c.withSession(ctx, sess, http.MethodDelete, path, nil, nil)
	return err
}

// ── Autenticación ────────────────────────────────────────────────────────────

// Login autentica usuario y contraseña; no requiere sesión.
func (c *Client) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return nil, err
	}
	env, err := c.do(ctx, http.MethodPost, loginPath, nil, "", body)
	if err != nil {
		return nil, err
	}
	var res ports.AuthResult
	if err := env.decode(&res); err != nil {
		return nil, err
	}
	if res.AccessToken == "" {
		return nil, fmt.Errorf("backend: login sin access_token: %w", domain.ErrUpstream)
	}
	return &res, nil
}

// Logout revoca los tokens de la sesión en el backend. No reintenta.
func (c *Client) Logout(ctx context.Context, sess *entity.Session) error {
	if sess == nil {
		return nil
	}
	body, err := json.Marshal(map[string]string{"refresh_token": sess.RefreshToken})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, logoutPath, nil, sess.AccessToken, body)
	return err
}

// ── Reintento ante 401 ───────────────────────────────────────────────────────

// withSession intento → 401 → refresco → reintento. Un segundo 401 devuelve ErrUnauthorized.
func (c *Client) withSession(ctx context.Context, sess *entity.Session, method, path string, query url.Values, in any) (*envelope, error) {
	if sess == nil {
		return nil, domain.ErrUnauthorized
	}
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return nil, fmt.Errorf("backend: serializar request: %w", err)
		}
	}
	env, err := c.do(ctx, method, path, query, sess.AccessToken, body)
	if !isUnauthorized(err) {
		return env, err
	}
	token, err := c.refresh(ctx, sess.ID, sess.AccessToken)
	if err != nil {
		return nil, err
	}
	env, err = c.do(ctx, method, path, query, token, body)
	if isUnauthorized(err) {
		c.log.Warn().Str("session_id", sess.ID).Str("path", path).Msg("backend rechazó las credenciales refrescadas")
		return nil, fmt.Errorf("%s %s: %w", method, path, domain.ErrUnauthorized)
	}
	return env, err
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// refresh obtiene un access token vigente. Refrescos concurrentes de la misma sesión se
// agrupan; si otro request ya rotó el token se usa el guardado.
func (c *Client) refresh(ctx context.Context, sessionID, staleToken string) (string, error) {
	v, err, shared := c.refreshes.Do(sessionID, func() (any, error) {
		current, err := c.sessions.GetByID(ctx, sessionID)
		if err != nil {
			return "", fmt.Errorf("backend: cargar sesión: %w", err)
		}
		if current == nil {
			return "", domain.ErrSessionExpired
		}
		if current.AccessToken != staleToken {
			return current.AccessToken, nil
		}
		body, err := json.Marshal(map[string]string{"refresh_token": current.RefreshToken})
		if err != nil {
			return "", err
		}
		env, err := c.do(ctx, http.MethodPost, refreshPath, nil, "", body)
		if err != nil {
			c.log.Warn().Err(err).Str("session_id", sessionID).Msg("no se pudo refrescar la sesión")
			if isUnauthorized(err) {
				return "", fmt.Errorf("refresh: %w", domain.ErrUnauthorized)
			}
			return "", err
		}
		var pair tokenPair
		if err := env.decode(&pair); err != nil {
			return "", err
		}
		if pair.AccessToken == "" {
			return "", fmt.Errorf("backend: refresh sin access_token: %w", domain.ErrUpstream)
		}
		if pair.RefreshToken == "" {
			pair.RefreshToken = current.RefreshToken
		}
		if err := c.sessions.UpdateTokens(ctx, sessionID, pair.AccessToken, pair.RefreshToken, c.now()); err != nil {
			return "", fmt.Errorf("backend: guardar tokens: %w", err)
		}
		c.log.Info().Str("session_id", sessionID).Msg("sesión refrescada")
		return pair.AccessToken, nil
	})
	if err != nil {
		return "", err
	}
	if shared {
		c.log.Debug().Str("session_id", sessionID).Msg("refresco compartido")
	}
	return v.(string), nil
}

// ── Transporte ───────────────────────────────────────────────────────────────

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body []byte) (*envelope, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("backend: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("backend: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("backend: %s %s: %v: %w", method, path, err, domain.ErrUpstream)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("backend: leer respuesta: %w", err)
	}
	if int64(len(raw)) > c.maxBody {
		return nil, fmt.Errorf("backend: respuesta supera %d bytes: %w", c.maxBody, domain.ErrUpstream)
	}
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", c.now().Sub(start)).
		Msg("backend")

	var env envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if jsonErr := json.Unmarshal(raw, &env); jsonErr != nil && resp.StatusCode < 300 {
			return nil, fmt.Errorf("backend: respuesta no es JSON: %w", domain.ErrUpstream)
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}
	return &env, nil
}
