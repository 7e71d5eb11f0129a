package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Valores posibles de SESSION_STORE.
const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
)

// Config agrupa la configuración del BFF (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	JWT     JWTConfig
	DB      DBConfig
	Backend BackendConfig
	Session SessionConfig
	Export  ExportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	SwaggerPath string // ruta al swagger.json servido en /docs; vacío = desactivado
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración del token de sesión que emite el BFF.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// DBConfig configuración de PostgreSQL (solo se usa con SESSION_STORE=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// BackendConfig configuración del API REST upstream.
type BackendConfig struct {
	BaseURL      string
	Timeout      time.Duration
	MaxBodyBytes int64
}

// SessionConfig configuración de las sesiones del BFF.
type SessionConfig struct {
	Store           string // memory | postgres
	TTL             time.Duration
	CleanupInterval time.Duration
	CookieName      string
	CookieSecure    bool
}

// ExportConfig límites de exportación a Excel.
type ExportConfig struct {
	MaxRows  int
	PageSize int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "textile-backoffice"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			SwaggerPath: getString(v, "HTTP_SWAGGER_PATH", "./docs/swagger.json"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "textile-backoffice"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "textile_backoffice"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Backend: BackendConfig{
			BaseURL:      strings.TrimRight(getString(v, "BACKEND_BASE_URL", "http://localhost:3000/api"), "/"),
			Timeout:      time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
			MaxBodyBytes: int64(getInt(v, "BACKEND_MAX_BODY_BYTES", 4<<20)),
		},
		Session: SessionConfig{
			Store:           strings.ToLower(getString(v, "SESSION_STORE", SessionStoreMemory)),
			TTL:             time.Duration(getInt(v, "SESSION_TTL_MINUTES", 720)) * time.Minute,
			CleanupInterval: time.Duration(getInt(v, "SESSION_CLEANUP_MINUTES", 15)) * time.Minute,
			CookieName:      getString(v, "SESSION_COOKIE_NAME", "session_token"),
			CookieSecure:    getBool(v, "SESSION_COOKIE_SECURE", false),
		},
		Export: ExportConfig{
			MaxRows:  getInt(v, "EXPORT_MAX_ROWS", 5000),
			PageSize: getInt(v, "EXPORT_PAGE_SIZE", 100),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET es obligatorio")
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("config: BACKEND_BASE_URL es obligatorio")
	}
	if _, err := url.ParseRequestURI(c.Backend.BaseURL); err != nil {
		return fmt.Errorf("config: BACKEND_BASE_URL inválido: %w", err)
	}
	switch c.Session.Store {
	case SessionStoreMemory, SessionStorePostgres:
	default:
		return fmt.Errorf("config: SESSION_STORE desconocido %q", c.Session.Store)
	}
	if c.Export.PageSize <= 0 || c.Export.PageSize > 100 {
		c.Export.PageSize = 100
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
