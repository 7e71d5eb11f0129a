package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/textile-backoffice/internal/application/auth"
	"github.com/jhoicas/textile-backoffice/internal/application/usecase"
	"github.com/jhoicas/textile-backoffice/internal/domain/repository"
	"github.com/jhoicas/textile-backoffice/internal/infrastructure/backend"
	"github.com/jhoicas/textile-backoffice/internal/infrastructure/excel"
	"github.com/jhoicas/textile-backoffice/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/textile-backoffice/internal/infrastructure/pdf"
	"github.com/jhoicas/textile-backoffice/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/textile-backoffice/internal/interfaces/http"
	"github.com/jhoicas/textile-backoffice/pkg/config"
	"github.com/jhoicas/textile-backoffice/pkg/logger"
)

// Zona horaria de las fábricas; se usa en la hoja de producción.
const plantTimezone = "Asia/Jakarta"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Str("session_store", cfg.Session.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Sesiones: memoria (una instancia) o PostgreSQL (varias réplicas)
	var sessions repository.SessionRepository
	var pool *pgxpool.Pool
	switch cfg.Session.Store {
	case config.SessionStorePostgres:
		pool, err = postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.NewMigrator(pool).Up(ctx); err != nil {
			log.Fatal().Err(err).Msg("migraciones de sesiones")
		}
		sessions = postgres.NewSessionRepository(pool)
	default:
		sessions = memory.NewSessionRepository()
	}

	backendClient := backend.NewClient(backend.Config{
		BaseURL:      cfg.Backend.BaseURL,
		Timeout:      cfg.Backend.Timeout,
		MaxBodyBytes: cfg.Backend.MaxBodyBytes,
	}, sessions, log.Component("backend"))

	loc, err := time.LoadLocation(plantTimezone)
	if err != nil {
		log.Warn().Err(err).Str("tz", plantTimezone).Msg("zona horaria no disponible, se usa la local")
		loc = time.Local
	}

	// PDF: hoja de producción; Excel: exportación de listados
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(loc)
	exporter := excel.NewExporter()

	authUC := auth.NewAuthUseCase(backendClient, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Session.TTL)
	formulaUC := usecase.NewFormulaUseCase(backendClient, pdfGenerator)
	catalogs := httpRouter.NewCatalogs(backendClient, exporter, formulaUC, usecase.ExportConfig{
		MaxRows:  cfg.Export.MaxRows,
		PageSize: cfg.Export.PageSize,
	})
	receivableUC := usecase.NewReceivableUseCase(backendClient)
	dashboardUC := usecase.NewDashboardUseCase(backendClient)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Backend.Timeout + time.Second*10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerPath != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerPath,
			Path:     "docs",
			Title:    "Textile Backoffice API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{"status": "ok", "service": cfg.App.Name, "session_store": cfg.Session.Store}
		if pool != nil {
			if err := pool.Ping(c.UserContext()); err != nil {
				status["status"] = "degraded"
				status["db"] = err.Error()
				return c.Status(fiber.StatusServiceUnavailable).JSON(status)
			}
		}
		return c.JSON(status)
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Catalogs:     catalogs,
		FormulaUC:    formulaUC,
		ReceivableUC: receivableUC,
		DashboardUC:  dashboardUC,
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		},
		Logger: log.Component("auth"),
	})

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go purgeExpiredSessions(janitorCtx, sessions, cfg.Session.CleanupInterval, log)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopJanitor()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// purgeExpiredSessions elimina periódicamente las sesiones vencidas hasta que ctx se cancele.
func purgeExpiredSessions(ctx context.Context, sessions repository.SessionRepository, every time.Duration, log *logger.Logger) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := sessions.DeleteExpired(ctx, now)
			if err != nil {
				log.Warn().Err(err).Msg("limpieza de sesiones")
				continue
			}
			if n > 0 {
				log.Debug().Int64("sesiones", n).Msg("sesiones vencidas eliminadas")
			}
		}
	}
}
