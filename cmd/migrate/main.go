// migrate aplica o revierte las migraciones de la tabla de sesiones del BFF.
//
// Uso: go run ./cmd/migrate [up|down|version]
// Por defecto ejecuta "up". Lee la conexión de DATABASE_URL o DB_* como la API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/textile-backoffice/internal/infrastructure/postgres"
	"github.com/jhoicas/textile-backoffice/pkg/config"
	"github.com/jhoicas/textile-backoffice/pkg/logger"
)

func main() {
	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	m := postgres.NewMigrator(pool)
	switch cmd {
	case "up":
		err = m.Up(ctx)
	case "down":
		err = m.Down(ctx)
	case "version":
	default:
		fmt.Fprintf(os.Stderr, "Comando desconocido %q (up|down|version)\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Str("cmd", cmd).Msg("migración fallida")
		pool.Close()
		os.Exit(1)
	}

	version, err := m.Version(ctx)
	if err != nil {
		log.Error().Err(err).Msg("leer versión del esquema")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Str("cmd", cmd).Int64("version", version).Msg("migraciones al día")
}
