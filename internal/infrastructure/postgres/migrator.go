package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Migrator aplica las migraciones embebidas con goose.
type Migrator struct {
	pool *pgxpool.Pool
}

// NewMigrator construye el migrador sobre el pool de la app.
func NewMigrator(pool *pgxpool.Pool) *Migrator {
	return &Migrator{pool: pool}
}

// Up aplica todas las migraciones pendientes.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(func(db *sql.DB) error {
		if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		return nil
	})
}

// Down revierte la última migración aplicada.
func (m *Migrator) Down(ctx context.Context) error {
	return m.run(func(db *sql.DB) error {
		if err := goose.DownContext(ctx, db, migrationsDir); err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		return nil
	})
}

// Version devuelve la versión aplicada del esquema.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	var version int64
	err := m.run(func(db *sql.DB) error {
		v, err := goose.GetDBVersionContext(ctx, db)
		version = v
		return err
	})
	return version, err
}

// run abre un *sql.DB sobre el pool (goose trabaja con database/sql) y fija el FS embebido.
func (m *Migrator) run(fn func(db *sql.DB) error) error {
	db := stdlib.OpenDBFromPool(m.pool)
	defer db.Close()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return fn(db)
}
