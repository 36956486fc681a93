package postgres

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"genotrack/internal/platform/logger"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown migration direction %q (want up|down)", s)
}

// Migrate aplica todas las migraciones pendientes (Up) o revierte la última (Down).
func Migrate(db *sql.DB, dir Direction, log logger.Logger) error {
	if log == nil {
		log = logger.Discard()
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrations source: %w", err)
	}

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("migrations driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return fmt.Errorf("creating migration instance: %w", err)
	}

	switch dir {
	case Up:
		err = m.Up()
	case Down:
		err = m.Steps(-1)
	default:
		return fmt.Errorf("unknown migration direction %q", dir)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no migrations to apply", map[string]any{"direction": string(dir)})
		return nil
	}
	if err != nil {
		return fmt.Errorf("running migrations %s: %w", dir, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Warn("could not read migration version", map[string]any{"err": err.Error()})
		return nil
	}
	log.Info("migrations applied", map[string]any{
		"direction": string(dir),
		"version":   version,
		"dirty":     dirty,
	})
	return nil
}
