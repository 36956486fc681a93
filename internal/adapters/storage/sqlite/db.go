// Package sqlite es el storage embebido (archivo local) sobre modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"genotrack/internal/adapters/storage/sqlstore"

	_ "modernc.org/sqlite"
)

// Open abre (o crea) el archivo y aplica el esquema. path ":memory:" sirve para tests.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite: empty path")
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, err
	}

	// SQLite serializa escrituras; una conexión evita SQLITE_BUSY y mantiene
	// una única base cuando path es ":memory:".
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := createSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func NewStore(db *sql.DB) *sqlstore.Store {
	return sqlstore.New(db, Dialect{})
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id          TEXT PRIMARY KEY,
		patient_id  TEXT NOT NULL UNIQUE,
		name        TEXT NOT NULL,
		birth_date  TEXT NOT NULL,
		gender      TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS genomes (
		id                TEXT PRIMARY KEY,
		patient_id        TEXT NOT NULL UNIQUE REFERENCES patients (id) ON DELETE CASCADE,
		gene_symbol       TEXT NOT NULL,
		chromosome        TEXT NOT NULL,
		position          INTEGER NOT NULL CHECK (position > 0),
		reference_allele  TEXT NOT NULL,
		alternate_allele  TEXT NOT NULL,
		variant_type      TEXT NOT NULL,
		pathogenicity     TEXT NOT NULL,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS genomes_gene_symbol_idx ON genomes (gene_symbol)`,
	`CREATE TABLE IF NOT EXISTS phenotypes (
		id            TEXT PRIMARY KEY,
		patient_id    TEXT NOT NULL REFERENCES patients (id) ON DELETE CASCADE,
		hpo_code      TEXT NOT NULL,
		description   TEXT NOT NULL,
		severity      TEXT NOT NULL,
		age_of_onset  TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL,
		UNIQUE (patient_id, hpo_code)
	)`,
	`CREATE INDEX IF NOT EXISTS phenotypes_hpo_code_idx ON phenotypes (hpo_code)`,
}

func createSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite schema: %w", err)
		}
	}
	return nil
}
