// Package sqlstore implementa los repositorios sobre database/sql. Las
// consultas se escriben con placeholders "?" y el Dialect las adapta al motor.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"genotrack/internal/domain/genomes"
	"genotrack/internal/domain/patients"
	"genotrack/internal/domain/phenotypes"
	"genotrack/internal/ports/storage"
)

// Dialect encapsula lo que cambia entre Postgres y SQLite.
type Dialect interface {
	Name() string

	// Rebind reescribe los "?" al estilo del motor.
	Rebind(query string) string

	// UniqueViolation devuelve el nombre de la restricción violada, si err es una.
	UniqueViolation(err error) (string, bool)

	// Timestamp y Date convierten valores Go al tipo que espera la columna.
	Timestamp(t time.Time) any
	Date(t time.Time) any

	// InsertionOrder es la columna monotónica que ordena los listados por alta.
	InsertionOrder() string
}

type Store struct {
	db      *sql.DB
	dialect Dialect
}

func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Patients() patients.Repository {
	return &patientRepo{s: s}
}

func (s *Store) Genomes() genomes.Repository {
	return &genomeRepo{s: s}
}

func (s *Store) Phenotypes() phenotypes.Repository {
	return &phenotypeRepo{s: s}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) exec(ctx context.Context, q execer, query string, args ...any) (sql.Result, error) {
	return q.ExecContext(ctx, s.dialect.Rebind(query), args...)
}

func (s *Store) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.dialect.Rebind(query), args...)
}

func (s *Store) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, s.dialect.Rebind(query), args...)
}

// conflict traduce violaciones de unicidad a storage.ErrConflict.
func (s *Store) conflict(entity string, err error) error {
	if err == nil {
		return nil
	}
	if name, ok := s.dialect.UniqueViolation(err); ok {
		return storage.Conflict(entity, name)
	}
	return err
}

func (s *Store) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var one int
	err := s.queryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func mustAffect(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.NotFound(entity, id)
	}
	return nil
}

// where arma un WHERE con condiciones AND; vacío si no hay condiciones.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, args ...any) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// timeScanner acepta time.Time (pgx) o texto (SQLite guarda TEXT).
type timeScanner struct {
	dst *time.Time
}

var timeLayouts = []string{
	TimestampLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	DateLayout,
}

const (
	// TimestampLayout tiene ancho fijo para que el orden textual sea cronológico.
	TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"
	DateLayout      = "2006-01-02"
)

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s.dst = time.Time{}
		return nil
	case time.Time:
		*s.dst = v
		return nil
	case []byte:
		return s.parse(string(v))
	case string:
		return s.parse(v)
	default:
		return fmt.Errorf("sqlstore: cannot scan %T into time", src)
	}
}

func (s timeScanner) parse(v string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			*s.dst = t
			return nil
		}
	}
	return fmt.Errorf("sqlstore: unrecognized time %q", v)
}

func scanTime(dst *time.Time) timeScanner {
	return timeScanner{dst: dst}
}
