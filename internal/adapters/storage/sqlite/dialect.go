package sqlite

import (
	"errors"
	"strings"
	"time"

	"genotrack/internal/adapters/storage/sqlstore"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Dialect struct{}

func (Dialect) Name() string { return "sqlite" }

// Rebind: SQLite acepta "?" tal cual.
func (Dialect) Rebind(query string) string { return query }

// UniqueViolation devuelve "tabla.columna" a partir del mensaje del motor.
func (Dialect) UniqueViolation(err error) (string, bool) {
	var sqlErr *sqlite.Error
	if !errors.As(err, &sqlErr) {
		return "", false
	}
	switch sqlErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return constraintName(sqlErr.Error()), true
	}
	return "", false
}

func (Dialect) Timestamp(t time.Time) any {
	return t.UTC().Format(sqlstore.TimestampLayout)
}

func (Dialect) Date(t time.Time) any {
	return t.Format(sqlstore.DateLayout)
}

// InsertionOrder: el rowid implícito crece con cada INSERT.
func (Dialect) InsertionOrder() string { return "rowid" }

func constraintName(msg string) string {
	const marker = "constraint failed: "
	i := strings.LastIndex(msg, marker)
	if i < 0 {
		return "unique"
	}
	name := msg[i+len(marker):]
	if j := strings.Index(name, " ("); j >= 0 {
		name = name[:j]
	}
	return name
}
