package postgres

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation es el SQLSTATE de Postgres para UNIQUE.
const uniqueViolation = "23505"

type Dialect struct{}

func (Dialect) Name() string { return "postgres" }

// Rebind convierte "?" en $1..$n. No contempla "?" dentro de literales.
func (Dialect) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (Dialect) UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func (Dialect) Timestamp(t time.Time) any { return t }

// Date: la columna es DATE; pgx trunca la hora.
func (Dialect) Date(t time.Time) any { return t }

// InsertionOrder: columna seq (BIGSERIAL) de la migración 000002.
func (Dialect) InsertionOrder() string { return "seq" }
