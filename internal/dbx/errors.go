package dbx

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// invalidTextRepresentation is raised by Postgres when a key such as a
// UUID cannot be parsed.
const invalidTextRepresentation = "22P02"

// IsNotFound reports whether err means the addressed row cannot exist:
// either no row matched or the key is not a valid value for its column.
func IsNotFound(err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}
