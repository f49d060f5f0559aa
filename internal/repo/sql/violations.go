package sql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// see https://www.postgresql.org/docs/14/errcodes-appendix.html
const pgUniqueViolationCode = "23505"

func isUniqueConstraint(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode
	}

	return false
}
