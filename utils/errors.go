package utils

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error class 23: integrity constraint violation
const pgForeignKeyViolation = "23503"

// IsForeignKeyViolation reports whether err is the database refusing a write
// because another row still references the target. Handlers map this to a
// 409 "in use" response instead of a generic 500.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	// sqlite surfaces the same condition as a plain-text constraint error.
	return strings.Contains(strings.ToUpper(err.Error()), "FOREIGN KEY")
}
