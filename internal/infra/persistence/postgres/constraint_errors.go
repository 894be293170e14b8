package postgres

import (
	"database/sql"
	"strings"

	"roster/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes this package reacts to.
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

// isUniqueConstraintViolation recognises a duplicate key either as GORM's translated
// error or as the raw pgx error, since the connection is built without TranslateError.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code == pgNotNullViolation
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgNotNullViolation)
}

// isConnectionFailure reports driver errors meaning the store could not be reached at all.
func isConnectionFailure(err error) bool {
	if errors.IsAny(err, sql.ErrConnDone, gorm.ErrInvalidDB, gorm.ErrInvalidTransaction) {
		return true
	}

	var connectErr *pgconn.ConnectError

	return errors.As(err, &connectErr)
}
