package postgres

import (
	"database/sql"
	"testing"

	"roster/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("duplicate-ish")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "password_hash"`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("syntax error")))
}

func TestIsConnectionFailure(t *testing.T) {
	assert.True(t, isConnectionFailure(gorm.ErrInvalidDB))
	assert.True(t, isConnectionFailure(errors.Wrap(sql.ErrConnDone, "query")))
	assert.False(t, isConnectionFailure(errors.New("boom")))
}
