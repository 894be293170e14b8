package validator

import (
	"testing"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	ServiceNumber string `json:"serviceNumber" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signup{ServiceNumber: "12345", Password: "abc123"}))

	err := v.Validate(&signup{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	ve, ok := errors.AsType[*ValidationError](err)
	require.True(t, ok)
	assert.Equal(t, []FieldError{
		{Field: "serviceNumber", Rule: "required"},
		{Field: "password", Rule: "required"},
	}, ve.Fields)
	assert.Equal(t, "serviceNumber (required), password (required)", ve.Details())

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestCustomValidator_NonStruct(t *testing.T) {
	err := New().Validate("not a struct")
	require.Error(t, err)
	_, ok := errors.AsType[*ValidationError](err)
	assert.False(t, ok)
}
