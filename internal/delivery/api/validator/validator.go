// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "roster/internal/domain/errors"
	"roster/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError carries every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Details()
}

// HTTPCode implements domainerrors.AppError.
func (e *ValidationError) HTTPCode() int {
	return domainerrors.ErrValidationFailed.HTTPCode()
}

// ErrorCode implements domainerrors.AppError.
func (e *ValidationError) ErrorCode() string {
	return domainerrors.ErrValidationFailed.ErrorCode()
}

// Message implements domainerrors.AppError.
func (e *ValidationError) Message() string {
	return domainerrors.ErrValidationFailed.Message()
}

// Details lists the rejected fields as "field (rule)".
func (e *ValidationError) Details() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field+" ("+f.Rule+")")
	}

	return strings.Join(names, ", ")
}

// Is lets callers match validation failures against the domain catalogue.
func (e *ValidationError) Is(target error) bool {
	return errors.Is(domainerrors.ErrValidationFailed, target)
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New reports fields by their json name so messages match the request payload.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate runs struct validation and converts failures into a ValidationError.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "validate request")
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(validationErrs))}
	for _, fe := range validationErrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}

	return out
}
