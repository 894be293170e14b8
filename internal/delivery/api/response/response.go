// Package response renders the JSON envelope every endpoint answers with:
// {"data": ..., "meta": {...}} on success and {"error": {...}, "meta": {...}} on failure.
package response

import (
	"net/http"

	deliverycontext "roster/internal/delivery/context"
	domainerrors "roster/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the success envelope.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo describes one failure.
type ErrorInfo struct {
	Code    string `json:"code"` // stable machine-readable code, e.g. "DUPLICATE_USER"
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo is attached to every envelope.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// exposesDetails is false for server faults and for auth failures, whose details
// would describe credentials or infrastructure.
func exposesDetails(status int) bool {
	switch {
	case status >= http.StatusInternalServerError:
		return false
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return false
	default:
		return true
	}
}

// Success writes data inside the success envelope.
func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes the failure envelope. Details are dropped where exposesDetails says so.
func Error(c echo.Context, status int, code, message string, details any) error {
	info := &ErrorInfo{Code: code, Message: message}
	if exposesDetails(status) {
		info.Details = details
	}

	return c.JSON(status, ErrorResponse{Error: info, Meta: meta(c)})
}

// AppError writes a domain error with its own status, code and details.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// BindingError reports a body or query that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// InternalServerError writes a 500 without details.
func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message, nil)
}
