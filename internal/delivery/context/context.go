// Package context carries per-request values between the echo middleware chain,
// handlers and the use case layer: request ID, request-scoped logger and the
// authenticated service number.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header that carries the request ID in both directions.
const HeaderXRequestID = "X-Request-Id"

type key uint8

const (
	requestIDKey key = iota
	loggerKey
)

// echo.Context keys; echo stores values by string.
const (
	echoRequestID = "request_id"
	echoSubject   = "subject"
)

func valueOf[T any](ctx context.Context, k key) (T, bool) {
	v, ok := ctx.Value(k).(T)

	return v, ok
}

// GetRequestID returns the ID assigned by the request ID middleware. Requests that
// bypassed the middleware fall back to the response header, then to a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestID).(string); ok && id != "" {
		return id
	}
	if id := c.Response().Header().Get(HeaderXRequestID); id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID records the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestID, requestID)
}

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns the request ID stored by WithRequestID, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := valueOf[string](ctx, requestIDKey)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := valueOf[*slog.Logger](ctx, loggerKey)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetSubject records the service number proven by the session token.
func SetSubject(c echo.Context, serviceNumber string) {
	c.Set(echoSubject, serviceNumber)
}

// GetSubject returns the authenticated service number, if any.
func GetSubject(c echo.Context) (string, bool) {
	serviceNumber, ok := c.Get(echoSubject).(string)

	return serviceNumber, ok && serviceNumber != ""
}
