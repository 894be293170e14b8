package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"roster/config"
	deliverycontext "roster/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// quietPaths are polled by probes and never access-logged.
var quietPaths = map[string]struct{}{
	"/health": {},
}

// LoggerMiddleware writes one access log line per request when debug is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle runs the handler and, in debug mode, logs the outcome. Errors are committed
// through the HTTP error handler first so that the logged status is the one sent.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}
		if _, quiet := quietPaths[c.Request().URL.Path]; quiet {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		ctx := c.Request().Context()
		status := c.Response().Status
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).
			LogAttrs(ctx, levelForStatus(status), "HTTP Request", accessAttrs(c, status, time.Since(start), err)...)

		return nil
	}
}

func accessAttrs(c echo.Context, status int, latency time.Duration, err error) []slog.Attr {
	req := c.Request()

	attrs := make([]slog.Attr, 0, 9)
	attrs = append(attrs,
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.Int64("bytes_in", req.ContentLength),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
	)
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if subject, ok := deliverycontext.GetSubject(c); ok {
		attrs = append(attrs, slog.String("subject", subject))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	return attrs
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
