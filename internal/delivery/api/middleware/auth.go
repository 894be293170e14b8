package middleware

import (
	"log/slog"
	"strings"

	"roster/config"
	deliverycontext "roster/internal/delivery/context"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Config       *config.Config
}

// AuthMiddleware turns a session token into the authenticated service number.
type AuthMiddleware struct {
	tokenService service.TokenService
	cookieName   string
}

// NewAuthMiddleware creates the session check middleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
		cookieName:   params.Config.Auth.CookieName,
	}
}

// Authenticate accepts "Authorization: Bearer <token>" or the session cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.extractToken(c)
		if token == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("missing session token")
		}

		claims, err := m.tokenService.Validate(token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).
				Debug("Rejected session token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized.WrapMessage("invalid session token")
		}

		deliverycontext.SetSubject(c, claims.ServiceNumber)

		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("subject", claims.ServiceNumber)))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	if cookie, err := c.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// AuthorizeServiceNumber resolves which record the request acts on. An empty request
// value means the caller's own record; any other service number is forbidden.
func AuthorizeServiceNumber(c echo.Context, requested string) (string, error) {
	subject, ok := deliverycontext.GetSubject(c)
	if !ok {
		return "", domainerrors.ErrUnauthorized.WrapMessage("no authenticated subject")
	}

	if requested != "" && requested != subject {
		return "", domainerrors.ErrForbidden.WrapMessage("service number mismatch")
	}

	return subject, nil
}
