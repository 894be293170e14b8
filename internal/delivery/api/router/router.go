// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"roster/internal/delivery/api/middleware"
	"roster/internal/delivery/api/router/handler"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// multipartOverhead is the headroom granted on top of the photo cap for form
// boundaries and the text fields sent alongside the file.
const multipartOverhead = 64 << 10

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
	Photos         service.PhotoStorage
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
	photos         service.PhotoStorage
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
		photos:         params.Photos,
	}
}

// UploadBodyLimit is the body size accepted on the photo upload route for a given photo cap.
func UploadBodyLimit(maxPhotoSize int64) string {
	return strconv.FormatInt(maxPhotoSize+multipartOverhead, 10)
}

// IsUploadRequest reports whether the request targets the photo upload route,
// which carries its own body limit.
func IsUploadRequest(c echo.Context) bool {
	return c.Request().URL.Path == usecase.PathUploadPhoto
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Form views
	e.GET(usecase.PathLogin, handler.LoginView)
	e.GET(usecase.PathSignup, handler.SignupView)

	// Account routes
	e.POST(usecase.PathSignup, r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)

	// Profile routes require a session. Attached per route so unknown paths still 404.
	authenticate := r.authMiddleware.Authenticate
	e.POST(usecase.PathCreateProfile, r.profileHandler.CreateProfile, authenticate)
	e.GET(usecase.PathProfile, r.profileHandler.GetProfile, authenticate)
	e.GET(usecase.PathProfile+"/badge", r.profileHandler.GetBadge, authenticate)
	e.POST(usecase.PathUploadPhoto, r.profileHandler.UploadPhoto,
		authenticate, echomiddleware.BodyLimit(UploadBodyLimit(r.photos.MaxSize())))
}
