// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"roster/config"
	"roster/internal/delivery/api/response"
	"roster/internal/errors"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// AccountHandler serves registration and login.
type AccountHandler struct {
	accountUC    usecase.AccountUsecase
	cookieName   string
	secureCookie bool
	logger       *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC:    params.AccountUC,
		cookieName:   params.Config.Auth.CookieName,
		secureCookie: params.Config.Env.Env != "" && params.Config.Env.Env != "local",
		logger:       params.Logger,
	}
}

// CredentialsRequest is the body of both signup and login. Form posts use the
// legacy svcNo field name.
type CredentialsRequest struct {
	ServiceNumber string `json:"serviceNumber" form:"svcNo" validate:"required"`
	Password      string `json:"password" form:"password" validate:"required"`
}

// RegisterResponse is returned after a successful signup.
type RegisterResponse struct {
	ServiceNumber string `json:"serviceNumber"`
	Next          string `json:"next"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	ServiceNumber   string    `json:"serviceNumber"`
	ProfileComplete bool      `json:"profileComplete"`
	AccessToken     string    `json:"accessToken"`
	TokenType       string    `json:"tokenType"`
	ExpiresAt       time.Time `json:"expiresAt"`
	Next            string    `json:"next"`
}

// Register handles POST /signup.
func (h *AccountHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		ServiceNumber: req.ServiceNumber,
		Password:      req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{
		ServiceNumber: output.Personnel.ServiceNumber,
		Next:          output.Next,
	})
}

// Login handles POST /login. The token is returned in the body and also set as an
// HttpOnly cookie for browser form flows.
func (h *AccountHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		ServiceNumber: req.ServiceNumber,
		Password:      req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    output.Session.Value,
		Path:     "/",
		Expires:  output.Session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, LoginResponse{
		ServiceNumber:   output.Personnel.ServiceNumber,
		ProfileComplete: output.Personnel.ProfileComplete,
		AccessToken:     output.Session.Value,
		TokenType:       tokenTypeBearer,
		ExpiresAt:       output.Session.ExpiresAt,
		Next:            output.Next,
	})
}
