package handler

import (
	"net/http"

	"roster/internal/delivery/api/response"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FormView tells a client which form to show and where to submit it.
type FormView struct {
	View   string   `json:"view"`
	Action string   `json:"action"`
	Method string   `json:"method"`
	Fields []string `json:"fields"`
	Links  []string `json:"links,omitempty"`
}

var (
	loginView = FormView{
		View:   "login",
		Action: "/login",
		Method: http.MethodPost,
		Fields: []string{"serviceNumber", "password"},
		Links:  []string{usecase.PathSignup},
	}

	signupView = FormView{
		View:   "signup",
		Action: usecase.PathSignup,
		Method: http.MethodPost,
		Fields: []string{"serviceNumber", "password"},
		Links:  []string{usecase.PathLogin},
	}
)

// LoginView describes the login form.
func LoginView(c echo.Context) error {
	return response.Success(c, http.StatusOK, loginView)
}

// SignupView describes the registration form.
func SignupView(c echo.Context) error {
	return response.Success(c, http.StatusOK, signupView)
}
