package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"roster/config"
	"roster/internal/delivery/api/validator"
	deliverycontext "roster/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testCookieName = "roster_session"

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{CookieName: testCookieName},
	}
	cfg.Env.Env = "local"

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newContext builds an echo context with the validator installed, optionally
// already authenticated as subject.
func newContext(req *http.Request, subject string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if subject != "" {
		deliverycontext.SetSubject(c, subject)
	}

	return c, rec
}

// decodeData unmarshals the "data" member of a success envelope into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}
