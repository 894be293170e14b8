package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"
	"roster/internal/errors"
	mockUsecase "roster/internal/mocks/usecase"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)

	return NewProfileHandler(ProfileHandlerParams{
		ProfileUC: profileUC,
		Logger:    discardLogger(),
	}), profileUC
}

func completePersonnel() *entity.Personnel {
	return &entity.Personnel{
		ServiceNumber:   "12345",
		PasswordHash:    "$2a$10$do-not-leak",
		ProfileComplete: true,
		Profile:         entity.Profile{FirstName: "Ada", Surname: "Okafor", Email: "ada@navy.example"},
	}
}

func multipartBody(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile(PhotoField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestProfileHandler_CreateProfileJSON(t *testing.T) {
	h, profileUC := newProfileHandler(t)

	profileUC.EXPECT().
		CreateProfile(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProfileInput) bool {
			return in.ServiceNumber == "12345" && in.Profile.FirstName == "Ada" && in.Profile.Course == "SWO"
		})).
		Return(&usecase.ProfileOutput{Personnel: completePersonnel(), Next: usecase.ProfileLink("12345")}, nil).
		Once()

	body := `{"serviceNumber":"12345","firstName":"Ada","surname":"Okafor","course":"SWO"}`
	req := httptest.NewRequest(http.MethodPost, "/create-profile", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newContext(req, "12345")

	require.NoError(t, h.CreateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "do-not-leak")

	var resp ProfileResponse
	decodeData(t, rec, &resp)
	require.NotNil(t, resp.Profile)
	assert.True(t, resp.Profile.ProfileComplete)
	assert.Equal(t, "/profile?svcNo=12345", resp.Next)
}

func TestProfileHandler_CreateProfileLegacyFormNames(t *testing.T) {
	h, profileUC := newProfileHandler(t)

	profileUC.EXPECT().
		CreateProfile(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProfileInput) bool {
			p := in.Profile

			return in.ServiceNumber == "12345" &&
				p.ServiceName == "NN" &&
				p.RateRank == "Lt" &&
				p.DateOfBirth == "1990-01-01" &&
				p.YearOfCommissioning == "2012"
		})).
		Return(&usecase.ProfileOutput{Personnel: completePersonnel(), Next: usecase.ProfileLink("12345")}, nil).
		Once()

	form := url.Values{
		"svcNo":           {"12345"},
		"svcname":         {"NN"},
		"raterank":        {"Lt"},
		"dob":             {"1990-01-01"},
		"yrcommissioning": {"2012"},
	}
	req := httptest.NewRequest(http.MethodPost, "/create-profile", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c, rec := newContext(req, "12345")

	require.NoError(t, h.CreateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_CreateProfileForOtherServiceNumber(t *testing.T) {
	h, _ := newProfileHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/create-profile", strings.NewReader(`{"serviceNumber":"99999"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newContext(req, "12345")

	err := h.CreateProfile(c)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestProfileHandler_CreateProfileNotModified(t *testing.T) {
	h, profileUC := newProfileHandler(t)

	profileUC.EXPECT().CreateProfile(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrProfileNotModified).Once()

	req := httptest.NewRequest(http.MethodPost, "/create-profile", strings.NewReader(`{"firstName":"Ada"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newContext(req, "12345")

	err := h.CreateProfile(c)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotModified))
}

func TestProfileHandler_GetProfile(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "explicit service number", query: "?svcNo=12345"},
		{name: "defaults to caller", query: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, profileUC := newProfileHandler(t)
			profileUC.EXPECT().GetProfile(mock.Anything, "12345").Return(completePersonnel(), nil).Once()

			req := httptest.NewRequest(http.MethodGet, "/profile"+tt.query, nil)
			c, rec := newContext(req, "12345")

			require.NoError(t, h.GetProfile(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotContains(t, rec.Body.String(), "do-not-leak")
			assert.NotContains(t, rec.Body.String(), "passwordHash")

			var resp ProfileResponse
			decodeData(t, rec, &resp)
			assert.Equal(t, "Ada", resp.Profile.Profile.FirstName)
		})
	}
}

func TestProfileHandler_GetProfileUnauthenticated(t *testing.T) {
	h, _ := newProfileHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/profile?svcNo=12345", nil)
	c, _ := newContext(req, "")

	err := h.GetProfile(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestProfileHandler_GetProfileNotFound(t *testing.T) {
	h, profileUC := newProfileHandler(t)
	profileUC.EXPECT().GetProfile(mock.Anything, "12345").Return(nil, domainerrors.ErrUserNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	c, _ := newContext(req, "12345")

	err := h.GetProfile(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileHandler_GetBadge(t *testing.T) {
	h, profileUC := newProfileHandler(t)
	png := []byte("\x89PNG\r\n\x1a\nfake")
	profileUC.EXPECT().GetBadge(mock.Anything, "12345").Return(png, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/profile/badge", nil)
	c, rec := newContext(req, "12345")

	require.NoError(t, h.GetBadge(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "12345-badge.png")
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestProfileHandler_UploadPhoto(t *testing.T) {
	h, profileUC := newProfileHandler(t)
	content := []byte("\x89PNG\r\n\x1a\nimage-bytes")

	var received []byte
	profileUC.EXPECT().
		UploadPhoto(mock.Anything, mock.MatchedBy(func(up *service.PhotoUpload) bool {
			return up.ServiceNumber == "12345" &&
				up.OriginalFilename == "me.png" &&
				up.Size == int64(len(content))
		})).
		Run(func(_ context.Context, up *service.PhotoUpload) {
			received, _ = io.ReadAll(up.Content)
		}).
		Return(&usecase.ProfileOutput{
			Personnel: &entity.Personnel{ServiceNumber: "12345", PhotoPath: "uploads/12345.png"},
			Next:      usecase.ProfileLink("12345"),
		}, nil).
		Once()

	body, contentType := multipartBody(t, map[string]string{"svcNo": "12345"}, "me.png", content)
	req := httptest.NewRequest(http.MethodPost, "/upload-photo", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, rec := newContext(req, "12345")

	require.NoError(t, h.UploadPhoto(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ProfileResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, "uploads/12345.png", resp.Profile.PhotoPath)
	assert.Equal(t, content, received)
}

func TestProfileHandler_UploadPhotoWithoutFile(t *testing.T) {
	h, _ := newProfileHandler(t)

	body, contentType := multipartBody(t, map[string]string{"serviceNumber": "12345"}, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/upload-photo", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, _ := newContext(req, "12345")

	err := h.UploadPhoto(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadRejected))
	assert.Contains(t, err.Error(), "no file was uploaded")
}

func TestProfileHandler_UploadPhotoNotMultipart(t *testing.T) {
	h, _ := newProfileHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/upload-photo", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, _ := newContext(req, "12345")

	err := h.UploadPhoto(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadRejected))
}

func TestProfileHandler_UploadPhotoForOtherServiceNumber(t *testing.T) {
	h, _ := newProfileHandler(t)

	body, contentType := multipartBody(t, map[string]string{"svcNo": "99999"}, "me.png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/upload-photo", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	c, _ := newContext(req, "12345")

	err := h.UploadPhoto(c)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUploadFormError(t *testing.T) {
	tooLarge := uploadFormError(echo.ErrStatusRequestEntityTooLarge)
	appErr, ok := errors.AsType[domainerrors.AppError](tooLarge)
	require.True(t, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, appErr.HTTPCode())
	assert.True(t, errors.Is(tooLarge, domainerrors.ErrUploadRejected))

	notMultipart := uploadFormError(http.ErrNotMultipart)
	appErr, ok = errors.AsType[domainerrors.AppError](notMultipart)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "no file was uploaded", appErr.Details())
}
