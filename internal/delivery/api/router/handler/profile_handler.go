package handler

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"roster/internal/delivery/api/middleware"
	"roster/internal/delivery/api/response"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"
	"roster/internal/errors"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PhotoField is the multipart field carrying the uploaded photo.
const PhotoField = "profilePhoto"

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves profile completion, retrieval, the photo and the badge.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// CreateProfileRequest carries the full profile. JSON uses camelCase names, form posts
// keep the lower-case field names of the original HTML form.
type CreateProfileRequest struct {
	ServiceNumber       string `json:"serviceNumber" form:"svcNo"`
	FirstName           string `json:"firstName" form:"firstname"`
	MiddleName          string `json:"middleName" form:"middlename"`
	Surname             string `json:"surname" form:"surname"`
	ServiceName         string `json:"serviceName" form:"svcname"`
	RateRank            string `json:"rateRank" form:"raterank"`
	DateOfBirth         string `json:"dateOfBirth" form:"dob"`
	BloodGroup          string `json:"bloodGroup" form:"bloodgroup"`
	MaritalStatus       string `json:"maritalStatus" form:"maritalstatus"`
	Gender              string `json:"gender" form:"gender"`
	Email               string `json:"email" form:"email"`
	Phone               string `json:"phone" form:"phone"`
	CurrentShip         string `json:"currentShip" form:"currentship"`
	Specialization      string `json:"specialization" form:"specialization"`
	Branch              string `json:"branch" form:"branch"`
	YearOfCommissioning string `json:"yearOfCommissioning" form:"yrcommissioning"`
	Course              string `json:"course" form:"course"`
}

func (r *CreateProfileRequest) profile() entity.Profile {
	return entity.Profile{
		FirstName:           r.FirstName,
		MiddleName:          r.MiddleName,
		Surname:             r.Surname,
		ServiceName:         r.ServiceName,
		RateRank:            r.RateRank,
		DateOfBirth:         r.DateOfBirth,
		BloodGroup:          r.BloodGroup,
		MaritalStatus:       r.MaritalStatus,
		Gender:              r.Gender,
		Email:               r.Email,
		Phone:               r.Phone,
		CurrentShip:         r.CurrentShip,
		Specialization:      r.Specialization,
		Branch:              r.Branch,
		YearOfCommissioning: r.YearOfCommissioning,
		Course:              r.Course,
	}
}

// ProfileResponse wraps the public projection; the password hash has no field here.
type ProfileResponse struct {
	Profile *entity.PublicProfile `json:"profile"`
	Next    string                `json:"next,omitempty"`
}

// CreateProfile handles POST /create-profile.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	serviceNumber, err := middleware.AuthorizeServiceNumber(c, req.ServiceNumber)
	if err != nil {
		return err
	}

	output, err := h.profileUC.CreateProfile(c.Request().Context(), &usecase.CreateProfileInput{
		ServiceNumber: serviceNumber,
		Profile:       req.profile(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		Profile: output.Personnel.Public(),
		Next:    output.Next,
	})
}

// GetProfile handles GET /profile?svcNo=. Without svcNo the caller's own profile is returned.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	serviceNumber, err := middleware.AuthorizeServiceNumber(c, c.QueryParam("svcNo"))
	if err != nil {
		return err
	}

	personnel, err := h.profileUC.GetProfile(c.Request().Context(), serviceNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{Profile: personnel.Public()})
}

// GetBadge handles GET /profile/badge?svcNo= and returns a PNG QR code.
func (h *ProfileHandler) GetBadge(c echo.Context) error {
	serviceNumber, err := middleware.AuthorizeServiceNumber(c, c.QueryParam("svcNo"))
	if err != nil {
		return err
	}

	png, err := h.profileUC.GetBadge(c.Request().Context(), serviceNumber)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", serviceNumber+"-badge.png"))

	return c.Blob(http.StatusOK, "image/png", png)
}

// UploadPhoto handles POST /upload-photo (multipart: profilePhoto + serviceNumber or svcNo).
func (h *ProfileHandler) UploadPhoto(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return uploadFormError(err)
	}

	serviceNumber, err := middleware.AuthorizeServiceNumber(c, firstFormValue(form, "serviceNumber", "svcNo"))
	if err != nil {
		return err
	}

	files := form.File[PhotoField]
	if len(files) == 0 {
		return domainerrors.ErrUploadRejected.WithDetails("no file was uploaded")
	}

	fileHeader := files[0]
	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded photo")
	}
	defer file.Close()

	output, err := h.profileUC.UploadPhoto(c.Request().Context(), &service.PhotoUpload{
		ServiceNumber:    serviceNumber,
		OriginalFilename: fileHeader.Filename,
		ContentType:      fileHeader.Header.Get(echo.HeaderContentType),
		Size:             fileHeader.Size,
		Content:          file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		Profile: output.Personnel.Public(),
		Next:    output.Next,
	})
}

// uploadFormError classifies a failed multipart parse.
func uploadFormError(err error) error {
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok && httpErr.Code == http.StatusRequestEntityTooLarge {
		return domainerrors.ErrUploadRejected.
			WithHTTPCode(http.StatusRequestEntityTooLarge).
			WithDetails("request body exceeds the upload limit")
	}
	if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
		return domainerrors.ErrUploadRejected.WithDetails("no file was uploaded")
	}

	return domainerrors.ErrUploadRejected.WithDetails("malformed multipart body")
}

func firstFormValue(form *multipart.Form, names ...string) string {
	for _, name := range names {
		if values := form.Value[name]; len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}

	return ""
}
