package impl

import (
	"context"
	"log/slog"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/errors"
	"roster/internal/usecase"

	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	personnelRepo repository.PersonnelRepository
	photos        service.PhotoStorage
	badges        service.BadgeEncoder
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	PersonnelRepo repository.PersonnelRepository
	Photos        service.PhotoStorage
	Badges        service.BadgeEncoder
	Logger        *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		personnelRepo: params.PersonnelRepo,
		photos:        params.Photos,
		badges:        params.Badges,
		logger:        params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProfile sets every profile field and marks the profile complete.
// Submitting the values already stored is reported as ErrProfileNotModified.
func (srv *profileService) CreateProfile(ctx context.Context, input *usecase.CreateProfileInput) (*usecase.ProfileOutput, error) {
	if input == nil || input.ServiceNumber == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("serviceNumber is required")
	}

	result, err := srv.personnelRepo.UpdateProfile(ctx, input.ServiceNumber, input.Profile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	if !result.Matched {
		srv.log(ctx).Warn("Profile update matched no record", slog.String("serviceNumber", input.ServiceNumber))

		return nil, domainerrors.ErrUserNotFound.WrapMessage("profile update failed")
	}
	if !result.Modified {
		srv.log(ctx).Info("Profile update changed nothing", slog.String("serviceNumber", input.ServiceNumber))

		return nil, domainerrors.ErrProfileNotModified.WrapMessage("profile update failed")
	}

	personnel, err := srv.GetProfile(ctx, input.ServiceNumber)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile completed", slog.String("serviceNumber", input.ServiceNumber))

	return &usecase.ProfileOutput{
		Personnel: personnel,
		Next:      usecase.ProfileLink(input.ServiceNumber),
	}, nil
}

// GetProfile returns the full record. Callers only ever expose its public projection.
func (srv *profileService) GetProfile(ctx context.Context, serviceNumber string) (*entity.Personnel, error) {
	if serviceNumber == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("svcNo is required")
	}

	personnel, err := srv.personnelRepo.FindByServiceNumber(ctx, serviceNumber)
	if err != nil {
		if errors.Is(err, repository.ErrPersonnelNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return personnel, nil
}

// UploadPhoto stores the photo and records its key. The record is checked before storing
// so that unknown service numbers never leave files behind.
func (srv *profileService) UploadPhoto(ctx context.Context, upload *service.PhotoUpload) (*usecase.ProfileOutput, error) {
	if upload == nil || upload.Content == nil {
		return nil, domainerrors.ErrUploadRejected.WithDetails("no file was uploaded")
	}
	if upload.ServiceNumber == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("serviceNumber is required")
	}

	current, err := srv.GetProfile(ctx, upload.ServiceNumber)
	if err != nil {
		return nil, err
	}

	key, err := srv.photos.Store(ctx, upload)
	if err != nil {
		srv.log(ctx).Warn("Photo rejected", slog.String("serviceNumber", upload.ServiceNumber), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store photo")
	}

	result, err := srv.personnelRepo.SetPhotoPath(ctx, upload.ServiceNumber, key)
	if err != nil {
		srv.discardPhoto(ctx, key, current.PhotoPath)

		return nil, errors.Wrap(err, "failed to record photo path")
	}
	if !result.Matched {
		// The record is gone, so nothing refers to the key any more.
		srv.discardPhoto(ctx, key, "")

		return nil, domainerrors.ErrUserNotFound.WrapMessage("photo upload failed")
	}

	personnel, err := srv.GetProfile(ctx, upload.ServiceNumber)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Photo stored", slog.String("serviceNumber", upload.ServiceNumber), slog.String("key", key))

	return &usecase.ProfileOutput{
		Personnel: personnel,
		Next:      usecase.ProfileLink(upload.ServiceNumber),
	}, nil
}

// GetBadge renders the identity badge QR code of an existing record.
func (srv *profileService) GetBadge(ctx context.Context, serviceNumber string) ([]byte, error) {
	personnel, err := srv.GetProfile(ctx, serviceNumber)
	if err != nil {
		return nil, err
	}

	png, err := srv.badges.Encode(personnel.ServiceNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode badge")
	}

	return png, nil
}

// discardPhoto removes a blob whose record update did not land. A key equal to the
// record's current path was overwritten in place and still backs that path, so it stays.
// Failure only leaves an orphaned file, so it is logged rather than returned.
func (srv *profileService) discardPhoto(ctx context.Context, key, currentPath string) {
	if key == currentPath {
		srv.log(ctx).Warn("Keeping overwritten photo referenced by the record", slog.String("key", key))

		return
	}

	if err := srv.photos.Delete(context.WithoutCancel(ctx), key); err != nil {
		srv.log(ctx).Error("Failed to remove orphaned photo", slog.String("key", key), slog.Any("error", err))
	}
}
