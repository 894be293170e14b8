// Package impl contains the implementation of the application's business logic.
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	personnelRepo repository.PersonnelRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	logger        *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	PersonnelRepo repository.PersonnelRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	Logger        *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		personnelRepo: params.PersonnelRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a record holding only the service number and the password hash.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.ServiceNumber == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("serviceNumber and password are required")
	}

	srv.log(ctx).Debug("Starting registration", slog.String("serviceNumber", input.ServiceNumber))

	_, err := srv.personnelRepo.FindByServiceNumber(ctx, input.ServiceNumber)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Registration rejected, service number taken", slog.String("serviceNumber", input.ServiceNumber))

		return nil, domainerrors.ErrDuplicateUser.WrapMessage("registration failed")
	case !errors.Is(err, repository.ErrPersonnelNotFound):
		return nil, errors.Wrap(err, "failed to look up service number")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if errors.Is(err, domainerrors.ErrValidationFailed) {
		srv.log(ctx).Warn("Registration rejected, password not accepted", slog.String("serviceNumber", input.ServiceNumber))

		return nil, err
	}
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	personnel := &entity.Personnel{
		ServiceNumber: input.ServiceNumber,
		PasswordHash:  hash,
	}

	// A concurrent registration that slipped past the lookup loses on the unique index here.
	if err := srv.personnelRepo.Create(ctx, personnel); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateUser) {
			srv.log(ctx).Warn("Registration lost a duplicate race", slog.String("serviceNumber", input.ServiceNumber))
		}

		return nil, errors.Wrap(err, "failed to create personnel record")
	}

	srv.log(ctx).Info("Personnel registered", slog.String("serviceNumber", personnel.ServiceNumber), slog.Any("id", personnel.ID))

	return &usecase.RegisterOutput{
		Personnel: personnel,
		Next:      usecase.PathCreateProfile,
	}, nil
}

// Login verifies the password and issues a session token. The next link branches on
// whether the profile has been completed.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.ServiceNumber == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("serviceNumber and password are required")
	}

	srv.log(ctx).Debug("Starting login", slog.String("serviceNumber", input.ServiceNumber))

	personnel, err := srv.personnelRepo.FindByServiceNumber(ctx, input.ServiceNumber)
	if err != nil {
		if errors.Is(err, repository.ErrPersonnelNotFound) {
			srv.log(ctx).Warn("Login failed, unknown service number", slog.String("serviceNumber", input.ServiceNumber))

			return nil, domainerrors.ErrUnknownUser.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load personnel for login")
	}

	if !srv.hasher.Check(input.Password, personnel.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("serviceNumber", input.ServiceNumber))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	session, err := srv.tokenService.Issue(personnel.ServiceNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	next := usecase.PathCreateProfile
	if personnel.ProfileComplete {
		next = usecase.ProfileLink(personnel.ServiceNumber)
	}

	srv.log(ctx).Debug("Login succeeded", slog.String("serviceNumber", personnel.ServiceNumber), slog.String("next", next))

	return &usecase.LoginOutput{
		Personnel: personnel,
		Session:   session,
		Next:      next,
	}, nil
}
