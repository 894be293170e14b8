package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "roster/internal/mocks/repository"
	mockSvc "roster/internal/mocks/service"
	"roster/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service       usecase.AccountUsecase
	personnelRepo *mockRepo.MockPersonnelRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	personnelRepo := mockRepo.NewMockPersonnelRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		PersonnelRepo: personnelRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		Logger:        newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:       service,
		personnelRepo: personnelRepo,
		hasher:        hasher,
		tokenService:  tokenService,
	}
}

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service       usecase.ProfileUsecase
	personnelRepo *mockRepo.MockPersonnelRepository
	photos        *mockSvc.MockPhotoStorage
	badges        *mockSvc.MockBadgeEncoder
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	personnelRepo := mockRepo.NewMockPersonnelRepository(t)
	photos := mockSvc.NewMockPhotoStorage(t)
	badges := mockSvc.NewMockBadgeEncoder(t)

	service := NewProfileService(ProfileServiceParams{
		PersonnelRepo: personnelRepo,
		Photos:        photos,
		Badges:        badges,
		Logger:        newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:       service,
		personnelRepo: personnelRepo,
		photos:        photos,
		badges:        badges,
	}
}
