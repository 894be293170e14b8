package usecase

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/domain/service"
)

// CreateProfileInput is the full profile submission for one service number.
type CreateProfileInput struct {
	ServiceNumber string
	Profile       entity.Profile
}

// ProfileOutput returns the record after a mutation and where the client goes next.
type ProfileOutput struct {
	Personnel *entity.Personnel
	Next      string
}

// ProfileUsecase covers profile completion, retrieval and the photo.
type ProfileUsecase interface {
	CreateProfile(ctx context.Context, input *CreateProfileInput) (*ProfileOutput, error)
	GetProfile(ctx context.Context, serviceNumber string) (*entity.Personnel, error)
	UploadPhoto(ctx context.Context, upload *service.PhotoUpload) (*ProfileOutput, error)
	GetBadge(ctx context.Context, serviceNumber string) ([]byte, error)
}
