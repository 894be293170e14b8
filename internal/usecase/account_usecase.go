// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"net/url"

	"roster/internal/domain/entity"
	"roster/internal/domain/service"
)

// Navigation targets handed back to clients in place of server-side redirects.
const (
	PathLogin         = "/"
	PathSignup        = "/signup"
	PathCreateProfile = "/create-profile"
	PathProfile       = "/profile"
	PathUploadPhoto   = "/upload-photo"
)

// ProfileLink is the retrieval link for one service number.
func ProfileLink(serviceNumber string) string {
	return PathProfile + "?svcNo=" + url.QueryEscape(serviceNumber)
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a service member.
type RegisterInput struct {
	ServiceNumber string
	Password      string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	ServiceNumber string
	Password      string
}

// --- Output DTOs ---

// RegisterOutput returns the created record and where the client goes next.
type RegisterOutput struct {
	Personnel *entity.Personnel
	Next      string
}

// LoginOutput carries the issued session and the login branch taken.
type LoginOutput struct {
	Personnel *entity.Personnel
	Session   *service.SessionToken
	Next      string
}

// AccountUsecase covers the credential side: registration and login.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
