// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"roster/internal/domain/entity"
)

// ErrPersonnelNotFound is returned by lookups when no record has the requested service number.
var ErrPersonnelNotFound = errors.New("personnel not found")

// UpdateResult reports how a conditional single-record update went.
// Matched without Modified means the record already held the submitted values.
type UpdateResult struct {
	Matched  bool
	Modified bool
}

// PersonnelRepository is the credential store: a single collection keyed by service number.
type PersonnelRepository interface {
	// FindByServiceNumber returns ErrPersonnelNotFound when no record matches.
	FindByServiceNumber(ctx context.Context, serviceNumber string) (*entity.Personnel, error)

	// Create inserts a new record. A service number collision, including one lost in a
	// concurrent race, surfaces as domain ErrDuplicateUser from the store's unique index.
	Create(ctx context.Context, personnel *entity.Personnel) error

	// UpdateProfile sets every profile field and marks the profile complete in one atomic
	// statement. The statement only touches the row when a value actually changes.
	UpdateProfile(ctx context.Context, serviceNumber string, profile entity.Profile) (UpdateResult, error)

	// SetPhotoPath atomically stores the photo reference. Re-setting the same path still
	// counts as modified so retries are idempotent.
	SetPhotoPath(ctx context.Context, serviceNumber, photoPath string) (UpdateResult, error)
}
