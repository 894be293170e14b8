package postgres

import (
	"context"
	"strings"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"
	"roster/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// profileColumns is the fixed column order used by UpdateProfile; profileValues must match it.
var profileColumns = []string{
	"first_name",
	"middle_name",
	"surname",
	"service_name",
	"rate_rank",
	"date_of_birth",
	"blood_group",
	"marital_status",
	"gender",
	"email",
	"phone",
	"current_ship",
	"specialization",
	"branch",
	"year_of_commissioning",
	"course",
}

// profileChangedCondition only matches a row when at least one submitted value differs,
// which yields "matched but not modified" semantics from RowsAffected.
var profileChangedCondition = "(profile_complete, " + strings.Join(profileColumns, ", ") +
	") IS DISTINCT FROM (TRUE" + strings.Repeat(", ?", len(profileColumns)) + ")"

type personnelRepository struct {
	db *gorm.DB
}

// NewPersonnelRepository creates a GORM-backed personnel repository.
func NewPersonnelRepository(db *gorm.DB) repository.PersonnelRepository {
	return &personnelRepository{db: db}
}

// FindByServiceNumber retrieves a record by its service number.
func (r *personnelRepository) FindByServiceNumber(ctx context.Context, serviceNumber string) (*entity.Personnel, error) {
	var m model.PersonnelModel
	err := r.db.WithContext(ctx).Where("service_number = ?", serviceNumber).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonnelNotFound
		}

		return nil, translateStoreError(err, "find personnel by service number")
	}

	return toPersonnelDomain(&m), nil
}

// Create inserts a new record and fills back the generated ID and timestamps.
func (r *personnelRepository) Create(ctx context.Context, personnel *entity.Personnel) error {
	m := fromPersonnelDomain(personnel)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateUser.WrapMessage("service number already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("required personnel field is missing")
		}

		return translateStoreError(err, "create personnel")
	}

	personnel.ID = m.ID
	personnel.CreatedAt = m.CreatedAt
	personnel.UpdatedAt = m.UpdatedAt

	return nil
}

// UpdateProfile writes every profile field and the completion flag in one statement.
func (r *personnelRepository) UpdateProfile(ctx context.Context, serviceNumber string, profile entity.Profile) (repository.UpdateResult, error) {
	values := profileValues(profile)

	updates := make(map[string]any, len(profileColumns)+1)
	for i, column := range profileColumns {
		updates[column] = values[i]
	}
	updates["profile_complete"] = true

	result := r.db.WithContext(ctx).
		Model(&model.PersonnelModel{}).
		Where("service_number = ?", serviceNumber).
		Where(profileChangedCondition, values...).
		Updates(updates)
	if result.Error != nil {
		return repository.UpdateResult{}, translateStoreError(result.Error, "update personnel profile")
	}

	if result.RowsAffected > 0 {
		return repository.UpdateResult{Matched: true, Modified: true}, nil
	}

	exists, err := r.exists(ctx, serviceNumber)
	if err != nil {
		return repository.UpdateResult{}, err
	}

	return repository.UpdateResult{Matched: exists}, nil
}

// SetPhotoPath stores the photo key. updated_at always moves, so a matched row is a modified row.
func (r *personnelRepository) SetPhotoPath(ctx context.Context, serviceNumber, photoPath string) (repository.UpdateResult, error) {
	result := r.db.WithContext(ctx).
		Model(&model.PersonnelModel{}).
		Where("service_number = ?", serviceNumber).
		Updates(map[string]any{"photo_path": photoPath})
	if result.Error != nil {
		return repository.UpdateResult{}, translateStoreError(result.Error, "set personnel photo path")
	}

	matched := result.RowsAffected > 0

	return repository.UpdateResult{Matched: matched, Modified: matched}, nil
}

func (r *personnelRepository) exists(ctx context.Context, serviceNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PersonnelModel{}).
		Where("service_number = ?", serviceNumber).
		Count(&count).Error
	if err != nil {
		return false, translateStoreError(err, "count personnel by service number")
	}

	return count > 0, nil
}

// translateStoreError maps driver failures to domain errors.
func translateStoreError(err error, operation string) error {
	if isConnectionFailure(err) {
		return errors.Wrap(domainerrors.ErrStoreUnavailable.WithDetails(err.Error()), operation)
	}

	return domainerrors.NewDatabaseExecuteError(err, operation)
}

func profileValues(p entity.Profile) []any {
	return []any{
		p.FirstName,
		p.MiddleName,
		p.Surname,
		p.ServiceName,
		p.RateRank,
		p.DateOfBirth,
		p.BloodGroup,
		p.MaritalStatus,
		p.Gender,
		p.Email,
		p.Phone,
		p.CurrentShip,
		p.Specialization,
		p.Branch,
		p.YearOfCommissioning,
		p.Course,
	}
}

func toPersonnelDomain(m *model.PersonnelModel) *entity.Personnel {
	return &entity.Personnel{
		ID:              m.ID,
		ServiceNumber:   m.ServiceNumber,
		PasswordHash:    m.PasswordHash,
		ProfileComplete: m.ProfileComplete,
		Profile: entity.Profile{
			FirstName:           m.FirstName,
			MiddleName:          m.MiddleName,
			Surname:             m.Surname,
			ServiceName:         m.ServiceName,
			RateRank:            m.RateRank,
			DateOfBirth:         m.DateOfBirth,
			BloodGroup:          m.BloodGroup,
			MaritalStatus:       m.MaritalStatus,
			Gender:              m.Gender,
			Email:               m.Email,
			Phone:               m.Phone,
			CurrentShip:         m.CurrentShip,
			Specialization:      m.Specialization,
			Branch:              m.Branch,
			YearOfCommissioning: m.YearOfCommissioning,
			Course:              m.Course,
		},
		PhotoPath: m.PhotoPath,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromPersonnelDomain(p *entity.Personnel) *model.PersonnelModel {
	return &model.PersonnelModel{
		ID:                  p.ID,
		ServiceNumber:       p.ServiceNumber,
		PasswordHash:        p.PasswordHash,
		ProfileComplete:     p.ProfileComplete,
		FirstName:           p.Profile.FirstName,
		MiddleName:          p.Profile.MiddleName,
		Surname:             p.Profile.Surname,
		ServiceName:         p.Profile.ServiceName,
		RateRank:            p.Profile.RateRank,
		DateOfBirth:         p.Profile.DateOfBirth,
		BloodGroup:          p.Profile.BloodGroup,
		MaritalStatus:       p.Profile.MaritalStatus,
		Gender:              p.Profile.Gender,
		Email:               p.Profile.Email,
		Phone:               p.Profile.Phone,
		CurrentShip:         p.Profile.CurrentShip,
		Specialization:      p.Profile.Specialization,
		Branch:              p.Profile.Branch,
		YearOfCommissioning: p.Profile.YearOfCommissioning,
		Course:              p.Profile.Course,
		PhotoPath:           p.PhotoPath,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
