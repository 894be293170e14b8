package postgres

import (
	"context"
	"testing"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRepoWithMock(t *testing.T) (repository.PersonnelRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return NewPersonnelRepository(db), mock
}

func sampleProfile() entity.Profile {
	return entity.Profile{
		FirstName:   "Ada",
		Surname:     "Obi",
		ServiceName: "Navy",
		RateRank:    "Lieutenant",
		Email:       "ada@example.com",
		Course:      "Regular 65",
	}
}

func TestPersonnelRepository_FindByServiceNumber_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	id := uuid.New()
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "service_number", "password_hash", "profile_complete", "first_name", "surname", "photo_path", "created_at", "updated_at",
	}).AddRow(id.String(), "12345", "$2a$10$hash", true, "Ada", "Obi", "uploads/12345.jpg", now, now)

	mock.ExpectQuery(`SELECT \* FROM "personnel" WHERE service_number = \$1`).WillReturnRows(rows)

	got, err := repo.FindByServiceNumber(context.Background(), "12345")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "12345", got.ServiceNumber)
	assert.Equal(t, "$2a$10$hash", got.PasswordHash)
	assert.True(t, got.ProfileComplete)
	assert.Equal(t, "Ada", got.Profile.FirstName)
	assert.Equal(t, "Obi", got.Profile.Surname)
	assert.Equal(t, "uploads/12345.jpg", got.PhotoPath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonnelRepository_FindByServiceNumber_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT \* FROM "personnel" WHERE service_number = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_number"}))

	got, err := repo.FindByServiceNumber(context.Background(), "99999")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrPersonnelNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonnelRepository_FindByServiceNumber_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT \* FROM "personnel"`).WillReturnError(errors.New("boom"))

	_, err := repo.FindByServiceNumber(context.Background(), "12345")
	require.Error(t, err)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.NotErrorIs(t, err, repository.ErrPersonnelNotFound)
}

func TestPersonnelRepository_FindByServiceNumber_ConnectionDown(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT \* FROM "personnel"`).WillReturnError(gorm.ErrInvalidDB)

	_, err := repo.FindByServiceNumber(context.Background(), "12345")
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestPersonnelRepository_Create_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO "personnel"`).WillReturnResult(sqlmock.NewResult(0, 1))

	p := &entity.Personnel{ServiceNumber: "12345", PasswordHash: "$2a$10$hash"}
	err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.False(t, p.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonnelRepository_Create_KeepsProvidedID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO "personnel"`).WillReturnResult(sqlmock.NewResult(0, 1))

	id := uuid.New()
	p := &entity.Personnel{ID: id, ServiceNumber: "12345", PasswordHash: "$2a$10$hash"}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, id, p.ID)
}

func TestPersonnelRepository_Create_Duplicate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO "personnel"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_personnel_service_number"})

	err := repo.Create(context.Background(), &entity.Personnel{ServiceNumber: "12345", PasswordHash: "h"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUser)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonnelRepository_Create_NotNull(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO "personnel"`).
		WillReturnError(&pgconn.PgError{Code: pgNotNullViolation})

	err := repo.Create(context.Background(), &entity.Personnel{ServiceNumber: "12345"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPersonnelRepository_UpdateProfile_Modified(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE "personnel" SET .*"profile_complete".* WHERE service_number = .* IS DISTINCT FROM`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := repo.UpdateProfile(context.Background(), "12345", sampleProfile())
	require.NoError(t, err)
	assert.Equal(t, repository.UpdateResult{Matched: true, Modified: true}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonnelRepository_UpdateProfile_SameValues(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE "personnel"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "personnel" WHERE service_number = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	res, err := repo.UpdateProfile(context.Background(), "12345", sampleProfile())
	require.NoError(t, err)
	assert.Equal(t, repository.UpdateResult{Matched: true, Modified: false}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonnelRepository_UpdateProfile_NoRecord(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE "personnel"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "personnel"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	res, err := repo.UpdateProfile(context.Background(), "99999", sampleProfile())
	require.NoError(t, err)
	assert.Equal(t, repository.UpdateResult{}, res)
}

func TestPersonnelRepository_UpdateProfile_ExecError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE "personnel"`).WillReturnError(errors.New("deadlock"))

	_, err := repo.UpdateProfile(context.Background(), "12345", sampleProfile())
	require.Error(t, err)
	_, ok := errors.AsType[domainerrors.AppError](err)
	assert.True(t, ok)
}

func TestPersonnelRepository_SetPhotoPath(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		want         repository.UpdateResult
	}{
		{name: "record exists", rowsAffected: 1, want: repository.UpdateResult{Matched: true, Modified: true}},
		{name: "record missing", rowsAffected: 0, want: repository.UpdateResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)

			mock.ExpectExec(`UPDATE "personnel" SET .*"photo_path"=.* WHERE service_number = `).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			res, err := repo.SetPhotoPath(context.Background(), "12345", "uploads/12345.png")
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProfileChangedCondition_PlaceholdersMatchColumns(t *testing.T) {
	assert.Len(t, profileValues(entity.Profile{}), len(profileColumns))
	assert.Contains(t, profileChangedCondition, "IS DISTINCT FROM (TRUE, ?")
}
