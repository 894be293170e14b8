// Package model holds the GORM persistence models. They never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PersonnelModel mirrors the 'personnel' table. The unique index on service_number is the
// authoritative duplicate guard; the ID is generated by the application.
type PersonnelModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceNumber   string    `gorm:"type:varchar(64);uniqueIndex:uq_personnel_service_number;not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	ProfileComplete bool      `gorm:"not null"`

	FirstName           string `gorm:"type:text"`
	MiddleName          string `gorm:"type:text"`
	Surname             string `gorm:"type:text"`
	ServiceName         string `gorm:"type:text"`
	RateRank            string `gorm:"type:text"`
	DateOfBirth         string `gorm:"type:text"`
	BloodGroup          string `gorm:"type:text"`
	MaritalStatus       string `gorm:"type:text"`
	Gender              string `gorm:"type:text"`
	Email               string `gorm:"type:text"`
	Phone               string `gorm:"type:text"`
	CurrentShip         string `gorm:"type:text"`
	Specialization      string `gorm:"type:text"`
	Branch              string `gorm:"type:text"`
	YearOfCommissioning string `gorm:"type:text"`
	Course              string `gorm:"type:text"`

	PhotoPath string `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonnelModel) TableName() string {
	return "personnel"
}
