// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Personnel is the sole record of the system: one registered service member.
// It doubles as the credential (service number + password hash) and the profile.
type Personnel struct {
	ID              uuid.UUID // Surrogate key, generated by the application.
	ServiceNumber   string    // Unique login identifier and correlation key. Immutable once created.
	PasswordHash    string    // bcrypt hash. Never leaves the service.
	ProfileComplete bool      // True once the full profile has been submitted.
	Profile         Profile   // Extended personal fields, empty until profile completion.
	PhotoPath       string    // Blob key of the stored profile photo, empty when none.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Profile is the fixed set of personal fields submitted in one go on profile creation.
type Profile struct {
	FirstName           string `json:"firstName"`
	MiddleName          string `json:"middleName"`
	Surname             string `json:"surname"`
	ServiceName         string `json:"serviceName"`
	RateRank            string `json:"rateRank"`
	DateOfBirth         string `json:"dateOfBirth"`
	BloodGroup          string `json:"bloodGroup"`
	MaritalStatus       string `json:"maritalStatus"`
	Gender              string `json:"gender"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	CurrentShip         string `json:"currentShip"`
	Specialization      string `json:"specialization"`
	Branch              string `json:"branch"`
	YearOfCommissioning string `json:"yearOfCommissioning"`
	Course              string `json:"course"`
}

// PublicProfile is the only outward-facing projection of a Personnel record.
// It has no field for the password hash, so the hash cannot be serialized by mistake.
type PublicProfile struct {
	ServiceNumber   string    `json:"serviceNumber"`
	ProfileComplete bool      `json:"profileComplete"`
	Profile         Profile   `json:"profile"`
	PhotoPath       string    `json:"photoPath,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Public builds the outward projection of p.
func (p *Personnel) Public() *PublicProfile {
	if p == nil {
		return nil
	}

	return &PublicProfile{
		ServiceNumber:   p.ServiceNumber,
		ProfileComplete: p.ProfileComplete,
		Profile:         p.Profile,
		PhotoPath:       p.PhotoPath,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// HasPhoto reports whether a photo has been associated with the record.
func (p *Personnel) HasPhoto() bool {
	return p.PhotoPath != ""
}
