package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonnel_PublicOmitsPasswordHash(t *testing.T) {
	p := &Personnel{
		ID:              uuid.New(),
		ServiceNumber:   "12345",
		PasswordHash:    "$2a$10$secret-hash-value",
		ProfileComplete: true,
		Profile:         Profile{FirstName: "Ada", Surname: "Okafor"},
		PhotoPath:       "uploads/12345.jpg",
	}

	pub := p.Public()
	require.NotNil(t, pub)
	assert.Equal(t, "12345", pub.ServiceNumber)
	assert.True(t, pub.ProfileComplete)
	assert.Equal(t, "Ada", pub.Profile.FirstName)
	assert.Equal(t, "uploads/12345.jpg", pub.PhotoPath)

	raw, err := json.Marshal(pub)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash-value")
	assert.NotContains(t, string(raw), p.ID.String())
}

func TestPersonnel_PublicNil(t *testing.T) {
	var p *Personnel
	assert.Nil(t, p.Public())
}

func TestPersonnel_HasPhoto(t *testing.T) {
	assert.False(t, (&Personnel{}).HasPhoto())
	assert.True(t, (&Personnel{PhotoPath: "uploads/1.png"}).HasPhoto())
}
