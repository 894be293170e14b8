package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeSession is the only token kind issued: one signed, expiring session per login.
const TokenTypeSession = "session"

// Claims defines the custom claims for session tokens. The subject is the service number.
type Claims struct {
	ServiceNumber string `json:"svc"`
	Type          string `json:"type"`
	jwt.RegisteredClaims
}

// SessionToken is a freshly issued token and its expiry.
type SessionToken struct {
	Value     string
	ExpiresAt time.Time
}

// TokenService issues and verifies session tokens, replacing the bare service number
// as proof of identity between requests.
type TokenService interface {
	// Issue signs a new session token for the service number.
	Issue(serviceNumber string) (*SessionToken, error)

	// Validate parses the token and checks signature, expiry and type.
	Validate(tokenString string) (*Claims, error)
}
