package auth

import (
	"time"

	"roster/config"
	"roster/internal/domain/service"
	"roster/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a session token whose subject is the service number.
func (s *jwtService) Issue(serviceNumber string) (*service.SessionToken, error) {
	if serviceNumber == "" {
		return nil, errors.New("service number is required to issue a token")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := service.Claims{
		ServiceNumber: serviceNumber,
		Type:          service.TokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   serviceNumber,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session token")
	}

	return &service.SessionToken{Value: signed, ExpiresAt: expiresAt}, nil
}

// Validate checks signature, expiry and token type.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("session token is not valid")
	}
	if claims.Type != service.TokenTypeSession {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}
	if claims.ServiceNumber == "" || claims.ServiceNumber != claims.Subject {
		return nil, errors.New("session token subject mismatch")
	}

	return claims, nil
}
