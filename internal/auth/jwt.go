package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/quickforms/internal/domain"
)

// ErrEmptySubject is returned when a token is requested for a blank owner.
var ErrEmptySubject = errors.New("subject is required")

// OwnerTokens issues and validates the bearer tokens that guard the form
// owner endpoints. Tokens are HS256 JWTs whose subject names the owner.
type OwnerTokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewOwnerTokens creates a token manager.
// secret must be at least 32 characters for HS256 security.
func NewOwnerTokens(secret, issuer string, ttl time.Duration) *OwnerTokens {
	return &OwnerTokens{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Generate signs a token for subject that expires after the configured TTL.
func (m *OwnerTokens) Generate(subject string) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", ErrEmptySubject
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses tokenString and returns its subject. Every rejection
// wraps domain.ErrUnauthorized.
func (m *OwnerTokens) ValidateToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("%w: token is empty", domain.ErrUnauthorized)
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: parse token: %w", domain.ErrUnauthorized, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: %w", domain.ErrUnauthorized, ErrEmptySubject)
	}
	return claims.Subject, nil
}
