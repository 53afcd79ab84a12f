// Package auth issues and verifies session tokens and hashes account passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hotel-booking/hotel-booking-admin-system/internal/domain"
	"github.com/hotel-booking/hotel-booking-admin-system/internal/infrastructure/timeutil"
)

// Issuer is the "iss" claim of every token this service signs.
const Issuer = "hotel-booking-admin"

// Claims is the token payload.
type Claims struct {
	UserID  string `json:"userId"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	clock  timeutil.Clock
}

// NewTokenService creates a TokenService. A nil clock uses the system clock.
func NewTokenService(secret string, ttl time.Duration, clock timeutil.Clock) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

// TTL returns the lifetime of issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for the user.
func (s *TokenService) Issue(u *domain.User) (string, error) {
	now := s.clock.Now()
	claims := &Claims{
		UserID:  u.ID,
		Role:    string(u.Role),
		IsAdmin: u.IsAdmin(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the identity it carries.
// Any parse, signature or expiry failure yields domain.ErrUnauthorized.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !parsed.Valid || claims.UserID == "" {
		return domain.Identity{}, domain.ErrUnauthorized
	}

	return domain.Identity{
		UserID:  claims.UserID,
		IsAdmin: claims.IsAdmin || claims.Role == string(domain.RoleAdmin),
	}, nil
}
