// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"aspri/config"
	"aspri/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using
// HMAC-SHA256 signed JWTs. A single shared secret signs both token flavors.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService. The signing secret is
// required configuration with no default.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.JWT.Secret),
		accessTTL:  time.Duration(cfg.JWT.AccessTokenTTLMillis) * time.Millisecond,
		refreshTTL: time.Duration(cfg.JWT.RefreshTokenTTLMillis) * time.Millisecond,
	}, nil
}

// GenerateAccessToken creates a short-lived token carrying subject and email.
func (s *jwtService) GenerateAccessToken(userID, email string) (string, error) {
	return s.generateToken(userID, email, s.accessTTL)
}

// GenerateRefreshToken creates a longer-lived token carrying only the subject.
func (s *jwtService) GenerateRefreshToken(userID string) (string, error) {
	return s.generateToken(userID, "", s.refreshTTL)
}

// generateToken is a private helper to create a JWT with the standard claim set.
func (s *jwtService) generateToken(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate reports whether the signature verifies and the token is unexpired.
// All failure modes collapse to false.
func (s *jwtService) Validate(tokenString string) bool {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, s.keyFunc)

	return err == nil && token.Valid
}

// Claims extracts the verified claims. Expiry is not enforced here so callers
// can still read the subject of an expired-but-authentic token; signature and
// structural failures are.
func (s *jwtService) Claims(tokenString string) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, s.keyFunc,
		jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok {
		return nil, errors.New("unexpected token claims type")
	}

	return claims, nil
}

// IsExpired reports whether the token's expiration has passed. Tokens that
// cannot be decoded are treated as expired.
func (s *jwtService) IsExpired(tokenString string) bool {
	claims, err := s.Claims(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}

	return !time.Now().Before(claims.ExpiresAt.Time)
}

// AccessTokenTTLSeconds exposes the configured access-token lifetime.
func (s *jwtService) AccessTokenTTLSeconds() int64 {
	return int64(s.accessTTL / time.Second)
}

// keyFunc pins the signing method to HMAC before releasing the secret.
func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}
