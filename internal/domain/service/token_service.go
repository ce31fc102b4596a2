package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by session tokens.
// Access tokens carry the email claim; refresh tokens carry only the subject.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for creating and validating signed
// session tokens. Implementations are pure functions of their inputs, the
// current time, and the signing secret, so they are safe for concurrent use.
//
// Access and refresh tokens are signed with the same secret and carry no type
// discriminator claim. This mirrors the original deployment and is a known
// design gap: if the claim shapes ever converge, the two flavors become
// indistinguishable by signature alone.
type TokenService interface {
	// GenerateAccessToken creates a short-lived token carrying subject and email.
	GenerateAccessToken(userID, email string) (string, error)

	// GenerateRefreshToken creates a longer-lived token carrying only the subject.
	GenerateRefreshToken(userID string) (string, error)

	// Validate reports whether the signature verifies and the token has not
	// expired. Any parse or signature failure yields false, never an error.
	Validate(tokenString string) bool

	// Claims extracts the verified claims. It fails for invalid signatures and
	// malformed tokens.
	Claims(tokenString string) (*Claims, error)

	// IsExpired reports whether the token's expiration has passed. Undecodable
	// tokens are treated as expired (fail closed).
	IsExpired(tokenString string) bool

	// AccessTokenTTLSeconds exposes the configured access-token lifetime for
	// client display.
	AccessTokenTTLSeconds() int64
}
