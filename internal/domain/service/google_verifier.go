package service

import "context"

// GoogleUser holds the identity attributes extracted from a verified Google ID token.
type GoogleUser struct {
	Subject       string // Google's stable user id ('sub' claim).
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// GoogleVerifier verifies Google Sign-In ID tokens for the login-with-Google flow.
type GoogleVerifier interface {
	// VerifyIDToken checks the token's issuer, audience, and expiry and
	// returns the embedded identity.
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleUser, error)
}
