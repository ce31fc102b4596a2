// Package usecase defines the application's business rules as interfaces,
// together with the input/output DTOs crossing the delivery boundary.
package usecase

import "context"

// RegisterInput carries the credentials for a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput carries the credentials for an existing account.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenInput carries the refresh token used to obtain a new access token.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutInput carries the (optional) token presented at logout.
type LogoutInput struct {
	Token string `json:"token"`
}

// GoogleLoginInput carries a Google Sign-In ID token.
type GoogleLoginInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// UserInfo is the minimal account identity returned with a token pair.
type UserInfo struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// AuthOutput is the token pair plus account identity returned by
// registration, login, and refresh.
type AuthOutput struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int64    `json:"expires_in"` // Access token lifetime in seconds.
	User         UserInfo `json:"user"`
}

// AuthUsecase orchestrates registration, login, logout, and token refresh.
type AuthUsecase interface {
	// Register creates a new account and issues the first token pair.
	// Persistence and token issuance appear atomic to the caller.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a fresh token pair. Unknown email
	// and wrong password report the same error.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout is a no-op under the stateless token design; any caller-held
	// token stays cryptographically valid until its own expiration.
	Logout(ctx context.Context, input *LogoutInput) error

	// RefreshToken issues a new access token. The presented refresh token is
	// echoed back unchanged; there is no rotation.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*AuthOutput, error)

	// GoogleLogin verifies a Google ID token, provisioning an account on
	// first sight, and issues a normal token pair.
	GoogleLogin(ctx context.Context, input *GoogleLoginInput) (*AuthOutput, error)
}
