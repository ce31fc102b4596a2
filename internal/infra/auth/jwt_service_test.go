package auth

import (
	"strings"
	"testing"
	"time"

	"aspri/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			Secret:                "test_signing_secret_key_very_long_for_testing",
			AccessTokenTTLMillis:  86_400_000,
			RefreshTokenTTLMillis: 604_800_000,
		},
	}
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	accessToken, err := jwtService.GenerateAccessToken("user-123", "a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	refreshToken, err := jwtService.GenerateRefreshToken("user-123")
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)

	assert.True(t, jwtService.Validate(accessToken))
	assert.True(t, jwtService.Validate(refreshToken))

	accessClaims, err := jwtService.Claims(accessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", accessClaims.Subject)
	assert.Equal(t, "a@x.com", accessClaims.Email)

	// Refresh tokens carry only the subject, no email claim.
	refreshClaims, err := jwtService.Claims(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", refreshClaims.Subject)
	assert.Empty(t, refreshClaims.Email)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.JWT.AccessTokenTTLMillis = -1000
	cfg.JWT.RefreshTokenTTLMillis = -1000

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken("user-123", "a@x.com")
	require.NoError(t, err)

	// Signature is authentic but the expiration instant is in the past.
	assert.False(t, jwtService.Validate(token))
	assert.True(t, jwtService.IsExpired(token))

	// The subject is still readable from an expired-but-authentic token.
	claims, err := jwtService.Claims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken("user-123", "a@x.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip a single byte of the signature segment.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	assert.False(t, jwtService.Validate(tampered))

	_, err = jwtService.Claims(tampered)
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	malformed := "clearly-not-a-jwt-token-format"

	assert.False(t, jwtService.Validate(malformed))
	assert.True(t, jwtService.IsExpired(malformed), "undecodable tokens are treated as expired")

	_, err = jwtService.Claims(malformed)
	assert.Error(t, err)
}

func TestJWTService_MissingSecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{JWT: &config.JWTConfig{}})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "signing secret")
}

func TestJWTService_AccessTokenTTLSeconds(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	assert.Equal(t, int64((24 * time.Hour).Seconds()), jwtService.AccessTokenTTLSeconds())
}
