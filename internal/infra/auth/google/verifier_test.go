package google

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"aspri/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "test-client-id.apps.googleusercontent.com"

func newTestVerifier(t *testing.T) *verifier {
	t.Helper()

	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: testClientID}}
	v := NewVerifier(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NotNil(t, v)

	impl, ok := v.(*verifier)
	require.True(t, ok)

	return impl
}

func buildIDToken(t *testing.T, claims idTokenClaims) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))

	payloadBytes, err := json.Marshal(claims)
	require.NoError(t, err)
	payload := base64.RawURLEncoding.EncodeToString(payloadBytes)

	return header + "." + payload + ".signature"
}

func validClaims() idTokenClaims {
	return idTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "google-sub-1",
		Aud:           testClientID,
		Exp:           time.Now().Add(time.Hour).Unix(),
		Iat:           time.Now().Unix(),
		Email:         "a@x.com",
		EmailVerified: true,
		Name:          "A",
	}
}

func TestVerifyIDToken_Valid(t *testing.T) {
	v := newTestVerifier(t)

	user, err := v.VerifyIDToken(t.Context(), buildIDToken(t, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", user.Subject)
	assert.Equal(t, "a@x.com", user.Email)
	assert.True(t, user.EmailVerified)
}

func TestVerifyIDToken_Rejections(t *testing.T) {
	v := newTestVerifier(t)

	tests := []struct {
		name   string
		mutate func(*idTokenClaims)
	}{
		{name: "wrong issuer", mutate: func(c *idTokenClaims) { c.Iss = "https://evil.example.com" }},
		{name: "wrong audience", mutate: func(c *idTokenClaims) { c.Aud = "other-client" }},
		{name: "expired", mutate: func(c *idTokenClaims) { c.Exp = time.Now().Add(-time.Hour).Unix() }},
		{name: "unverified email", mutate: func(c *idTokenClaims) { c.EmailVerified = false }},
		{name: "missing subject", mutate: func(c *idTokenClaims) { c.Sub = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := validClaims()
			tt.mutate(&claims)

			_, err := v.VerifyIDToken(t.Context(), buildIDToken(t, claims))
			assert.Error(t, err)
		})
	}
}

func TestVerifyIDToken_Malformed(t *testing.T) {
	v := newTestVerifier(t)

	_, err := v.VerifyIDToken(t.Context(), "not-a-jwt")
	assert.Error(t, err)
}

func TestNewVerifier_DisabledWithoutClientID(t *testing.T) {
	v := NewVerifier(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Nil(t, v)
}
