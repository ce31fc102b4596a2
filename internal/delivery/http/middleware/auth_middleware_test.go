package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"aspri/config"
	"aspri/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddlewareForTest(t *testing.T) *AuthMiddleware {
	t.Helper()

	tokenSvc, err := auth.NewJWTService(&config.Config{
		JWT: &config.JWTConfig{
			Secret:                "test-secret-key-for-middleware",
			AccessTokenTTLMillis:  60_000,
			RefreshTokenTTLMillis: 120_000,
		},
	})
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc)
}

func performAuthenticated(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenUserID any
	next := func(c echo.Context) error {
		seenUserID = c.Get(ContextKeyUserID)

		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, seenUserID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	m := newAuthMiddlewareForTest(t)
	token, err := m.tokenSvc.GenerateAccessToken("user-123", "budi@example.com")
	require.NoError(t, err)

	rec, userID := performAuthenticated(t, m, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", userID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	m := newAuthMiddlewareForTest(t)

	rec, userID := performAuthenticated(t, m, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, userID)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	t.Parallel()

	m := newAuthMiddlewareForTest(t)

	rec, userID := performAuthenticated(t, m, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, userID)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	t.Parallel()

	m := newAuthMiddlewareForTest(t)

	rec, userID := performAuthenticated(t, m, "Bearer not.a.token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, userID)
}
