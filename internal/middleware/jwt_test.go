package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prolearn/course-marketplace/internal/auth"
	"github.com/prolearn/course-marketplace/internal/middleware"
)

const testSecret = "test-secret"

func runGate(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	require.NoError(t, h(c))
	return rec, c
}

func TestRequireAuthenticatedMissingToken(t *testing.T) {
	gate := middleware.RequireAuthenticated(auth.NewTokenService(testSecret))

	rec, _ := runGate(t, gate, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Wrong scheme counts as missing.
	rec, _ = runGate(t, gate, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthenticatedInvalidToken(t *testing.T) {
	gate := middleware.RequireAuthenticated(auth.NewTokenService(testSecret))

	rec, _ := runGate(t, gate, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthenticatedExpiredToken(t *testing.T) {
	gate := middleware.RequireAuthenticated(auth.NewTokenService(testSecret))

	claims := jwt.MapClaims{"email": "student@example.com", "exp": time.Now().Add(-time.Minute).Unix()}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec, _ := runGate(t, gate, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthenticatedWrongSecret(t *testing.T) {
	gate := middleware.RequireAuthenticated(auth.NewTokenService(testSecret))

	token, err := auth.NewTokenService("other-secret").Issue(map[string]any{"email": "student@example.com"})
	require.NoError(t, err)

	rec, _ := runGate(t, gate, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthenticatedValidToken(t *testing.T) {
	tokens := auth.NewTokenService(testSecret)
	gate := middleware.RequireAuthenticated(tokens)

	token, err := tokens.Issue(map[string]any{"email": "student@example.com"})
	require.NoError(t, err)

	rec, c := runGate(t, gate, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "student@example.com", middleware.AuthenticatedEmail(c))
}
