package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret")

	token, err := ts.Issue(map[string]any{"email": "student@example.com", "name": "Student"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ident, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", ident.Email)
	assert.Equal(t, "Student", ident.Claims["name"])

	// Fixed one-hour expiry.
	iat, ok := ident.Claims["iat"].(float64)
	require.True(t, ok)
	exp, ok := ident.Claims["exp"].(float64)
	require.True(t, ok)
	assert.Equal(t, float64(3600), exp-iat)
}

func TestVerifyMalformed(t *testing.T) {
	ts := NewTokenService("test-secret")

	_, err := ts.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = ts.Verify("")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyWrongSignature(t *testing.T) {
	issuer := NewTokenService("one-secret")
	verifier := NewTokenService("another-secret")

	token, err := issuer.Issue(map[string]any{"email": "student@example.com"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyExpired(t *testing.T) {
	ts := NewTokenService("test-secret")

	claims := jwt.MapClaims{
		"email": "student@example.com",
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ts.Verify(expired)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
