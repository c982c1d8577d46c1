// Package auth implements the stateless claims-based token service. There
// is no persisted session store: authorization is evaluated fresh from the
// signed payload on every request, trading revocation capability for
// simplicity.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an issued token.
const TokenTTL = time.Hour

// ErrUnauthorized is returned by Verify when the token is absent, malformed,
// expired, or carries an invalid signature.
var ErrUnauthorized = errors.New("unauthorized")

// Identity is the authenticated caller's claims. Email identifies the
// account; the full claim set is kept for downstream consumers.
type Identity struct {
	Email  string
	Claims jwt.MapClaims
}

// TokenService issues and verifies HS256-signed identity tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a service around the signing secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: TokenTTL}
}

// Issue signs the supplied claims into a token expiring after the fixed
// TTL. The claims are whatever the client asserts at sign-in, email
// included.
func (s *TokenService) Issue(claims map[string]any) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	now := time.Now().UTC()
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(s.ttl).Unix()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token string and returns the identity it
// carries. Any parse or validation failure collapses into ErrUnauthorized.
func (s *TokenService) Verify(token string) (Identity, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrUnauthorized
	}
	email, _ := claims["email"].(string)
	return Identity{Email: email, Claims: claims}, nil
}
