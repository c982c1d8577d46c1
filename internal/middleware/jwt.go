package middleware // middleware provides the request authorization gates applied per route

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/prolearn/course-marketplace/internal/auth"
)

// Context keys set by RequireAuthenticated for downstream gates and handlers.
const (
	ContextEmail    = "email"
	ContextIdentity = "identity"
)

// RequireAuthenticated returns the "must present a valid token" gate. It
// extracts the bearer token from the Authorization header, verifies it
// through the token service, and attaches the decoded identity to the
// request context. A missing, malformed, expired or badly signed token is
// rejected with 401 before the handler runs.
func RequireAuthenticated(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": true, "message": "unauthorized access"})
			}
			ident, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": true, "message": "unauthorized access"})
			}
			c.Set(ContextEmail, ident.Email)
			c.Set(ContextIdentity, ident)
			return next(c)
		}
	}
}

// AuthenticatedEmail returns the email RequireAuthenticated stored in the
// context, or "" when the request did not pass through the gate.
func AuthenticatedEmail(c echo.Context) string {
	email, _ := c.Get(ContextEmail).(string)
	return email
}
