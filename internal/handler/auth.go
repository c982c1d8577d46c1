package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prolearn/course-marketplace/internal/auth"
)

// AuthHandler issues identity tokens. There is no credential check here:
// the storefront authenticates users upstream and posts the resulting
// claims, email included, to be signed.
type AuthHandler struct {
	Tokens *auth.TokenService
}

func NewAuthHandler(tokens *auth.TokenService) *AuthHandler {
	if tokens == nil {
		panic("nil token service passed to NewAuthHandler")
	}
	return &AuthHandler{Tokens: tokens}
}

// IssueToken handles POST /jwt. It signs whatever claims the client asserts
// into a token with the fixed one-hour expiry.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	claims := map[string]any{}
	if err := c.Bind(&claims); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": true, "message": "invalid request body"})
	}
	token, err := h.Tokens.Issue(claims)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
