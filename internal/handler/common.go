package handler // handler translates HTTP requests into store operations

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prolearn/course-marketplace/internal/middleware"
)

func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, echo.Map{"error": true, "message": "forbidden access"})
}

// internalError logs the failure server-side and answers with the generic
// message; details never reach the caller.
func internalError(c echo.Context, err error) error {
	log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": true, "message": "an error occurred while processing your request"})
}

// requireSelf enforces the self-only pattern on endpoints taking an email
// query parameter: the supplied email must match the authenticated
// identity's email, whether or not it exists anywhere. Returns false after
// writing the 403 when the caller is someone else.
func requireSelf(c echo.Context, email string) bool {
	if email != middleware.AuthenticatedEmail(c) {
		_ = forbidden(c)
		return false
	}
	return true
}
