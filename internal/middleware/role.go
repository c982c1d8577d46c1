package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prolearn/course-marketplace/internal/model"
	"github.com/prolearn/course-marketplace/internal/repository"
)

// RequireAdmin returns the "must be recognized as admin" gate. It must run
// after RequireAuthenticated: the authenticated email is looked up in the
// users collection and the request is rejected with 403 unless that user
// exists and holds the admin role. The role check is DB-backed rather than
// claim-backed so a stale token cannot outlive a role change.
func RequireAdmin(users *repository.UserRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := AuthenticatedEmail(c)
			user, err := users.ByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return c.JSON(http.StatusForbidden, echo.Map{"error": true, "message": "forbidden access"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": true, "message": "database error"})
			}
			if user.Role != model.RoleAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": true, "message": "forbidden access"})
			}
			return next(c)
		}
	}
}
