package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prolearn/course-marketplace/internal/model"
	"github.com/prolearn/course-marketplace/internal/repository"
)

// UserHandler serves the user account operations. Role grants are
// one-directional: the API can make someone an admin or instructor but
// never revokes a role.
type UserHandler struct {
	Users *repository.UserRepo
}

func NewUserHandler(users *repository.UserRepo) *UserHandler {
	if users == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Users: users}
}

// GetAll handles GET /users (admin only).
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.Users.All(c.Request().Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /users. Accounts are created on first sign-in; a
// second create for the same email is answered with a message instead of a
// duplicate document.
func (h *UserHandler) Create(c echo.Context) error {
	var u model.User
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": true, "message": "invalid request body"})
	}
	ctx := c.Request().Context()
	if _, err := h.Users.ByEmail(ctx, u.Email); err == nil {
		return c.JSON(http.StatusOK, echo.Map{"message": "User already exists"})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return internalError(c, err)
	}
	res, err := h.Users.Create(ctx, u)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	res, err := h.Users.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// IsAdmin handles GET /users/admin/:email, answering whether the email
// belongs to an admin. An unknown email is simply not an admin.
func (h *UserHandler) IsAdmin(c echo.Context) error {
	user, err := h.Users.ByEmail(c.Request().Context(), c.Param("email"))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"admin": user.Role == model.RoleAdmin})
}

// MakeAdmin handles PATCH /users/admin/:id. Granting twice leaves the role
// at admin.
func (h *UserHandler) MakeAdmin(c echo.Context) error {
	res, err := h.Users.SetRole(c.Request().Context(), c.Param("id"), model.RoleAdmin)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// IsInstructor handles GET /users/instructor/:email.
func (h *UserHandler) IsInstructor(c echo.Context) error {
	user, err := h.Users.ByEmail(c.Request().Context(), c.Param("email"))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"instructor": user.Role == model.RoleInstructor})
}

// MakeInstructor handles PATCH /users/instructor/:id.
func (h *UserHandler) MakeInstructor(c echo.Context) error {
	res, err := h.Users.SetRole(c.Request().Context(), c.Param("id"), model.RoleInstructor)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Instructors handles GET /users/ins: all users holding the instructor role.
func (h *UserHandler) Instructors(c echo.Context) error {
	users, err := h.Users.ByRole(c.Request().Context(), model.RoleInstructor)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Students handles GET /users/student: all users holding the student role.
func (h *UserHandler) Students(c echo.Context) error {
	users, err := h.Users.ByRole(c.Request().Context(), model.RoleStudent)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}
