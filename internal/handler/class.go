package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prolearn/course-marketplace/internal/model"
	"github.com/prolearn/course-marketplace/internal/repository"
)

// ClassHandler serves the course listing operations. Listing mutations
// (create, update, approve, deny, feedback) carry no authorization gate;
// the router applies gates only where the API has always had them.
type ClassHandler struct {
	Classes *repository.ClassRepo
}

func NewClassHandler(classes *repository.ClassRepo) *ClassHandler {
	if classes == nil {
		panic("nil repository passed to NewClassHandler")
	}
	return &ClassHandler{Classes: classes}
}

// GetApproved handles GET /class/all: the public catalog. Pending and
// denied classes are filtered out at the store.
func (h *ClassHandler) GetApproved(c echo.Context) error {
	classes, err := h.Classes.Approved(c.Request().Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, classes)
}

// GetAll handles GET /class (admin only): every class regardless of status.
func (h *ClassHandler) GetAll(c echo.Context) error {
	classes, err := h.Classes.All(c.Request().Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, classes)
}

// GetByInstructor handles GET /class/ins?email= (self only). A missing
// email parameter yields an empty list, not an error.
func (h *ClassHandler) GetByInstructor(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusOK, []model.Class{})
	}
	if !requireSelf(c, email) {
		return nil
	}
	classes, err := h.Classes.ByInstructor(c.Request().Context(), email)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, classes)
}

// GetByID handles GET /class/ins/:id. The response is a list for
// compatibility with the storefront; an unknown id gives an empty list.
func (h *ClassHandler) GetByID(c echo.Context) error {
	classes, err := h.Classes.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, classes)
}

// Create handles POST /class: an instructor submission. Status defaults to
// pending so the class waits for admin review.
func (h *ClassHandler) Create(c echo.Context) error {
	var cl model.Class
	if err := c.Bind(&cl); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": true, "message": "invalid request body"})
	}
	res, err := h.Classes.Insert(c.Request().Context(), cl)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Update handles PATCH /class/ins/:id, overwriting the listing fields.
func (h *ClassHandler) Update(c echo.Context) error {
	var cl model.Class
	if err := c.Bind(&cl); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": true, "message": "invalid request body"})
	}
	res, err := h.Classes.Update(c.Request().Context(), c.Param("id"), cl)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Approve handles PATCH /class/approve/:id.
func (h *ClassHandler) Approve(c echo.Context) error {
	res, err := h.Classes.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Deny handles PATCH /class/deny/:id.
func (h *ClassHandler) Deny(c echo.Context) error {
	res, err := h.Classes.Deny(c.Request().Context(), c.Param("id"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Feedback handles PATCH /class/feedback/:id: free-text admin feedback.
func (h *ClassHandler) Feedback(c echo.Context) error {
	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": true, "message": "invalid request body"})
	}
	res, err := h.Classes.SetFeedback(c.Request().Context(), c.Param("id"), body.Feedback)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
