package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prolearn/course-marketplace/internal/model"
	"github.com/prolearn/course-marketplace/internal/repository"
)

// SelectedHandler serves the cart operations.
type SelectedHandler struct {
	Selected *repository.SelectedRepo
}

func NewSelectedHandler(selected *repository.SelectedRepo) *SelectedHandler {
	if selected == nil {
		panic("nil repository passed to NewSelectedHandler")
	}
	return &SelectedHandler{Selected: selected}
}

// List handles GET /selected?email= (self only). A missing email parameter
// yields an empty list, not an error.
func (h *SelectedHandler) List(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusOK, []model.SelectedItem{})
	}
	if !requireSelf(c, email) {
		return nil
	}
	items, err := h.Selected.ByEmail(c.Request().Context(), email)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetPicked handles GET /picked/:id, returning the cart entry as a list.
func (h *SelectedHandler) GetPicked(c echo.Context) error {
	items, err := h.Selected.ByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Add handles POST /selected: a student picking a class into their cart.
func (h *SelectedHandler) Add(c echo.Context) error {
	var item model.SelectedItem
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": true, "message": "invalid request body"})
	}
	res, err := h.Selected.Insert(c.Request().Context(), item)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Remove handles DELETE /selected/:id: explicit cart removal.
func (h *SelectedHandler) Remove(c echo.Context) error {
	res, err := h.Selected.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
