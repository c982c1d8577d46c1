package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root returns the service banner, matching what the storefront pings.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "course marketplace server is running")
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
