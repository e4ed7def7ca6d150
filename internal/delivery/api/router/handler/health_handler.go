// Package handler contains the HTTP handlers of the catalog API.
package handler

import (
	"net/http"

	"catalog/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the server is able to answer requests
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
