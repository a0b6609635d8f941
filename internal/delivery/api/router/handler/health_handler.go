package handler

import (
	"net/http"

	"community/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// LoginError is where failed logins land.
func LoginError(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		code = "LOGIN_FAILED"
	}

	return response.Error(c, http.StatusUnauthorized, code, "Login failed, please try again", nil)
}
