// Package middleware contains echo middleware shared by every delivery.
package middleware

import (
	"net/http"

	domainerrors "community/internal/domain/errors"
	"community/internal/errors"

	"github.com/labstack/echo/v4"
)

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
