// Package middleware contains the middleware specific to the API server.
package middleware

import (
	"log/slog"
	"net/http"
	"net/url"

	"community/internal/delivery/api/response"
	deliverycontext "community/internal/delivery/context"
	domainerrors "community/internal/domain/errors"
	"community/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorPath is where failed logins are redirected.
const ErrorPath = "/error"

// loginErrors end a browser login flow; they redirect instead of rendering JSON.
var loginErrors = []error{
	domainerrors.ErrUnknownProvider,
	domainerrors.ErrProviderNotConfigured,
	domainerrors.ErrOAuthFailed,
	domainerrors.ErrOAuthStateInvalid,
	domainerrors.ErrProviderEmailMissing,
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if code, ok := loginErrorCode(err); ok {
		log.Warn("Login flow failed", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
		_ = c.Redirect(http.StatusFound, ErrorPath+"?"+url.Values{"code": {code}}.Encode())

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			log.Error("Request failed", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Internal details are logged, never returned
	log.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func loginErrorCode(err error) (string, bool) {
	for _, target := range loginErrors {
		if errors.Is(err, target) {
			var appErr domainerrors.AppError
			if errors.As(target, &appErr) {
				return appErr.ErrorCode(), true
			}
		}
	}

	return "", false
}
