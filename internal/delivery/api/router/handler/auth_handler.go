// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"log/slog"
	"net/http"

	"community/internal/delivery/api/response"
	deliverycontext "community/internal/delivery/context"
	"community/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errNoSession = errors.New("session middleware not installed")

// AuthHandler drives the provider login flow.
type AuthHandler struct {
	login  usecase.LoginUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(login usecase.LoginUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		login:  login,
		logger: logger,
	}
}

type providerLink struct {
	Provider string `json:"provider"`
	LoginURL string `json:"login_url"`
}

// LoginPage lists the enabled providers.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	providers := h.login.Providers()
	links := make([]providerLink, 0, len(providers))
	for _, p := range providers {
		links = append(links, providerLink{Provider: p.String(), LoginURL: "/login/" + p.String()})
	}

	return response.Success(c, http.StatusOK, links)
}

// Login redirects the browser to the provider's consent page.
func (h *AuthHandler) Login(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return errNoSession
	}

	redirectURL, err := h.login.AuthorizationURL(c.Request().Context(), c.Param("provider"), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, redirectURL)
}

// Callback completes the login the provider redirected back with.
func (h *AuthHandler) Callback(c echo.Context) error {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return errNoSession
	}

	input := &usecase.CompleteLoginInput{
		Provider:         c.Param("provider"),
		Code:             c.QueryParam("code"),
		State:            c.QueryParam("state"),
		Error:            c.QueryParam("error"),
		ErrorDescription: c.QueryParam("error_description"),
	}
	if err := h.login.CompleteLogin(c.Request().Context(), input, session, deliverycontext.GetSecurityContext(c)); err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/"+input.Provider+"/complete")
}

// Logout ends the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.login.Logout(c.Request().Context(), deliverycontext.GetSession(c), deliverycontext.GetSecurityContext(c))
	h.logger.Debug("User logged out", slog.String("request_id", deliverycontext.GetRequestID(c)))

	return c.Redirect(http.StatusFound, "/")
}
