package handler

import (
	"net/http"
	"time"

	"community/internal/delivery/api/binder"
	"community/internal/delivery/api/response"
	deliverycontext "community/internal/delivery/context"
	"community/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IdentityHandler serves the pages that need the board's own user record.
type IdentityHandler struct {
	binder *binder.SocialUserBinder
}

// NewIdentityHandler is the constructor for IdentityHandler, injected by Fx.
func NewIdentityHandler(binder *binder.SocialUserBinder) *IdentityHandler {
	return &IdentityHandler{binder: binder}
}

// identityInput is bound from the request's session and authentication.
type identityInput struct {
	User *entity.User `social:"user"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	SocialType string    `json:"social_type,omitempty"`
	Principal  string    `json:"principal,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		SocialType: user.SocialType.String(),
		Principal:  user.Principal,
		CreatedAt:  user.CreatedAt,
	}
}

// Complete resolves the freshly logged-in user and continues to /me.
func (h *IdentityHandler) Complete(c echo.Context) error {
	var input identityInput
	if err := h.binder.Bind(c, &input); err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/me")
}

// Me returns the user behind the session.
func (h *IdentityHandler) Me(c echo.Context) error {
	var input identityInput
	if err := h.binder.Bind(c, &input); err != nil {
		return errors.WithStack(err)
	}
	if input.User == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "No social login in this session")
	}

	return response.Success(c, http.StatusOK, toUserResponse(input.User))
}

type homeResponse struct {
	Authenticated bool     `json:"authenticated"`
	Authorities   []string `json:"authorities"`
}

// Home is the public landing page.
func (h *IdentityHandler) Home(c echo.Context) error {
	sec := deliverycontext.GetSecurityContext(c)

	body := homeResponse{Authenticated: sec.IsAuthenticated(), Authorities: []string{}}
	if body.Authenticated {
		body.Authorities = sec.Authentication().Authorities().ToStrings()
	}

	return response.Success(c, http.StatusOK, body)
}
