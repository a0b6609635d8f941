package usecase

import (
	"context"

	"community/internal/domain/entity"
)

// LoginUsecase drives the provider login and logout flow.
type LoginUsecase interface {
	// Providers lists the providers a user can log in with.
	Providers() []entity.SocialType

	// AuthorizationURL starts a login: it records a nonce in the session and
	// returns the provider consent URL carrying the signed state.
	AuthorizationURL(ctx context.Context, providerKey string, session *entity.Session) (string, error)

	// CompleteLogin validates the callback, fetches the provider attributes and
	// installs an OAuth2 authentication in both sec and the session.
	CompleteLogin(ctx context.Context, input *CompleteLoginInput, session *entity.Session, sec *entity.SecurityContext) error

	// Logout ends the session.
	Logout(ctx context.Context, session *entity.Session, sec *entity.SecurityContext)
}

// CompleteLoginInput is the provider callback.
type CompleteLoginInput struct {
	Provider         string `validate:"required"`
	Code             string `validate:"required_without=Error"`
	State            string `validate:"required"`
	Error            string
	ErrorDescription string
}
