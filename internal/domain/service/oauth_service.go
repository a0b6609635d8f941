package service

import (
	"context"

	"community/internal/domain/entity"
)

// ProviderClient drives the authorization-code flow against one social provider.
type ProviderClient interface {
	// SocialType returns the provider this client talks to.
	SocialType() entity.SocialType

	// AuthCodeURL returns the consent page URL carrying the given state.
	AuthCodeURL(state string) string

	// FetchAttributes exchanges the authorization code and returns the raw user-info payload.
	FetchAttributes(ctx context.Context, code string) (map[string]any, error)
}

// ProviderRegistry resolves configured provider clients.
type ProviderRegistry interface {
	// Client returns the client for socialType, or domainerrors.ErrProviderNotConfigured.
	Client(socialType entity.SocialType) (ProviderClient, error)

	// Enabled lists the configured providers in a stable order.
	Enabled() []entity.SocialType
}

// StateService issues and verifies the OAuth state parameter.
type StateService interface {
	// Issue returns a signed state bound to the provider, plus the nonce to keep in the session.
	Issue(socialType entity.SocialType) (state, nonce string, err error)

	// Verify checks the signature, expiry and provider binding, and returns the embedded nonce.
	Verify(state string, socialType entity.SocialType) (string, error)
}
