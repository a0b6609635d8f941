// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"community/internal/domain/entity"
	"community/internal/domain/service"
)

// IdentityUsecase resolves the authenticated principal of a request into a local user.
type IdentityUsecase interface {
	// Resolve returns the cached user when present. Otherwise it normalizes the
	// OAuth2 authentication in sec, finds or creates the user by email, makes
	// sure sec carries the user's provider authority, and caches the result.
	// A request without an OAuth2 authentication resolves to nil without error.
	Resolve(ctx context.Context, cache service.IdentityCache, sec *entity.SecurityContext) (*entity.User, error)
}
