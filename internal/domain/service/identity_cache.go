package service

import "community/internal/domain/entity"

// IdentityCache is the per-session slot holding the resolved user.
type IdentityCache interface {
	// Identity returns the cached user, or nil if none was resolved yet.
	Identity() *entity.User
	// SetIdentity stores the resolved user for the rest of the session.
	SetIdentity(user *entity.User)
}
