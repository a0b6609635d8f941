// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the canonical member record of the board.
// A user is either registered locally (SocialType and Principal empty) or
// registered through a social provider (both set).
type User struct {
	ID         uuid.UUID  // Stable internal identifier, assigned on creation.
	Name       string     // Display name shown on the board.
	Password   string     // bcrypt hash; blank for social-only accounts.
	Email      string     // Reconciliation key across local and social origins.
	Principal  string     // Subject id issued by the social provider.
	SocialType SocialType // Provider the account was registered with.
	CreatedAt  time.Time  // Timestamp of when this account was created.
	UpdatedAt  time.Time  // Timestamp of the last modification to this account.
}

// IsSocial reports whether the user was registered through a social provider.
func (u *User) IsSocial() bool {
	return u.SocialType != "" && u.Principal != ""
}

// IsLocal reports whether the user was registered locally.
func (u *User) IsLocal() bool {
	return u.SocialType == "" && u.Principal == ""
}
