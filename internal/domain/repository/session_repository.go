package repository

import (
	"context"

	"community/internal/domain/entity"
)

// SessionRepository persists server-side sessions.
type SessionRepository interface {
	// NewID returns an unguessable identifier for a new or renewed session.
	NewID() (string, error)

	// Load returns the session stored under id, or nil when it is absent or expired.
	Load(ctx context.Context, id string) (*entity.Session, error)

	// Save stores the session until its ExpiresAt.
	Save(ctx context.Context, session *entity.Session) error

	// Delete removes the session stored under id. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
