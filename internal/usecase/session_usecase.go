package usecase

import (
	"context"

	"community/internal/domain/entity"
)

// SessionUsecase loads and persists the server-side session of a request.
type SessionUsecase interface {
	// Load returns the session stored under id, or a fresh unsaved session when
	// id is empty, unknown or expired.
	Load(ctx context.Context, id string) (*entity.Session, error)

	// Commit persists the changes made during the request.
	Commit(ctx context.Context, session *entity.Session) (*CommitResult, error)
}

// CommitResult tells the transport what to do with the session cookie.
type CommitResult struct {
	// SetCookie is true when the client must receive SessionID.
	SetCookie bool
	// ClearCookie is true when the session was invalidated.
	ClearCookie bool
	SessionID   string
}
