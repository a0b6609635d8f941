package impl

import (
	"context"
	"log/slog"
	"time"

	"community/config"
	deliverycontext "community/internal/delivery/context"
	"community/internal/domain/entity"
	domainerrors "community/internal/domain/errors"
	"community/internal/domain/repository"
	"community/internal/usecase"

	"go.uber.org/fx"
)

const defaultSessionTTL = 30 * time.Minute

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store  repository.SessionRepository
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store  repository.SessionRepository
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	ttl := defaultSessionTTL
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.TTL > 0 {
		ttl = params.Config.Session.TTL
	}

	return &sessionService{
		store:  params.Store,
		ttl:    ttl,
		now:    time.Now,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Load returns the session behind the cookie id. Unknown or expired ids get a
// fresh session under a newly generated id; client-chosen ids are never adopted.
func (srv *sessionService) Load(ctx context.Context, id string) (*entity.Session, error) {
	now := srv.now()

	if id != "" {
		session, err := srv.store.Load(ctx, id)
		if err != nil {
			srv.log(ctx).Error("Failed to load session", slog.Any("error", err))

			return nil, domainerrors.ErrSessionStoreFailed.Wrap(err, "failed to load session")
		}
		if session != nil && !session.IsExpired(now) {
			if session.ExpiresAt.Sub(now) < srv.ttl/2 {
				session.Touch(now, srv.ttl)
			}

			return session, nil
		}
	}

	newID, err := srv.store.NewID()
	if err != nil {
		return nil, domainerrors.ErrSessionStoreFailed.Wrap(err, "failed to generate session id")
	}

	return entity.NewSession(newID, now, srv.ttl), nil
}

// Commit persists the changes a request made to its session.
func (srv *sessionService) Commit(ctx context.Context, session *entity.Session) (*usecase.CommitResult, error) {
	if session == nil {
		return &usecase.CommitResult{}, nil
	}

	if session.IsInvalidated() {
		if err := srv.store.Delete(ctx, session.ID); err != nil {
			return nil, domainerrors.ErrSessionStoreFailed.Wrap(err, "failed to delete session")
		}
		srv.log(ctx).Debug("Session deleted")

		return &usecase.CommitResult{ClearCookie: true}, nil
	}

	if !session.IsDirty() {
		return &usecase.CommitResult{SessionID: session.ID}, nil
	}

	previousID := ""
	if session.NeedsRenewal() {
		newID, err := srv.store.NewID()
		if err != nil {
			return nil, domainerrors.ErrSessionStoreFailed.Wrap(err, "failed to generate session id")
		}
		previousID = session.ID
		session.ID = newID
	}

	session.Touch(srv.now(), srv.ttl)
	if err := srv.store.Save(ctx, session); err != nil {
		return nil, domainerrors.ErrSessionStoreFailed.Wrap(err, "failed to save session")
	}
	session.MarkClean()

	if previousID != "" {
		if err := srv.store.Delete(ctx, previousID); err != nil {
			srv.log(ctx).Warn("Failed to delete renewed session", slog.Any("error", err))
		}
	}

	return &usecase.CommitResult{SetCookie: true, SessionID: session.ID}, nil
}
