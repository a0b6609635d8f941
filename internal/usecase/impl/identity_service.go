// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"community/config"
	deliverycontext "community/internal/delivery/context"
	"community/internal/domain/entity"
	domainerrors "community/internal/domain/errors"
	"community/internal/domain/repository"
	"community/internal/domain/service"
	"community/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo   repository.UserRepository
	normalizer service.ProfileNormalizer
	publisher  service.EventPublisher
	metrics    service.IdentityMetrics
	linkPolicy entity.LinkPolicy
	logger     *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	Normalizer service.ProfileNormalizer
	Publisher  service.EventPublisher
	Metrics    service.IdentityMetrics
	Config     *config.Config
	Logger     *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) (usecase.IdentityUsecase, error) {
	policy := entity.LinkPolicyEmail
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.LinkPolicy != "" {
		parsed, err := entity.ParseLinkPolicy(params.Config.Auth.LinkPolicy)
		if err != nil {
			return nil, errors.Wrap(err, "invalid auth.linkPolicy")
		}
		policy = parsed
	}

	return &identityService{
		userRepo:   params.UserRepo,
		normalizer: params.Normalizer,
		publisher:  params.Publisher,
		metrics:    params.Metrics,
		linkPolicy: policy,
		logger:     params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve returns the local user behind the request's authentication.
func (srv *identityService) Resolve(ctx context.Context, cache service.IdentityCache, sec *entity.SecurityContext) (*entity.User, error) {
	var cached *entity.User
	if cache != nil {
		cached = cache.Identity()
	}
	if cached != nil {
		srv.metrics.ObserveResolution(service.ResolutionCached)

		return cached, nil
	}

	oauth, ok := sec.Authentication().(*entity.OAuth2Authentication)
	if !ok {
		srv.metrics.ObserveResolution(service.ResolutionAnonymous)

		return cached, nil
	}

	profile, err := srv.normalizer.Normalize(oauth.RegistrationID, oauth.Attributes)
	if err != nil {
		srv.metrics.ObserveResolution(service.ResolutionFailed)

		return nil, errors.Wrap(err, "failed to normalize provider attributes")
	}

	if profile.Email == "" {
		if srv.linkPolicy == entity.LinkPolicyStrict {
			srv.metrics.ObserveResolution(service.ResolutionFailed)

			return nil, domainerrors.ErrProviderEmailMissing.WrapMessage(profile.SocialType.String())
		}
		srv.log(ctx).Warn("Provider returned no email, resolving by empty email",
			slog.String("provider", profile.SocialType.String()),
			slog.String("principal", profile.Principal),
		)
	}

	user, outcome, err := srv.findOrCreate(ctx, profile)
	if err != nil {
		srv.metrics.ObserveResolution(service.ResolutionFailed)

		return nil, err
	}

	srv.reconcileAuthority(ctx, sec, oauth, user)

	if cache != nil {
		cache.SetIdentity(user)
	}
	srv.metrics.ObserveResolution(outcome)

	srv.log(ctx).Debug("Identity resolved",
		slog.String("user_id", user.ID.String()),
		slog.String("outcome", string(outcome)),
	)

	return user, nil
}

// findOrCreate looks the profile up by email and registers it on first sight.
// A concurrent registration of the same email is resolved by re-reading the winner.
func (srv *identityService) findOrCreate(ctx context.Context, profile *service.ProviderProfile) (*entity.User, service.ResolutionOutcome, error) {
	existing, err := srv.userRepo.FindByEmail(ctx, profile.Email)
	if err == nil {
		if err := srv.checkLinkPolicy(existing, profile); err != nil {
			return nil, "", err
		}

		return existing, service.ResolutionExisting, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", errors.Wrap(err, "failed to find user by email")
	}

	created, err := srv.userRepo.Create(ctx, profile.ToUser())
	if err == nil {
		srv.log(ctx).Info("Registered social user",
			slog.String("user_id", created.ID.String()),
			slog.String("provider", created.SocialType.String()),
		)
		srv.publishRegistered(ctx, created)

		return created, service.ResolutionCreated, nil
	}
	if !errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		return nil, "", errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Concurrent registration detected, re-reading user", slog.String("provider", profile.SocialType.String()))

	existing, err = srv.userRepo.FindByEmail(ctx, profile.Email)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to re-read user after duplicate create")
	}
	if err := srv.checkLinkPolicy(existing, profile); err != nil {
		return nil, "", err
	}

	return existing, service.ResolutionRaced, nil
}

func (srv *identityService) checkLinkPolicy(existing *entity.User, profile *service.ProviderProfile) error {
	if srv.linkPolicy.Allows(existing, profile.SocialType) {
		return nil
	}

	return domainerrors.ErrAccountLinkConflict.WrapMessage("email registered via " + originOf(existing))
}

// reconcileAuthority replaces the authentication when it lacks the authority of
// the persisted account's provider. Accounts without a provider carry no authority.
func (srv *identityService) reconcileAuthority(ctx context.Context, sec *entity.SecurityContext, oauth *entity.OAuth2Authentication, user *entity.User) {
	if !user.SocialType.IsValid() {
		return
	}

	authority := user.SocialType.Authority()
	if oauth.Authorities().Contains(authority) {
		return
	}

	sec.SetAuthentication(entity.NewAttributeAuthentication(oauth.Attributes, authority))
	srv.log(ctx).Info("Authentication authority reconciled",
		slog.String("user_id", user.ID.String()),
		slog.String("authority", authority.String()),
	)
}

func (srv *identityService) publishRegistered(ctx context.Context, user *entity.User) {
	event := &service.IdentityRegisteredEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		UserID:       user.ID.String(),
		Email:        user.Email,
		SocialType:   user.SocialType.String(),
		Principal:    user.Principal,
		RegisteredAt: user.CreatedAt,
	}

	if err := srv.publisher.PublishIdentityRegistered(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish identity registered event",
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
		)
	}
}

func originOf(user *entity.User) string {
	if user.IsLocal() {
		return "local account"
	}

	return user.SocialType.String()
}
