package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	deliverycontext "community/internal/delivery/context"
	"community/internal/domain/entity"
	domainerrors "community/internal/domain/errors"
	"community/internal/domain/service"
	"community/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// loginService implements the LoginUsecase interface.
type loginService struct {
	registry service.ProviderRegistry
	state    service.StateService
	metrics  service.LoginMetrics
	validate *validator.Validate
	logger   *slog.Logger
}

// LoginServiceParams holds dependencies for LoginService, injected by Fx.
type LoginServiceParams struct {
	fx.In

	Registry service.ProviderRegistry
	State    service.StateService
	Metrics  service.LoginMetrics
	Logger   *slog.Logger
}

// NewLoginService is the constructor for loginService.
func NewLoginService(params LoginServiceParams) usecase.LoginUsecase {
	return &loginService{
		registry: params.Registry,
		state:    params.State,
		metrics:  params.Metrics,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *loginService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Providers lists the enabled providers.
func (srv *loginService) Providers() []entity.SocialType {
	return srv.registry.Enabled()
}

// AuthorizationURL records a fresh nonce in the session and returns the consent URL.
func (srv *loginService) AuthorizationURL(ctx context.Context, providerKey string, session *entity.Session) (string, error) {
	socialType, client, err := srv.client(providerKey)
	if err != nil {
		return "", err
	}

	state, nonce, err := srv.state.Issue(socialType)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue oauth state")
	}
	session.SetOAuthState(nonce)

	srv.log(ctx).Debug("Redirecting to provider", slog.String("provider", socialType.String()))

	return client.AuthCodeURL(state), nil
}

// CompleteLogin turns a provider callback into an OAuth2 authentication.
func (srv *loginService) CompleteLogin(
	ctx context.Context,
	input *usecase.CompleteLoginInput,
	session *entity.Session,
	sec *entity.SecurityContext,
) error {
	err := srv.completeLogin(ctx, input, session, sec)
	srv.metrics.ObserveLogin(providerLabel(input.Provider), err == nil)
	if err != nil {
		srv.log(ctx).Warn("Provider login failed", slog.String("provider", input.Provider), slog.Any("error", err))
	}

	return err
}

func (srv *loginService) completeLogin(
	ctx context.Context,
	input *usecase.CompleteLoginInput,
	session *entity.Session,
	sec *entity.SecurityContext,
) error {
	if input.Error != "" {
		return domainerrors.ErrOAuthFailed.WrapMessage(input.Error + ": " + input.ErrorDescription)
	}
	if err := srv.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	socialType, client, err := srv.client(input.Provider)
	if err != nil {
		return err
	}

	nonce, err := srv.state.Verify(input.State, socialType)
	if err != nil {
		return err
	}
	expected := session.ConsumeOAuthState()
	if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(nonce)) != 1 {
		return domainerrors.ErrOAuthStateInvalid.WrapMessage("state does not belong to this session")
	}

	attrs, err := client.FetchAttributes(ctx, input.Code)
	if err != nil {
		return domainerrors.ErrOAuthFailed.Wrap(err, "failed to fetch user info")
	}

	authentication := &entity.OAuth2Authentication{
		RegistrationID:     socialType.String(),
		Attributes:         attrs,
		GrantedAuthorities: entity.Authorities{socialType.Authority()},
	}
	sec.SetAuthentication(authentication)
	session.SetAuthentication(authentication)
	session.SetIdentity(nil)
	session.RenewID()

	srv.log(ctx).Info("Provider login completed", slog.String("provider", socialType.String()))

	return nil
}

// Logout drops the authentication and invalidates the session.
func (srv *loginService) Logout(ctx context.Context, session *entity.Session, sec *entity.SecurityContext) {
	sec.SetAuthentication(nil)
	if session != nil {
		session.Invalidate()
	}

	srv.log(ctx).Debug("Session invalidated")
}

func (srv *loginService) client(providerKey string) (entity.SocialType, service.ProviderClient, error) {
	socialType, err := entity.ParseSocialType(providerKey)
	if err != nil {
		return "", nil, domainerrors.ErrUnknownProvider.WrapMessage(err.Error())
	}

	client, err := srv.registry.Client(socialType)
	if err != nil {
		return "", nil, err
	}

	return socialType, client, nil
}

// providerLabel bounds the metric label to the supported providers.
func providerLabel(providerKey string) string {
	if entity.SocialType(providerKey).IsValid() {
		return providerKey
	}

	return "unknown"
}
