package oauth

import (
	"log/slog"
	"net/http"

	"community/config"
	"community/internal/domain/entity"
	domainerrors "community/internal/domain/errors"
	"community/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// registry holds the configured provider clients.
type registry struct {
	clients map[entity.SocialType]service.ProviderClient
}

// RegistryParams holds dependencies for the provider registry, injected by Fx
type RegistryParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	HTTPClient *http.Client `optional:"true"`
}

// NewRegistry builds a client for every provider with a clientId.
// A provider with an incomplete registration fails startup.
func NewRegistry(params RegistryParams) (service.ProviderRegistry, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	clients := make(map[entity.SocialType]service.ProviderClient)

	for _, socialType := range entity.SocialTypes() {
		cfg := clientConfig(params.Config.OAuth, socialType)
		if cfg == nil || cfg.ClientID == "" {
			params.Logger.Info("OAuth provider disabled", slog.String("provider", socialType.String()))

			continue
		}

		if err := validate.Struct(cfg); err != nil {
			return nil, errors.Wrapf(err, "invalid oauth.%s configuration", socialType)
		}

		clients[socialType] = newClient(socialType, cfg, params.HTTPClient)
		params.Logger.Info("OAuth provider enabled", slog.String("provider", socialType.String()))
	}

	return &registry{clients: clients}, nil
}

// Client returns the provider client or ErrProviderNotConfigured.
func (r *registry) Client(socialType entity.SocialType) (service.ProviderClient, error) {
	c, ok := r.clients[socialType]
	if !ok {
		return nil, domainerrors.ErrProviderNotConfigured.WrapMessage(socialType.String())
	}

	return c, nil
}

// Enabled lists the configured providers in a stable order.
func (r *registry) Enabled() []entity.SocialType {
	enabled := make([]entity.SocialType, 0, len(r.clients))
	for _, socialType := range entity.SocialTypes() {
		if _, ok := r.clients[socialType]; ok {
			enabled = append(enabled, socialType)
		}
	}

	return enabled
}

func clientConfig(cfg *config.OAuthConfig, socialType entity.SocialType) *config.OAuthClientConfig {
	if cfg == nil {
		return nil
	}

	switch socialType {
	case entity.SocialTypeFacebook:
		return cfg.Facebook
	case entity.SocialTypeGoogle:
		return cfg.Google
	case entity.SocialTypeKakao:
		return cfg.Kakao
	default:
		return nil
	}
}

// Module provides the OAuth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRegistry),
)
