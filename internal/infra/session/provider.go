package session

import (
	"log/slog"

	"community/config"
	"community/internal/domain/constants"
	"community/internal/domain/repository"
	redisinfra "community/internal/infra/redis"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the session store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore selects the session store from session.store.
func NewStore(params StoreParams) (repository.SessionRepository, error) {
	store := params.Config.Session.Store

	switch store {
	case "", constants.SessionStoreMemory:
		params.Logger.Info("Using in-memory session store")

		return NewMemoryStore(), nil

	case constants.SessionStoreRedis:
		client, err := redisinfra.NewClient(params.Lc, params.Config.Redis, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using redis session store")

		return NewRedisStore(client), nil

	default:
		return nil, errors.Errorf("unknown session store: %s", store)
	}
}

// Module provides the session store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
