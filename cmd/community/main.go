package main

import (
	"context"
	"log/slog"
	"os"

	"community/config"
	"community/internal/delivery"
	"community/internal/delivery/api"
	"community/internal/delivery/api/binder"
	apimiddleware "community/internal/delivery/api/middleware"
	"community/internal/delivery/api/router/handler"
	"community/internal/domain/lifecycle"
	"community/internal/infra/auth"
	"community/internal/infra/auth/oauth"
	"community/internal/infra/auth/social"
	logs "community/internal/infra/log"
	"community/internal/infra/metrics"
	"community/internal/infra/persistence/postgres"
	"community/internal/infra/pubsub"
	"community/internal/infra/session"
	"community/internal/usecase"
	"community/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type seedParams struct {
	fx.In
	fx.Lifecycle

	Seed   usecase.SeedUsecase
	Logger *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedLocalUsers,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		postgres.Module,
		session.Module,
		metrics.Module,
		pubsub.Module,
		oauth.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewStateService,
			social.NewNormalizer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewLoginService,
			impl.NewSessionService,
			impl.NewSeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
			apimiddleware.NewSecurityMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			binder.NewSocialUserBinder,
			handler.NewAuthHandler,
			handler.NewIdentityHandler,
			handler.NewBoardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedLocalUsers creates the configured local accounts once the database is reachable.
func seedLocalUsers(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			created, err := params.Seed.SeedLocalUsers(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to seed local users")
			}
			params.Logger.Info("Local users ready", slog.Int("created", created))

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
