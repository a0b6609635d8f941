package impl

import (
	"context"
	"log/slog"

	"community/config"
	"community/internal/domain/entity"
	domainerrors "community/internal/domain/errors"
	"community/internal/domain/repository"
	"community/internal/domain/service"
	"community/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	users    []config.SeedUser
	validate *validator.Validate
	logger   *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	var users []config.SeedUser
	if params.Config != nil && params.Config.Seed != nil {
		users = params.Config.Seed.Users
	}

	return &seedService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		users:    users,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   params.Logger,
	}
}

// SeedLocalUsers creates every configured local account whose email is not yet registered.
// It returns the number of accounts created.
func (srv *seedService) SeedLocalUsers(ctx context.Context) (int, error) {
	created := 0

	for i := range srv.users {
		seed := srv.users[i]
		if err := srv.validate.Struct(seed); err != nil {
			return created, domainerrors.ErrValidationFailed.Wrap(err, "invalid seed user")
		}

		ok, err := srv.seedOne(ctx, &seed)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	if created > 0 {
		srv.logger.Info("Seeded local users", slog.Int("count", created))
	}

	return created, nil
}

func (srv *seedService) seedOne(ctx context.Context, seed *config.SeedUser) (bool, error) {
	_, err := srv.userRepo.FindByEmail(ctx, seed.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return false, errors.Wrap(err, "failed to look up seed user")
	}

	hash, err := srv.hasher.Hash(seed.Password)
	if err != nil {
		return false, domainerrors.ErrPasswordHashFailed.Wrap(err, "failed to hash seed password")
	}

	_, err = srv.userRepo.Create(ctx, &entity.User{
		Name:     seed.Name,
		Email:    seed.Email,
		Password: hash,
	})
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to create seed user")
	}

	return true, nil
}
