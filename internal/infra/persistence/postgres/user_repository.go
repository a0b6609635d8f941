// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"community/internal/domain/entity"
	domainerrors "community/internal/domain/errors"
	"community/internal/domain/repository"
	"community/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user and returns the stored record.
// The input entity is left untouched.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return nil, mapCreateError(err)
	}

	return toUserDomain(userM), nil
}

func mapCreateError(err error) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:         data.ID,
		Name:       data.Name,
		Password:   data.Password,
		Email:      data.Email,
		Principal:  data.Principal,
		SocialType: entity.SocialType(data.SocialType),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:         data.ID,
		Name:       data.Name,
		Password:   data.Password,
		Email:      data.Email,
		Principal:  data.Principal,
		SocialType: string(data.SocialType),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
