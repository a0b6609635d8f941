// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"community/internal/domain/entity"
	"community/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the persistence operations the identity flow needs.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	// Returns ErrUserNotFound when no record carries the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and returns the stored record with its assigned ID.
	// A second record with the same email fails with domainerrors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
}
