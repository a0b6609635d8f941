package usecase

import "context"

// SeedUsecase creates the configured local accounts.
type SeedUsecase interface {
	// SeedLocalUsers creates every configured account whose email is not registered yet.
	// It returns the number of accounts created.
	SeedLocalUsers(ctx context.Context) (int, error)
}
