package repository

import (
	"context"

	"krishi/entities"
)

// UserRepository is the credential store. Lookups that miss return an error
// wrapping apperr.ErrNotFound; an insert hitting the unique email index returns
// one wrapping apperr.ErrDuplicateEmail.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	Create(ctx context.Context, u *entities.User) error
}
