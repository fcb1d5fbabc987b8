package service

import (
	"context"

	"krishi/entities"
)

type RegisterInput struct {
	Name              string
	Email             string
	Mobile            string
	Password          string
	PreferredLanguage string
}

type AuthService interface {
	// Register stores a new user. A taken email yields apperr.ErrDuplicateEmail.
	Register(ctx context.Context, in RegisterInput) error
	// Login returns a signed access token, or apperr.ErrInvalidCredentials for
	// both an unknown email and a wrong password.
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID uint) (entities.PublicUser, error)
}
