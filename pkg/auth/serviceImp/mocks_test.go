package serviceImp

import (
	"context"

	"krishi/entities"
)

type repoMock struct {
	findByEmail func(ctx context.Context, email string) (*entities.User, error)
	findByID    func(ctx context.Context, id uint) (*entities.User, error)
	create      func(ctx context.Context, u *entities.User) error
}

func (m *repoMock) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return m.findByEmail(ctx, email)
}

func (m *repoMock) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	return m.findByID(ctx, id)
}

func (m *repoMock) Create(ctx context.Context, u *entities.User) error { return m.create(ctx, u) }
