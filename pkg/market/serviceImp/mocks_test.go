package serviceImp

import (
	"context"

	"krishi/entities"
)

type repoMock struct {
	find func(ctx context.Context, state, crop string) ([]entities.MarketPrice, error)
}

func (m *repoMock) Find(ctx context.Context, state, crop string) ([]entities.MarketPrice, error) {
	return m.find(ctx, state, crop)
}

func (m *repoMock) Seed(context.Context, []entities.MarketPrice) (int, error) { return 0, nil }
