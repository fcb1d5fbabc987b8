package repository

import (
	"context"

	"krishi/entities"
)

type PriceRepository interface {
	// Find returns the rows for (state, crop) ordered by market name.
	Find(ctx context.Context, state, crop string) ([]entities.MarketPrice, error)
	// Seed inserts rows for every (state, crop) pair that has none yet and
	// reports how many rows were written.
	Seed(ctx context.Context, rows []entities.MarketPrice) (int, error)
}
