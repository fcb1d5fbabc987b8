package service

import (
	"context"

	"krishi/pkg/market"
)

type PriceService interface {
	// Prices never fails: store errors are logged and answered from the
	// fallback table, flagged by market.SourceMock.
	Prices(ctx context.Context, state, crop string) ([]market.PriceRow, market.Source)
}
