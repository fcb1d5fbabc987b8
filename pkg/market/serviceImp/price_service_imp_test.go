package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"krishi/entities"
	"krishi/pkg/market"
)

func TestPricesFromStore(t *testing.T) {
	repo := &repoMock{find: func(_ context.Context, state, crop string) ([]entities.MarketPrice, error) {
		assert.Equal(t, "TN", state)
		assert.Equal(t, "rice", crop)
		return []entities.MarketPrice{{ID: 3, State: "TN", CropName: "rice", Market: "Madurai", ModalPrice: 2300}}, nil
	}}
	rows, src := New(repo, market.DefaultTable(), zap.NewNop()).Prices(context.Background(), "TN", "rice")

	assert.Equal(t, market.SourceStore, src)
	assert.Equal(t, []market.PriceRow{{Market: "Madurai", ModalPrice: 2300}}, rows)
}

func TestPricesEmptyStoreUsesTable(t *testing.T) {
	repo := &repoMock{find: func(context.Context, string, string) ([]entities.MarketPrice, error) { return nil, nil }}
	svc := New(repo, market.DefaultTable(), zap.NewNop())

	rows, src := svc.Prices(context.Background(), "KA", "rice")
	assert.Equal(t, market.SourceStore, src)
	assert.Equal(t, market.DefaultTable().Lookup("KA", "rice"), rows)

	rows, src = svc.Prices(context.Background(), "XX", "rice")
	assert.Equal(t, market.SourceStore, src)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestPricesStoreErrorIsLoggedAndMocked(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	repo := &repoMock{find: func(context.Context, string, string) ([]entities.MarketPrice, error) {
		return nil, errors.New("no such table: market_prices")
	}}
	svc := New(repo, market.DefaultTable(), zap.New(core))

	rows, src := svc.Prices(context.Background(), "TN", "wheat")
	assert.Equal(t, market.SourceMock, src)
	assert.Len(t, rows, 2)
	assert.Equal(t, 1, logs.Len())

	rows, src = svc.Prices(context.Background(), "XX", "yy")
	assert.Equal(t, market.SourceMock, src)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}
