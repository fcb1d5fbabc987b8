package serviceImp

import (
	"context"

	"go.uber.org/zap"

	"krishi/pkg/market"
	"krishi/pkg/market/repository"
	"krishi/pkg/market/service"
)

type priceService struct {
	repo     repository.PriceRepository
	fallback market.Table
	log      *zap.Logger
}

func New(repo repository.PriceRepository, fallback market.Table, log *zap.Logger) service.PriceService {
	if fallback == nil {
		fallback = market.Table{}
	}
	return &priceService{repo: repo, fallback: fallback, log: log.Named("market")}
}

func (s *priceService) Prices(ctx context.Context, state, crop string) ([]market.PriceRow, market.Source) {
	rows, err := s.repo.Find(ctx, state, crop)
	if err != nil {
		s.log.Warn("price lookup failed, serving fallback",
			zap.String("state", state), zap.String("crop", crop), zap.Error(err))
		return s.fallback.Lookup(state, crop), market.SourceMock
	}
	if len(rows) == 0 {
		return s.fallback.Lookup(state, crop), market.SourceStore
	}
	out := make([]market.PriceRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, market.FromEntity(r))
	}
	return out, market.SourceStore
}
