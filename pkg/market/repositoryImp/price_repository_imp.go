package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"krishi/entities"
	"krishi/pkg/market/repository"
)

type priceRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PriceRepository { return &priceRepo{db} }

func (r *priceRepo) Find(ctx context.Context, state, crop string) ([]entities.MarketPrice, error) {
	var out []entities.MarketPrice
	err := r.db.WithContext(ctx).
		Where("state = ? AND crop_name = ?", state, crop).
		Order("market asc, id asc").
		Find(&out).Error
	return out, err
}

func (r *priceRepo) Seed(ctx context.Context, rows []entities.MarketPrice) (int, error) {
	written := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seen := map[[2]string]bool{}
		for _, row := range rows {
			key := [2]string{row.State, row.CropName}
			if _, done := seen[key]; !done {
				var n int64
				if err := tx.Model(&entities.MarketPrice{}).
					Where("state = ? AND crop_name = ?", row.State, row.CropName).
					Count(&n).Error; err != nil {
					return err
				}
				seen[key] = n == 0
			}
			if !seen[key] {
				continue
			}
			row.ID = 0
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}
