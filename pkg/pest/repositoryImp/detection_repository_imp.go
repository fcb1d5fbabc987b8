package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"krishi/entities"
	"krishi/pkg/pest/repository"
)

type detectionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DetectionRepository { return &detectionRepo{db} }

func (r *detectionRepo) Create(ctx context.Context, d *entities.PestDetection) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *detectionRepo) ListByUser(ctx context.Context, userID uint, limit int) ([]entities.PestDetection, error) {
	out := []entities.PestDetection{}
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
