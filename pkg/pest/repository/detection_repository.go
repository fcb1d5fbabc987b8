package repository

import (
	"context"

	"krishi/entities"
)

type DetectionRepository interface {
	Create(ctx context.Context, d *entities.PestDetection) error
	// ListByUser returns the user's detections, newest first.
	ListByUser(ctx context.Context, userID uint, limit int) ([]entities.PestDetection, error)
}
