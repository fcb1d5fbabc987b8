package service

import (
	"context"

	"krishi/entities"
	"krishi/pkg/pest/classifier"
)

type PestService interface {
	// Detect decodes a base64 image, stores it, classifies it and logs the
	// result. image is the raw "image" field of the request payload.
	Detect(ctx context.Context, userID uint, image any) (classifier.Diagnosis, error)
	History(ctx context.Context, userID uint) ([]entities.PestDetection, error)
}
