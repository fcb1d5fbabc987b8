package serviceImp

import (
	"context"
	"time"

	"krishi/entities"
	"krishi/pkg/pest/imagestore"
)

type storeMock struct {
	save func(ctx context.Context, userID uint, data []byte) (string, error)
}

func (m *storeMock) Save(ctx context.Context, userID uint, data []byte) (string, error) {
	return m.save(ctx, userID, data)
}

func okStore(saved *[]byte) *storeMock {
	return &storeMock{save: func(_ context.Context, userID uint, data []byte) (string, error) {
		*saved = data
		return imagestore.FileName(userID, time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)), nil
	}}
}

type repoMock struct {
	create func(ctx context.Context, d *entities.PestDetection) error
}

func (m *repoMock) Create(ctx context.Context, d *entities.PestDetection) error {
	return m.create(ctx, d)
}

func (m *repoMock) ListByUser(context.Context, uint, int) ([]entities.PestDetection, error) {
	return nil, nil
}
