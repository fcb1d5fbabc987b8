package imagestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type local struct {
	dir string
	now func() time.Time
}

// NewLocal stores images under dir, creating it on first save.
func NewLocal(dir string, now func() time.Time) Store {
	if now == nil {
		now = time.Now
	}
	return &local{dir: dir, now: now}
}

func (s *local) Save(ctx context.Context, userID uint, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := FileName(userID, s.now())
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}
