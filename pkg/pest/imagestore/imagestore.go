// Package imagestore persists uploaded pest images.
package imagestore

import (
	"context"
	"fmt"
	"time"
)

type Store interface {
	// Save writes the image and returns the name it was stored under.
	Save(ctx context.Context, userID uint, data []byte) (string, error)
}

// FileName is pest_<user>_<YYYYMMDD_HHMMSS>.png in local time. Two uploads by
// the same user within one second share a name and the later one wins.
func FileName(userID uint, at time.Time) string {
	return fmt.Sprintf("pest_%d_%s.png", userID, at.Format("20060102_150405"))
}
