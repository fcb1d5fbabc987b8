package serviceImp

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"krishi/database/dbtest"
	"krishi/entities"
	"krishi/pkg/apperr"
	"krishi/pkg/pest/classifier"
	"krishi/pkg/pest/repositoryImp"
)

var png = []byte{0x89, 'P', 'N', 'G', '\r', '\n'}

func first(int) int { return 0 }

func TestDetectStoresClassifiesAndLogs(t *testing.T) {
	db := dbtest.New(t)
	repo := repositoryImp.New(db)
	var saved []byte
	svc := New(repo, okStore(&saved), classifier.NewMock(first), zap.NewNop())

	d, err := svc.Detect(context.Background(), 5, base64.StdEncoding.EncodeToString(png))
	require.NoError(t, err)
	assert.Equal(t, "Aphids", d.Name)
	assert.Equal(t, 85, d.Confidence)
	assert.Equal(t, png, saved)

	hist, err := svc.History(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "pest_5_20240102_030405.png", hist[0].ImagePath)
	assert.Equal(t, 85.0, hist[0].ConfidenceScore)
	assert.Equal(t, "Use neem oil spray\nIntroduce ladybugs as natural predators\nRemove affected leaves\nApply insecticidal soap",
		hist[0].Recommendations)

	assert.Zero(t, dbtest.InUse(t, db))
}

func TestDetectAcceptsDataURL(t *testing.T) {
	var saved []byte
	svc := New(&repoMock{create: func(context.Context, *entities.PestDetection) error { return nil }},
		okStore(&saved), classifier.NewMock(first), zap.NewNop())

	_, err := svc.Detect(context.Background(), 1, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(png))
	require.NoError(t, err)
	assert.Equal(t, png, saved)
}

func TestDetectAcceptsWrappedBase64(t *testing.T) {
	img := make([]byte, 120)
	for i := range img {
		img[i] = byte(i)
	}
	enc := base64.StdEncoding.EncodeToString(img)
	var wrapped strings.Builder
	for i := 0; i < len(enc); i += 76 {
		end := min(i+76, len(enc))
		wrapped.WriteString(enc[i:end])
		wrapped.WriteString("\r\n ")
	}

	var saved []byte
	svc := New(&repoMock{create: func(context.Context, *entities.PestDetection) error { return nil }},
		okStore(&saved), classifier.NewMock(first), zap.NewNop())

	_, err := svc.Detect(context.Background(), 1, "data:image/png;base64,\n"+wrapped.String())
	require.NoError(t, err)
	assert.Equal(t, img, saved)
}

func TestDetectInputErrors(t *testing.T) {
	calls := 0
	store := &storeMock{save: func(context.Context, uint, []byte) (string, error) { calls++; return "x", nil }}
	svc := New(&repoMock{}, store, classifier.NewMock(first), zap.NewNop())

	for name, tc := range map[string]struct {
		image any
		want  error
	}{
		"absent":      {nil, apperr.ErrMissingImage},
		"empty":       {"", apperr.ErrMissingImage},
		"only spaces": {"  \n\t ", apperr.ErrInvalidImageData},
		"not base64":  {"%%%not-base64%%%", apperr.ErrInvalidImageData},
		"unpadded":    {"iVBORw", apperr.ErrInvalidImageData},
		"number":      {42.0, apperr.ErrInvalidImageData},
		"object":      {map[string]any{"a": 1}, apperr.ErrInvalidImageData},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Detect(context.Background(), 1, tc.image)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 400, apperr.Status(err))
		})
	}
	assert.Zero(t, calls, "nothing is stored for rejected input")
}

func TestDetectFailuresAreInternal(t *testing.T) {
	img := base64.StdEncoding.EncodeToString(png)

	failingStore := &storeMock{save: func(context.Context, uint, []byte) (string, error) {
		return "", errors.New("disk full")
	}}
	_, err := New(&repoMock{}, failingStore, classifier.NewMock(first), zap.NewNop()).
		Detect(context.Background(), 1, img)
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, 500, apperr.Status(err))

	var saved []byte
	failingRepo := &repoMock{create: func(context.Context, *entities.PestDetection) error {
		return errors.New("database is locked")
	}}
	_, err = New(failingRepo, okStore(&saved), classifier.NewMock(first), zap.NewNop()).
		Detect(context.Background(), 1, img)
	assert.ErrorContains(t, err, "database is locked")
	assert.Equal(t, 500, apperr.Status(err))
}
