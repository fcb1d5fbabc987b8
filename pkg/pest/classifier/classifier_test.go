package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockPicksFromCatalog(t *testing.T) {
	want := map[string]int{"Aphids": 85, "Spider Mites": 78, "No Pest Detected": 90}
	for i := 0; i < 3; i++ {
		d, err := NewMock(func(int) int { return i }).Classify(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, want[d.Name], d.Confidence, d.Name)
		assert.NotEmpty(t, d.Recommendations)
	}
}

func TestMockDefaultRandomStaysInCatalog(t *testing.T) {
	c := NewMock(nil)
	names := map[string]bool{}
	for _, d := range Catalog() {
		names[d.Name] = true
	}
	for i := 0; i < 50; i++ {
		d, err := c.Classify(context.Background(), []byte("img"))
		require.NoError(t, err)
		assert.True(t, names[d.Name], d.Name)
	}
}

func TestMockResultIsACopy(t *testing.T) {
	c := NewMock(func(int) int { return 0 })
	d, _ := c.Classify(context.Background(), nil)
	d.Recommendations[0] = "changed"
	again, _ := c.Classify(context.Background(), nil)
	assert.Equal(t, "Use neem oil spray", again.Recommendations[0])
}

func TestMockHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMock(nil).Classify(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
