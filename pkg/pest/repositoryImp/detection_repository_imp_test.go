package repositoryImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/database/dbtest"
	"krishi/entities"
)

func TestListByUserIsScopedAndNewestFirst(t *testing.T) {
	db := dbtest.New(t)
	r := New(db)
	ctx := context.Background()

	for _, d := range []entities.PestDetection{
		{UserID: 1, PestName: "Aphids", ImagePath: "a.png"},
		{UserID: 2, PestName: "Spider Mites", ImagePath: "b.png"},
		{UserID: 1, PestName: "No Pest Detected", ImagePath: "c.png"},
	} {
		require.NoError(t, r.Create(ctx, &d))
	}

	got, err := r.ListByUser(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c.png", got[0].ImagePath)
	assert.Equal(t, "a.png", got[1].ImagePath)

	got, err = r.ListByUser(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = r.ListByUser(ctx, 99, 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Zero(t, dbtest.InUse(t, db))
}
