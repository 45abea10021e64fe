package repository

import (
	"context"
	"testing"

	"dealerdrive-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCarRepository_SeedsOnFirstAccess(t *testing.T) {
	repo := NewMemoryCarRepository()

	cars, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cars, 6)
}

func TestMemoryCarRepository_CreateAssignsUniqueIDs(t *testing.T) {
	repo := NewMemoryCarRepository()
	ctx := context.Background()

	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		created, err := repo.Create(ctx, model.Car{Name: "Test Car"})
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "id %d assigned twice", created.ID)
		seen[created.ID] = true
	}
}

func TestMemoryCarRepository_UpdateAndDeleteMissingID(t *testing.T) {
	repo := NewMemoryCarRepository()
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	name := "Ghost"
	_, err = repo.Update(ctx, 999, model.CarUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 999), ErrNotFound)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMemoryCarRepository_ListReturnsACopy(t *testing.T) {
	repo := NewMemoryCarRepository()
	ctx := context.Background()

	cars, err := repo.List(ctx)
	require.NoError(t, err)
	cars[0].Name = "mutated"

	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tesla Model S Plaid", fresh[0].Name)
}

func TestMemoryEnquiryRepository_Lifecycle(t *testing.T) {
	repo := NewMemoryEnquiryRepository()
	ctx := context.Background()

	enquiries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, enquiries)

	created, err := repo.Create(ctx, model.Enquiry{Name: "Jane Doe", CarID: "2"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.NotEmpty(t, created.SubmittedAt)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrNotFound)
}
