package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dealerdrive-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCarRepo(t *testing.T) (*FileCarRepository, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := NewFileCarRepository(dir)
	require.NoError(t, err)
	return repo, dir
}

func TestFileCarRepository_SeedsMissingFile(t *testing.T) {
	repo, dir := newTestCarRepo(t)

	cars, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cars, 6)
	assert.Equal(t, "Tesla Model S Plaid", cars[0].Name)
	assert.FileExists(t, filepath.Join(dir, "cars.json"))
}

func TestFileCarRepository_CorruptFileFailsSoft(t *testing.T) {
	repo, dir := newTestCarRepo(t)
	path := filepath.Join(dir, "cars.json")

	garbage := []byte("{this is not json")
	require.NoError(t, os.WriteFile(path, garbage, 0o644))

	cars, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cars, 6)

	// The corrupt file must be left untouched for inspection.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, garbage, data)
}

func TestFileCarRepository_CreateAssignsUniqueSequentialIDs(t *testing.T) {
	repo, _ := newTestCarRepo(t)
	ctx := context.Background()

	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		created, err := repo.Create(ctx, model.Car{Name: "Test Car", Price: 10000, Year: 2020})
		require.NoError(t, err)
		assert.False(t, seen[created.ID], "id %d assigned twice", created.ID)
		seen[created.ID] = true
		assert.NotEmpty(t, created.CreatedAt)
	}

	// Seed catalog tops out at id 6.
	assert.True(t, seen[7] && seen[8] && seen[9], "expected ids 7..9, got %v", seen)
}

func TestFileCarRepository_RoundTrip(t *testing.T) {
	repo, dir := newTestCarRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Car{
		Name: "Test Car", Price: 10000, Year: 2020,
		Mileage: "30 MPG", FuelType: "Gasoline", Transmission: "Manual",
	})
	require.NoError(t, err)

	// A fresh repository over the same directory must read back the exact
	// same collection.
	reopened, err := NewFileCarRepository(dir)
	require.NoError(t, err)

	before, err := repo.List(ctx)
	require.NoError(t, err)
	after, err := reopened.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, created, after[len(after)-1])
}

func TestFileCarRepository_ListIsIdempotent(t *testing.T) {
	repo, _ := newTestCarRepo(t)
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFileCarRepository_UpdateMergesPartialFields(t *testing.T) {
	repo, _ := newTestCarRepo(t)
	ctx := context.Background()

	price := 69900.0
	updated, err := repo.Update(ctx, 2, model.CarUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 69900.0, updated.Price)
	// Untouched fields survive the merge.
	assert.Equal(t, "BMW M4 Competition", updated.Name)
	assert.Equal(t, "23 MPG", updated.Mileage)
}

func TestFileCarRepository_UpdateMissingIDLeavesCollectionUnchanged(t *testing.T) {
	repo, _ := newTestCarRepo(t)
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	price := 5000.0
	_, err = repo.Update(ctx, 999, model.CarUpdate{Price: &price})
	assert.ErrorIs(t, err, ErrNotFound)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFileCarRepository_Delete(t *testing.T) {
	repo, _ := newTestCarRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 3))

	cars, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cars, 5)
	for _, c := range cars {
		assert.NotEqual(t, 3, c.ID)
	}

	assert.ErrorIs(t, repo.Delete(ctx, 3), ErrNotFound)
}

func TestFileEnquiryRepository_SeedsEmptyCollection(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileEnquiryRepository(dir)
	require.NoError(t, err)

	enquiries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, enquiries)
	assert.FileExists(t, filepath.Join(dir, "enquiries.json"))
}

func TestFileEnquiryRepository_CreateStampsIDAndSubmittedAt(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileEnquiryRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Enquiry{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "555-0100",
		Message: "Is the M4 still available?",
		CarName: "BMW M4 Competition",
		CarID:   "2",
		// Client-supplied values must be overridden.
		ID:          42,
		SubmittedAt: "2001-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	submitted, err := time.Parse(time.RFC3339, created.SubmittedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), submitted, time.Minute)
}

func TestFileEnquiryRepository_DeleteTwice(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileEnquiryRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Enquiry{Name: "Jane Doe"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrNotFound)

	enquiries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, enquiries)
}
