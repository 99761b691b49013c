package trip

import (
	"context"
	"testing"
	"time"

	"github.com/rodalog/rodalog/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) (*TripRepoImpl, context.Context) {
	db := test_utils.SetupTestDB(t)
	return NewTripRepo(db), context.Background()
}

func storedTrip(t *testing.T, repo *TripRepoImpl, ctx context.Context, date time.Time, createdAt time.Time) Trip {
	t.Helper()
	trip := validTrip(date)
	trip.FuelCost = d("50.00")
	trip.Profit = d("150.00")
	trip.CreatedAt = createdAt
	stored, err := repo.Store(ctx, trip)
	require.NoError(t, err)
	return stored
}

func TestTripRepo_StoreAndGetAll(t *testing.T) {
	repo, ctx := setupTestRepository(t)
	createdAt := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	// given
	stored := storedTrip(t, repo, ctx, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), createdAt)

	// when
	trips, err := repo.GetAll(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, stored.ID, trips[0].ID)
	assert.Equal(t, "2025-03-10", trips[0].Date.Format(dateFormat))
	assert.Equal(t, "200.00", trips[0].AmountReceived.StringFixed(2))
	assert.Equal(t, "100.00", trips[0].DistanceKm.StringFixed(2))
	assert.Equal(t, "50.00", trips[0].FuelCost.StringFixed(2))
	assert.Equal(t, "150.00", trips[0].Profit.StringFixed(2))
	assert.Equal(t, createdAt.UnixMilli(), trips[0].CreatedAt.UnixMilli())
}

func TestTripRepo_GetAll_SortsByDateDescending(t *testing.T) {
	repo, ctx := setupTestRepository(t)
	createdAt := time.Date(2025, time.March, 20, 8, 0, 0, 0, time.UTC)

	older := storedTrip(t, repo, ctx, time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC), createdAt)
	newest := storedTrip(t, repo, ctx, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), createdAt)
	// same date as newest, inserted later
	tieBreaker := storedTrip(t, repo, ctx, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), createdAt.Add(time.Minute))

	trips, err := repo.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, trips, 3)
	assert.Equal(t, tieBreaker.ID, trips[0].ID)
	assert.Equal(t, newest.ID, trips[1].ID)
	assert.Equal(t, older.ID, trips[2].ID)
}

func TestTripRepo_GetByMonth(t *testing.T) {
	repo, ctx := setupTestRepository(t)
	createdAt := time.Date(2025, time.March, 20, 8, 0, 0, 0, time.UTC)

	inMonth := storedTrip(t, repo, ctx, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), createdAt)
	lastDay := storedTrip(t, repo, ctx, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), createdAt)
	storedTrip(t, repo, ctx, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), createdAt)
	storedTrip(t, repo, ctx, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), createdAt)

	trips, err := repo.GetByMonth(ctx, 2025, time.March)

	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, lastDay.ID, trips[0].ID)
	assert.Equal(t, inMonth.ID, trips[1].ID)
}

func TestTripRepo_Update(t *testing.T) {
	repo, ctx := setupTestRepository(t)
	createdAt := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	stored := storedTrip(t, repo, ctx, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), createdAt)

	stored.DistanceKm = d("200")
	stored.FuelCost = d("100.00")
	stored.Profit = d("100.00")
	updated, err := repo.Update(ctx, stored)

	require.NoError(t, err)
	assert.True(t, updated)

	trips, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "200.00", trips[0].DistanceKm.StringFixed(2))
	assert.Equal(t, "100.00", trips[0].FuelCost.StringFixed(2))
	assert.Equal(t, "100.00", trips[0].Profit.StringFixed(2))
}

func TestTripRepo_Update_UnknownId(t *testing.T) {
	repo, ctx := setupTestRepository(t)

	unknown := validTrip(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	unknown.ID = "does-not-exist"
	updated, err := repo.Update(ctx, unknown)

	require.NoError(t, err)
	assert.False(t, updated)
}

func TestTripRepo_Delete(t *testing.T) {
	repo, ctx := setupTestRepository(t)
	createdAt := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	stored := storedTrip(t, repo, ctx, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), createdAt)

	deleted, err := repo.Delete(ctx, stored.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, stored.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
