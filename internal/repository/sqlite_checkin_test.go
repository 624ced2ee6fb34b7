package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/alexanderramin/pulseplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var repoNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestCheckInRepo_CreateAndListSince(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCheckInRepo(database)
	ctx := context.Background()

	older := testutil.NewTestCheckIn("u-1", 3, repoNow.AddDate(0, 0, -10))
	newer := testutil.NewTestCheckIn("u-1", 5, repoNow.AddDate(0, 0, -1), testutil.WithTags("coffee", "slept-well"))
	ancient := testutil.NewTestCheckIn("u-1", 2, repoNow.AddDate(0, 0, -40))
	other := testutil.NewTestCheckIn("u-2", 4, repoNow.AddDate(0, 0, -1))

	for _, c := range []*domain.EnergyCheckIn{older, newer, ancient, other} {
		require.NoError(t, repo.Create(ctx, c))
	}

	got, err := repo.ListSince(ctx, "u-1", repoNow.AddDate(0, 0, -28))
	require.NoError(t, err)
	require.Len(t, got, 2, "only u-1 check-ins inside the window")

	assert.Equal(t, newer.ID, got[0].ID, "newest first")
	assert.Equal(t, older.ID, got[1].ID)
	assert.Equal(t, 5, got[0].Level)
	assert.Equal(t, domain.PeriodMidday, got[0].Period)
	assert.Equal(t, newer.DayOfWeek, got[0].DayOfWeek)
	assert.Equal(t, []string{"coffee", "slept-well"}, got[0].Tags)
	assert.True(t, got[0].RecordedAt.Equal(newer.RecordedAt))
}

func TestCheckInRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCheckInRepo(database)
	ctx := context.Background()

	c := testutil.NewTestCheckIn("u-1", 4, repoNow)
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.Delete(ctx, c.ID))

	got, err := repo.ListSince(ctx, "u-1", repoNow.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, got)

	err = repo.Delete(ctx, c.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckInRepo_CountToday(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCheckInRepo(database)
	ctx := context.Background()

	sameDay := []time.Time{
		repoNow.Add(-3 * time.Hour),
		repoNow.Add(-1 * time.Hour),
		repoNow.Add(2 * time.Hour),
	}
	for _, at := range sameDay {
		require.NoError(t, repo.Create(ctx, testutil.NewTestCheckIn("u-1", 3, at)))
	}
	require.NoError(t, repo.Create(ctx, testutil.NewTestCheckIn("u-1", 3, repoNow.AddDate(0, 0, -1))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCheckIn("u-2", 3, repoNow)))

	count, err := repo.CountToday(ctx, "u-1", repoNow)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCheckInRepo_LevelConstraint(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCheckInRepo(database)

	bad := testutil.NewTestCheckIn("u-1", 3, repoNow)
	bad.Level = 7 // bypass fixture default to hit the CHECK constraint
	err := repo.Create(context.Background(), bad)
	require.Error(t, err)
}
