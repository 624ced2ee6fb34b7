package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/alexanderramin/pulseplan/internal/repository"
	"github.com/alexanderramin/pulseplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInService_LogDerivesAndValidates(t *testing.T) {
	checkIns, _, _ := setupRepos(t)
	svc := NewCheckInService(checkIns)
	ctx := context.Background()

	c := &domain.EnergyCheckIn{
		UserID:     "u-1",
		Level:      4,
		RecordedAt: time.Date(2025, 6, 16, 8, 30, 0, 0, time.UTC),
	}
	require.NoError(t, svc.Log(ctx, c))
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.PeriodMorning, c.Period)
	assert.Equal(t, int(time.Monday), c.DayOfWeek)

	bad := &domain.EnergyCheckIn{UserID: "u-1", Level: 9}
	assert.Error(t, svc.Log(ctx, bad))
}

func TestCheckInService_ListRecentDefaultsToSevenDays(t *testing.T) {
	checkIns, _, _ := setupRepos(t)
	svc := NewCheckInService(checkIns)
	ctx := context.Background()

	now := time.Now().UTC()
	recent := testutil.NewTestCheckIn("u-1", 4, now.AddDate(0, 0, -2))
	stale := testutil.NewTestCheckIn("u-1", 2, now.AddDate(0, 0, -10))
	require.NoError(t, checkIns.Create(ctx, recent))
	require.NoError(t, checkIns.Create(ctx, stale))

	got, err := svc.ListRecent(ctx, "u-1", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, recent.ID, got[0].ID)
}

func TestTaskService_CreateAppliesDefaults(t *testing.T) {
	_, tasks, _ := setupRepos(t)
	svc := NewTaskService(tasks)
	ctx := context.Background()

	task := &domain.Task{UserID: "u-1", Title: "Ship release notes"}
	require.NoError(t, svc.Create(ctx, task))
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, domain.TaskPending, task.Status)

	missing := &domain.Task{UserID: "u-1"}
	assert.Error(t, svc.Create(ctx, missing), "title is required")
}

func TestTaskService_CompleteRemovesFromPending(t *testing.T) {
	_, tasks, _ := setupRepos(t)
	svc := NewTaskService(tasks)
	ctx := context.Background()

	task := &domain.Task{UserID: "u-1", Title: "Finish draft"}
	require.NoError(t, svc.Create(ctx, task))

	done, err := svc.Complete(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, done.Status)

	pending, err := svc.ListPending(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestTaskService_UpdatePatchesFields(t *testing.T) {
	_, tasks, _ := setupRepos(t)
	svc := NewTaskService(tasks)
	ctx := context.Background()

	task := &domain.Task{UserID: "u-1", Title: "Draft"}
	require.NoError(t, svc.Create(ctx, task))

	high := domain.PriorityHigh
	updated, err := svc.Update(ctx, task.ID, domain.TaskPatch{Priority: &high})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
	assert.Equal(t, "Draft", updated.Title)

	_, err = svc.Update(ctx, "nope", domain.TaskPatch{Priority: &high})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestConstraintService_ListFallsBackToDefaults(t *testing.T) {
	_, _, constraints := setupRepos(t)
	svc := NewConstraintService(constraints)
	ctx := context.Background()

	got, err := svc.List(ctx, "u-1")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, domain.ConstraintMeetingBuffer, got[0].Type)

	stored := &domain.SchedulingConstraint{
		UserID:   "u-1",
		Type:     domain.ConstraintFocusBlock,
		Value:    domain.ConstraintValue{StartHour: 9, EndHour: 11},
		Priority: 1,
		Active:   true,
	}
	require.NoError(t, svc.Set(ctx, stored))

	got, err = svc.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, got, 1, "stored constraints replace the defaults")
	assert.Equal(t, domain.ConstraintFocusBlock, got[0].Type)
}

func TestConstraintService_SetRejectsInvalid(t *testing.T) {
	_, _, constraints := setupRepos(t)
	svc := NewConstraintService(constraints)

	bad := &domain.SchedulingConstraint{
		UserID: "u-1",
		Type:   domain.ConstraintNoMeetingsBefore,
		Value:  domain.ConstraintValue{Hour: 30},
		Active: true,
	}
	assert.Error(t, svc.Set(context.Background(), bad))
}

func TestConstraintService_Remove(t *testing.T) {
	_, _, constraints := setupRepos(t)
	svc := NewConstraintService(constraints)
	ctx := context.Background()

	c := &domain.SchedulingConstraint{
		UserID:   "u-1",
		Type:     domain.ConstraintMeetingBuffer,
		Value:    domain.ConstraintValue{BufferMin: 30},
		Priority: 1,
		Active:   true,
	}
	require.NoError(t, svc.Set(ctx, c))
	require.NoError(t, svc.Remove(ctx, "u-1", domain.ConstraintMeetingBuffer))
	assert.ErrorIs(t, svc.Remove(ctx, "u-1", domain.ConstraintMeetingBuffer), repository.ErrNotFound)
}

func TestProfileService_GetReflectsCheckIns(t *testing.T) {
	checkIns, _, _ := setupRepos(t)
	svc := NewProfileService(checkIns)
	ctx := context.Background()

	now := time.Now().UTC()
	for day := 1; day <= 5; day++ {
		at := now.AddDate(0, 0, -day)
		morning := time.Date(at.Year(), at.Month(), at.Day(), 8, 0, 0, 0, time.UTC)
		require.NoError(t, checkIns.Create(ctx, testutil.NewTestCheckIn("u-1", 5, morning)))
	}

	profile, err := svc.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, 5, profile.TotalCheckIns)
	require.NotNil(t, profile.PeakPeriod)
	assert.Equal(t, domain.PeriodMorning, *profile.PeakPeriod)
	assert.Greater(t, profile.Strength, 0.0)
}

func TestProfileService_GetEmptyHistory(t *testing.T) {
	checkIns, _, _ := setupRepos(t)
	svc := NewProfileService(checkIns)

	profile, err := svc.Get(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Zero(t, profile.TotalCheckIns)
	assert.Nil(t, profile.PeakPeriod)
	assert.Equal(t, domain.TrendInsufficientData, profile.WeeklyTrend)
}
