package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(period domain.TimePeriod, avg *float64, confidence float64) contract.TimeSlot {
	start, end, _ := domain.PeriodHours(period)
	day := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	return contract.TimeSlot{
		Start:       time.Date(day.Year(), day.Month(), day.Day(), start, 0, 0, 0, time.UTC),
		End:         time.Date(day.Year(), day.Month(), day.Day(), end, 0, 0, 0, time.UTC),
		Period:      period,
		EnergyLevel: avg,
		Confidence:  confidence,
		Available:   true,
	}
}

func avg(v float64) *float64 { return &v }

func TestTierFor_HighRequirement(t *testing.T) {
	cases := []struct {
		avg   float64
		score float64
		match domain.EnergyMatch
	}{
		{4.8, TierExcellent, domain.MatchExcellent},
		{4.5, TierExcellent, domain.MatchExcellent},
		{4.2, TierGood, domain.MatchGood},
		{3.5, TierFair, domain.MatchFair},
		{2.0, TierPoor, domain.MatchPoor},
	}
	for _, tc := range cases {
		score, match := tierFor(domain.RequirementHigh, &tc.avg)
		assert.Equal(t, tc.score, score, "avg=%.1f", tc.avg)
		assert.Equal(t, tc.match, match, "avg=%.1f", tc.avg)
	}
}

func TestTierFor_LowRequirementPrefersLowEnergy(t *testing.T) {
	cases := []struct {
		avg   float64
		match domain.EnergyMatch
	}{
		{2.0, domain.MatchExcellent},
		{3.0, domain.MatchGood},
		{4.2, domain.MatchFair},
		{4.8, domain.MatchPoor},
	}
	for _, tc := range cases {
		_, match := tierFor(domain.RequirementLow, &tc.avg)
		assert.Equal(t, tc.match, match, "avg=%.1f", tc.avg)
	}
}

func TestTierFor_UnknownEnergyNeutral(t *testing.T) {
	score, match := tierFor(domain.RequirementHigh, nil)
	assert.Equal(t, NeutralSlotScore, score)
	assert.Equal(t, domain.MatchFair, match)
}

func TestFindBestSlot_HighTaskPicksPeak(t *testing.T) {
	slots := []contract.TimeSlot{
		slot(domain.PeriodMorning, avg(4.6), 0.8),
		slot(domain.PeriodMidday, avg(3.4), 0.8),
		slot(domain.PeriodAfternoon, avg(2.8), 0.8),
	}
	task := taskWith(domain.PriorityHigh, "Draft pitch deck")

	match, ok := FindBestSlot(task, slots)
	require.True(t, ok)
	assert.Equal(t, 0, match.SlotIndex)
	assert.Equal(t, domain.PeriodMorning, match.Period)
	assert.Equal(t, domain.MatchExcellent, match.Match)
}

func TestFindBestSlot_LowTaskInHighEnergySlotCapsAtFair(t *testing.T) {
	slots := []contract.TimeSlot{slot(domain.PeriodMorning, avg(4.8), 0.9)}
	est := 20
	task := taskWith(domain.PriorityLow, "Sort inbox")
	task.EstimatedMin = &est

	match, ok := FindBestSlot(task, slots)
	require.True(t, ok)
	assert.NotEqual(t, domain.MatchExcellent, match.Match)
	assert.NotEqual(t, domain.MatchGood, match.Match)
}

func TestFindBestSlot_SkipsUnavailable(t *testing.T) {
	blocked := slot(domain.PeriodMorning, avg(4.8), 0.9)
	blocked.Available = false
	slots := []contract.TimeSlot{blocked, slot(domain.PeriodMidday, avg(3.8), 0.5)}

	match, ok := FindBestSlot(taskWith(domain.PriorityHigh, "x"), slots)
	require.True(t, ok)
	assert.Equal(t, 1, match.SlotIndex)
}

func TestFindBestSlot_NoneAvailable(t *testing.T) {
	blocked := slot(domain.PeriodMorning, avg(4.8), 0.9)
	blocked.Available = false
	_, ok := FindBestSlot(taskWith(domain.PriorityHigh, "x"), []contract.TimeSlot{blocked})
	assert.False(t, ok)
}

func TestFindBestSlot_TieBreaksByPeriodOrder(t *testing.T) {
	// Identical averages and confidence: the earlier period wins.
	slots := []contract.TimeSlot{
		slot(domain.PeriodMorning, avg(4.0), 0.5),
		slot(domain.PeriodMidday, avg(4.0), 0.5),
	}
	match, ok := FindBestSlot(taskWith(domain.PriorityHigh, "x"), slots)
	require.True(t, ok)
	assert.Equal(t, domain.PeriodMorning, match.Period)
}

func TestFindBestSlot_ConfidenceBreaksNearTies(t *testing.T) {
	slots := []contract.TimeSlot{
		slot(domain.PeriodMorning, avg(4.0), 0.1),
		slot(domain.PeriodMidday, avg(4.0), 0.9),
	}
	match, ok := FindBestSlot(taskWith(domain.PriorityHigh, "x"), slots)
	require.True(t, ok)
	assert.Equal(t, domain.PeriodMidday, match.Period, "higher confidence wins at equal tier")
}
