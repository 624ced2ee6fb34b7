package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// checkIn builds a derived check-in n days back at the given hour.
func checkIn(level, daysAgo, hour int) domain.EnergyCheckIn {
	at := profileNow.AddDate(0, 0, -daysAgo)
	at = time.Date(at.Year(), at.Month(), at.Day(), hour, 30, 0, 0, time.UTC)
	c := domain.EnergyCheckIn{UserID: "u-1", Level: level, RecordedAt: at}
	c.Derive()
	return c
}

func TestBuildProfile_Empty(t *testing.T) {
	p := BuildProfile(ProfileInput{UserID: "u-1", Now: profileNow})

	assert.Equal(t, 0, p.TotalCheckIns)
	assert.Nil(t, p.PeakPeriod)
	assert.Nil(t, p.LowPeriod)
	assert.Nil(t, p.LastCheckIn)
	assert.Equal(t, domain.TrendInsufficientData, p.WeeklyTrend)
	assert.Empty(t, p.Patterns)
	require.Len(t, p.Periods, 6)
	for _, pe := range p.Periods {
		assert.Nil(t, pe.Average, "period %s", pe.Period)
		assert.Zero(t, pe.Confidence, "period %s", pe.Period)
	}
}

func TestBuildProfile_WeightedAverage(t *testing.T) {
	// Two morning check-ins: most recent level 5 (weight 1.0), older level 3
	// (weight 0.9) => (5 + 2.7) / 1.9.
	checkIns := []domain.EnergyCheckIn{
		checkIn(5, 1, 8),
		checkIn(3, 2, 8),
	}
	p := BuildProfile(ProfileInput{UserID: "u-1", CheckIns: checkIns, Now: profileNow})

	morning := p.Estimate(domain.PeriodMorning)
	require.NotNil(t, morning.Average)
	assert.InDelta(t, (5.0+3.0*0.9)/1.9, *morning.Average, 1e-9)
	assert.Equal(t, 2, morning.DataPoints)
}

func TestBuildProfile_WindowExcludesOldCheckIns(t *testing.T) {
	checkIns := []domain.EnergyCheckIn{
		checkIn(5, 20, 8), // outside the 14-day window
	}
	p := BuildProfile(ProfileInput{UserID: "u-1", CheckIns: checkIns, Now: profileNow})

	assert.Nil(t, p.Estimate(domain.PeriodMorning).Average)
	assert.Equal(t, 1, p.TotalCheckIns, "old check-ins still count toward the total")
}

func TestBuildProfile_PeakAndLow(t *testing.T) {
	checkIns := []domain.EnergyCheckIn{
		checkIn(5, 1, 8),  // morning
		checkIn(4, 2, 8),  // morning
		checkIn(2, 1, 18), // evening
		checkIn(2, 2, 18), // evening
		checkIn(3, 1, 11), // midday
	}
	p := BuildProfile(ProfileInput{UserID: "u-1", CheckIns: checkIns, Now: profileNow})

	require.NotNil(t, p.PeakPeriod)
	require.NotNil(t, p.LowPeriod)
	assert.Equal(t, domain.PeriodMorning, *p.PeakPeriod)
	assert.Equal(t, domain.PeriodEvening, *p.LowPeriod)
}

func TestBuildProfile_BoundsInvariant(t *testing.T) {
	// A spread of levels and times; every average must stay in [1,5] and
	// every confidence in [0,1].
	var checkIns []domain.EnergyCheckIn
	for day := 0; day < 14; day++ {
		for _, hour := range []int{6, 8, 11, 14, 18, 22} {
			checkIns = append(checkIns, checkIn(1+(day+hour)%5, day, hour))
		}
	}
	p := BuildProfile(ProfileInput{UserID: "u-1", CheckIns: checkIns, Now: profileNow})

	for _, pe := range p.Periods {
		require.NotNil(t, pe.Average, "period %s", pe.Period)
		assert.GreaterOrEqual(t, *pe.Average, 1.0)
		assert.LessOrEqual(t, *pe.Average, 5.0)
		assert.GreaterOrEqual(t, pe.Confidence, 0.0)
		assert.LessOrEqual(t, pe.Confidence, 1.0)
	}
	assert.GreaterOrEqual(t, p.Strength, 0.0)
	assert.LessOrEqual(t, p.Strength, 100.0)
}

func TestBuildProfile_ConfidenceFactors(t *testing.T) {
	// Ten identical, recent morning check-ins: consistency 1 (variance 0),
	// quantity 1 (10/10), recency 1 (2+ in last 3 days) => confidence 1.
	var checkIns []domain.EnergyCheckIn
	for day := 1; day <= 10; day++ {
		checkIns = append(checkIns, checkIn(4, day, 8))
	}
	p := BuildProfile(ProfileInput{UserID: "u-1", CheckIns: checkIns, Now: profileNow})

	morning := p.Estimate(domain.PeriodMorning)
	assert.InDelta(t, 1.0, morning.Confidence, 1e-9)
}

func TestBuildProfile_ConfidenceSparseData(t *testing.T) {
	// One morning check-in 10 days ago: consistency 1, quantity 0.1, recency 0
	// => 0.4 + 0.035 = 0.435.
	p := BuildProfile(ProfileInput{
		UserID:   "u-1",
		CheckIns: []domain.EnergyCheckIn{checkIn(4, 10, 8)},
		Now:      profileNow,
	})
	morning := p.Estimate(domain.PeriodMorning)
	assert.InDelta(t, 0.435, morning.Confidence, 1e-9)
}

func TestWeeklyTrend(t *testing.T) {
	cases := []struct {
		name          string
		recentLevels  []int
		priorLevels   []int
		want          domain.WeeklyTrend
	}{
		{"improving", []int{4, 5, 4}, []int{3, 3, 3}, domain.TrendImproving},
		{"declining", []int{2, 2, 2}, []int{4, 4, 3}, domain.TrendDeclining},
		{"stable", []int{3, 3, 3}, []int{3, 3, 3}, domain.TrendStable},
		{"too few recent", []int{4, 4}, []int{3, 3, 3}, domain.TrendInsufficientData},
		{"too few prior", []int{4, 4, 4}, []int{3}, domain.TrendInsufficientData},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var checkIns []domain.EnergyCheckIn
			for i, lvl := range tc.recentLevels {
				checkIns = append(checkIns, checkIn(lvl, 1+i, 8))
			}
			for i, lvl := range tc.priorLevels {
				checkIns = append(checkIns, checkIn(lvl, 8+i, 8))
			}
			p := BuildProfile(ProfileInput{UserID: "u-1", CheckIns: checkIns, Now: profileNow})
			assert.Equal(t, tc.want, p.WeeklyTrend)
		})
	}
}

func TestProfileStrength_MonotonicInCheckIns(t *testing.T) {
	// Adding more identical, recent check-ins must never lower strength.
	prev := -1.0
	var checkIns []domain.EnergyCheckIn
	for day := 1; day <= 40; day++ {
		checkIns = append(checkIns, checkIn(4, (day%13)+1, 8))
		p := BuildProfile(ProfileInput{UserID: "u-1", CheckIns: checkIns, Now: profileNow})
		assert.GreaterOrEqual(t, p.Strength, prev, "strength dropped at %d check-ins", day)
		assert.LessOrEqual(t, p.Strength, 100.0)
		prev = p.Strength
	}
}

func TestBuildProfile_LastCheckIn(t *testing.T) {
	newest := checkIn(4, 1, 8)
	p := BuildProfile(ProfileInput{
		UserID:   "u-1",
		CheckIns: []domain.EnergyCheckIn{checkIn(3, 5, 8), newest, checkIn(2, 3, 18)},
		Now:      profileNow,
	})
	require.NotNil(t, p.LastCheckIn)
	assert.Equal(t, newest.RecordedAt, *p.LastCheckIn)
}
