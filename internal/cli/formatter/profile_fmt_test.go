package formatter

import (
	"testing"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatProfile_MarksPeakAndLow(t *testing.T) {
	morning := domain.PeriodMorning
	evening := domain.PeriodEvening
	profile := &contract.EnergyProfile{
		UserID: "u-1",
		Periods: []contract.PeriodEstimate{
			{Period: domain.PeriodMorning, Average: floatPtr(4.5), Confidence: 0.9, DataPoints: 12},
			{Period: domain.PeriodEvening, Average: floatPtr(2.1), Confidence: 0.6, DataPoints: 8},
			{Period: domain.PeriodNight, Average: nil},
		},
		PeakPeriod:    &morning,
		LowPeriod:     &evening,
		TotalCheckIns: 20,
		WeeklyTrend:   domain.TrendStable,
		Strength:      62,
		Patterns: []contract.EnergyPattern{
			{Kind: contract.PatternConsistency, Strength: 0.8, Insight: "Your energy is steady day to day"},
		},
		Suggestions: contract.DailySuggestions{
			DeepWorkPeriod: &morning,
			WarningPeriods: []domain.TimePeriod{domain.PeriodEvening},
		},
	}

	out := FormatProfile(profile)

	assert.Contains(t, out, "ENERGY PROFILE")
	assert.Contains(t, out, "▲")
	assert.Contains(t, out, "▼")
	assert.Contains(t, out, "4.5")
	assert.Contains(t, out, "62%")
	assert.Contains(t, out, "stable")
	assert.Contains(t, out, "Your energy is steady day to day")
	assert.Contains(t, out, "Deep work:")
	assert.Contains(t, out, "Protect:")
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Early Morning", PeriodLabel(domain.PeriodEarlyMorning))
	assert.Equal(t, "Morning", PeriodLabel(domain.PeriodMorning))
}

func TestEnergyBar_Unknown(t *testing.T) {
	assert.Equal(t, "░░░░░", EnergyBar(nil))
}
