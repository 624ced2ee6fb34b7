package scheduler

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledTask(id string, priority domain.Priority, period domain.TimePeriod) contract.ScheduledTask {
	return contract.ScheduledTask{
		Task:       domain.Task{ID: id, UserID: "u-1", Title: id, Priority: priority, Status: domain.TaskPending},
		TimePeriod: period,
	}
}

func profileWithAverages(avgs map[domain.TimePeriod]float64) *contract.EnergyProfile {
	p := &contract.EnergyProfile{}
	for _, period := range domain.AllPeriods {
		pe := contract.PeriodEstimate{Period: period}
		if v, ok := avgs[period]; ok {
			vv := v
			pe.Average = &vv
			pe.Confidence = 0.8
		}
		p.Periods = append(p.Periods, pe)
	}
	return p
}

func TestSuggestSwaps_MisplacedPairIsFlagged(t *testing.T) {
	// High-energy task sits in the weak evening, low-energy task occupies the
	// strong morning: swapping helps both.
	profile := profileWithAverages(map[domain.TimePeriod]float64{
		domain.PeriodMorning: 4.8,
		domain.PeriodEvening: 1.8,
	})
	scheduled := []contract.ScheduledTask{
		scheduledTask("t-high", domain.PriorityHigh, domain.PeriodEvening),
		scheduledTask("t-low", domain.PriorityLow, domain.PeriodMorning),
	}

	suggestions := SuggestSwaps(scheduled, profile)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "t-high", suggestions[0].Task1)
	assert.Equal(t, "t-low", suggestions[0].Task2)
	assert.Greater(t, suggestions[0].ExpectedImprovement, SwapImprovementThresholdPct)
}

func TestSuggestSwaps_WellPlacedPairIsQuiet(t *testing.T) {
	profile := profileWithAverages(map[domain.TimePeriod]float64{
		domain.PeriodMorning: 4.8,
		domain.PeriodEvening: 1.8,
	})
	scheduled := []contract.ScheduledTask{
		scheduledTask("t-high", domain.PriorityHigh, domain.PeriodMorning),
		scheduledTask("t-low", domain.PriorityLow, domain.PeriodEvening),
	}
	assert.Empty(t, SuggestSwaps(scheduled, profile))
}

func TestSuggestSwaps_CapsAndSorts(t *testing.T) {
	// Four badly placed pairs produce six candidate swaps; only the top three
	// survive, sorted by improvement descending.
	profile := profileWithAverages(map[domain.TimePeriod]float64{
		domain.PeriodMorning:   4.9,
		domain.PeriodMidday:    4.2,
		domain.PeriodAfternoon: 2.4,
		domain.PeriodEvening:   1.5,
	})
	scheduled := []contract.ScheduledTask{
		scheduledTask("h1", domain.PriorityHigh, domain.PeriodEvening),
		scheduledTask("h2", domain.PriorityHigh, domain.PeriodAfternoon),
		scheduledTask("l1", domain.PriorityLow, domain.PeriodMorning),
		scheduledTask("l2", domain.PriorityLow, domain.PeriodMidday),
	}

	suggestions := SuggestSwaps(scheduled, profile)
	assert.LessOrEqual(t, len(suggestions), MaxSwapSuggestions)
	require.NotEmpty(t, suggestions)
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].ExpectedImprovement, suggestions[i].ExpectedImprovement)
	}
	for _, s := range suggestions {
		assert.Greater(t, s.ExpectedImprovement, SwapImprovementThresholdPct)
	}
}

func TestSuggestSwaps_SinglonsAndMissingProfile(t *testing.T) {
	one := []contract.ScheduledTask{scheduledTask("t1", domain.PriorityHigh, domain.PeriodMorning)}
	assert.Nil(t, SuggestSwaps(one, &contract.EnergyProfile{}))
	assert.Nil(t, SuggestSwaps(nil, nil))
}

func TestSuggestSwaps_ThresholdProperty(t *testing.T) {
	// Random schedules never yield suggestions at or below the threshold,
	// and never more than the cap.
	rng := rand.New(rand.NewSource(7))
	priorities := []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow}

	for trial := 0; trial < 100; trial++ {
		avgs := make(map[domain.TimePeriod]float64)
		for _, period := range domain.SchedulablePeriods {
			if rng.Intn(5) > 0 { // leave some periods without data
				avgs[period] = 1 + rng.Float64()*4
			}
		}
		profile := profileWithAverages(avgs)

		var scheduled []contract.ScheduledTask
		for i, period := range domain.SchedulablePeriods {
			if rng.Intn(3) == 0 {
				continue
			}
			id := string(rune('a' + i))
			scheduled = append(scheduled, scheduledTask(id, priorities[rng.Intn(3)], period))
		}

		suggestions := SuggestSwaps(scheduled, profile)
		assert.LessOrEqual(t, len(suggestions), MaxSwapSuggestions, "trial %d", trial)
		for _, s := range suggestions {
			assert.Greater(t, s.ExpectedImprovement, SwapImprovementThresholdPct, "trial %d", trial)
		}
	}
}

func TestEnergyFit_Mapping(t *testing.T) {
	high := domain.Task{Priority: domain.PriorityHigh}
	low := domain.Task{Priority: domain.PriorityLow}
	medium := domain.Task{Priority: domain.PriorityMedium}

	assert.InDelta(t, 1.0, energyFit(high, avg(5)), 1e-9)
	assert.InDelta(t, 0.2, energyFit(high, avg(1)), 1e-9)
	assert.InDelta(t, 1.0, energyFit(low, avg(1)), 1e-9)
	assert.InDelta(t, 0.2, energyFit(low, avg(5)), 1e-9)
	assert.InDelta(t, 1.0, energyFit(medium, avg(3)), 1e-9)
	assert.InDelta(t, 0.5, energyFit(medium, avg(4)), 1e-9)
	assert.Equal(t, 0.5, energyFit(high, nil))
}
