package scheduler

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
)

const (
	// SwapImprovementThresholdPct: a pair swap is only worth surfacing when
	// it improves combined fit by more than this percentage.
	SwapImprovementThresholdPct = 10.0
	// MaxSwapSuggestions caps the returned list.
	MaxSwapSuggestions = 3
)

// SuggestSwaps inspects every pair of scheduled tasks and proposes the swaps
// that would improve the pair's combined energy fit by more than the
// threshold. Suggestions are advisory; nothing here mutates the schedule.
// Returns at most MaxSwapSuggestions, best improvement first.
func SuggestSwaps(scheduled []contract.ScheduledTask, profile *contract.EnergyProfile) []contract.SwapSuggestion {
	if len(scheduled) < 2 || profile == nil {
		return nil
	}

	var suggestions []contract.SwapSuggestion
	for i := 0; i < len(scheduled); i++ {
		for j := i + 1; j < len(scheduled); j++ {
			a, b := scheduled[i], scheduled[j]
			avgA := periodAverage(profile, a.TimePeriod)
			avgB := periodAverage(profile, b.TimePeriod)

			current := energyFit(a.Task, avgA) + energyFit(b.Task, avgB)
			swapped := energyFit(a.Task, avgB) + energyFit(b.Task, avgA)
			if current <= 0 {
				continue
			}
			improvement := (swapped - current) / current * 100
			if improvement <= SwapImprovementThresholdPct {
				continue
			}
			suggestions = append(suggestions, contract.SwapSuggestion{
				Task1: a.Task.ID,
				Task2: b.Task.ID,
				Reason: fmt.Sprintf("Swapping %q (%s) and %q (%s) better aligns both with your energy curve",
					a.Task.Title, a.TimePeriod, b.Task.Title, b.TimePeriod),
				ExpectedImprovement: improvement,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].ExpectedImprovement > suggestions[j].ExpectedImprovement
	})
	if len(suggestions) > MaxSwapSuggestions {
		suggestions = suggestions[:MaxSwapSuggestions]
	}
	return suggestions
}

// energyFit maps a task's requirement against a slot's average energy onto
// [0,1] with a simplified inverse mapping: high-energy tasks want high
// averages, low-energy tasks want low ones, medium wants the middle.
func energyFit(task domain.Task, avg *float64) float64 {
	if avg == nil {
		return 0.5
	}
	switch task.EnergyRequirement() {
	case domain.RequirementHigh:
		return clamp01(*avg / 5)
	case domain.RequirementLow:
		return clamp01((6 - *avg) / 5)
	default:
		return clamp01(1 - math.Abs(*avg-3)/2)
	}
}

func periodAverage(profile *contract.EnergyProfile, period domain.TimePeriod) *float64 {
	est := profile.Estimate(period)
	return est.Average
}
