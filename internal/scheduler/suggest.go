package scheduler

import (
	"math"

	"github.com/alexanderramin/pulseplan/internal/contract"
)

// WarningEnergyThreshold marks a period as a warning period: demanding work
// scheduled there is likely to stall.
const WarningEnergyThreshold = 2.5

// MeetingIdealEnergy is the midpoint energy meetings score best at: enough
// to engage, not so much that the period is wasted on low-focus work.
const MeetingIdealEnergy = 3.0

// BuildSuggestions derives the daily suggestions from the per-period
// estimates: the deep-work period maximizes average*confidence, the meeting
// period maximizes (3 - |average-3|)*confidence excluding the deep-work
// period, and warning periods are those averaging below 2.5.
func BuildSuggestions(periods []contract.PeriodEstimate) contract.DailySuggestions {
	var out contract.DailySuggestions

	var deepScore float64
	for _, pe := range periods {
		if pe.Average == nil {
			continue
		}
		score := *pe.Average * pe.Confidence
		if out.DeepWorkPeriod == nil || score > deepScore {
			p := pe.Period
			out.DeepWorkPeriod, deepScore = &p, score
		}
	}

	var meetingScore float64
	for _, pe := range periods {
		if pe.Average == nil {
			continue
		}
		if out.DeepWorkPeriod != nil && pe.Period == *out.DeepWorkPeriod {
			continue
		}
		score := (MeetingIdealEnergy - math.Abs(*pe.Average-MeetingIdealEnergy)) * pe.Confidence
		if out.MeetingPeriod == nil || score > meetingScore {
			p := pe.Period
			out.MeetingPeriod, meetingScore = &p, score
		}
	}

	for _, pe := range periods {
		if pe.Average != nil && *pe.Average < WarningEnergyThreshold {
			out.WarningPeriods = append(out.WarningPeriods, pe.Period)
		}
	}
	return out
}
