package scheduler

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
)

// Pattern detection thresholds.
const (
	// PatternMinCheckIns gates all pattern detection.
	PatternMinCheckIns = 14

	// WeekdayVarianceThreshold marks per-weekday variation as significant.
	WeekdayVarianceThreshold = 0.3

	// FatigueMinDecliningSteps of the three morning->evening transitions must
	// decline, and the total morning-to-evening drop must reach FatigueMinDrop.
	FatigueMinDecliningSteps = 2
	FatigueMinDrop           = 0.5

	// ConsistencyWindowCheckIns bounds the consistency pattern to the most
	// recent check-ins; variance above ConsistencyVarianceWarning flips the
	// framing from positive to warning.
	ConsistencyWindowCheckIns   = 30
	ConsistencyVarianceWarning  = 1.0

	// PeakShiftMinPoints is the minimum data points per compared window.
	PeakShiftMinPoints = 2
)

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DetectPatterns inspects the check-in history for up to four behavioral
// patterns. Detection requires at least PatternMinCheckIns check-ins total;
// below that no patterns are reported.
func DetectPatterns(checkIns []domain.EnergyCheckIn, now time.Time) []contract.EnergyPattern {
	if len(checkIns) < PatternMinCheckIns {
		return nil
	}

	var patterns []contract.EnergyPattern
	if p := detectWeekdayVariation(checkIns); p != nil {
		patterns = append(patterns, *p)
	}
	if p := detectFatigueCurve(checkIns, now); p != nil {
		patterns = append(patterns, *p)
	}
	patterns = append(patterns, detectConsistency(checkIns))
	if p := detectPeakShift(checkIns, now); p != nil {
		patterns = append(patterns, *p)
	}
	return patterns
}

// detectWeekdayVariation reports significant day-of-week differences,
// naming the best and worst weekday.
func detectWeekdayVariation(checkIns []domain.EnergyCheckIn) *contract.EnergyPattern {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, c := range checkIns {
		sums[c.DayOfWeek] += float64(c.Level)
		counts[c.DayOfWeek]++
	}

	var weekdayAvgs []float64
	bestDay, worstDay := -1, -1
	var bestAvg, worstAvg float64
	for day := 0; day < 7; day++ {
		if counts[day] == 0 {
			continue
		}
		avg := sums[day] / float64(counts[day])
		weekdayAvgs = append(weekdayAvgs, avg)
		if bestDay < 0 || avg > bestAvg {
			bestDay, bestAvg = day, avg
		}
		if worstDay < 0 || avg < worstAvg {
			worstDay, worstAvg = day, avg
		}
	}

	v := variance(weekdayAvgs)
	if v <= WeekdayVarianceThreshold {
		return nil
	}
	return &contract.EnergyPattern{
		Kind:     contract.PatternWeekdayVariation,
		Strength: math.Min(1, v/1.5),
		Insight: fmt.Sprintf("Your energy varies by weekday: %s is your strongest day, %s your weakest. Front-load demanding work on %s.",
			weekdayNames[bestDay], weekdayNames[worstDay], weekdayNames[bestDay]),
	}
}

// detectFatigueCurve reports a declining morning-to-evening curve over the
// estimation window.
func detectFatigueCurve(checkIns []domain.EnergyCheckIn, now time.Time) *contract.EnergyPattern {
	byPeriod := groupByPeriod(recentCheckIns(checkIns, now, EstimationWindowDays))

	curve := []domain.TimePeriod{domain.PeriodMorning, domain.PeriodMidday, domain.PeriodAfternoon, domain.PeriodEvening}
	avgs := make([]float64, 0, len(curve))
	for _, period := range curve {
		cs := byPeriod[period]
		if len(cs) == 0 {
			return nil
		}
		avgs = append(avgs, mean(levelsOf(cs)))
	}

	declining := 0
	for i := 1; i < len(avgs); i++ {
		if avgs[i] < avgs[i-1] {
			declining++
		}
	}
	drop := avgs[0] - avgs[len(avgs)-1]
	if declining < FatigueMinDecliningSteps || drop < FatigueMinDrop {
		return nil
	}
	return &contract.EnergyPattern{
		Kind:     contract.PatternFatigueCurve,
		Strength: math.Min(1, drop/2),
		Insight:  fmt.Sprintf("Your energy fades through the day (down %.1f from morning to evening). Schedule demanding work before midday.", drop),
	}
}

// detectConsistency is always emitted: positive framing when the last
// ConsistencyWindowCheckIns check-ins have variance <= 1, a warning otherwise.
func detectConsistency(checkIns []domain.EnergyCheckIn) contract.EnergyPattern {
	sorted := make([]domain.EnergyCheckIn, len(checkIns))
	copy(sorted, checkIns)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.After(sorted[j].RecordedAt)
	})
	if len(sorted) > ConsistencyWindowCheckIns {
		sorted = sorted[:ConsistencyWindowCheckIns]
	}

	v := variance(levelsOf(sorted))
	if v <= ConsistencyVarianceWarning {
		return contract.EnergyPattern{
			Kind:     contract.PatternConsistency,
			Strength: math.Max(0, 1-v/2),
			Insight:  "Your energy levels are steady, which makes your schedule predictions reliable.",
		}
	}
	return contract.EnergyPattern{
		Kind:     contract.PatternConsistency,
		Strength: math.Min(1, v/3),
		Insight:  "Your energy swings a lot between check-ins. Consider logging context tags to find what drives the swings.",
	}
}

// detectPeakShift compares the strongest period of the most recent 14 days
// against the prior 14-day window. Emitted only when the peaks differ and
// both windows have at least PeakShiftMinPoints check-ins in their peak.
func detectPeakShift(checkIns []domain.EnergyCheckIn, now time.Time) *contract.EnergyPattern {
	cutRecent := now.AddDate(0, 0, -EstimationWindowDays)
	cutPrior := now.AddDate(0, 0, -2*EstimationWindowDays)

	var recent, prior []domain.EnergyCheckIn
	for _, c := range checkIns {
		switch {
		case c.RecordedAt.After(cutRecent):
			recent = append(recent, c)
		case c.RecordedAt.After(cutPrior):
			prior = append(prior, c)
		}
	}

	recentPeak, recentAvg, recentN := topPeriod(recent)
	priorPeak, priorAvg, priorN := topPeriod(prior)
	if recentPeak == "" || priorPeak == "" || recentPeak == priorPeak {
		return nil
	}
	if recentN < PeakShiftMinPoints || priorN < PeakShiftMinPoints {
		return nil
	}
	return &contract.EnergyPattern{
		Kind:     contract.PatternPeakShift,
		Strength: math.Min(1, 0.5+math.Abs(recentAvg-priorAvg)/2),
		Insight:  fmt.Sprintf("Your peak energy has shifted from %s to %s over the last two weeks. Your schedule will follow the new peak.", priorPeak, recentPeak),
	}
}

// topPeriod returns the period with the highest average level, that average,
// and its data point count.
func topPeriod(checkIns []domain.EnergyCheckIn) (domain.TimePeriod, float64, int) {
	byPeriod := groupByPeriod(checkIns)
	var best domain.TimePeriod
	var bestAvg float64
	var bestN int
	for _, period := range domain.AllPeriods {
		cs := byPeriod[period]
		if len(cs) == 0 {
			continue
		}
		avg := mean(levelsOf(cs))
		if best == "" || avg > bestAvg {
			best, bestAvg, bestN = period, avg, len(cs)
		}
	}
	return best, bestAvg, bestN
}

func levelsOf(checkIns []domain.EnergyCheckIn) []float64 {
	levels := make([]float64, len(checkIns))
	for i, c := range checkIns {
		levels[i] = float64(c.Level)
	}
	return levels
}
