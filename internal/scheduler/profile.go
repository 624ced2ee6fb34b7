package scheduler

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
)

// Estimation window and weighting constants. These are deliberate tuning
// knobs, not incidental literals; tests pin their observable behavior.
const (
	// EstimationWindowDays bounds the check-ins used for per-period averages.
	EstimationWindowDays = 14
	// RecencyDecay is the per-rank exponential decay applied to check-ins,
	// most recent first (weight = RecencyDecay^rank).
	RecencyDecay = 0.9

	// Confidence factor weights. Must sum to 1.
	ConfidenceWeightConsistency = 0.40
	ConfidenceWeightQuantity    = 0.35
	ConfidenceWeightRecency     = 0.25

	// QuantityTargetPoints is the per-period check-in count at which the
	// quantity factor saturates.
	QuantityTargetPoints = 10
	// RecencyWindowDays and RecencyTargetPoints shape the recency factor:
	// min(1, countInWindow/target).
	RecencyWindowDays   = 3
	RecencyTargetPoints = 2

	// Weekly trend parameters: mean of the last TrendWindowDays vs the prior
	// window, each needing TrendMinPoints check-ins.
	TrendWindowDays = 7
	TrendMinPoints  = 3
	TrendDelta      = 0.3

	// Profile strength components (0-100 total, capped).
	StrengthCheckInTarget   = 50
	StrengthCheckInWeight   = 50.0
	StrengthConfidenceWeight = 30.0
	StrengthPatternWeight    = 5.0
)

// ProfileInput carries everything needed to derive an energy profile.
// CheckIns should span at least the last 2*EstimationWindowDays so the
// peak-shift pattern can compare windows; older entries are ignored where
// the window matters but still count toward totals.
type ProfileInput struct {
	UserID   string
	CheckIns []domain.EnergyCheckIn
	Now      time.Time
}

// BuildProfile derives the full energy profile: per-period recency-weighted
// averages with confidence, peak/low periods, weekly trend, detected
// patterns, daily suggestions, and an overall strength score.
func BuildProfile(input ProfileInput) contract.EnergyProfile {
	profile := contract.EnergyProfile{
		UserID:        input.UserID,
		TotalCheckIns: len(input.CheckIns),
		WeeklyTrend:   domain.TrendInsufficientData,
	}

	byPeriod := groupByPeriod(recentCheckIns(input.CheckIns, input.Now, EstimationWindowDays))
	for _, period := range domain.AllPeriods {
		profile.Periods = append(profile.Periods, estimatePeriod(period, byPeriod[period], input.Now))
	}

	profile.PeakPeriod, profile.LowPeriod = peakAndLow(profile.Periods)
	profile.LastCheckIn = lastCheckInTime(input.CheckIns)
	profile.WeeklyTrend = weeklyTrend(input.CheckIns, input.Now)
	profile.Patterns = DetectPatterns(input.CheckIns, input.Now)
	profile.Suggestions = BuildSuggestions(profile.Periods)
	profile.Strength = profileStrength(profile)

	return profile
}

// estimatePeriod computes one period's weighted average and confidence.
// Periods with no data keep a nil average and zero confidence.
func estimatePeriod(period domain.TimePeriod, checkIns []domain.EnergyCheckIn, now time.Time) contract.PeriodEstimate {
	est := contract.PeriodEstimate{Period: period, DataPoints: len(checkIns)}
	if len(checkIns) == 0 {
		return est
	}

	// Most recent first so rank 0 carries full weight.
	sort.Slice(checkIns, func(i, j int) bool {
		return checkIns[i].RecordedAt.After(checkIns[j].RecordedAt)
	})

	var weightedSum, weightTotal float64
	for rank, c := range checkIns {
		w := math.Pow(RecencyDecay, float64(rank))
		weightedSum += float64(c.Level) * w
		weightTotal += w
	}
	avg := weightedSum / weightTotal
	est.Average = &avg
	est.Confidence = periodConfidence(checkIns, now)
	return est
}

// periodConfidence blends consistency, quantity, and recency into [0,1].
func periodConfidence(checkIns []domain.EnergyCheckIn, now time.Time) float64 {
	consistency := math.Max(0, 1-levelVariance(checkIns)/2)
	quantity := math.Min(1, float64(len(checkIns))/QuantityTargetPoints)

	recentCount := 0
	cutoff := now.AddDate(0, 0, -RecencyWindowDays)
	for _, c := range checkIns {
		if c.RecordedAt.After(cutoff) {
			recentCount++
		}
	}
	recency := math.Min(1, float64(recentCount)/RecencyTargetPoints)

	conf := ConfidenceWeightConsistency*consistency +
		ConfidenceWeightQuantity*quantity +
		ConfidenceWeightRecency*recency
	return clamp01(conf)
}

func peakAndLow(periods []contract.PeriodEstimate) (peak, low *domain.TimePeriod) {
	var peakAvg, lowAvg float64
	for _, pe := range periods {
		if pe.Average == nil {
			continue
		}
		if peak == nil || *pe.Average > peakAvg {
			p := pe.Period
			peak, peakAvg = &p, *pe.Average
		}
		if low == nil || *pe.Average < lowAvg {
			p := pe.Period
			low, lowAvg = &p, *pe.Average
		}
	}
	return peak, low
}

// weeklyTrend compares the mean level of the last week against the week
// before it. Either window with fewer than TrendMinPoints check-ins yields
// insufficient_data.
func weeklyTrend(checkIns []domain.EnergyCheckIn, now time.Time) domain.WeeklyTrend {
	weekAgo := now.AddDate(0, 0, -TrendWindowDays)
	twoWeeksAgo := now.AddDate(0, 0, -2*TrendWindowDays)

	var recent, prior []float64
	for _, c := range checkIns {
		switch {
		case c.RecordedAt.After(weekAgo):
			recent = append(recent, float64(c.Level))
		case c.RecordedAt.After(twoWeeksAgo):
			prior = append(prior, float64(c.Level))
		}
	}
	if len(recent) < TrendMinPoints || len(prior) < TrendMinPoints {
		return domain.TrendInsufficientData
	}

	delta := mean(recent) - mean(prior)
	switch {
	case delta > TrendDelta:
		return domain.TrendImproving
	case delta < -TrendDelta:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

// profileStrength scores the profile as a whole:
// min(100, 50*min(1, total/50) + 30*meanConfidence + 5*patternCount).
func profileStrength(p contract.EnergyProfile) float64 {
	quantity := math.Min(1, float64(p.TotalCheckIns)/StrengthCheckInTarget)

	var confSum float64
	var confCount int
	for _, pe := range p.Periods {
		if pe.Average != nil {
			confSum += pe.Confidence
			confCount++
		}
	}
	var meanConf float64
	if confCount > 0 {
		meanConf = confSum / float64(confCount)
	}

	strength := StrengthCheckInWeight*quantity +
		StrengthConfidenceWeight*meanConf +
		StrengthPatternWeight*float64(len(p.Patterns))
	return math.Min(100, strength)
}

func recentCheckIns(checkIns []domain.EnergyCheckIn, now time.Time, days int) []domain.EnergyCheckIn {
	cutoff := now.AddDate(0, 0, -days)
	var out []domain.EnergyCheckIn
	for _, c := range checkIns {
		if c.RecordedAt.After(cutoff) && !c.RecordedAt.After(now) {
			out = append(out, c)
		}
	}
	return out
}

func groupByPeriod(checkIns []domain.EnergyCheckIn) map[domain.TimePeriod][]domain.EnergyCheckIn {
	out := make(map[domain.TimePeriod][]domain.EnergyCheckIn)
	for _, c := range checkIns {
		out[c.Period] = append(out[c.Period], c)
	}
	return out
}

func lastCheckInTime(checkIns []domain.EnergyCheckIn) *time.Time {
	var last *time.Time
	for _, c := range checkIns {
		if last == nil || c.RecordedAt.After(*last) {
			t := c.RecordedAt
			last = &t
		}
	}
	return last
}

// levelVariance is the population variance of raw check-in levels.
func levelVariance(checkIns []domain.EnergyCheckIn) float64 {
	levels := make([]float64, len(checkIns))
	for i, c := range checkIns {
		levels[i] = float64(c.Level)
	}
	return variance(levels)
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func variance(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := mean(vals)
	var sum float64
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(vals))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
