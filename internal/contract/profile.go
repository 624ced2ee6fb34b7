package contract

import (
	"time"

	"github.com/alexanderramin/pulseplan/internal/domain"
)

// PeriodEstimate is a single period's profiled energy. Average is nil when
// the period has no check-ins in the estimation window.
type PeriodEstimate struct {
	Period     domain.TimePeriod `json:"period"`
	Average    *float64          `json:"average"`
	Confidence float64           `json:"confidence"`
	DataPoints int               `json:"dataPoints"`
}

type PatternKind string

const (
	PatternWeekdayVariation PatternKind = "weekday_variation"
	PatternFatigueCurve     PatternKind = "fatigue_curve"
	PatternConsistency      PatternKind = "consistency"
	PatternPeakShift        PatternKind = "peak_shift"
)

// EnergyPattern is a detected behavioral pattern with a strength in [0,1]
// and an actionable insight string.
type EnergyPattern struct {
	Kind     PatternKind `json:"kind"`
	Strength float64     `json:"strength"`
	Insight  string      `json:"insight"`
}

// DailySuggestions recommends periods for deep work and meetings, plus the
// periods to avoid for demanding work.
type DailySuggestions struct {
	DeepWorkPeriod *domain.TimePeriod  `json:"deepWorkPeriod"`
	MeetingPeriod  *domain.TimePeriod  `json:"meetingPeriod"`
	WarningPeriods []domain.TimePeriod `json:"warningPeriods"`
}

// EnergyProfile is the derived view over a user's check-in history. It is
// recomputed on demand and never persisted as authoritative state.
type EnergyProfile struct {
	UserID        string             `json:"userId"`
	Periods       []PeriodEstimate   `json:"periods"`
	PeakPeriod    *domain.TimePeriod `json:"peakPeriod"`
	LowPeriod     *domain.TimePeriod `json:"lowPeriod"`
	TotalCheckIns int                `json:"totalCheckIns"`
	LastCheckIn   *time.Time         `json:"lastCheckIn"`
	WeeklyTrend   domain.WeeklyTrend `json:"weeklyTrend"`
	Patterns      []EnergyPattern    `json:"patterns"`
	Suggestions   DailySuggestions   `json:"suggestions"`
	Strength      float64            `json:"profileStrength"` // 0-100
}

// Estimate returns the profile's estimate for the given period.
func (p *EnergyProfile) Estimate(period domain.TimePeriod) PeriodEstimate {
	for _, pe := range p.Periods {
		if pe.Period == period {
			return pe
		}
	}
	return PeriodEstimate{Period: period}
}
