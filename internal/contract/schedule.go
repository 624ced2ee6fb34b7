package contract

import (
	"time"

	"github.com/alexanderramin/pulseplan/internal/domain"
)

// ScheduleRequest asks for a daily schedule. TargetDate is "YYYY-MM-DD";
// empty means today. Events overrides the calendar source when non-nil.
// Now pins the clock for deterministic runs; nil means time.Now().UTC().
type ScheduleRequest struct {
	UserID     string
	TargetDate string
	Events     []domain.CalendarEvent
	HasEvents  bool // distinguishes "no events" from "fetch from source"
	Now        *time.Time
}

// NewScheduleRequest builds a request for today with events fetched from the
// calendar source.
func NewScheduleRequest(userID string) ScheduleRequest {
	return ScheduleRequest{UserID: userID}
}

// TimeSlot is a transient schedulable window for one period of the target
// day, carrying the profile's estimate for that period.
type TimeSlot struct {
	Start         time.Time         `json:"start"`
	End           time.Time         `json:"end"`
	Period        domain.TimePeriod `json:"period"`
	EnergyLevel   *float64          `json:"energyLevel"`
	Confidence    float64           `json:"confidence"`
	Available     bool              `json:"available"`
	BlockedReason string            `json:"blockedReason,omitempty"`
}

// ImpactBreakdown holds the five named sub-scores of a task's impact score.
type ImpactBreakdown struct {
	Urgency     float64 `json:"urgency"`     // 0-30
	Importance  float64 `json:"importance"`  // 0-30
	Effort      float64 `json:"effort"`      // 0-20
	Dependency  float64 `json:"dependency"`  // 0-20
	EnergyMatch float64 `json:"energyMatch"` // 0-10
}

// TaskImpactScore ranks one task against the pending set.
type TaskImpactScore struct {
	Task      domain.Task     `json:"task"`
	Breakdown ImpactBreakdown `json:"breakdown"`
	Total     float64         `json:"total"` // capped at 100
	Reasoning string          `json:"reasoning"`
}

// ScheduledTask is a task placed into a concrete slot.
type ScheduledTask struct {
	Task           domain.Task        `json:"task"`
	ScheduledStart time.Time          `json:"scheduledStart"`
	ScheduledEnd   time.Time          `json:"scheduledEnd"`
	TimePeriod     domain.TimePeriod  `json:"timePeriod"`
	Reason         string             `json:"reason"`
	EnergyMatch    domain.EnergyMatch `json:"energyMatch"`
	ImpactScore    float64            `json:"impactScore"`
	SwapHint       string             `json:"swapHint,omitempty"`
}

// UnscheduledTask is a task that could not be placed, with the reason.
type UnscheduledTask struct {
	Task   domain.Task `json:"task"`
	Reason string      `json:"reason"`
}

// PeriodForecast is one entry of the schedule's energy forecast.
type PeriodForecast struct {
	Period     domain.TimePeriod `json:"period"`
	Level      *float64          `json:"level"`
	Confidence float64           `json:"confidence"`
}

// SwapSuggestion proposes exchanging two scheduled tasks' slots. Suggestions
// are advisory only; the engine never mutates a produced schedule.
type SwapSuggestion struct {
	Task1               string  `json:"task1"` // task id
	Task2               string  `json:"task2"`
	Reason              string  `json:"reason"`
	ExpectedImprovement float64 `json:"expectedImprovement"` // percent, > 10
}

// DailySchedule is the full output of one scheduling run. Field names are a
// stable wire contract consumed by the mobile client.
type DailySchedule struct {
	UserID           string                        `json:"userId"`
	Date             string                        `json:"date"` // YYYY-MM-DD
	ScheduledTasks   []ScheduledTask               `json:"scheduledTasks"`
	UnscheduledTasks []UnscheduledTask             `json:"unscheduledTasks"`
	OptimalSummary   string                        `json:"optimalSummary"`
	Insights         []string                      `json:"insights"`
	EnergyForecast   []PeriodForecast              `json:"energyForecast"`
	SwapSuggestions  []SwapSuggestion              `json:"swapOptimizations"`
	Constraints      []domain.SchedulingConstraint `json:"constraints"`
	GeneratedAt      time.Time                     `json:"generatedAt"`
}
