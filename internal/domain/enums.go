package domain

type TimePeriod string

const (
	PeriodEarlyMorning TimePeriod = "early_morning"
	PeriodMorning      TimePeriod = "morning"
	PeriodMidday       TimePeriod = "midday"
	PeriodAfternoon    TimePeriod = "afternoon"
	PeriodEvening      TimePeriod = "evening"
	PeriodNight        TimePeriod = "night"
)

// AllPeriods lists every period in day order, starting from early morning.
var AllPeriods = []TimePeriod{
	PeriodEarlyMorning,
	PeriodMorning,
	PeriodMidday,
	PeriodAfternoon,
	PeriodEvening,
	PeriodNight,
}

// SchedulablePeriods lists the periods that receive a time slot, in the
// priority order used for tie-breaking during slot matching.
var SchedulablePeriods = []TimePeriod{
	PeriodMorning,
	PeriodMidday,
	PeriodAfternoon,
	PeriodEvening,
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

type EnergyRequirement string

const (
	RequirementHigh   EnergyRequirement = "high"
	RequirementMedium EnergyRequirement = "medium"
	RequirementLow    EnergyRequirement = "low"
)

type EnergyMatch string

const (
	MatchExcellent EnergyMatch = "excellent"
	MatchGood      EnergyMatch = "good"
	MatchFair      EnergyMatch = "fair"
	MatchPoor      EnergyMatch = "poor"
)

type WeeklyTrend string

const (
	TrendImproving        WeeklyTrend = "improving"
	TrendStable           WeeklyTrend = "stable"
	TrendDeclining        WeeklyTrend = "declining"
	TrendInsufficientData WeeklyTrend = "insufficient_data"
)

type ConstraintType string

const (
	ConstraintNoMeetingsBefore ConstraintType = "no_meetings_before"
	ConstraintNoMeetingsAfter  ConstraintType = "no_meetings_after"
	ConstraintFocusBlock       ConstraintType = "focus_block"
	ConstraintMeetingBuffer    ConstraintType = "meeting_buffer"
	ConstraintMaxDailyMeetings ConstraintType = "max_daily_meetings"
	ConstraintTaskPreference   ConstraintType = "task_preference"
)

// ValidConstraintTypes is the canonical set of accepted constraint type strings.
var ValidConstraintTypes = map[string]bool{
	"no_meetings_before": true, "no_meetings_after": true,
	"focus_block": true, "meeting_buffer": true,
	"max_daily_meetings": true, "task_preference": true,
}
