package scheduler

import (
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
)

// Impact sub-score caps and tiers. Total is capped at MaxImpactScore.
const (
	MaxImpactScore = 100.0

	// Urgency (0-30), tiered by days until due.
	UrgencyOverdue   = 30.0
	UrgencyDueIn1Day = 25.0
	UrgencyDueIn3    = 20.0
	UrgencyDueIn7    = 15.0
	UrgencyDistant   = 5.0
	UrgencyNoDueDate = 10.0

	// Importance (0-30), priority tier plus strategic keyword bonus.
	ImportanceHigh     = 25.0
	ImportanceMedium   = 15.0
	ImportanceLow      = 5.0
	StrategicBonus     = 5.0

	// Effort (0-20), inverse of estimated duration.
	EffortQuickWin   = 20.0 // <= 15 min
	EffortShort      = 15.0 // <= 30 min
	EffortMedium     = 10.0 // <= 60 min
	EffortLong       = 5.0
	// DefaultEstimateMin stands in when a task has no estimate.
	DefaultEstimateMin = 30

	// Dependency (0-20).
	DependencyKeywordBonus  = 15.0
	DependencyCrowdedBonus  = 5.0
	// CrowdedHighPriorityMin is the count of *other* pending high-priority
	// tasks beyond which a high-priority task earns the crowding bonus.
	CrowdedHighPriorityMin = 2

	// Energy match (0-10).
	EnergyMatchNeutral     = 5.0
	EnergyMatchPeakAligned = 10.0
	EnergyMatchLowAligned  = 8.0
	// PeakAlignmentMinAvg is the peak-period average needed before a
	// high-energy task earns the aligned bonus.
	PeakAlignmentMinAvg = 4.0
)

var strategicKeywords = []string{
	"investor", "launch", "critical", "strategic", "strategy",
	"revenue", "funding", "pitch", "client",
}

var blockingKeywords = []string{
	"blocker", "blocking", "blocked", "unblock",
	"prerequisite", "dependency", "waiting on",
}

// ImpactInput carries one task plus the pending-set context needed for
// relative scoring.
type ImpactInput struct {
	Task    domain.Task
	Profile *contract.EnergyProfile
	// PendingHighPriority counts pending/in-progress high-priority tasks in
	// the whole set, including Task itself when it qualifies.
	PendingHighPriority int
	Now                 time.Time
}

// ScoreImpact computes the 0-100 impact score for one task from five
// sub-scores, with a reasoning string assembled from the notable ones.
func ScoreImpact(input ImpactInput) contract.TaskImpactScore {
	b := contract.ImpactBreakdown{
		Urgency:     scoreUrgency(input.Task, input.Now),
		Importance:  scoreImportance(input.Task),
		Effort:      scoreEffort(input.Task),
		Dependency:  scoreDependency(input),
		EnergyMatch: scoreEnergyAlignment(input.Task, input.Profile),
	}
	total := math.Min(MaxImpactScore, b.Urgency+b.Importance+b.Effort+b.Dependency+b.EnergyMatch)

	return contract.TaskImpactScore{
		Task:      input.Task,
		Breakdown: b,
		Total:     total,
		Reasoning: impactReasoning(b),
	}
}

func scoreUrgency(task domain.Task, now time.Time) float64 {
	if task.DueDate == nil {
		return UrgencyNoDueDate
	}
	daysUntil := task.DueDate.Sub(now).Hours() / 24
	switch {
	case daysUntil < 0:
		return UrgencyOverdue
	case daysUntil <= 1:
		return UrgencyDueIn1Day
	case daysUntil <= 3:
		return UrgencyDueIn3
	case daysUntil <= 7:
		return UrgencyDueIn7
	default:
		return UrgencyDistant
	}
}

func scoreImportance(task domain.Task) float64 {
	var score float64
	switch task.Priority {
	case domain.PriorityHigh:
		score = ImportanceHigh
	case domain.PriorityMedium:
		score = ImportanceMedium
	default:
		score = ImportanceLow
	}
	if containsAny(task.Title, strategicKeywords) {
		score += StrategicBonus
	}
	return score
}

func scoreEffort(task domain.Task) float64 {
	est := DefaultEstimateMin
	if task.EstimatedMin != nil {
		est = *task.EstimatedMin
	}
	switch {
	case est <= 15:
		return EffortQuickWin
	case est <= 30:
		return EffortShort
	case est <= 60:
		return EffortMedium
	default:
		return EffortLong
	}
}

func scoreDependency(input ImpactInput) float64 {
	var score float64
	if containsAny(input.Task.Title, blockingKeywords) {
		score += DependencyKeywordBonus
	}
	if input.Task.Priority == domain.PriorityHigh && input.PendingHighPriority-1 > CrowdedHighPriorityMin {
		score += DependencyCrowdedBonus
	}
	return score
}

// scoreEnergyAlignment rewards tasks whose energy requirement the profile can
// actually serve: high-energy tasks when a strong peak exists, low-energy
// tasks when a known low period can absorb them.
func scoreEnergyAlignment(task domain.Task, profile *contract.EnergyProfile) float64 {
	if profile == nil {
		return EnergyMatchNeutral
	}
	switch task.EnergyRequirement() {
	case domain.RequirementHigh:
		if profile.PeakPeriod != nil {
			if est := profile.Estimate(*profile.PeakPeriod); est.Average != nil && *est.Average >= PeakAlignmentMinAvg {
				return EnergyMatchPeakAligned
			}
		}
	case domain.RequirementLow:
		if profile.LowPeriod != nil {
			return EnergyMatchLowAligned
		}
	}
	return EnergyMatchNeutral
}

// impactReasoning names the sub-scores that crossed their notable threshold.
func impactReasoning(b contract.ImpactBreakdown) string {
	var parts []string
	if b.Urgency >= UrgencyDueIn3 {
		parts = append(parts, "due soon")
	}
	if b.Importance >= ImportanceHigh {
		parts = append(parts, "high importance")
	}
	if b.Effort >= EffortQuickWin {
		parts = append(parts, "quick win")
	}
	if b.Dependency >= DependencyKeywordBonus {
		parts = append(parts, "blocking other work")
	}
	if b.EnergyMatch >= EnergyMatchLowAligned {
		parts = append(parts, "fits your energy profile")
	}
	if len(parts) == 0 {
		return "moderate impact"
	}
	return strings.Join(parts, ", ")
}

func containsAny(title string, keywords []string) bool {
	lower := strings.ToLower(title)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
