package scheduler

import (
	"fmt"
	"math"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
)

// Tier scores shared by all requirement mappings.
const (
	TierExcellent = 100.0
	TierGood      = 80.0
	TierFair      = 50.0
	TierPoor      = 20.0

	// NeutralSlotScore is used when a slot has no profiled energy.
	NeutralSlotScore = 50.0

	// ConfidenceBonusWeight scales the slot confidence into a small bonus so
	// well-evidenced slots win ties against guesses.
	ConfidenceBonusWeight = 10.0
)

// SlotMatch is the outcome of fitting one task into one slot.
type SlotMatch struct {
	SlotIndex int
	Period    domain.TimePeriod
	Score     float64
	Match     domain.EnergyMatch
	Reason    string
}

// FindBestSlot scores every available slot for the task and returns the
// winner, or ok=false when no slot is available. Ties resolve to the earlier
// slot in period-priority order (morning first) — an explicit rule, not an
// accident of iteration. The caller owns marking the winning slot unavailable.
func FindBestSlot(task domain.Task, slots []contract.TimeSlot) (SlotMatch, bool) {
	requirement := task.EnergyRequirement()

	best := SlotMatch{SlotIndex: -1}
	for i, slot := range slots {
		if !slot.Available {
			continue
		}
		tier, match := tierFor(requirement, slot.EnergyLevel)
		score := tier + slot.Confidence*ConfidenceBonusWeight
		if best.SlotIndex < 0 || score > best.Score {
			best = SlotMatch{
				SlotIndex: i,
				Period:    slot.Period,
				Score:     score,
				Match:     match,
				Reason:    matchReason(requirement, slot, match),
			}
		}
	}
	if best.SlotIndex < 0 {
		return SlotMatch{}, false
	}
	return best, true
}

// tierFor maps a slot's profiled average onto the requirement-specific tier
// table. Unknown energy falls back to a neutral fair score.
func tierFor(req domain.EnergyRequirement, avg *float64) (float64, domain.EnergyMatch) {
	if avg == nil {
		return NeutralSlotScore, domain.MatchFair
	}
	a := *avg
	switch req {
	case domain.RequirementHigh:
		switch {
		case a >= 4.5:
			return TierExcellent, domain.MatchExcellent
		case a >= 4:
			return TierGood, domain.MatchGood
		case a >= 3:
			return TierFair, domain.MatchFair
		default:
			return TierPoor, domain.MatchPoor
		}
	case domain.RequirementLow:
		// Low-requirement tasks prefer low-energy slots: spending a peak
		// window on routine work wastes the peak.
		switch {
		case a <= 2.5:
			return TierExcellent, domain.MatchExcellent
		case a <= 3.5:
			return TierGood, domain.MatchGood
		case a <= 4.5:
			return TierFair, domain.MatchFair
		default:
			return TierPoor, domain.MatchPoor
		}
	default: // medium
		switch d := math.Abs(a - 3.5); {
		case d <= 0.5:
			return TierExcellent, domain.MatchExcellent
		case d <= 1:
			return TierGood, domain.MatchGood
		case d <= 1.5:
			return TierFair, domain.MatchFair
		default:
			return TierPoor, domain.MatchPoor
		}
	}
}

func matchReason(req domain.EnergyRequirement, slot contract.TimeSlot, match domain.EnergyMatch) string {
	if slot.EnergyLevel == nil {
		return fmt.Sprintf("%s slot has no energy data yet; scheduled on neutral fit", slot.Period)
	}
	return fmt.Sprintf("%s energy task in %s (avg %.1f, confidence %.0f%%): %s fit",
		req, slot.Period, *slot.EnergyLevel, slot.Confidence*100, match)
}
