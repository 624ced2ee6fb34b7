package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
)

// SlotInput carries everything needed to build the day's slots.
type SlotInput struct {
	Date        time.Time // midnight of the target day, any location
	Profile     *contract.EnergyProfile
	Events      []domain.CalendarEvent
	Constraints []domain.SchedulingConstraint
}

// GenerateSlots builds one slot per schedulable period of the target day,
// seeds each with the profile's estimate, blocks slots that overlap calendar
// events, then applies the active constraints in priority order. Slots come
// back in period order (morning first).
func GenerateSlots(input SlotInput) []contract.TimeSlot {
	slots := make([]contract.TimeSlot, 0, len(domain.SchedulablePeriods))
	for _, period := range domain.SchedulablePeriods {
		startHour, endHour, _ := domain.PeriodHours(period)
		slot := contract.TimeSlot{
			Start:     atHour(input.Date, startHour),
			End:       atHour(input.Date, endHour),
			Period:    period,
			Available: true,
		}
		if input.Profile != nil {
			est := input.Profile.Estimate(period)
			slot.EnergyLevel = est.Average
			slot.Confidence = est.Confidence
		}
		slots = append(slots, slot)
	}

	markEventConflicts(slots, input.Events)
	applyConstraints(slots, input.Constraints, input.Events)
	return slots
}

// markEventConflicts blocks any slot whose interval overlaps a calendar event.
func markEventConflicts(slots []contract.TimeSlot, events []domain.CalendarEvent) {
	for i := range slots {
		for _, ev := range events {
			if ev.Overlaps(slots[i].Start, slots[i].End) {
				block(&slots[i], fmt.Sprintf("conflicts with %q", eventLabel(ev)))
				break
			}
		}
	}
}

// applyConstraints narrows availability in rank order. Each constraint only
// blocks; nothing reopens a slot within a run.
func applyConstraints(slots []contract.TimeSlot, constraints []domain.SchedulingConstraint, events []domain.CalendarEvent) {
	active := make([]domain.SchedulingConstraint, 0, len(constraints))
	for _, c := range constraints {
		if c.Active {
			active = append(active, c)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].Priority < active[j].Priority })

	for _, c := range active {
		switch c.Type {
		case domain.ConstraintNoMeetingsBefore:
			for i := range slots {
				if slots[i].Available && slots[i].Start.Hour() < c.Value.Hour {
					block(&slots[i], fmt.Sprintf("starts before your %02d:00 cutoff", c.Value.Hour))
				}
			}
		case domain.ConstraintNoMeetingsAfter:
			for i := range slots {
				if slots[i].Available && slotEndHour(slots[i]) > c.Value.Hour {
					block(&slots[i], fmt.Sprintf("ends after your %02d:00 cutoff", c.Value.Hour))
				}
			}
		case domain.ConstraintFocusBlock:
			for i := range slots {
				h := slots[i].Start.Hour()
				if slots[i].Available && h >= c.Value.StartHour && h < c.Value.EndHour {
					block(&slots[i], fmt.Sprintf("reserved focus block %02d:00-%02d:00", c.Value.StartHour, c.Value.EndHour))
				}
			}
		case domain.ConstraintMeetingBuffer:
			buffer := time.Duration(c.Value.BufferMin) * time.Minute
			for i := range slots {
				if !slots[i].Available {
					continue
				}
				for _, ev := range events {
					if withinBuffer(slots[i], ev, buffer) {
						block(&slots[i], fmt.Sprintf("within %d min of %q", c.Value.BufferMin, eventLabel(ev)))
						break
					}
				}
			}
		}
		// max_daily_meetings and task_preference carry no slot semantics;
		// they ride along in the schedule's constraint list.
	}
}

// withinBuffer reports whether the slot comes within buffer of either event
// boundary without already overlapping it (overlap is handled separately).
func withinBuffer(slot contract.TimeSlot, ev domain.CalendarEvent, buffer time.Duration) bool {
	if ev.Overlaps(slot.Start, slot.End) {
		return false
	}
	// Slot ends just before the event starts, or starts just after it ends.
	if !slot.End.After(ev.Start) && ev.Start.Sub(slot.End) < buffer {
		return true
	}
	if !slot.Start.Before(ev.End) && slot.Start.Sub(ev.End) < buffer {
		return true
	}
	return false
}

func block(slot *contract.TimeSlot, reason string) {
	slot.Available = false
	if slot.BlockedReason == "" {
		slot.BlockedReason = reason
	}
}

// slotEndHour treats a slot ending exactly on the hour as that hour, so an
// evening slot ending 20:00 violates a 19:00 cutoff but not a 20:00 one.
func slotEndHour(slot contract.TimeSlot) int {
	h := slot.End.Hour()
	if slot.End.Minute() > 0 {
		h++
	}
	return h
}

func eventLabel(ev domain.CalendarEvent) string {
	if ev.Summary != "" {
		return ev.Summary
	}
	return ev.ID
}

func atHour(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}
