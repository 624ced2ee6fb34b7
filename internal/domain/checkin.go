package domain

import (
	"fmt"
	"time"
)

// EnergyCheckIn is a single self-reported energy reading. Check-ins are
// immutable once created; corrections are made by deleting and re-logging.
type EnergyCheckIn struct {
	ID         string
	UserID     string
	Level      int // 1 (drained) .. 5 (peak)
	RecordedAt time.Time
	Period     TimePeriod
	DayOfWeek  int // 0 = Sunday .. 6 = Saturday
	Tags       []string
	CreatedAt  time.Time
}

const (
	MinEnergyLevel = 1
	MaxEnergyLevel = 5
)

// Validate checks the level bound and that the user is set.
func (c *EnergyCheckIn) Validate() error {
	if c.UserID == "" {
		return fmt.Errorf("check-in requires a user id")
	}
	if c.Level < MinEnergyLevel || c.Level > MaxEnergyLevel {
		return fmt.Errorf("energy level %d out of range [%d,%d]", c.Level, MinEnergyLevel, MaxEnergyLevel)
	}
	return nil
}

// Derive fills Period and DayOfWeek from RecordedAt.
func (c *EnergyCheckIn) Derive() {
	c.Period = PeriodOf(c.RecordedAt)
	c.DayOfWeek = int(c.RecordedAt.Weekday())
}

// PeriodOf buckets an instant into one of the six fixed day segments:
// early_morning 05-07, morning 07-10, midday 10-13, afternoon 13-17,
// evening 17-20, night 20-05.
func PeriodOf(t time.Time) TimePeriod {
	switch h := t.Hour(); {
	case h >= 5 && h < 7:
		return PeriodEarlyMorning
	case h >= 7 && h < 10:
		return PeriodMorning
	case h >= 10 && h < 13:
		return PeriodMidday
	case h >= 13 && h < 17:
		return PeriodAfternoon
	case h >= 17 && h < 20:
		return PeriodEvening
	default:
		return PeriodNight
	}
}

// PeriodHours returns the start and end hour of a schedulable period.
// Only the four schedulable periods map to slots; other periods return ok=false.
func PeriodHours(p TimePeriod) (start, end int, ok bool) {
	switch p {
	case PeriodMorning:
		return 7, 10, true
	case PeriodMidday:
		return 10, 13, true
	case PeriodAfternoon:
		return 13, 17, true
	case PeriodEvening:
		return 17, 20, true
	default:
		return 0, 0, false
	}
}
