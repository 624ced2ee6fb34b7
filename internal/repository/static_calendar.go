package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/pulseplan/internal/domain"
)

// StaticCalendar is a CalendarSource over a fixed event slice, used when the
// caller already holds the day's events (e.g. pushed by the mobile client
// after a provider sync) instead of querying a live provider.
type StaticCalendar struct {
	events []domain.CalendarEvent
}

// NewStaticCalendar wraps the given events.
func NewStaticCalendar(events []domain.CalendarEvent) *StaticCalendar {
	return &StaticCalendar{events: events}
}

// ListEvents returns the wrapped events intersecting [start, end).
func (s *StaticCalendar) ListEvents(_ context.Context, _ string, start, end time.Time) ([]domain.CalendarEvent, error) {
	var out []domain.CalendarEvent
	for _, ev := range s.events {
		if ev.Overlaps(start, end) {
			out = append(out, ev)
		}
	}
	return out, nil
}
