package domain

import "time"

// CalendarEvent is an existing commitment on the user's calendar. Events are
// owned by an external calendar provider; the engine only reads them.
type CalendarEvent struct {
	ID      string    `json:"id"`
	Summary string    `json:"summary"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// Overlaps reports whether the event intersects the [start, end) interval.
func (e CalendarEvent) Overlaps(start, end time.Time) bool {
	return e.Start.Before(end) && e.End.After(start)
}
