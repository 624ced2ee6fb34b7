package domain

import "fmt"

// ConstraintValue is the typed payload of a scheduling constraint. Which
// fields are meaningful depends on the constraint type; unused fields stay
// at their zero value.
type ConstraintValue struct {
	Hour        int    `json:"hour,omitempty"`        // no_meetings_before / no_meetings_after
	StartHour   int    `json:"startHour,omitempty"`   // focus_block
	EndHour     int    `json:"endHour,omitempty"`     // focus_block
	BufferMin   int    `json:"bufferMin,omitempty"`   // meeting_buffer
	MaxMeetings int    `json:"maxMeetings,omitempty"` // max_daily_meetings
	Preference  string `json:"preference,omitempty"`  // task_preference
}

// SchedulingConstraint is a per-user rule that narrows slot availability
// (or rides along as scheduling context). At most one constraint per type
// per user; setting again replaces the previous value.
type SchedulingConstraint struct {
	UserID   string
	Type     ConstraintType
	Value    ConstraintValue
	Priority int // lower rank applies first
	Active   bool
}

// Validate checks the type enum and the value fields it requires.
func (c *SchedulingConstraint) Validate() error {
	if c.UserID == "" {
		return fmt.Errorf("constraint requires a user id")
	}
	switch c.Type {
	case ConstraintNoMeetingsBefore, ConstraintNoMeetingsAfter:
		if c.Value.Hour < 0 || c.Value.Hour > 23 {
			return fmt.Errorf("%s: hour %d out of range [0,23]", c.Type, c.Value.Hour)
		}
	case ConstraintFocusBlock:
		if c.Value.StartHour < 0 || c.Value.EndHour > 24 || c.Value.StartHour >= c.Value.EndHour {
			return fmt.Errorf("focus_block: invalid hour range %d-%d", c.Value.StartHour, c.Value.EndHour)
		}
	case ConstraintMeetingBuffer:
		if c.Value.BufferMin <= 0 {
			return fmt.Errorf("meeting_buffer: buffer minutes must be positive")
		}
	case ConstraintMaxDailyMeetings:
		if c.Value.MaxMeetings <= 0 {
			return fmt.Errorf("max_daily_meetings: limit must be positive")
		}
	case ConstraintTaskPreference:
		if c.Value.Preference == "" {
			return fmt.Errorf("task_preference: preference is required")
		}
	default:
		return fmt.Errorf("invalid constraint type %q", c.Type)
	}
	return nil
}

// DefaultMeetingBufferMin is applied when a user has no configured constraints.
const DefaultMeetingBufferMin = 15

// DefaultConstraints returns the constraint set used when a user has never
// configured any: a single meeting buffer around calendar events.
func DefaultConstraints(userID string) []SchedulingConstraint {
	return []SchedulingConstraint{
		{
			UserID:   userID,
			Type:     ConstraintMeetingBuffer,
			Value:    ConstraintValue{BufferMin: DefaultMeetingBufferMin},
			Priority: 1,
			Active:   true,
		},
	}
}
