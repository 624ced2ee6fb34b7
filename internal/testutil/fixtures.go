package testutil

import (
	"time"

	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithEstimate(minutes int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedMin = &minutes
	}
}

func NewTestTask(userID, title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	t := &domain.Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Priority:  domain.PriorityMedium,
		Status:    domain.TaskPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CheckIn options
type CheckInOption func(*domain.EnergyCheckIn)

func WithTags(tags ...string) CheckInOption {
	return func(c *domain.EnergyCheckIn) {
		c.Tags = tags
	}
}

// NewTestCheckIn builds a derived check-in recorded at the given instant.
func NewTestCheckIn(userID string, level int, recordedAt time.Time, opts ...CheckInOption) *domain.EnergyCheckIn {
	c := &domain.EnergyCheckIn{
		ID:         uuid.New().String(),
		UserID:     userID,
		Level:      level,
		RecordedAt: recordedAt,
		CreatedAt:  recordedAt,
	}
	c.Derive()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewTestEvent builds a calendar event spanning [start, end).
func NewTestEvent(summary string, start, end time.Time) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:      uuid.New().String(),
		Summary: summary,
		Start:   start,
		End:     end,
	}
}
