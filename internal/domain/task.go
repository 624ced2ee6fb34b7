package domain

import (
	"fmt"
	"strings"
	"time"
)

type Task struct {
	ID           string
	UserID       string
	Title        string
	Priority     Priority
	Status       TaskStatus
	DueDate      *time.Time
	EstimatedMin *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks required fields and enum values.
func (t *Task) Validate() error {
	if t.UserID == "" {
		return fmt.Errorf("task requires a user id")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required")
	}
	switch t.Priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("invalid priority %q", t.Priority)
	}
	switch t.Status {
	case TaskPending, TaskInProgress, TaskCompleted, TaskCancelled:
	default:
		return fmt.Errorf("invalid status %q", t.Status)
	}
	if t.EstimatedMin != nil && *t.EstimatedMin <= 0 {
		return fmt.Errorf("estimated minutes must be positive")
	}
	return nil
}

// Schedulable reports whether the task should be considered for placement.
func (t *Task) Schedulable() bool {
	return t.Status == TaskPending || t.Status == TaskInProgress
}

// EnergyRequirement infers how much energy the task demands: high for
// high-priority or long (>60 min) work, low for low-priority work,
// medium otherwise.
func (t *Task) EnergyRequirement() EnergyRequirement {
	if t.Priority == PriorityHigh {
		return RequirementHigh
	}
	if t.EstimatedMin != nil && *t.EstimatedMin > 60 {
		return RequirementHigh
	}
	if t.Priority == PriorityLow {
		return RequirementLow
	}
	return RequirementMedium
}

// TaskPatch carries the mutable task fields for partial updates.
// Nil pointers leave the corresponding field untouched.
type TaskPatch struct {
	Title        *string
	Priority     *Priority
	Status       *TaskStatus
	DueDate      *time.Time
	ClearDueDate bool
	EstimatedMin *int
}
