package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/pulseplan/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// CheckInRepo is the energy store collaborator contract.
type CheckInRepo interface {
	Create(ctx context.Context, c *domain.EnergyCheckIn) error
	// ListSince returns a user's check-ins recorded after since, newest first.
	ListSince(ctx context.Context, userID string, since time.Time) ([]domain.EnergyCheckIn, error)
	Delete(ctx context.Context, id string) error
	// CountToday counts check-ins recorded on the given day.
	CountToday(ctx context.Context, userID string, day time.Time) (int, error)
}

// TaskRepo is the task store collaborator contract.
type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// ListPending returns a user's pending and in-progress tasks.
	ListPending(ctx context.Context, userID string) ([]domain.Task, error)
	// Patch applies the non-nil fields of patch and returns the updated task.
	Patch(ctx context.Context, id string, patch domain.TaskPatch, now time.Time) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// ConstraintRepo is the scheduling-constraint store. At most one constraint
// per (user, type); Upsert replaces.
type ConstraintRepo interface {
	ListActive(ctx context.Context, userID string) ([]domain.SchedulingConstraint, error)
	List(ctx context.Context, userID string) ([]domain.SchedulingConstraint, error)
	Upsert(ctx context.Context, c *domain.SchedulingConstraint) error
	Delete(ctx context.Context, userID string, typ domain.ConstraintType) error
}

// CalendarSource supplies existing calendar commitments. The engine only
// reads events; provider sync lives outside this repository.
type CalendarSource interface {
	ListEvents(ctx context.Context, userID string, start, end time.Time) ([]domain.CalendarEvent, error)
}
