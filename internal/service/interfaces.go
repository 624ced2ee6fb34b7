package service

import (
	"context"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
)

type CheckInService interface {
	Log(ctx context.Context, c *domain.EnergyCheckIn) error
	ListRecent(ctx context.Context, userID string, days int) ([]domain.EnergyCheckIn, error)
	Delete(ctx context.Context, id string) error
	CountToday(ctx context.Context, userID string) (int, error)
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListPending(ctx context.Context, userID string) ([]domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	Complete(ctx context.Context, id string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type ConstraintService interface {
	// List returns the user's stored constraints, or the defaults when the
	// user has stored none.
	List(ctx context.Context, userID string) ([]domain.SchedulingConstraint, error)
	Set(ctx context.Context, c *domain.SchedulingConstraint) error
	Remove(ctx context.Context, userID string, typ domain.ConstraintType) error
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*contract.EnergyProfile, error)
}

type ScheduleService interface {
	Generate(ctx context.Context, req contract.ScheduleRequest) (*contract.DailySchedule, error)
	OptimalDaySummary(ctx context.Context, userID string) (string, error)
	RescheduleForCalendarChange(ctx context.Context, userID string, events []domain.CalendarEvent) (*contract.DailySchedule, error)
}
