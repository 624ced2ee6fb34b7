package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/alexanderramin/pulseplan/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Status == "" {
		t.Status = domain.TaskPending
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListPending(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.tasks.ListPending(ctx, userID)
}

func (s *taskService) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	updated, err := s.tasks.Patch(ctx, id, patch, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *taskService) Complete(ctx context.Context, id string) (*domain.Task, error) {
	done := domain.TaskCompleted
	return s.tasks.Patch(ctx, id, domain.TaskPatch{Status: &done}, time.Now().UTC())
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
