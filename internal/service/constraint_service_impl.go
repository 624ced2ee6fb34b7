package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/alexanderramin/pulseplan/internal/repository"
)

type constraintService struct {
	constraints repository.ConstraintRepo
}

func NewConstraintService(constraints repository.ConstraintRepo) ConstraintService {
	return &constraintService{constraints: constraints}
}

func (s *constraintService) List(ctx context.Context, userID string) ([]domain.SchedulingConstraint, error) {
	stored, err := s.constraints.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list constraints: %w", err)
	}
	if len(stored) == 0 {
		return domain.DefaultConstraints(userID), nil
	}
	return stored, nil
}

func (s *constraintService) Set(ctx context.Context, c *domain.SchedulingConstraint) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.constraints.Upsert(ctx, c); err != nil {
		return fmt.Errorf("set constraint: %w", err)
	}
	return nil
}

func (s *constraintService) Remove(ctx context.Context, userID string, typ domain.ConstraintType) error {
	return s.constraints.Delete(ctx, userID, typ)
}
