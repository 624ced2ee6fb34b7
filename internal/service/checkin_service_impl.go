package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/alexanderramin/pulseplan/internal/repository"
	"github.com/google/uuid"
)

type checkInService struct {
	checkIns repository.CheckInRepo
}

func NewCheckInService(checkIns repository.CheckInRepo) CheckInService {
	return &checkInService{checkIns: checkIns}
}

func (s *checkInService) Log(ctx context.Context, c *domain.EnergyCheckIn) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if c.RecordedAt.IsZero() {
		c.RecordedAt = now
	}
	c.CreatedAt = now
	c.Derive()
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.checkIns.Create(ctx, c); err != nil {
		return fmt.Errorf("log check-in: %w", err)
	}
	return nil
}

func (s *checkInService) ListRecent(ctx context.Context, userID string, days int) ([]domain.EnergyCheckIn, error) {
	if days <= 0 {
		days = 7
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	return s.checkIns.ListSince(ctx, userID, since)
}

func (s *checkInService) Delete(ctx context.Context, id string) error {
	return s.checkIns.Delete(ctx, id)
}

func (s *checkInService) CountToday(ctx context.Context, userID string) (int, error) {
	return s.checkIns.CountToday(ctx, userID, time.Now().UTC())
}
