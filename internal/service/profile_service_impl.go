package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/repository"
	"github.com/alexanderramin/pulseplan/internal/scheduler"
)

type profileService struct {
	checkIns repository.CheckInRepo
}

func NewProfileService(checkIns repository.CheckInRepo) ProfileService {
	return &profileService{checkIns: checkIns}
}

func (s *profileService) Get(ctx context.Context, userID string) (*contract.EnergyProfile, error) {
	now := time.Now().UTC()
	checkIns, err := s.checkIns.ListSince(ctx, userID, now.AddDate(0, 0, -ProfileFetchWindowDays))
	if err != nil {
		return nil, contract.NewCollaboratorError("energy store", err)
	}
	profile := scheduler.BuildProfile(scheduler.ProfileInput{
		UserID:   userID,
		CheckIns: checkIns,
		Now:      now,
	})
	return &profile, nil
}
