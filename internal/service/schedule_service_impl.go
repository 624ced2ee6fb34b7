package service

import (
	"context"
	"time"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/alexanderramin/pulseplan/internal/repository"
	"github.com/alexanderramin/pulseplan/internal/scheduler"
)

type scheduleService struct {
	loader   *contextLoader
	observer UseCaseObserver
}

func NewScheduleService(
	checkIns repository.CheckInRepo,
	tasks repository.TaskRepo,
	constraints repository.ConstraintRepo,
	calendar repository.CalendarSource,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		loader: &contextLoader{
			checkIns:    checkIns,
			tasks:       tasks,
			constraints: constraints,
			calendar:    calendar,
		},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Generate(ctx context.Context, req contract.ScheduleRequest) (schedule *contract.DailySchedule, err error) {
	startedAt := time.Now()
	defer func() {
		fields := map[string]any{"user_id": req.UserID}
		if schedule != nil {
			fields["scheduled"] = len(schedule.ScheduledTasks)
			fields["unscheduled"] = len(schedule.UnscheduledTasks)
		}
		observe(ctx, s.observer, "schedule.generate", startedAt, err, fields)
	}()

	sctx, err := s.loader.Load(ctx, req)
	if err != nil {
		return nil, err
	}

	ranked := scoreAndRank(sctx)
	slots := scheduler.GenerateSlots(scheduler.SlotInput{
		Date:        sctx.Date,
		Profile:     &sctx.Profile,
		Events:      sctx.Events,
		Constraints: sctx.Constraints,
	})
	forecast := buildForecast(slots)

	scheduled, unscheduled := placeTasks(ranked, slots)
	swaps := scheduler.SuggestSwaps(scheduled, &sctx.Profile)

	return &contract.DailySchedule{
		UserID:           req.UserID,
		Date:             sctx.Date.Format("2006-01-02"),
		ScheduledTasks:   scheduled,
		UnscheduledTasks: unscheduled,
		OptimalSummary:   buildSummary(&sctx.Profile, scheduled),
		Insights:         buildInsights(&sctx.Profile, scheduled, unscheduled, swaps),
		EnergyForecast:   forecast,
		SwapSuggestions:  swaps,
		Constraints:      sctx.Constraints,
		GeneratedAt:      sctx.Now,
	}, nil
}

func (s *scheduleService) OptimalDaySummary(ctx context.Context, userID string) (string, error) {
	schedule, err := s.Generate(ctx, contract.NewScheduleRequest(userID))
	if err != nil {
		return "", err
	}
	return schedule.OptimalSummary, nil
}

// RescheduleForCalendarChange rebuilds today's schedule against an updated
// event list, bypassing the calendar source.
func (s *scheduleService) RescheduleForCalendarChange(ctx context.Context, userID string, events []domain.CalendarEvent) (*contract.DailySchedule, error) {
	return s.Generate(ctx, contract.ScheduleRequest{
		UserID:    userID,
		Events:    events,
		HasEvents: true,
	})
}
