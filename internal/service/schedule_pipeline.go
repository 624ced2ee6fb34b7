package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/alexanderramin/pulseplan/internal/repository"
	"github.com/alexanderramin/pulseplan/internal/scheduler"
)

// ProfileFetchWindowDays bounds the check-in history loaded per run. It is
// wider than the estimation window so trend and pattern detection see enough
// history.
const ProfileFetchWindowDays = 28

// UnschedulableReason is the fixed reason attached to tasks that no slot
// could hold.
const UnschedulableReason = "No available time slots"

// WeakProfileThreshold is the profile strength below which the schedule
// carries a check-in-more insight.
const WeakProfileThreshold = 40.0

// scheduleContext is everything one scheduling run needs, loaded up front so
// the assembly below stays pure.
type scheduleContext struct {
	Date        time.Time // midnight UTC of the target day
	Now         time.Time
	Profile     contract.EnergyProfile
	Tasks       []domain.Task
	Constraints []domain.SchedulingConstraint
	Events      []domain.CalendarEvent
}

// contextLoader fetches a user's scheduling inputs from the collaborator
// stores.
type contextLoader struct {
	checkIns    repository.CheckInRepo
	tasks       repository.TaskRepo
	constraints repository.ConstraintRepo
	calendar    repository.CalendarSource
}

func (l *contextLoader) Load(ctx context.Context, req contract.ScheduleRequest) (*scheduleContext, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = req.Now.UTC()
	}

	date := now.Truncate(24 * time.Hour)
	if req.TargetDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.TargetDate, time.UTC)
		if err != nil {
			return nil, contract.NewInvalidDateError(req.TargetDate)
		}
		date = parsed
	}

	checkIns, err := l.checkIns.ListSince(ctx, req.UserID, now.AddDate(0, 0, -ProfileFetchWindowDays))
	if err != nil {
		return nil, contract.NewCollaboratorError("energy store", err)
	}

	tasks, err := l.tasks.ListPending(ctx, req.UserID)
	if err != nil {
		return nil, contract.NewCollaboratorError("task store", err)
	}

	constraints, err := l.constraints.ListActive(ctx, req.UserID)
	if err != nil {
		return nil, contract.NewCollaboratorError("constraint store", err)
	}
	if len(constraints) == 0 {
		constraints = domain.DefaultConstraints(req.UserID)
	}

	events := req.Events
	if !req.HasEvents && l.calendar != nil {
		events, err = l.calendar.ListEvents(ctx, req.UserID, date, date.AddDate(0, 0, 1))
		if err != nil {
			return nil, contract.NewCollaboratorError("calendar source", err)
		}
	}

	return &scheduleContext{
		Date: date,
		Now:  now,
		Profile: scheduler.BuildProfile(scheduler.ProfileInput{
			UserID:   req.UserID,
			CheckIns: checkIns,
			Now:      now,
		}),
		Tasks:       tasks,
		Constraints: constraints,
		Events:      events,
	}, nil
}

// scoreAndRank impact-scores the schedulable tasks and orders them by score
// descending, then task id ascending so equal scores place deterministically.
func scoreAndRank(sctx *scheduleContext) []contract.TaskImpactScore {
	var schedulable []domain.Task
	highPriority := 0
	for _, t := range sctx.Tasks {
		if !t.Schedulable() {
			continue
		}
		schedulable = append(schedulable, t)
		if t.Priority == domain.PriorityHigh {
			highPriority++
		}
	}

	scored := make([]contract.TaskImpactScore, 0, len(schedulable))
	for _, t := range schedulable {
		scored = append(scored, scheduler.ScoreImpact(scheduler.ImpactInput{
			Task:                t,
			Profile:             &sctx.Profile,
			PendingHighPriority: highPriority,
			Now:                 sctx.Now,
		}))
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Total != scored[j].Total {
			return scored[i].Total > scored[j].Total
		}
		return scored[i].Task.ID < scored[j].Task.ID
	})
	return scored
}

// placeTasks assigns ranked tasks to slots greedily in score order. Each
// placement consumes its slot.
func placeTasks(ranked []contract.TaskImpactScore, slots []contract.TimeSlot) ([]contract.ScheduledTask, []contract.UnscheduledTask) {
	var scheduled []contract.ScheduledTask
	var unscheduled []contract.UnscheduledTask
	for _, ts := range ranked {
		match, ok := scheduler.FindBestSlot(ts.Task, slots)
		if !ok {
			unscheduled = append(unscheduled, contract.UnscheduledTask{
				Task:   ts.Task,
				Reason: UnschedulableReason,
			})
			continue
		}
		slot := slots[match.SlotIndex]
		scheduled = append(scheduled, contract.ScheduledTask{
			Task:           ts.Task,
			ScheduledStart: slot.Start,
			ScheduledEnd:   slot.End,
			TimePeriod:     match.Period,
			Reason:         match.Reason,
			EnergyMatch:    match.Match,
			ImpactScore:    ts.Total,
		})
		slots[match.SlotIndex].Available = false
	}
	return scheduled, unscheduled
}

// buildForecast projects the profile's estimates onto the day's slots.
func buildForecast(slots []contract.TimeSlot) []contract.PeriodForecast {
	forecast := make([]contract.PeriodForecast, 0, len(slots))
	for _, slot := range slots {
		forecast = append(forecast, contract.PeriodForecast{
			Period:     slot.Period,
			Level:      slot.EnergyLevel,
			Confidence: slot.Confidence,
		})
	}
	return forecast
}

// buildInsights derives the human-readable observations attached to a
// schedule.
func buildInsights(profile *contract.EnergyProfile, scheduled []contract.ScheduledTask, unscheduled []contract.UnscheduledTask, swaps []contract.SwapSuggestion) []string {
	var insights []string

	if profile.PeakPeriod != nil {
		inPeak := 0
		for _, st := range scheduled {
			if st.TimePeriod == *profile.PeakPeriod {
				inPeak++
			}
		}
		if inPeak > 0 {
			insights = append(insights, fmt.Sprintf("%d task(s) scheduled in your peak energy period (%s)", inPeak, periodLabel(*profile.PeakPeriod)))
		}
	}

	excellent := 0
	for _, st := range scheduled {
		if st.EnergyMatch == domain.MatchExcellent {
			excellent++
		}
	}
	if excellent > 0 {
		insights = append(insights, fmt.Sprintf("%d task(s) have an excellent energy match", excellent))
	}

	if len(unscheduled) > 0 {
		insights = append(insights, fmt.Sprintf("%d task(s) could not be scheduled today; consider deferring or splitting them", len(unscheduled)))
	}
	if len(swaps) > 0 {
		insights = append(insights, fmt.Sprintf("%d swap(s) could improve your energy alignment", len(swaps)))
	}

	if profile.Strength < WeakProfileThreshold {
		insights = append(insights, "Your energy profile is still forming; log more check-ins for better scheduling")
	}
	if dw := profile.Suggestions.DeepWorkPeriod; dw != nil {
		insights = append(insights, fmt.Sprintf("Your best window for deep work is the %s", periodLabel(*dw)))
	}

	return insights
}

// buildSummary produces the one-line optimal-day description.
func buildSummary(profile *contract.EnergyProfile, scheduled []contract.ScheduledTask) string {
	if profile.TotalCheckIns == 0 {
		return "No energy data yet; schedule built with neutral estimates. Log check-ins to personalize it."
	}
	peak := "your strongest period"
	if profile.PeakPeriod != nil {
		peak = "the " + periodLabel(*profile.PeakPeriod)
	}
	if len(scheduled) == 0 {
		return fmt.Sprintf("Nothing scheduled today. Your energy peaks in %s.", peak)
	}
	return fmt.Sprintf("%d task(s) scheduled. Tackle demanding work in %s.", len(scheduled), peak)
}

func periodLabel(p domain.TimePeriod) string {
	switch p {
	case domain.PeriodEarlyMorning:
		return "early morning"
	case domain.PeriodMorning:
		return "morning"
	case domain.PeriodMidday:
		return "midday"
	case domain.PeriodAfternoon:
		return "afternoon"
	case domain.PeriodEvening:
		return "evening"
	case domain.PeriodNight:
		return "night"
	}
	return string(p)
}
