package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestFormatSchedule_RendersTasksAndForecast(t *testing.T) {
	start := time.Date(2025, 6, 16, 7, 0, 0, 0, time.UTC)
	schedule := &contract.DailySchedule{
		UserID:         "u-1",
		Date:           "2025-06-16",
		OptimalSummary: "1 task(s) scheduled. Tackle demanding work in the morning.",
		ScheduledTasks: []contract.ScheduledTask{
			{
				Task:           domain.Task{ID: "task-1", Title: "Draft pitch deck"},
				ScheduledStart: start,
				ScheduledEnd:   start.Add(3 * time.Hour),
				TimePeriod:     domain.PeriodMorning,
				Reason:         "peak energy window",
				EnergyMatch:    domain.MatchExcellent,
				ImpactScore:    85,
			},
		},
		UnscheduledTasks: []contract.UnscheduledTask{
			{Task: domain.Task{ID: "task-2", Title: "Tidy inbox"}, Reason: "No available time slots"},
		},
		EnergyForecast: []contract.PeriodForecast{
			{Period: domain.PeriodMorning, Level: floatPtr(4.6), Confidence: 0.8},
			{Period: domain.PeriodMidday, Level: nil},
		},
	}

	out := FormatSchedule(schedule)

	assert.Contains(t, out, "2025-06-16")
	assert.Contains(t, out, "Draft pitch deck")
	assert.Contains(t, out, "EXCELLENT")
	assert.Contains(t, out, "07:00-10:00")
	assert.Contains(t, out, "Tidy inbox")
	assert.Contains(t, out, "No available time slots")
	assert.Contains(t, out, "4.6")
	assert.Contains(t, out, "Morning")
}

func TestFormatSchedule_EmptyDay(t *testing.T) {
	schedule := &contract.DailySchedule{
		Date:           "2025-06-16",
		OptimalSummary: "Nothing scheduled today.",
	}

	out := FormatSchedule(schedule)
	assert.Contains(t, out, "Nothing scheduled.")
	assert.NotContains(t, out, "Unscheduled")
	assert.NotContains(t, out, "Swap Suggestions")
}

func TestFormatSchedule_SwapSection(t *testing.T) {
	schedule := &contract.DailySchedule{
		Date: "2025-06-16",
		SwapSuggestions: []contract.SwapSuggestion{
			{
				Task1:               "aaaaaaaa-1111",
				Task2:               "bbbbbbbb-2222",
				Reason:              "better energy alignment for both tasks",
				ExpectedImprovement: 42,
			},
		},
	}

	out := FormatSchedule(schedule)
	assert.Contains(t, out, "+42%")
	assert.Contains(t, out, "better energy alignment for both tasks")
	assert.Contains(t, out, "aaaaaaaa")
	assert.NotContains(t, out, "aaaaaaaa-1111", "ids are truncated")
}
