package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulseplan/internal/contract"
)

// FormatSchedule formats a DailySchedule into a styled CLI dashboard string.
func FormatSchedule(schedule *contract.DailySchedule) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Schedule for %s", schedule.Date)))
	b.WriteString("\n\n")
	b.WriteString(StylePurple.Render(schedule.OptimalSummary))
	b.WriteString("\n\n")

	if len(schedule.ScheduledTasks) == 0 {
		b.WriteString(Dim("Nothing scheduled."))
		b.WriteString("\n")
	}
	for i, st := range schedule.ScheduledTasks {
		titleLine := fmt.Sprintf(
			"%s %s  %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(st.Task.Title),
			StyleBlue.Render(fmt.Sprintf("(%s %s)",
				PeriodLabel(st.TimePeriod),
				st.ScheduledStart.Format("15:04")+"-"+st.ScheduledEnd.Format("15:04"))),
			MatchIndicator(st.EnergyMatch),
		)
		b.WriteString(titleLine + "\n")
		b.WriteString(fmt.Sprintf("   %s %s\n", Dim("Impact:"), StyleFg.Render(fmt.Sprintf("%.0f", st.ImpactScore))))
		if st.Reason != "" {
			b.WriteString(fmt.Sprintf("   %s\n", Dim(st.Reason)))
		}
		if i < len(schedule.ScheduledTasks)-1 {
			b.WriteString("\n")
		}
	}

	if len(schedule.UnscheduledTasks) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Unscheduled"))
		b.WriteString("\n")
		for _, ut := range schedule.UnscheduledTasks {
			b.WriteString(fmt.Sprintf("%s %s  %s\n",
				StyleYellow.Render("•"),
				StyleFg.Render(ut.Task.Title),
				Dim(ut.Reason),
			))
		}
	}

	if len(schedule.EnergyForecast) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Energy Forecast"))
		b.WriteString("\n")
		for _, f := range schedule.EnergyForecast {
			b.WriteString(fmt.Sprintf("%-12s %s %s\n",
				PeriodLabel(f.Period),
				EnergyBar(f.Level),
				EnergyLevel(f.Level),
			))
		}
	}

	if len(schedule.SwapSuggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Swap Suggestions"))
		b.WriteString("\n")
		for _, sw := range schedule.SwapSuggestions {
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				StyleGreen.Render(fmt.Sprintf("+%.0f%%", sw.ExpectedImprovement)),
				StyleFg.Render(sw.Reason),
				Dim(fmt.Sprintf("(%s ↔ %s)", truncID(sw.Task1), truncID(sw.Task2))),
			))
		}
	}

	if len(schedule.Insights) > 0 {
		b.WriteString("\n")
		for _, insight := range schedule.Insights {
			b.WriteString(Dim("  "+insight) + "\n")
		}
	}

	return b.String()
}

func truncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
