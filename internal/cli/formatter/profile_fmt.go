package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulseplan/internal/contract"
)

// FormatProfile formats an EnergyProfile into a styled CLI string.
func FormatProfile(profile *contract.EnergyProfile) string {
	var b strings.Builder

	b.WriteString(Header("Energy Profile"))
	b.WriteString("\n\n")

	for _, pe := range profile.Periods {
		marker := " "
		if profile.PeakPeriod != nil && pe.Period == *profile.PeakPeriod {
			marker = StyleGreen.Render("▲")
		} else if profile.LowPeriod != nil && pe.Period == *profile.LowPeriod {
			marker = StyleRed.Render("▼")
		}
		b.WriteString(fmt.Sprintf("%s %-14s %s %s  %s\n",
			marker,
			PeriodLabel(pe.Period),
			EnergyBar(pe.Average),
			EnergyLevel(pe.Average),
			Dim(fmt.Sprintf("confidence %.0f%%, %d point(s)", pe.Confidence*100, pe.DataPoints)),
		))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Check-ins:"), StyleFg.Render(fmt.Sprintf("%d", profile.TotalCheckIns))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Weekly trend:"), StyleFg.Render(string(profile.WeeklyTrend))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Profile strength:"), strengthStyled(profile.Strength)))

	if len(profile.Patterns) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Patterns"))
		b.WriteString("\n")
		for _, p := range profile.Patterns {
			b.WriteString(fmt.Sprintf("%s %s\n",
				StylePurple.Render(fmt.Sprintf("[%.0f%%]", p.Strength*100)),
				StyleFg.Render(p.Insight),
			))
		}
	}

	if dw := profile.Suggestions.DeepWorkPeriod; dw != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Deep work:"), StyleGreen.Render(PeriodLabel(*dw))))
	}
	if mp := profile.Suggestions.MeetingPeriod; mp != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Meetings:"), StyleBlue.Render(PeriodLabel(*mp))))
	}
	for _, wp := range profile.Suggestions.WarningPeriods {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Protect:"), StyleYellow.Render(PeriodLabel(wp))))
	}

	return b.String()
}

func strengthStyled(strength float64) string {
	s := Percent(strength)
	switch {
	case strength >= 70:
		return StyleGreen.Render(s)
	case strength >= 40:
		return StyleYellow.Render(s)
	default:
		return StyleRed.Render(s)
	}
}
