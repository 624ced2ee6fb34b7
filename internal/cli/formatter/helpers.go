package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulseplan/internal/domain"
)

// PeriodLabel renders a time period for humans ("early_morning" → "Early Morning").
func PeriodLabel(p domain.TimePeriod) string {
	parts := strings.Split(string(p), "_")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// EnergyLevel renders a nullable 1-5 average, dimmed when unknown.
func EnergyLevel(level *float64) string {
	if level == nil {
		return Dim("?")
	}
	s := fmt.Sprintf("%.1f", *level)
	switch {
	case *level >= 4:
		return StyleGreen.Render(s)
	case *level >= 3:
		return StyleYellow.Render(s)
	default:
		return StyleRed.Render(s)
	}
}

// EnergyBar renders a five-segment bar for a nullable 1-5 average.
func EnergyBar(level *float64) string {
	if level == nil {
		return Dim(strings.Repeat("░", 5))
	}
	filled := int(*level + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 5-filled)
	switch {
	case *level >= 4:
		return StyleGreen.Render(bar)
	case *level >= 3:
		return StyleYellow.Render(bar)
	default:
		return StyleRed.Render(bar)
	}
}

// Percent renders a 0-100 value as "NN%".
func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

// Clock renders an hour range like "07:00-10:00".
func Clock(startHour, endHour int) string {
	return fmt.Sprintf("%02d:00-%02d:00", startHour, endHour)
}
