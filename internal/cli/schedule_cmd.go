package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/pulseplan/internal/cli/formatter"
	"github.com/alexanderramin/pulseplan/internal/contract"
	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var date, eventsFile string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate today's energy-aware schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewScheduleRequest(app.UserID)
			req.TargetDate = date

			if eventsFile != "" {
				events, err := readEventsFile(eventsFile)
				if err != nil {
					return err
				}
				req.Events = events
				req.HasEvents = true
			}

			schedule, err := app.Schedules.Generate(context.Background(), req)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(schedule)
			}
			fmt.Print(formatter.FormatSchedule(schedule))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Target date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&eventsFile, "events", "", "JSON file with calendar events for the day")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the schedule as JSON")

	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "One-line description of your optimal day",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Schedules.OptimalDaySummary(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.StylePurple.Render(summary))
			return nil
		},
	}
}

func newProfileCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your derived energy profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Profiles.Get(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(profile)
			}
			fmt.Print(formatter.FormatProfile(profile))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the profile as JSON")

	return cmd
}

// readEventsFile parses a JSON array of calendar events.
func readEventsFile(path string) ([]domain.CalendarEvent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading events file: %w", err)
	}
	var events []domain.CalendarEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("parsing events file: %w", err)
	}
	return events, nil
}
