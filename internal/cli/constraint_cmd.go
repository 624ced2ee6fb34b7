package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/pulseplan/internal/cli/formatter"
	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/spf13/cobra"
)

func newConstraintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constraint",
		Short: "Manage scheduling constraints",
	}
	cmd.AddCommand(
		newConstraintListCmd(app),
		newConstraintSetCmd(app),
		newConstraintRmCmd(app),
	)
	return cmd
}

func newConstraintListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active constraints (defaults when none stored)",
		RunE: func(cmd *cobra.Command, args []string) error {
			constraints, err := app.Constraints.List(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			for _, c := range constraints {
				state := formatter.StyleGreen.Render("active")
				if !c.Active {
					state = formatter.Dim("inactive")
				}
				fmt.Printf("%s %s  %s  %s\n",
					formatter.Bold(string(c.Type)),
					formatter.Dim(constraintValueLabel(c)),
					formatter.Dim(fmt.Sprintf("priority %d", c.Priority)),
					state,
				)
			}
			return nil
		},
	}
}

func newConstraintSetCmd(app *App) *cobra.Command {
	var hour, startHour, endHour, bufferMin, maxMeetings, priority int
	var preference string
	var inactive bool

	cmd := &cobra.Command{
		Use:   "set <type>",
		Short: "Set or replace a constraint",
		Long: "Set or replace a constraint. Types: no_meetings_before, no_meetings_after,\n" +
			"focus_block, meeting_buffer, max_daily_meetings, task_preference.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidConstraintTypes[args[0]] {
				return fmt.Errorf("unknown constraint type %q", args[0])
			}
			c := &domain.SchedulingConstraint{
				UserID: app.UserID,
				Type:   domain.ConstraintType(args[0]),
				Value: domain.ConstraintValue{
					Hour:        hour,
					StartHour:   startHour,
					EndHour:     endHour,
					BufferMin:   bufferMin,
					MaxMeetings: maxMeetings,
					Preference:  preference,
				},
				Priority: priority,
				Active:   !inactive,
			}
			if err := app.Constraints.Set(context.Background(), c); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.StyleGreen.Render("Set."), formatter.Dim(string(c.Type)))
			return nil
		},
	}

	cmd.Flags().IntVar(&hour, "hour", 0, "Cutoff hour for no_meetings_before/after")
	cmd.Flags().IntVar(&startHour, "start", 0, "Start hour for focus_block")
	cmd.Flags().IntVar(&endHour, "end", 0, "End hour for focus_block")
	cmd.Flags().IntVar(&bufferMin, "buffer", domain.DefaultMeetingBufferMin, "Minutes for meeting_buffer")
	cmd.Flags().IntVar(&maxMeetings, "max", 0, "Count for max_daily_meetings")
	cmd.Flags().StringVar(&preference, "preference", "", "Free-form value for task_preference")
	cmd.Flags().IntVar(&priority, "priority", 1, "Application order; lower applies first")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Store without applying")

	return cmd
}

func newConstraintRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <type>",
		Short: "Remove a constraint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Constraints.Remove(context.Background(), app.UserID, domain.ConstraintType(args[0])); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Removed."))
			return nil
		},
	}
}

func constraintValueLabel(c domain.SchedulingConstraint) string {
	switch c.Type {
	case domain.ConstraintNoMeetingsBefore, domain.ConstraintNoMeetingsAfter:
		return fmt.Sprintf("%02d:00", c.Value.Hour)
	case domain.ConstraintFocusBlock:
		return formatter.Clock(c.Value.StartHour, c.Value.EndHour)
	case domain.ConstraintMeetingBuffer:
		return fmt.Sprintf("%d min", c.Value.BufferMin)
	case domain.ConstraintMaxDailyMeetings:
		return fmt.Sprintf("%d/day", c.Value.MaxMeetings)
	case domain.ConstraintTaskPreference:
		return c.Value.Preference
	}
	raw, _ := json.Marshal(c.Value)
	return string(raw)
}
