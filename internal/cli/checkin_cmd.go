package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pulseplan/internal/cli/formatter"
	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckInCmd(app *App) *cobra.Command {
	var level int
	var at string
	var tags []string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Log an energy check-in (1-5)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("level") {
				if !app.interactive() {
					return fmt.Errorf("--level is required when not running interactively")
				}
				var tagLine string
				if err := checkInForm(&level, &tagLine).Run(); err != nil {
					return err
				}
				if strings.TrimSpace(tagLine) != "" {
					for _, tag := range strings.Split(tagLine, ",") {
						if t := strings.TrimSpace(tag); t != "" {
							tags = append(tags, t)
						}
					}
				}
			}

			c := &domain.EnergyCheckIn{
				UserID: app.UserID,
				Level:  level,
				Tags:   tags,
			}
			if at != "" {
				parsed, err := time.Parse("2006-01-02 15:04", at)
				if err != nil {
					return fmt.Errorf("parsing --at: want \"YYYY-MM-DD HH:MM\": %w", err)
				}
				c.RecordedAt = parsed.UTC()
			}

			if err := app.CheckIns.Log(context.Background(), c); err != nil {
				return err
			}

			count, err := app.CheckIns.CountToday(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("Logged."),
				formatter.Dim(fmt.Sprintf("Level %d in the %s; %d check-in(s) today.",
					c.Level, formatter.PeriodLabel(c.Period), count)),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&level, "level", 0, "Energy level from 1 (drained) to 5 (peak)")
	cmd.Flags().StringVar(&at, "at", "", "Record for a past moment (\"YYYY-MM-DD HH:MM\", default now)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Context tag, repeatable")

	return cmd
}
