package cli

import (
	"strings"

	"github.com/alexanderramin/pulseplan/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	CheckIns    service.CheckInService
	Tasks       service.TaskService
	Constraints service.ConstraintService
	Profiles    service.ProfileService
	Schedules   service.ScheduleService

	// UserID identifies the acting user for every command.
	UserID string

	// IsInteractive reports whether stdin is a terminal, enabling forms.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "pulseplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pulseplan",
		Short: "Energy-aware daily schedule planner",
	}

	root.PersistentFlags().StringVar(&app.UserID, "user", app.UserID, "Acting user id")

	// Accept underscored flag spellings (--clear_due == --clear-due).
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newCheckInCmd(app),
		newTaskCmd(app),
		newConstraintCmd(app),
		newScheduleCmd(app),
		newSummaryCmd(app),
		newProfileCmd(app),
	)

	return root
}
