package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/pulseplan/internal/cli"
	"github.com/alexanderramin/pulseplan/internal/db"
	"github.com/alexanderramin/pulseplan/internal/repository"
	"github.com/alexanderramin/pulseplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pulseplan/pulseplan.db
	dbPath := os.Getenv("PULSEPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pulseplan", "pulseplan.db")
	}

	userID := os.Getenv("PULSEPLAN_USER")
	if userID == "" {
		userID = "local"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	checkInRepo := repository.NewSQLiteCheckInRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	constraintRepo := repository.NewSQLiteConstraintRepo(database)
	// Events arrive through the CLI's --events flag; nothing queries a live
	// provider, so the default calendar is empty.
	calendar := repository.NewStaticCalendar(nil)

	// Use-case logging is opt-in.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("PULSEPLAN_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		CheckIns:    service.NewCheckInService(checkInRepo),
		Tasks:       service.NewTaskService(taskRepo),
		Constraints: service.NewConstraintService(constraintRepo),
		Profiles:    service.NewProfileService(checkInRepo),
		Schedules:   service.NewScheduleService(checkInRepo, taskRepo, constraintRepo, calendar, observer),
		UserID:      userID,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
