package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/pulseplan/internal/cli/formatter"
	"github.com/alexanderramin/pulseplan/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskUpdateCmd(app),
		newTaskRmCmd(app),
	)
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var priority, due string
	var estimate int

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var title string
			if len(args) == 1 {
				title = args[0]
			}

			task := &domain.Task{UserID: app.UserID, Title: title}
			if title == "" && app.interactive() {
				var dueIn, estIn string
				priority = "medium"
				if err := taskForm(&title, &priority, &dueIn, &estIn).Run(); err != nil {
					return err
				}
				task.Title = title
				due = dueIn
				if strings.TrimSpace(estIn) != "" {
					n, err := strconv.Atoi(strings.TrimSpace(estIn))
					if err != nil {
						return fmt.Errorf("parsing estimate: %w", err)
					}
					estimate = n
				}
			}

			if priority != "" {
				task.Priority = domain.Priority(priority)
			}
			if due != "" {
				parsed, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("parsing --due: want YYYY-MM-DD: %w", err)
				}
				task.DueDate = &parsed
			}
			if cmd.Flags().Changed("estimate") || estimate > 0 {
				task.EstimatedMin = &estimate
			}

			if err := app.Tasks.Create(context.Background(), task); err != nil {
				return err
			}
			fmt.Printf("%s %s\n",
				formatter.StyleGreen.Render("Added."),
				formatter.Dim(fmt.Sprintf("%s (%s)", task.Title, task.ID[:8])),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "", "high, medium, or low (default medium)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "Estimated minutes")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.ListPending(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println(formatter.Dim("No pending tasks."))
				return nil
			}
			for _, t := range tasks {
				line := fmt.Sprintf("%s %s  %s",
					formatter.Dim(t.ID[:8]),
					formatter.Bold(t.Title),
					priorityStyled(t.Priority),
				)
				if t.DueDate != nil {
					line += "  " + formatter.Dim("due "+t.DueDate.Format("2006-01-02"))
				}
				if t.EstimatedMin != nil {
					line += "  " + formatter.Dim(fmt.Sprintf("~%dm", *t.EstimatedMin))
				}
				if t.Status == domain.TaskInProgress {
					line += "  " + formatter.StyleBlue.Render("in progress")
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.Complete(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.StyleGreen.Render("Done."), formatter.Dim(task.Title))
			return nil
		},
	}
}

func newTaskUpdateCmd(app *App) *cobra.Command {
	var title, priority, status, due string
	var estimate int
	var clearDue bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update task fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("priority") {
				p := domain.Priority(priority)
				patch.Priority = &p
			}
			if cmd.Flags().Changed("status") {
				s := domain.TaskStatus(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("due") {
				parsed, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("parsing --due: want YYYY-MM-DD: %w", err)
				}
				patch.DueDate = &parsed
			}
			if clearDue {
				patch.ClearDueDate = true
			}
			if cmd.Flags().Changed("estimate") {
				patch.EstimatedMin = &estimate
			}

			task, err := app.Tasks.Update(context.Background(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.StyleGreen.Render("Updated."), formatter.Dim(task.Title))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&priority, "priority", "", "high, medium, or low")
	cmd.Flags().StringVar(&status, "status", "", "pending, in_progress, completed, or cancelled")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "New estimated minutes")

	return cmd
}

func newTaskRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Deleted."))
			return nil
		},
	}
}

func priorityStyled(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return formatter.StyleRed.Render("high")
	case domain.PriorityLow:
		return formatter.StyleDim.Render("low")
	default:
		return formatter.StyleYellow.Render("medium")
	}
}
