package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtnlabs/gtn/adapter/cli"
	"github.com/gtnlabs/gtn/internal/catalog/application/commands"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

var (
	description string
	deadline    string
	priority    int
	recurring   bool
	oneTime     bool
	interval    string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a task to the session. Priority runs 1 (highest) to 10; the
deadline is free text and defaults to "No Deadline".

Examples:
  gtn task add "Buy groceries" --deadline 2024-06-01 --priority 2
  gtn task add "Water plants" --recurring --interval "every 3 days"
  gtn task add "Dentist appointment" --one-time --deadline 2024-07-15`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddTaskHandler == nil {
			return fmt.Errorf("application not initialized")
		}
		if recurring && oneTime {
			return fmt.Errorf("--recurring and --one-time are mutually exclusive")
		}

		kind := item.KindTask
		switch {
		case recurring:
			kind = item.KindRecurringTask
		case oneTime:
			kind = item.KindOneTimeTask
		}

		result, err := app.AddTaskHandler.Handle(cmd.Context(), commands.AddTaskCommand{
			Kind:        kind,
			Title:       args[0],
			Description: description,
			Deadline:    deadline,
			Priority:    priority,
			Interval:    interval,
		})
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Println(result.Summary)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&description, "description", "", "task description")
	addCmd.Flags().StringVar(&deadline, "deadline", item.NoDeadline, "deadline (free text)")
	addCmd.Flags().IntVarP(&priority, "priority", "p", 3, "priority, 1 (highest) to 10")
	addCmd.Flags().BoolVar(&recurring, "recurring", false, "add a recurring task")
	addCmd.Flags().BoolVar(&oneTime, "one-time", false, "add a one-time task")
	addCmd.Flags().StringVar(&interval, "interval", "", "recurrence interval (recurring tasks)")
}
