package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtnlabs/gtn/adapter/cli"
	"github.com/gtnlabs/gtn/internal/catalog/application/queries"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

var (
	sortBy   string
	kindName string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks in the session.

Sort Options:
  --sort priority   Ascending priority number (1 first)
  --sort deadline   Lexicographic deadline order

Examples:
  gtn task list                     # Session order
  gtn task list --sort priority     # Most urgent first
  gtn task list --kind RecurringTask`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListTasksHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		query := queries.ListTasksQuery{SortBy: sortBy}
		if kindName != "" {
			kind, err := item.ParseKind(kindName)
			if err != nil {
				return err
			}
			query.Kind = &kind
		}

		tasks := app.ListTasksHandler.Handle(cmd.Context(), query)
		if len(tasks) == 0 {
			fmt.Println("No tasks in the session.")
			return nil
		}

		for _, t := range tasks {
			fmt.Println(t.Summary)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&sortBy, "sort", "", "sort by field (priority, deadline)")
	listCmd.Flags().StringVar(&kindName, "kind", "", "filter by kind (Task, RecurringTask, OneTimeTask)")
}
