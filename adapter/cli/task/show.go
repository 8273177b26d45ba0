package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtnlabs/gtn/adapter/cli"
	"github.com/gtnlabs/gtn/internal/catalog/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show [title]",
	Short: "Show task details",
	Long:  `Show the full detail view of the first task whose title matches.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListTasksHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		tasks := app.ListTasksHandler.Handle(cmd.Context(), queries.ListTasksQuery{})
		for _, t := range tasks {
			if t.Title == args[0] {
				fmt.Println(t.Details)
				return nil
			}
		}
		return fmt.Errorf("no task titled %q", args[0])
	},
}
