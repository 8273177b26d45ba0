package goal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtnlabs/gtn/adapter/cli"
	"github.com/gtnlabs/gtn/internal/catalog/application/queries"
)

var showCmd = &cobra.Command{
	Use:   "show [title]",
	Short: "Show goal details",
	Long:  `Show the full detail view of the first goal whose title matches.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListGoalsHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		goals := app.ListGoalsHandler.Handle(cmd.Context(), queries.ListGoalsQuery{})
		for _, g := range goals {
			if g.Title == args[0] {
				fmt.Println(g.Details)
				return nil
			}
		}
		return fmt.Errorf("no goal titled %q", args[0])
	},
}
