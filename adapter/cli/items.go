package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Display all records",
	Long: `Display every task, note, and goal in the session, one summary
line each, in the order they were loaded or added.`,
	Aliases: []string{"all"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.ListRecordsHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		records := app.ListRecordsHandler.Handle(cmd.Context())
		if len(records) == 0 {
			fmt.Println("No items in the session.")
			return nil
		}

		for _, r := range records {
			fmt.Println(r.Summary)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(itemsCmd)
}
