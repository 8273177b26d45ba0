package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtnlabs/gtn/adapter/cli"
	"github.com/gtnlabs/gtn/internal/catalog/application/queries"
)

var showPassword string

var showCmd = &cobra.Command{
	Use:   "show [title]",
	Short: "Show note details",
	Long: `Show the full detail view of the first note whose title matches.
Protected notes require --password.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListNotesHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		notes := app.ListNotesHandler.Handle(cmd.Context(), queries.ListNotesQuery{Password: showPassword})
		for _, n := range notes {
			if n.Title != args[0] {
				continue
			}
			if n.Locked {
				return fmt.Errorf("incorrect password for protected note %q", n.Title)
			}
			fmt.Println(n.Details)
			return nil
		}
		return fmt.Errorf("no note titled %q", args[0])
	},
}

func init() {
	showCmd.Flags().StringVar(&showPassword, "password", "", "password for protected notes")
}
