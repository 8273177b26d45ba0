package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtnlabs/gtn/adapter/cli"
	"github.com/gtnlabs/gtn/internal/catalog/application/queries"
)

var (
	searchTag      string
	searchPassword string
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search notes",
	Long: `Search notes by tag or by full text.

With --tag the match is exact and case-sensitive against the tag
list. Without it, the text argument is matched case-insensitively
against each note's title, description, and tags.

Examples:
  gtn note search --tag home
  gtn note search groceries`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.SearchNotesHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		query := queries.SearchNotesQuery{Tag: searchTag, Password: searchPassword}
		if len(args) > 0 {
			query.Text = args[0]
		}
		if query.Tag == "" && query.Text == "" {
			return fmt.Errorf("provide search text or --tag")
		}

		notes := app.SearchNotesHandler.Handle(cmd.Context(), query)
		if len(notes) == 0 {
			fmt.Println("No matching notes.")
			return nil
		}

		for _, n := range notes {
			fmt.Println(n.Summary)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchTag, "tag", "", "exact tag to match")
	searchCmd.Flags().StringVar(&searchPassword, "password", "", "password for protected notes")
}
