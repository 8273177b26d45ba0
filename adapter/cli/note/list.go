package note

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtnlabs/gtn/adapter/cli"
	"github.com/gtnlabs/gtn/internal/catalog/application/queries"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

var kindName string

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List notes",
	Long:    `List notes in session order. Protected notes show a locked summary.`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListNotesHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		query := queries.ListNotesQuery{}
		if kindName != "" {
			kind, err := item.ParseKind(kindName)
			if err != nil {
				return err
			}
			query.Kind = &kind
		}

		notes := app.ListNotesHandler.Handle(cmd.Context(), query)
		if len(notes) == 0 {
			fmt.Println("No notes in the session.")
			return nil
		}

		for _, n := range notes {
			fmt.Println(n.Summary)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&kindName, "kind", "", "filter by kind (Note, ProtectedNote, PublicNote)")
}
