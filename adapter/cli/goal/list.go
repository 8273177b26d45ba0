package goal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtnlabs/gtn/adapter/cli"
	"github.com/gtnlabs/gtn/internal/catalog/application/queries"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

var (
	byProgress bool
	kindName   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
	Long: `List goals in session order, or by descending progress with
--by-progress. Non-quantifiable goals always come last.`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListGoalsHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		query := queries.ListGoalsQuery{SortByProgress: byProgress}
		if kindName != "" {
			kind, err := item.ParseKind(kindName)
			if err != nil {
				return err
			}
			query.Kind = &kind
		}

		goals := app.ListGoalsHandler.Handle(cmd.Context(), query)
		if len(goals) == 0 {
			fmt.Println("No goals in the session.")
			return nil
		}

		for _, g := range goals {
			fmt.Println(g.Summary)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&byProgress, "by-progress", false, "sort by descending progress")
	listCmd.Flags().StringVar(&kindName, "kind", "", "filter by kind (Goal, QuantifiableGoal, NonQuantifiableGoal)")
}
