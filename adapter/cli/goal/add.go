package goal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtnlabs/gtn/adapter/cli"
	"github.com/gtnlabs/gtn/internal/catalog/application/commands"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

var (
	description     string
	progress        float64
	quantifiable    bool
	nonQuantifiable bool
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new goal",
	Long: `Add a goal to the session. Progress is a fraction between 0 and 1.
Non-quantifiable goals ignore their progress when sorting and always
sort after measured ones.

Examples:
  gtn goal add "Save money" --progress 0.4
  gtn goal add "Run 100km" --quantifiable --progress 0.25
  gtn goal add "Be kinder" --non-quantifiable`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddGoalHandler == nil {
			return fmt.Errorf("application not initialized")
		}
		if quantifiable && nonQuantifiable {
			return fmt.Errorf("--quantifiable and --non-quantifiable are mutually exclusive")
		}

		kind := item.KindGoal
		switch {
		case quantifiable:
			kind = item.KindQuantifiableGoal
		case nonQuantifiable:
			kind = item.KindNonQuantifiableGoal
		}

		result, err := app.AddGoalHandler.Handle(cmd.Context(), commands.AddGoalCommand{
			Kind:        kind,
			Title:       args[0],
			Description: description,
			Progress:    progress,
		})
		if err != nil {
			return fmt.Errorf("failed to add goal: %w", err)
		}

		fmt.Println(result.Summary)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&description, "description", "", "goal description")
	addCmd.Flags().Float64Var(&progress, "progress", 0, "progress fraction, 0 to 1")
	addCmd.Flags().BoolVar(&quantifiable, "quantifiable", false, "add a quantifiable goal")
	addCmd.Flags().BoolVar(&nonQuantifiable, "non-quantifiable", false, "add a non-quantifiable goal")
}
