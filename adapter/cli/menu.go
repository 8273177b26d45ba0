package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// menuRunner starts the interactive menu. Set at startup so this
// package does not depend on the TUI.
var menuRunner func() error

// SetMenuRunner installs the interactive menu entry point.
func SetMenuRunner(run func() error) {
	menuRunner = run
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long:  `Browse, add, and search records through a full-screen menu.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if menuRunner == nil {
			return fmt.Errorf("application not initialized")
		}
		return menuRunner()
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
