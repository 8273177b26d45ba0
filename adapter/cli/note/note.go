// Package note contains the note command group.
package note

import (
	"github.com/spf13/cobra"
)

// Cmd is the note command group
var Cmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long:  `Add, list, search, and inspect notes, including password-protected ones.`,
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(searchCmd)
	Cmd.AddCommand(showCmd)
}
