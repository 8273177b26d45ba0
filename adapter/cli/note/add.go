package note

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gtnlabs/gtn/adapter/cli"
	"github.com/gtnlabs/gtn/internal/catalog/application/commands"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

var (
	description string
	tags        []string
	password    string
	public      bool
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new note",
	Long: `Add a note to the session. Passing --password makes the note
protected: its detail view only renders after the password matches.

Examples:
  gtn note add "Shopping list" --tags home,errands
  gtn note add "Diary" --password hunter2
  gtn note add "Open house" --public`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddNoteHandler == nil {
			return fmt.Errorf("application not initialized")
		}
		if password != "" && public {
			return fmt.Errorf("--password and --public are mutually exclusive")
		}

		kind := item.KindNote
		switch {
		case password != "":
			kind = item.KindProtectedNote
		case public:
			kind = item.KindPublicNote
		}

		result, err := app.AddNoteHandler.Handle(cmd.Context(), commands.AddNoteCommand{
			Kind:        kind,
			Title:       args[0],
			Description: description,
			Tags:        normalizeTags(tags),
			Password:    password,
		})
		if err != nil {
			return fmt.Errorf("failed to add note: %w", err)
		}

		fmt.Println(result.Summary)
		return nil
	},
}

// normalizeTags maps empty or whitespace-only tag entries to "generic",
// the same rule the data-file loader applies.
func normalizeTags(in []string) []string {
	out := make([]string, len(in))
	for i, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			t = "generic"
		}
		out[i] = t
	}
	return out
}

func init() {
	addCmd.Flags().StringVar(&description, "description", "", "note description")
	addCmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	addCmd.Flags().StringVar(&password, "password", "", "protect the note with a password")
	addCmd.Flags().BoolVar(&public, "public", false, "add a public note")
}
