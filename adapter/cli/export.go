package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gtnlabs/gtn/internal/app"
)

var exportDatabaseURL string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session to a database",
	Long: `Export every record in the session to the configured database.

The target comes from --database, GTN_DATABASE_URL, or the config
file. A postgres:// URL exports to PostgreSQL; anything else is
treated as a local SQLite file path.

Examples:
  gtn export
  gtn export --database gtn.db
  gtn export --database postgres://localhost:5432/gtn`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cliApp := GetApp()
		if cliApp == nil || cliApp.Store == nil {
			return fmt.Errorf("application not initialized")
		}

		url := exportDatabaseURL
		if url == "" {
			url = cliApp.DatabaseURL
		}

		ctx := cmd.Context()
		repo, closeConn, err := app.OpenRecordRepository(ctx, url)
		if err != nil {
			return fmt.Errorf("open export database: %w", err)
		}
		defer closeConn()

		records := cliApp.Store.All()
		if err := repo.SaveAll(ctx, records); err != nil {
			return fmt.Errorf("export records: %w", err)
		}

		fmt.Printf("Exported %d records.\n", len(records))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDatabaseURL, "database", "", "database URL or SQLite path")
	rootCmd.AddCommand(exportCmd)
}
