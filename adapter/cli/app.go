// Package cli wires cobra commands to the application handlers.
package cli

import (
	"github.com/gtnlabs/gtn/internal/catalog/application/commands"
	"github.com/gtnlabs/gtn/internal/catalog/application/queries"
	"github.com/gtnlabs/gtn/internal/catalog/domain/collection"
)

// App holds the CLI application dependencies.
type App struct {
	// Command handlers
	AddTaskHandler *commands.AddTaskHandler
	AddNoteHandler *commands.AddNoteHandler
	AddGoalHandler *commands.AddGoalHandler

	// Query handlers
	ListRecordsHandler *queries.ListRecordsHandler
	ListTasksHandler   *queries.ListTasksHandler
	ListNotesHandler   *queries.ListNotesHandler
	ListGoalsHandler   *queries.ListGoalsHandler
	SearchNotesHandler *queries.SearchNotesHandler

	// Store backs the export command and the interactive menu.
	Store *collection.Collection

	// DatabaseURL is the configured export target.
	DatabaseURL string
}

var appInstance *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	appInstance = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return appInstance
}
