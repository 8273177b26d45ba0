// Package app wires configuration, the in-memory record store, and the
// command/query handlers into a single container.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gtnlabs/gtn/internal/catalog/application/commands"
	"github.com/gtnlabs/gtn/internal/catalog/application/queries"
	"github.com/gtnlabs/gtn/internal/catalog/application/services"
	"github.com/gtnlabs/gtn/internal/catalog/domain/collection"
	"github.com/gtnlabs/gtn/internal/catalog/infrastructure/loader"
	"github.com/gtnlabs/gtn/pkg/config"
)

// Container holds all application dependencies. The record store is
// loaded once from the flat data file at startup; everything afterwards
// works against memory.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	Store *collection.Collection

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
}

// NewContainer loads the data file and builds the full handler set.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	records, err := loader.New(logger).Load(ctx, cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("load data file: %w", err)
	}

	store := collection.New()
	store.AddAll(records)

	sorter := services.NewSorter()
	searcher := services.NewSearcher()

	return &Container{
		Config: cfg,
		Logger: logger,
		Store:  store,

		AddTaskHandler: commands.NewAddTaskHandler(store, logger),
		AddNoteHandler: commands.NewAddNoteHandler(store, logger),
		AddGoalHandler: commands.NewAddGoalHandler(store, logger),

		ListRecordsHandler: queries.NewListRecordsHandler(store),
		ListTasksHandler:   queries.NewListTasksHandler(store, sorter),
		ListNotesHandler:   queries.NewListNotesHandler(store),
		ListGoalsHandler:   queries.NewListGoalsHandler(store, sorter),
		SearchNotesHandler: queries.NewSearchNotesHandler(store, searcher),
	}, nil
}
