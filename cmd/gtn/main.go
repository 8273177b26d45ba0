package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gtnlabs/gtn/adapter/cli"
	"github.com/gtnlabs/gtn/adapter/cli/goal"
	"github.com/gtnlabs/gtn/adapter/cli/note"
	"github.com/gtnlabs/gtn/adapter/cli/task"
	"github.com/gtnlabs/gtn/adapter/tui"
	"github.com/gtnlabs/gtn/internal/app"
	"github.com/gtnlabs/gtn/pkg/config"
	"github.com/gtnlabs/gtn/pkg/observability"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger := observability.NewLogger(observability.DefaultLogConfig())
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       observability.LogLevel(cfg.LogLevel),
		Format:      observability.LogFormat(cfg.LogFormat),
		ServiceName: "gtn",
	})
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	cli.SetApp(&cli.App{
		AddTaskHandler:     container.AddTaskHandler,
		AddNoteHandler:     container.AddNoteHandler,
		AddGoalHandler:     container.AddGoalHandler,
		ListRecordsHandler: container.ListRecordsHandler,
		ListTasksHandler:   container.ListTasksHandler,
		ListNotesHandler:   container.ListNotesHandler,
		ListGoalsHandler:   container.ListGoalsHandler,
		SearchNotesHandler: container.SearchNotesHandler,
		Store:              container.Store,
		DatabaseURL:        cfg.DatabaseURL,
	})
	cli.SetMenuRunner(func() error {
		return tui.Run(container)
	})

	cli.AddCommand(task.Cmd)
	cli.AddCommand(note.Cmd)
	cli.AddCommand(goal.Cmd)

	cli.Execute()
}
