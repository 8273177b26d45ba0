package task

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtnlabs/gtn/adapter/cli"
	internalApp "github.com/gtnlabs/gtn/internal/app"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
	"github.com/gtnlabs/gtn/pkg/config"
)

// setupTestApp loads a session from a temp data file and installs it as
// the global CLI app.
func setupTestApp(t *testing.T, data string) *internalApp.Container {
	t.Helper()

	dataFile := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(dataFile, []byte(data), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	container, err := internalApp.NewContainer(context.Background(),
		&config.Config{DataFile: dataFile}, logger)
	require.NoError(t, err)

	cli.SetApp(&cli.App{
		AddTaskHandler:   container.AddTaskHandler,
		ListTasksHandler: container.ListTasksHandler,
		Store:            container.Store,
	})
	t.Cleanup(func() { cli.SetApp(nil) })
	return container
}

func TestTaskAdd_AddsToStore(t *testing.T) {
	container := setupTestApp(t, "")

	Cmd.SetArgs([]string{"add", "Buy groceries", "--deadline", "2024-06-01", "--priority", "2"})
	require.NoError(t, Cmd.Execute())

	require.Equal(t, 1, container.Store.Len())
	task := container.Store.Tasks()[0]
	assert.Equal(t, item.KindTask, task.Kind())
	assert.Equal(t, "Buy groceries", task.Title())
	assert.Equal(t, 2, task.Priority())
}

func TestTaskAdd_Recurring(t *testing.T) {
	container := setupTestApp(t, "")

	Cmd.SetArgs([]string{"add", "Water plants", "--recurring", "--interval", "every 3 days"})
	require.NoError(t, Cmd.Execute())

	task := container.Store.Tasks()[0]
	assert.Equal(t, item.KindRecurringTask, task.Kind())
	assert.Equal(t, "every 3 days", task.Interval())

	// reset flag state for other tests
	recurring = false
	interval = ""
}

func TestTaskAdd_EmptyTitleFails(t *testing.T) {
	setupTestApp(t, "")

	Cmd.SetArgs([]string{"add", "   "})
	assert.Error(t, Cmd.Execute())
}

func TestTaskList_RunsAgainstLoadedFile(t *testing.T) {
	setupTestApp(t, "Task,First,One,2024-01-01,1\nTask,Second,Two,2024-02-01,2\n")

	Cmd.SetArgs([]string{"list", "--sort", "priority"})
	require.NoError(t, Cmd.Execute())
}
