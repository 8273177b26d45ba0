package note

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtnlabs/gtn/adapter/cli"
	internalApp "github.com/gtnlabs/gtn/internal/app"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
	"github.com/gtnlabs/gtn/pkg/config"
)

// setupTestApp starts an empty session and installs it as the global
// CLI app.
func setupTestApp(t *testing.T) *internalApp.Container {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	container, err := internalApp.NewContainer(context.Background(),
		&config.Config{DataFile: filepath.Join(t.TempDir(), "data.txt")}, logger)
	require.NoError(t, err)

	cli.SetApp(&cli.App{
		AddNoteHandler: container.AddNoteHandler,
		Store:          container.Store,
	})
	t.Cleanup(func() { cli.SetApp(nil) })
	return container
}

func TestNoteAdd_NormalizesEmptyTags(t *testing.T) {
	container := setupTestApp(t)

	Cmd.SetArgs([]string{"add", "Shopping list", "--tags", "home,,errands"})
	require.NoError(t, Cmd.Execute())

	require.Equal(t, 1, container.Store.Len())
	note := container.Store.Notes()[0]
	assert.Equal(t, item.KindNote, note.Kind())
	assert.Equal(t, []string{"home", "generic", "errands"}, note.Tags())
}

func TestNoteAdd_PasswordMakesProtected(t *testing.T) {
	container := setupTestApp(t)

	Cmd.SetArgs([]string{"add", "Diary", "--tags", "personal", "--password", "hunter2"})
	t.Cleanup(func() { password = "" })
	require.NoError(t, Cmd.Execute())

	require.Equal(t, 1, container.Store.Len())
	note := container.Store.Notes()[0]
	assert.Equal(t, item.KindProtectedNote, note.Kind())
	assert.True(t, note.CheckPassword("hunter2"))
}
