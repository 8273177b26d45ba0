package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtnlabs/gtn/pkg/config"
)

func TestNewContainer_LoadsDataFile(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "data.txt")
	content := "Task,Buy groceries,Milk,2024-06-01,3\n" +
		"Note,Shopping,Weekly,home\n"
	require.NoError(t, os.WriteFile(dataFile, []byte(content), 0o644))

	cfg := &config.Config{DataFile: dataFile}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := NewContainer(context.Background(), cfg, logger)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Store.Len())
	assert.NotNil(t, c.AddTaskHandler)
	assert.NotNil(t, c.ListRecordsHandler)
	assert.NotNil(t, c.SearchNotesHandler)
}

func TestNewContainer_MissingDataFileStartsEmpty(t *testing.T) {
	cfg := &config.Config{DataFile: filepath.Join(t.TempDir(), "absent.txt")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := NewContainer(context.Background(), cfg, logger)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Store.Len())
}

func TestOpenRecordRepository_SQLiteLocalMode(t *testing.T) {
	repo, closeConn, err := OpenRecordRepository(context.Background(), filepath.Join(t.TempDir(), "gtn.db"))
	require.NoError(t, err)
	defer closeConn()

	records, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
