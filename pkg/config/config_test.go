package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("GTN_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, "gtn.db", cfg.DatabaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.FileExists(t, path)
}

func TestLoad_ReadsTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "data_file = \"records.txt\"\nlog_level = \"debug\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("GTN_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "records.txt", cfg.DataFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "gtn.db", cfg.DatabaseURL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("data_file = \"from-file.txt\"\n"), 0o644))
	t.Setenv("GTN_CONFIG", path)
	t.Setenv("GTN_DATA_FILE", "from-env.txt")
	t.Setenv("GTN_DATABASE_URL", "postgres://localhost/gtn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env.txt", cfg.DataFile)
	assert.Equal(t, "postgres://localhost/gtn", cfg.DatabaseURL)
}
