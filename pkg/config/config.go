// Package config loads application configuration. Settings come from an
// optional TOML file first, then environment variables override it. A
// .env file in the working directory is honored for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	// DefaultDataFile is the flat record file read at startup.
	DefaultDataFile = "data.txt"
	// DefaultConfigFileName is the TOML settings file looked up in the
	// gtn config directory.
	DefaultConfigFileName = "config.toml"
)

// Config holds application configuration.
type Config struct {
	// DataFile is the path of the flat record file loaded at startup.
	DataFile string `toml:"data_file"`
	// DatabaseURL selects the export target. A postgres:// URL goes to
	// Postgres; anything else is treated as a SQLite file path.
	DatabaseURL string `toml:"database_url"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `toml:"log_format"`
}

// Load reads the TOML file at ConfigPath (creating it with defaults when
// missing), then applies GTN_* environment overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := loadOrCreate(path)
	if err != nil {
		return nil, err
	}

	cfg.DataFile = getEnv("GTN_DATA_FILE", cfg.DataFile)
	cfg.DatabaseURL = getEnv("GTN_DATABASE_URL", cfg.DatabaseURL)
	cfg.LogLevel = getEnv("GTN_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("GTN_LOG_FORMAT", cfg.LogFormat)

	return cfg, nil
}

// ConfigPath returns the TOML settings file location, honoring
// GTN_CONFIG when set.
func ConfigPath() (string, error) {
	if path := os.Getenv("GTN_CONFIG"); path != "" {
		return path, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "gtn", DefaultConfigFileName), nil
}

func loadOrCreate(path string) (*Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	return cfg, nil
}

func write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		DataFile:    DefaultDataFile,
		DatabaseURL: "gtn.db",
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
