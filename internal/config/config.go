// Package config loads user settings from settings.yaml and the process
// environment (optionally seeded from a .env file).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/praxis/internal/constants"
)

type Settings struct {
	HistoryLimit    int    `yaml:"history_limit"`
	StatusClearMS   int    `yaml:"status_clear_ms"`
	ExportDir       string `yaml:"export_dir"`
	TimestampFormat string `yaml:"timestamp_format"`
}

func Default() Settings {
	return Settings{
		HistoryLimit:    constants.DefaultHistoryLimit,
		StatusClearMS:   int(constants.DefaultStatusClearDelay / time.Millisecond),
		ExportDir:       ".",
		TimestampFormat: constants.DisplayTimeFormat,
	}
}

func (s Settings) Validate() error {
	if s.HistoryLimit < 1 {
		return fmt.Errorf("history_limit must be at least 1, got %d", s.HistoryLimit)
	}
	if s.StatusClearMS < 0 {
		return fmt.Errorf("status_clear_ms cannot be negative, got %d", s.StatusClearMS)
	}
	if s.TimestampFormat == "" {
		return errors.New("timestamp_format cannot be empty")
	}
	return nil
}

// StatusClearDelay is how long transient messages stay visible.
func (s Settings) StatusClearDelay() time.Duration {
	return time.Duration(s.StatusClearMS) * time.Millisecond
}

// Load reads settings from path. Keys missing from the file keep their
// defaults, and a missing file yields Default().
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return settings, nil
}

func Save(path string, settings Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Env holds the environment overrides praxis understands.
type Env struct {
	DBConnection string
	Debug        bool
}

// LoadEnv reads a .env file from the working directory when present, then
// the process environment. Existing variables win over .env values.
func LoadEnv() Env {
	_ = godotenv.Load()
	return ReadEnv()
}

func ReadEnv() Env {
	debug, _ := strconv.ParseBool(os.Getenv(constants.EnvDebug))
	return Env{
		DBConnection: os.Getenv(constants.EnvDBConnection),
		Debug:        debug,
	}
}
