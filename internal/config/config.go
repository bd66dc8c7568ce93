// Package config loads phaseline settings: defaults, then the YAML file,
// then PHASELINE_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/phaseline/internal/sheet"
	"github.com/alexanderramin/phaseline/internal/timeline"
	"gopkg.in/yaml.v3"
)

// Config is the whole settings file.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	View    ViewConfig    `yaml:"view"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

type SourceConfig struct {
	SheetID   string `yaml:"sheet_id,omitempty"`
	URL       string `yaml:"url,omitempty"`
	File      string `yaml:"file,omitempty"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

type ViewConfig struct {
	Months int `yaml:"months"`
}

type StorageConfig struct {
	DBPath        string `yaml:"db_path"`
	KeepSnapshots int    `yaml:"keep_snapshots"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Default returns the built-in settings. dir is the application directory,
// normally ~/.phaseline.
func Default(dir string) Config {
	return Config{
		Source:  SourceConfig{TimeoutMs: sheet.DefaultConfig().TimeoutMs},
		View:    ViewConfig{Months: timeline.DefaultViewportMonths},
		Storage: StorageConfig{DBPath: filepath.Join(dir, "phaseline.db"), KeepSnapshots: 10},
		Log:     LogConfig{Level: "warn"},
	}
}

// Dir returns ~/.phaseline.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".phaseline"), nil
}

// Path returns $PHASELINE_CONFIG, or config.yaml inside dir.
func Path(dir string) string {
	if v := os.Getenv("PHASELINE_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path, dir string) (Config, error) {
	cfg := Default(dir)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PHASELINE_SHEET_ID"); v != "" {
		cfg.Source.SheetID = v
	}
	if v := os.Getenv("PHASELINE_SOURCE_URL"); v != "" {
		cfg.Source.URL = v
	}
	if v := os.Getenv("PHASELINE_SOURCE_FILE"); v != "" {
		cfg.Source.File = v
	}
	if v := os.Getenv("PHASELINE_FETCH_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Source.TimeoutMs = n
		}
	}
	if v := os.Getenv("PHASELINE_DB"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("PHASELINE_VIEW_MONTHS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.View.Months = n
		}
	}
	if v := os.Getenv("PHASELINE_KEEP_SNAPSHOTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Storage.KeepSnapshots = n
		}
	}
	if v := os.Getenv("PHASELINE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Sheet converts the source section for the sheet package.
func (c Config) Sheet() sheet.Config {
	sc := sheet.DefaultConfig()
	sc.SheetID = c.Source.SheetID
	sc.URL = c.Source.URL
	sc.File = c.Source.File
	if c.Source.TimeoutMs > 0 {
		sc.TimeoutMs = c.Source.TimeoutMs
	}
	return sc
}

// SlogLevel maps Log.Level to a slog level. Unknown names mean warn.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
