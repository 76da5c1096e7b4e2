// Package config loads editor configuration from a TOML file with
// environment variable overrides, and supports live reload via a file
// watcher.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/markwright/internal/lint"
)

// ErrInvalidConfig wraps parse and validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Default debounce windows. Each timer is independent: a burst of
// edits reschedules all of them, and only the trailing call runs.
const (
	DefaultPreviewDebounce  = 300 * time.Millisecond
	DefaultAutosaveDebounce = 1000 * time.Millisecond
	DefaultHistoryDebounce  = 3000 * time.Millisecond
	DefaultLintDebounce     = 500 * time.Millisecond
)

// Config is the full editor configuration.
type Config struct {
	Logging  LoggingConfig  `toml:"logging"`
	Debounce DebounceConfig `toml:"debounce"`
	History  HistoryConfig  `toml:"history"`
	Lint     LintConfig     `toml:"lint"`
	Storage  StorageConfig  `toml:"storage"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DebounceConfig holds the trailing-edge debounce windows in
// milliseconds.
type DebounceConfig struct {
	PreviewMS  int `toml:"preview_ms"`
	AutosaveMS int `toml:"autosave_ms"`
	HistoryMS  int `toml:"history_ms"`
	LintMS     int `toml:"lint_ms"`
}

// Preview returns the preview render debounce window.
func (d DebounceConfig) Preview() time.Duration { return time.Duration(d.PreviewMS) * time.Millisecond }

// Autosave returns the autosave debounce window.
func (d DebounceConfig) Autosave() time.Duration {
	return time.Duration(d.AutosaveMS) * time.Millisecond
}

// History returns the history checkpoint debounce window.
func (d DebounceConfig) History() time.Duration { return time.Duration(d.HistoryMS) * time.Millisecond }

// Lint returns the lint re-run debounce window.
func (d DebounceConfig) Lint() time.Duration { return time.Duration(d.LintMS) * time.Millisecond }

// HistoryConfig bounds the undo stack.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries"`
}

// LintConfig selects lint rules. Rules are on by default; Disabled
// names the ones to turn off.
type LintConfig struct {
	Disabled      []string `toml:"disabled"`
	MaxLineLength int      `toml:"max_line_length"`
}

// Rules converts the TOML representation into a lint configuration.
func (l LintConfig) Rules() lint.Config {
	cfg := lint.DefaultConfig()
	for _, r := range l.Disabled {
		cfg.Enabled[lint.Rule(r)] = false
	}
	if l.MaxLineLength > 0 {
		cfg.MaxLineLength = l.MaxLineLength
	}
	return cfg
}

// StorageConfig locates the persisted state.
type StorageConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Debounce: DebounceConfig{
			PreviewMS:  int(DefaultPreviewDebounce / time.Millisecond),
			AutosaveMS: int(DefaultAutosaveDebounce / time.Millisecond),
			HistoryMS:  int(DefaultHistoryDebounce / time.Millisecond),
			LintMS:     int(DefaultLintDebounce / time.Millisecond),
		},
		History: HistoryConfig{MaxEntries: 50},
		Lint:    LintConfig{MaxLineLength: lint.DefaultMaxLineLength},
		Storage: StorageConfig{Dir: defaultStateDir()},
	}
}

// Load reads the TOML file at path, applies environment overrides, and
// validates the result. A missing file is not an error; defaults plus
// environment overrides are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays MARKWRIGHT_* environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv("MARKWRIGHT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MARKWRIGHT_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("MARKWRIGHT_STATE_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("MARKWRIGHT_MAX_HISTORY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.MaxEntries = n
		}
	}
	if v := os.Getenv("MARKWRIGHT_MAX_LINE_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Lint.MaxLineLength = n
		}
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("%w: history.max_entries must be positive", ErrInvalidConfig)
	}
	if c.Lint.MaxLineLength <= 0 {
		return fmt.Errorf("%w: lint.max_line_length must be positive", ErrInvalidConfig)
	}
	for name, ms := range map[string]int{
		"debounce.preview_ms":  c.Debounce.PreviewMS,
		"debounce.autosave_ms": c.Debounce.AutosaveMS,
		"debounce.history_ms":  c.Debounce.HistoryMS,
		"debounce.lint_ms":     c.Debounce.LintMS,
	} {
		if ms < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidConfig, name)
		}
	}
	return nil
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "markwright")
	}
	return "."
}
