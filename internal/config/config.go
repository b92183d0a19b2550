// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - TOML configuration with defaults, env override and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config represents the complete patsh configuration.
type Config struct {
	// Theme is the name of the active theme ("dark", "light", or a
	// custom theme loaded from ThemeDir).
	Theme string `toml:"theme"`

	// ThemeDir holds custom YAML theme files. Empty means the default
	// themes/ subdirectory of the config dir.
	ThemeDir string `toml:"theme_dir"`

	// CommandTimeoutSecs bounds shell command execution, in seconds.
	CommandTimeoutSecs int `toml:"command_timeout_secs"`

	// StreamOutput streams command output as it arrives rather than
	// only showing it on completion.
	StreamOutput bool `toml:"stream_output"`

	// SuggestionCacheSize bounds the registry's suggestion cache.
	// 0 disables caching.
	SuggestionCacheSize int `toml:"suggestion_cache_size"`

	// HistoryFile is where the REPL persists input history. Empty
	// means the default history file in the config dir.
	HistoryFile string `toml:"history_file"`

	// Welcome controls the startup welcome screen.
	Welcome bool `toml:"welcome"`
}

// CommandTimeout returns the command timeout as a duration.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.CommandTimeoutSecs) * time.Second
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Theme:               "dark",
		CommandTimeoutSecs:  30,
		StreamOutput:        true,
		SuggestionCacheSize: 128,
		Welcome:             true,
	}
}

// ConfigDir returns the patsh configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".patsh"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ThemesDir returns the effective theme directory for this config.
func (c *Config) ThemesDir() (string, error) {
	if c.ThemeDir != "" {
		return c.ThemeDir, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "themes"), nil
}

// HistoryPath returns the effective history file for this config.
func (c *Config) HistoryPath() (string, error) {
	if c.HistoryFile != "" {
		return c.HistoryFile, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file if present, applies environment overrides
// and validates. A missing file yields the validated defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from an explicit file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides. The core
// packages never read the environment themselves; this is the one
// place it happens.
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("PATSH_THEME"); theme != "" {
		c.Theme = theme
	}
}

// Save writes the config as TOML, creating the config directory if
// needed.
func Save(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config for writing: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes one invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if strings.TrimSpace(c.Theme) == "" {
		errs = append(errs, ValidationError{
			Field:   "theme",
			Message: "theme name cannot be empty",
		})
	}

	if c.CommandTimeoutSecs <= 0 {
		errs = append(errs, ValidationError{
			Field:   "command_timeout_secs",
			Message: fmt.Sprintf("must be positive, got %d", c.CommandTimeoutSecs),
		})
	}

	if c.SuggestionCacheSize < 0 {
		errs = append(errs, ValidationError{
			Field:   "suggestion_cache_size",
			Message: fmt.Sprintf("cannot be negative, got %d", c.SuggestionCacheSize),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
