// Package config handles configuration loading and defaults.
//
// Precedence, lowest to highest: built-in defaults, the TOML config file,
// the TODO_FILE environment variable, command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTheme    = "classic"
	DefaultLogLevel = "warn"
)

// Config holds the full configuration for the CLI.
type Config struct {
	// File is the project file path. Empty means todos.json in the
	// working directory.
	File string `toml:"file"`

	// Theme selects the marker set ("classic" or "mono").
	Theme string `toml:"theme"`

	// Logging
	LogLevel string `toml:"log_level"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
	}
}

// Path returns the config file location (~/.config/todo/config.toml or the
// platform equivalent).
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "todo", "config.toml"), nil
}

// Load reads the config file, if any, on top of the defaults and then
// applies environment overrides. A missing file is not an error.
func Load() (Config, error) {
	cfg := Defaults()

	p, err := Path()
	if err != nil {
		return cfg, err
	}
	if _, err := toml.DecodeFile(p, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("parse %s: %w", p, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if f := os.Getenv("TODO_FILE"); f != "" {
		c.File = f
	}
}
