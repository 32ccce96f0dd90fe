// Package config provides configuration for the checkers engine and CLI.
package config

import (
	"runtime"
	"strings"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// OutputFormat selects how boards and move lists are printed.
type OutputFormat string

const (
	TextOutput OutputFormat = "text"
	JSONOutput OutputFormat = "json"
)

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled
	Level string `yaml:"level"`

	// Format is console or json
	Format string `yaml:"format"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: "warn", Format: "console"}
}

// EngineConfig holds rule options applied to new games.
type EngineConfig struct {
	// LongestCapture only accepts chains with the maximum number of captures
	LongestCapture bool `yaml:"longest_capture"`

	// StartingTurn is the side to move when a board file names none
	StartingTurn string `yaml:"starting_turn"`
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{StartingTurn: "WHITE"}
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	Format OutputFormat `yaml:"format"`

	// Coordinates adds row and column indices around text boards
	Coordinates bool `yaml:"coordinates"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{Format: TextOutput, Coordinates: true}
}

// RunnerConfig holds settings for running scenario files.
type RunnerConfig struct {
	// Workers is the number of scenario files run in parallel
	Workers int `yaml:"workers"`

	// FailFast stops scheduling files after the first failure
	FailFast bool `yaml:"fail_fast"`
}

// NewRunnerConfig creates a RunnerConfig with default values.
func NewRunnerConfig() *RunnerConfig {
	return &RunnerConfig{Workers: runtime.NumCPU()}
}

// Config holds all program configuration.
type Config struct {
	Log    *LogConfig    `yaml:"log"`
	Engine *EngineConfig `yaml:"engine"`
	Output *OutputConfig `yaml:"output"`
	Runner *RunnerConfig `yaml:"runner"`

	// Source is the config file that was loaded, if any.
	Source string `yaml:"-"`
}

// NewConfig creates a new configuration with default values.
func NewConfig() *Config {
	return &Config{
		Log:    NewLogConfig(),
		Engine: NewEngineConfig(),
		Output: NewOutputConfig(),
		Runner: NewRunnerConfig(),
	}
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "log format %q", c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.Log.Level)
	}
	switch strings.ToUpper(c.Engine.StartingTurn) {
	case "WHITE", "BLACK":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "starting turn %q", c.Engine.StartingTurn)
	}
	switch c.Output.Format {
	case TextOutput, JSONOutput:
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "output format %q", c.Output.Format)
	}
	if c.Runner.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d", c.Runner.Workers)
	}
	return nil
}
