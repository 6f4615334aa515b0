// Package config loads minipy settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/itsmostafa/minipy/internal/runner"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".minipy.yaml"

// Config holds the host settings for running programs.
type Config struct {
	// MaxSteps bounds the dispatched lines of one run (0 = unlimited)
	MaxSteps int `yaml:"max_steps"`

	// Timeout bounds one run (0 = none)
	Timeout time.Duration `yaml:"timeout"`

	// Trace enables debug logging of every dispatched line
	Trace bool `yaml:"trace"`

	// Engine selects the runner: native or goja
	Engine string `yaml:"engine"`

	// HistoryFile is the REPL history path; relative paths are under $HOME
	HistoryFile string `yaml:"history_file"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Engine:      runner.NameNative,
		HistoryFile: ".minipy_history",
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from MINIPY_ENGINE, MINIPY_MAX_STEPS and
// MINIPY_TRACE.
func (c *Config) ApplyEnv() error {
	if engine := os.Getenv("MINIPY_ENGINE"); engine != "" {
		c.Engine = engine
	}
	if steps := os.Getenv("MINIPY_MAX_STEPS"); steps != "" {
		n, err := strconv.Atoi(steps)
		if err != nil {
			return fmt.Errorf("invalid MINIPY_MAX_STEPS %q: %w", steps, err)
		}
		c.MaxSteps = n
	}
	if trace := os.Getenv("MINIPY_TRACE"); trace != "" {
		b, err := strconv.ParseBool(trace)
		if err != nil {
			return fmt.Errorf("invalid MINIPY_TRACE %q: %w", trace, err)
		}
		c.Trace = b
	}
	return nil
}

// Validate checks that limits are non-negative and the engine is known.
func (c Config) Validate() error {
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must be >= 0, got %d", c.MaxSteps)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %s", c.Timeout)
	}
	return runner.ValidateName(c.Engine)
}

// RunnerOptions converts the limits into engine options.
func (c Config) RunnerOptions() runner.Options {
	return runner.Options{
		MaxSteps: c.MaxSteps,
		Timeout:  c.Timeout,
	}
}
