// Package config provides configuration loading and access for the
// simulation. Defaults are embedded; an optional YAML file and command-line
// flags override them, in that order.
package config

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Tick      TickConfig      `yaml:"tick"`
	Display   DisplayConfig   `yaml:"display"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// BoardConfig describes the grid and its random initialization.
type BoardConfig struct {
	Size    int   `yaml:"size"`
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"` // 0 = one worker per CPU
}

// TickConfig controls the generation interval while running.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// DisplayConfig holds front-end parameters the engine itself ignores.
type DisplayConfig struct {
	Scale int `yaml:"scale"`
}

// TelemetryConfig controls CSV output of per-generation census records.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto the receiver in place, so
// flag bindings attached to its fields stay valid.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet so flags override
// file values.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Board.Size, "size", c.Board.Size, "cells per axis")
	fs.Int64Var(&c.Board.Seed, "seed", c.Board.Seed, "seed for randomize")
	fs.IntVar(&c.Board.Workers, "workers", c.Board.Workers, "compute workers (0 = NumCPU)")
	fs.IntVar(&c.Tick.IntervalMS, "tick", c.Tick.IntervalMS, "generation interval in milliseconds")
	fs.IntVar(&c.Display.Scale, "scale", c.Display.Scale, "pixel scale multiplier")
	fs.StringVar(&c.Telemetry.OutputDir, "output-dir", c.Telemetry.OutputDir, "directory for CSV output (empty = disabled)")
}

// Validate reports the first invalid parameter.
func (c *Config) Validate() error {
	if c.Board.Size <= 0 {
		return fmt.Errorf("board size must be positive, got %d", c.Board.Size)
	}
	if c.Tick.IntervalMS <= 0 {
		return fmt.Errorf("tick interval must be positive, got %dms", c.Tick.IntervalMS)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("display scale must be positive, got %d", c.Display.Scale)
	}
	return nil
}

// TickInterval returns the generation interval as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Tick.IntervalMS) * time.Millisecond
}
