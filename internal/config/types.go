// SPDX-License-Identifier: MIT

// Package config provides configuration management for the spdsolve CLI.
//
// Values are layered with koanf: built-in defaults, an optional YAML file,
// SPDSOLVE_* environment variables, then explicitly set command-line flags.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Defaults for every configuration key.
const (
	DefaultPrecision       = 1e-9
	DefaultOutput          = OutputText
	DefaultTrialCount      = 1000
	DefaultTrialSeed       = 1
	DefaultTrialMaxSize    = 5
	DefaultTrialRange      = 100.0
	DefaultTrialResolution = 0.1
	DefaultTrialTolerance  = 1e-6
	DefaultMeshSize        = 10
)

// Output formats accepted by --output.
const (
	OutputText     = "text"
	OutputMarkdown = "markdown"
	OutputCSV      = "csv"
)

// EnvPrefix is the prefix of environment overrides (SPDSOLVE_TRIAL_COUNT).
const EnvPrefix = "SPDSOLVE_"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// TrialConfig drives the randomized solver harness.
type TrialConfig struct {
	Count      int     `koanf:"count"`
	Seed       int64   `koanf:"seed"`
	MaxSize    int     `koanf:"max_size"`
	Range      float64 `koanf:"range"`
	Resolution float64 `koanf:"resolution"`
	Tolerance  float64 `koanf:"tolerance"` // rtol and atol for "wrong solution"
}

// MeshConfig drives the resistor-mesh benchmark circuit.
type MeshConfig struct {
	Size int `koanf:"size"`
}

// Config holds all CLI configuration options.
type Config struct {
	Precision float64     `koanf:"precision"`
	Verbose   bool        `koanf:"verbose"`
	Output    string      `koanf:"output"`
	Trial     TrialConfig `koanf:"trial"`
	Mesh      MeshConfig  `koanf:"mesh"`
}

// Default returns a Config populated with the package defaults.
func Default() *Config {
	return &Config{
		Precision: DefaultPrecision,
		Output:    DefaultOutput,
		Trial: TrialConfig{
			Count:      DefaultTrialCount,
			Seed:       DefaultTrialSeed,
			MaxSize:    DefaultTrialMaxSize,
			Range:      DefaultTrialRange,
			Resolution: DefaultTrialResolution,
			Tolerance:  DefaultTrialTolerance,
		},
		Mesh: MeshConfig{Size: DefaultMeshSize},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case math.IsNaN(c.Precision) || math.IsInf(c.Precision, 0) || c.Precision < 0:
		return fmt.Errorf("precision %g must be finite and >= 0: %w", c.Precision, ErrInvalidConfig)
	case c.Output != OutputText && c.Output != OutputMarkdown && c.Output != OutputCSV:
		return fmt.Errorf("output %q must be one of text, markdown, csv: %w", c.Output, ErrInvalidConfig)
	case c.Trial.Count < 1:
		return fmt.Errorf("trial.count %d must be >= 1: %w", c.Trial.Count, ErrInvalidConfig)
	case c.Trial.MaxSize < 1:
		return fmt.Errorf("trial.max_size %d must be >= 1: %w", c.Trial.MaxSize, ErrInvalidConfig)
	case !(c.Trial.Range > 0) || math.IsInf(c.Trial.Range, 0):
		return fmt.Errorf("trial.range %g must be finite and > 0: %w", c.Trial.Range, ErrInvalidConfig)
	case !(c.Trial.Resolution > 0) || c.Trial.Resolution > c.Trial.Range:
		return fmt.Errorf("trial.resolution %g must be in (0, trial.range]: %w", c.Trial.Resolution, ErrInvalidConfig)
	case !(c.Trial.Tolerance > 0) || math.IsInf(c.Trial.Tolerance, 0):
		return fmt.Errorf("trial.tolerance %g must be finite and > 0: %w", c.Trial.Tolerance, ErrInvalidConfig)
	case c.Mesh.Size < 1:
		return fmt.Errorf("mesh.size %d must be >= 1: %w", c.Mesh.Size, ErrInvalidConfig)
	}

	return nil
}
