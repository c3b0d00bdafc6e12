// SPDX-License-Identifier: EPL-2.0

// Package config handles the process-start configuration of the sound
// generator: sample rate, aesthetic defaults and the output root. The
// configuration is loaded once and passed explicitly to the components
// that need it; nothing here is mutable at runtime.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults match the classic 8-bit era profile the generator targets.
const (
	DefaultSampleRate    = 22050 // Hz
	DefaultBitcrushDepth = 5     // bits, 4-6 typical for the aesthetic
	DefaultDuration      = 0.3   // seconds
	DefaultOutputDir     = "output"
)

// Config holds the generator settings, fixed at process start.
type Config struct {
	// SampleRate is the engine-wide sample rate in Hz.
	SampleRate int `yaml:"sample_rate"`
	// BitcrushDepth is the default bit depth recipes crush to.
	BitcrushDepth int `yaml:"bitcrush_depth"`
	// DefaultDuration is the fallback clip duration in seconds.
	DefaultDuration float64 `yaml:"default_duration"`
	// OutputDir is the root directory exported files are written under.
	OutputDir string `yaml:"output_dir"`
}

// Load builds the configuration from defaults, an optional YAML file
// and RETROSFX_* environment overrides, in that order of precedence.
// An empty path skips the file step; a missing file at a non-empty
// path is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		SampleRate:      DefaultSampleRate,
		BitcrushDepth:   DefaultBitcrushDepth,
		DefaultDuration: DefaultDuration,
		OutputDir:       DefaultOutputDir,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %q: %w", path, err)
		}
	}

	if v := os.Getenv("RETROSFX_SAMPLE_RATE"); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parsing RETROSFX_SAMPLE_RATE: %w", err)
		}
		cfg.SampleRate = rate
	}
	if v := os.Getenv("RETROSFX_BITCRUSH_DEPTH"); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parsing RETROSFX_BITCRUSH_DEPTH: %w", err)
		}
		cfg.BitcrushDepth = depth
	}
	if v := os.Getenv("RETROSFX_DEFAULT_DURATION"); v != "" {
		duration, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing RETROSFX_DEFAULT_DURATION: %w", err)
		}
		cfg.DefaultDuration = duration
	}
	if v := os.Getenv("RETROSFX_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", cfg.SampleRate)
	}
	return cfg, nil
}
