// Package config provides configuration management for the life-list worker.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoSources              = errors.New("at least one source is required")
	ErrSourceMissingFile      = errors.New("source file path is required")
	ErrNoEnabledSources       = errors.New("at least one source must be enabled")
	ErrMissingOutputPath      = errors.New("output.path is required")
	ErrInvalidOutputFormat    = errors.New("output.format must be 'json' or 'jsonl'")
	ErrInvalidMaxObservations = errors.New("validation.max_observations must be non-negative")
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete worker configuration.
type Config struct {
	Worker WorkerConfig `yaml:"worker"`
}

// WorkerConfig contains worker-specific settings.
type WorkerConfig struct {
	Output     OutputConfig     `yaml:"output"`
	Sources    []SourceConfig   `yaml:"sources"`
	Logging    LoggingConfig    `yaml:"logging"`
	Validation ValidationConfig `yaml:"validation"`
}

// SourceConfig represents one downloaded life-list export. The download
// itself is handled by the external acquisition step; by the time the
// worker runs, each source is a local file.
type SourceConfig struct {
	Name    string `yaml:"name"`
	File    string `yaml:"file"`
	Enabled bool   `yaml:"enabled"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	Path         string `yaml:"path"`
	Format       string `yaml:"format"`
	PrettyPrint  bool   `yaml:"pretty_print"`
	Gzip         bool   `yaml:"gzip"`
	CreateBackup bool   `yaml:"create_backup"`
}

// ValidationConfig defines envelope validation rules.
type ValidationConfig struct {
	MaxObservations int  `yaml:"max_observations"`
	RequireRegion   bool `yaml:"require_region"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Worker.Sources) == 0 {
		return ErrNoSources
	}

	enabledCount := 0

	for i, src := range c.Worker.Sources {
		if src.File == "" {
			return fmt.Errorf("%w: source[%d]", ErrSourceMissingFile, i)
		}

		if src.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledSources
	}

	if c.Worker.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if c.Worker.Output.Format != "json" && c.Worker.Output.Format != "jsonl" {
		return ErrInvalidOutputFormat
	}

	if c.Worker.Validation.MaxObservations < 0 {
		return ErrInvalidMaxObservations
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Worker.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetEnabledSources returns only enabled sources.
func (c *Config) GetEnabledSources() []SourceConfig {
	var enabled []SourceConfig

	for _, src := range c.Worker.Sources {
		if src.Enabled {
			enabled = append(enabled, src)
		}
	}

	return enabled
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Sources: %d, Output: %s, Format: %s}",
		len(c.Worker.Sources),
		c.Worker.Output.Path,
		c.Worker.Output.Format,
	)
}
