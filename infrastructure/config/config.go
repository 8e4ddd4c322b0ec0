// Package config provides layered configuration loading for the editor:
// defaults, a YAML file, then environment variable overrides, validated with
// go-playground/validator.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all editor configuration
type Config struct {
	Environment string        `yaml:"environment" validate:"required,oneof=development staging production"`
	Logging     LoggingConfig `yaml:"logging"`
	Metrics     MetricsConfig `yaml:"metrics"`
	Limits      LimitsConfig  `yaml:"limits"`
}

// LoggingConfig controls the zap logger
type LoggingConfig struct {
	Level string `yaml:"level" validate:"required,oneof=debug info warn error"`
}

// MetricsConfig controls the Prometheus exposition endpoint
type MetricsConfig struct {
	Enabled       bool   `yaml:"enabled"`
	ListenAddress string `yaml:"listen_address" validate:"omitempty,hostname_port"`
}

// LimitsConfig bounds scene growth
type LimitsConfig struct {
	MaxNodesPerScene int `yaml:"max_nodes_per_scene" validate:"min=1"`
	MaxLinksPerPort  int `yaml:"max_links_per_port" validate:"min=1"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Environment: "development",
		Logging: LoggingConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:       false,
			ListenAddress: "127.0.0.1:9091",
		},
		Limits: LimitsConfig{
			MaxNodesPerScene: 10000,
			MaxLinksPerPort:  64,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variable overrides, then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if c.Metrics.Enabled && c.Metrics.ListenAddress == "" {
		return fmt.Errorf("metrics.listen_address is required when metrics are enabled")
	}
	return validator.New().Struct(c)
}

// applyEnvironmentOverrides applies env vars on top of file values.
// Environment variables have the highest priority.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv("FLOWPAD_ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("FLOWPAD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("FLOWPAD_METRICS_ADDR"); v != "" {
		c.Metrics.Enabled = true
		c.Metrics.ListenAddress = v
	}
}
