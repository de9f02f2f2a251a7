// Package config provides the configuration system for Spawnpool.
// It defines a single Config structure describing a pool deployment:
// which templates exist, how many instances to prewarm per template,
// and how logging and metrics behave around the pool.
//
// Example usage:
//
//	cfg := config.New("game-entities")
//	cfg.Templates = append(cfg.Templates, config.TemplateConfig{Name: "enemy", Prewarm: 8})
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"fmt"
)

// Config is the unified configuration structure for a pool deployment.
type Config struct {
	// Name identifies the pool instance
	Name string `yaml:"name" json:"name"`
	// Version indicates the configuration version
	Version string `yaml:"version" json:"version"`

	// Templates lists the template keys the pool will serve
	Templates []TemplateConfig `yaml:"templates" json:"templates"`

	// Logging controls structured log output
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Metrics controls prometheus exposure
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`

	// Simulation configures the CLI churn workload
	Simulation SimulationConfig `yaml:"simulation" json:"simulation"`
}

// TemplateConfig describes one template key served by the pool.
type TemplateConfig struct {
	// Name is the opaque template key
	Name string `yaml:"name" json:"name"`
	// Prewarm is the number of idle instances to construct up front
	Prewarm int `yaml:"prewarm" json:"prewarm"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level sets logging verbosity (debug, info, warn, error)
	Level string `yaml:"level" json:"level"`
	// Encoding selects the log format (json or console)
	Encoding string `yaml:"encoding" json:"encoding"`
	// Development enables colored, stack-traced developer output
	Development bool `yaml:"development" json:"development"`
}

// MetricsConfig contains prometheus exposure settings.
type MetricsConfig struct {
	// Enabled activates metrics collection
	Enabled bool `yaml:"enabled" json:"enabled"`
	// Listen is the address the scrape endpoint binds to
	Listen string `yaml:"listen" json:"listen"`
}

// SimulationConfig configures the CLI's demo workload.
type SimulationConfig struct {
	// Iterations is the number of acquire/release rounds to run
	Iterations int `yaml:"iterations" json:"iterations"`
	// MaxHeld caps how many instances the workload keeps checked out
	MaxHeld int `yaml:"max_held" json:"max_held"`
	// Seed makes the workload deterministic (0 = time-based)
	Seed int64 `yaml:"seed" json:"seed"`
}

// New creates a Config with sensible defaults for the given pool name.
func New(name string) *Config {
	return &Config{
		Name:    name,
		Version: "1.0.0",
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Listen:  ":9190",
		},
		Simulation: SimulationConfig{
			Iterations: 1000,
			MaxHeld:    16,
			Seed:       1,
		},
	}
}

// Validate validates the configuration for correctness.
// It checks required fields and ensures values are within acceptable
// ranges; call it after loading configuration to catch errors early.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	seen := make(map[string]bool, len(c.Templates))
	for _, t := range c.Templates {
		if t.Name == "" {
			return fmt.Errorf("template name is required")
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate template %q", t.Name)
		}
		seen[t.Name] = true
		if t.Prewarm < 0 {
			return fmt.Errorf("template %q: prewarm cannot be negative", t.Name)
		}
	}
	if c.Simulation.Iterations < 0 {
		return fmt.Errorf("iterations cannot be negative")
	}
	if c.Simulation.MaxHeld <= 0 {
		return fmt.Errorf("max_held must be positive")
	}
	if c.Metrics.Enabled && c.Metrics.Listen == "" {
		return fmt.Errorf("metrics listen address is required when metrics are enabled")
	}
	return nil
}

// Template returns the configuration for the named template.
func (c *Config) Template(name string) (TemplateConfig, bool) {
	for _, t := range c.Templates {
		if t.Name == name {
			return t, true
		}
	}
	return TemplateConfig{}, false
}
