package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridroute/costmodel"
	"github.com/katalvlaran/gridroute/ripup"
)

// Config is the YAML-serializable tuning surface for one run. Zero-valued
// fields (the YAML key absent) keep the router's built-in defaults; only
// fields actually present in the file override them.
type Config struct {
	ViaCost            *int   `yaml:"via_cost,omitempty"`
	WrongDirectionCost *int   `yaml:"wrong_direction_cost,omitempty"`
	CongestionWeight   *int   `yaml:"congestion_weight,omitempty"`
	MaxIterations      *int   `yaml:"max_ripup_iterations,omitempty"`
	Seed               *int64 `yaml:"seed,omitempty"`
}

// Load reads and parses a YAML config file at path. A non-existent path is
// reported as an error; callers that want an all-defaults run should skip
// calling Load entirely rather than pointing it at a missing file. A
// negative via_cost, wrong_direction_cost or congestion_weight is rejected
// with an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	for _, field := range []struct {
		key string
		val *int
	}{
		{"via_cost", c.ViaCost},
		{"wrong_direction_cost", c.WrongDirectionCost},
		{"congestion_weight", c.CongestionWeight},
	} {
		if field.val != nil && *field.val < 0 {
			return nil, fmt.Errorf("config: %s: %s must be non-negative, got %d", path, field.key, *field.val)
		}
	}
	return &c, nil
}

// Model builds a costmodel.Model from the config, falling back to
// costmodel.Default for any field left unset.
func (c *Config) Model() costmodel.Model {
	if c == nil {
		return costmodel.Default()
	}
	opts := make([]costmodel.Option, 0, 3)
	if c.ViaCost != nil {
		opts = append(opts, costmodel.WithViaCost(*c.ViaCost))
	}
	if c.WrongDirectionCost != nil {
		opts = append(opts, costmodel.WithWrongDirectionCost(*c.WrongDirectionCost))
	}
	if c.CongestionWeight != nil {
		opts = append(opts, costmodel.WithCongestionWeight(*c.CongestionWeight))
	}
	return costmodel.New(opts...)
}

// MaxRipUpIterations returns the configured iteration cap, or
// ripup.DefaultMaxIterations if unset.
func (c *Config) MaxRipUpIterations() int {
	if c == nil || c.MaxIterations == nil {
		return ripup.DefaultMaxIterations
	}
	return *c.MaxIterations
}

// RipUpSeed returns the configured rip-up shuffle seed, or 0 (the router's
// deterministic default stream) if unset.
func (c *Config) RipUpSeed() int64 {
	if c == nil || c.Seed == nil {
		return 0
	}
	return *c.Seed
}
