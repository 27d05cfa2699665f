// Package config loads scenario configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Malfunction configures the stochastic failure process.
type Malfunction struct {
	// Rate is the mean number of steps between failures of one agent.
	// Zero disables malfunctions.
	Rate        float64 `yaml:"rate"`
	MinDuration int     `yaml:"min_duration"`
	MaxDuration int     `yaml:"max_duration"`
}

// Config describes a complete scenario: the grid, the agents, the placement
// generator, and the failure process.
type Config struct {
	Width     int   `yaml:"width"`
	Height    int   `yaml:"height"`
	Seed      int64 `yaml:"seed"`
	NumAgents int   `yaml:"num_agents"`

	// Generator names the schedule generator variant: "random", "sparse",
	// "complex", or "file".
	Generator string `yaml:"generator"`

	// SnapshotPath locates a saved scenario for the file-backed variants.
	SnapshotPath string `yaml:"snapshot_path,omitempty"`

	// SpeedRatios maps a speed value to its probability weight. Weights are
	// assumed to sum to 1 and are not re-validated.
	SpeedRatios map[float64]float64 `yaml:"speed_ratios,omitempty"`

	Malfunction Malfunction `yaml:"malfunction"`
}

// Default returns the standard scenario configuration.
func Default() Config {
	return Config{
		Width:     16,
		Height:    8,
		Seed:      1337,
		NumAgents: 4,
		Generator: "random",
		Malfunction: Malfunction{
			Rate:        0,
			MinDuration: 2,
			MaxDuration: 6,
		},
	}
}

// Load reads a YAML scenario file on top of the defaults.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks structural constraints; it does not re-validate the speed
// ratio weights.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.NumAgents < 0 {
		return fmt.Errorf("config: num_agents must not be negative, got %d", c.NumAgents)
	}
	if c.Generator == "" {
		return fmt.Errorf("config: generator name must not be empty")
	}
	if c.Generator == "file" && c.SnapshotPath == "" {
		return fmt.Errorf("config: file generator requires snapshot_path")
	}
	if c.Malfunction.MaxDuration < c.Malfunction.MinDuration {
		return fmt.Errorf("config: malfunction max_duration %d below min_duration %d",
			c.Malfunction.MaxDuration, c.Malfunction.MinDuration)
	}
	return nil
}
