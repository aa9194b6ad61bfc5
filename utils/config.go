package utils

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
	"time"
)

// Pattern names accepted by the pattern config field.
const (
	PatternDemo     = "demo"
	PatternRandom   = "random"
	PatternShowcase = "showcase"
)

// Config holds the configuration for the simulation
type Config struct {
	Rows           int           `json:"rows"`
	Cols           int           `json:"cols"`
	CellSize       int           `json:"cell_size"`
	StepInterval   time.Duration `json:"step_interval"`
	Pattern        string        `json:"pattern"`
	RandomDensity  float64       `json:"random_density"`
	Parallel       bool          `json:"parallel"`
	MaxGenerations int           `json:"max_generations"`
	Headless       bool          `json:"headless"`
}

// DefaultConfig returns sensible defaults: the built-in 19x19 demo board
// stepping five times a second.
func DefaultConfig() Config {
	return Config{
		Rows:           19,
		Cols:           19,
		CellSize:       19,
		StepInterval:   200 * time.Millisecond,
		Pattern:        PatternDemo,
		RandomDensity:  0.15,
		Parallel:       false,
		MaxGenerations: 0,
		Headless:       false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
