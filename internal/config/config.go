// Package config loads optional threshold overrides for the inference
// engine from a tabinfer.toml file. Every field has a sane zero-value
// default matching the values spec.md hardcodes, so an empty or
// partial document is never an error. ParseFile does return an error
// when the file cannot be opened.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable thresholds the engine otherwise hardcodes.
// Fields left unset in the TOML document keep their Default() values.
type Config struct {
	Categorical CategoricalConfig `toml:"categorical"`
	Engine      EngineConfig      `toml:"engine"`
}

// CategoricalConfig overrides the §4.3 categorical promotion gates.
type CategoricalConfig struct {
	MinValues          int     `toml:"min_values"`
	MinNonNullRatio    float64 `toml:"min_non_null_ratio"`
	MaxUniqueRatio     float64 `toml:"max_unique_ratio"`
	MaxAverageLength   float64 `toml:"max_average_length"`
	MinFrequencyRatio  float64 `toml:"min_frequency_ratio"`
	PromotionThreshold float64 `toml:"promotion_threshold"`
}

// EngineConfig overrides engine-wide behavior unrelated to a single
// recognizer.
type EngineConfig struct {
	Workers int `toml:"workers"`
}

// Default returns the hardcoded thresholds spec.md §4.3 describes.
func Default() Config {
	return Config{
		Categorical: CategoricalConfig{
			MinValues:          20,
			MinNonNullRatio:    0.5,
			MaxUniqueRatio:     0.05,
			MaxAverageLength:   50,
			MinFrequencyRatio:  0.7,
			PromotionThreshold: 0.7,
		},
		Engine: EngineConfig{
			Workers: 1,
		},
	}
}

// ParseFile opens path and parses it as a TOML config, starting from
// Default() so unset fields keep their defaults.
func ParseFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open file %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a TOML document from r, overlaying it onto Default().
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode error: %w", err)
	}
	return cfg, nil
}
