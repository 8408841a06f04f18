package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"perceptron/internal/perceptron"
	"perceptron/internal/preset"
)

// runConfig describes one render invocation. JSON files load too since JSON
// is valid YAML.
type runConfig struct {
	Inputs       int         `yaml:"inputs"`
	Weights      string      `yaml:"weights"`
	WeightSet    string      `yaml:"weight_set"`
	Values       []float64   `yaml:"values"`
	Preset       string      `yaml:"preset"`
	InputRanges  [][]float64 `yaml:"input_ranges"`
	OutputRanges [][]float64 `yaml:"output_ranges"`
	Strict       bool        `yaml:"strict"`
	Seed         *int64      `yaml:"seed"`
}

func loadRunConfig(path string) (runConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runConfig{}, err
	}
	var cfg runConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return runConfig{}, err
	}
	if _, err := perceptron.RangesFromPairs(cfg.InputRanges); err != nil {
		return runConfig{}, fmt.Errorf("input_ranges: %w", err)
	}
	if _, err := perceptron.RangesFromPairs(cfg.OutputRanges); err != nil {
		return runConfig{}, fmt.Errorf("output_ranges: %w", err)
	}
	return cfg, nil
}

// applyFlags overrides config values with explicitly set flags.
func (cfg *runConfig) applyFlags(c *cli.Context) {
	if c.IsSet("inputs") {
		cfg.Inputs = c.Int("inputs")
	}
	if c.IsSet("weights") {
		cfg.Weights = c.String("weights")
	}
	if c.IsSet("weight-set") {
		cfg.WeightSet = c.String("weight-set")
	}
	if c.IsSet("values") {
		cfg.Values = c.Float64Slice("values")
	}
	if c.IsSet("preset") {
		cfg.Preset = c.String("preset")
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	if c.IsSet("seed") {
		seed := c.Int64("seed")
		cfg.Seed = &seed
	}
}

func (cfg *runConfig) validate() error {
	if cfg.Weights != "" && cfg.WeightSet != "" {
		return errors.New("weights and weight_set are mutually exclusive")
	}
	if cfg.Preset != "" {
		p, ok := preset.Lookup(cfg.Preset)
		if !ok {
			return fmt.Errorf("unknown preset: %s (known: %v)", cfg.Preset, preset.Names())
		}
		if len(cfg.InputRanges) > 0 || len(cfg.OutputRanges) > 0 {
			return errors.New("preset and explicit ranges are mutually exclusive")
		}
		if cfg.Inputs == 0 {
			cfg.Inputs = p.Inputs
		}
	}
	if cfg.Inputs == 0 {
		cfg.Inputs = len(cfg.Values)
	}
	if cfg.Inputs <= 0 {
		return errors.New("number of inputs is required")
	}
	return nil
}

func (cfg runConfig) rng() *rand.Rand {
	return seededRNG(cfg.Seed)
}
