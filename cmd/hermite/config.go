package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-hermite"
)

// fileConfig is the optional YAML configuration. Explicitly set flags
// override its values.
type fileConfig struct {
	Order  int     `yaml:"order"`
	Alpha  float64 `yaml:"alpha"`
	Mu     float64 `yaml:"mu"`
	Points int     `yaml:"points"`

	Evaluator evaluatorConfig `yaml:"evaluator"`
}

type evaluatorConfig struct {
	Workers   int   `yaml:"workers"`
	ChunkSize int   `yaml:"chunk_size"`
	Parallel  *bool `yaml:"parallel"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Order:  defaultOrder,
		Alpha:  defaultAlpha,
		Mu:     defaultMu,
		Points: defaultPoints,
	}
}

// loadConfig reads path on top of the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyFlags overrides the file values with every flag the user set.
func applyFlags(cmd *cobra.Command, cfg *fileConfig) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("order") {
		if cfg.Order, err = flags.GetInt("order"); err != nil {
			return err
		}
	}
	if flags.Changed("alpha") {
		if cfg.Alpha, err = flags.GetFloat64("alpha"); err != nil {
			return err
		}
	}
	if flags.Changed("mu") {
		if cfg.Mu, err = flags.GetFloat64("mu"); err != nil {
			return err
		}
	}
	if flags.Changed("points") {
		if cfg.Points, err = flags.GetInt("points"); err != nil {
			return err
		}
	}
	if flags.Changed("workers") {
		if cfg.Evaluator.Workers, err = flags.GetInt("workers"); err != nil {
			return err
		}
	}
	if flags.Changed("chunk-size") {
		if cfg.Evaluator.ChunkSize, err = flags.GetInt("chunk-size"); err != nil {
			return err
		}
	}
	if flags.Changed("serial") {
		serial, err := flags.GetBool("serial")
		if err != nil {
			return err
		}
		parallel := !serial
		cfg.Evaluator.Parallel = &parallel
	}
	return nil
}

// toConfig converts the evaluator section into a library configuration.
func (c evaluatorConfig) toConfig() *hermite.Config {
	cfg := hermite.DefaultConfig()
	if c.Workers != 0 {
		cfg.Workers = c.Workers
	}
	if c.ChunkSize != 0 {
		cfg.ChunkSize = c.ChunkSize
	}
	if c.Parallel != nil {
		cfg.EnableParallel = *c.Parallel
	}
	cfg.Logger = logger
	return cfg
}
