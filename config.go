package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// runConfig is the file/env-level configuration. Command-line flags override
// whatever is loaded here; YAML values override environment values.
type runConfig struct {
	Seed     int64 `yaml:"seed"`
	Coverage struct {
		Enabled bool     `yaml:"enabled"`
		Paths   []string `yaml:"paths"`
	} `yaml:"coverage"`
	Output struct {
		JSON string `yaml:"json"`
	} `yaml:"output"`
}

func loadConfig(path string) (runConfig, error) {
	_ = godotenv.Load() // a missing .env file is fine

	var cfg runConfig
	if v := os.Getenv("UNITFORGE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("UNITFORGE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("UNITFORGE_COVERAGE"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("UNITFORGE_COVERAGE: %w", err)
		}
		cfg.Coverage.Enabled = enabled
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return cfg, nil
}
