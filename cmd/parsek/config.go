package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// cliConfig holds defaults shared by the subcommands, loadable from a YAML
// file via --config.
type cliConfig struct {
	ChunkSize int  `yaml:"chunk_size"`
	Color     bool `yaml:"color"`
}

func defaultConfig() cliConfig {
	return cliConfig{ChunkSize: 4096, Color: true}
}

func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ChunkSize <= 0 {
		return cfg, fmt.Errorf("config: chunk_size must be positive, got %d", cfg.ChunkSize)
	}
	return cfg, nil
}
