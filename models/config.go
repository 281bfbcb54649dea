package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BatchConfig holds runtime configuration for batch extraction. Values come
// from CLI flags, optionally seeded from a config.yaml file.
type BatchConfig struct {
	InputDir    string `yaml:"input_dir"`
	OutputDir   string `yaml:"output_dir"`
	WorkerCount int    `yaml:"workers"`
}

// LoadConfig reads a BatchConfig from a YAML file.
func LoadConfig(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config BatchConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.WorkerCount <= 0 {
		config.WorkerCount = 4
	}

	return &config, nil
}
