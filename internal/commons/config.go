package commons

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"pedidos/internal/config"
)

// LoadConfig reads configuration from a YAML file. When the file does
// not exist, it falls back to the environment-driven loader so the
// service runs without any file present.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}
