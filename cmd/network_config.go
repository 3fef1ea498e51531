package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NetworkConfig is the optional YAML network file. Absent fields keep the
// command-line defaults.
type NetworkConfig struct {
	Population  *int      `yaml:"population"`
	Rates       []float64 `yaml:"rates"`
	Servers     []int     `yaml:"servers"`
	Enumeration string    `yaml:"enumeration"`
}

// loadNetworkConfig parses a network file with strict field checking:
// a misspelled key is an error rather than a silently ignored value.
func loadNetworkConfig(path string) (*NetworkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading network config %s: %w", path, err)
	}
	var cfg NetworkConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing network config %s: %w", path, err)
	}
	return &cfg, nil
}
