// Package config loads model configuration files. YAML is the platform's
// primary configuration format; JSON files are accepted as well, selected
// by file extension.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML or JSON configuration file into a generic mapping.
func Load(path string) (map[string]any, error) {
	cfg := make(map[string]any)
	if err := LoadInto(path, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a YAML or JSON configuration file into the caller's
// structure. Files with a .json extension are decoded as JSON, everything
// else as YAML.
func LoadInto(path string, v any) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config %s, %w", path, err)
	}

	if filepath.Ext(path) == ".json" {
		if err := json.Unmarshal(bytes, v); err != nil {
			return fmt.Errorf("unable to parse json config %s, %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(bytes, v); err != nil {
		return fmt.Errorf("unable to parse yaml config %s, %w", path, err)
	}
	return nil
}
