// Package config provides configuration helpers and config file parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileConfig represents the config file.
type FileConfig struct {
	Widget WidgetConfig `toml:"widget" yaml:"widget"`
}

// WidgetConfig maps widget-related settings. Durations are Go duration strings.
type WidgetConfig struct {
	ClicksPerStar  *string `toml:"clicks-per-star" yaml:"clicks-per-star"`
	Debounce       *string `toml:"debounce" yaml:"debounce"`
	NormalizeEvery *string `toml:"normalize-every" yaml:"normalize-every"`
	Animate        *bool   `toml:"animate" yaml:"animate"`
	Mouse          *bool   `toml:"mouse" yaml:"mouse"`
	Color          *bool   `toml:"color" yaml:"color"`
}

// LoadConfig reads a TOML or YAML config from the given path, chosen by file
// extension. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	}
	return cfg, nil
}
