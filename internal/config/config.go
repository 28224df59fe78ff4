// Package config persists user preferences across runs.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the viewer preferences
type Config struct {
	DisplayUnit   string `yaml:"display_unit"`
	WindowWidth   int    `yaml:"window_width"`
	WindowHeight  int    `yaml:"window_height"`
	ShowWireframe bool   `yaml:"show_wireframe"`
	ShowGrid      bool   `yaml:"show_grid"`
}

// Default returns the default preferences
func Default() Config {
	return Config{
		DisplayUnit:   "mm",
		WindowWidth:   1400,
		WindowHeight:  900,
		ShowWireframe: true,
		ShowGrid:      true,
	}
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cadview.yaml"
	}
	return filepath.Join(dir, "cadview", "config.yaml")
}

// Load reads preferences from the given file. A missing or invalid
// file yields the defaults without an error; preferences are never a
// reason not to start.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		cfg.WindowWidth = Default().WindowWidth
		cfg.WindowHeight = Default().WindowHeight
	}
	return cfg
}

// Save writes preferences to the given file, creating the directory
// if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
