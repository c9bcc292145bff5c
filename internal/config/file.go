package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the subset of Config settable from the YAML config
// file. Pointer fields distinguish "absent" from zero values so the file
// only overrides what it actually sets.
type fileConfig struct {
	FPS   *int   `yaml:"fps"`
	Width *int   `yaml:"width"`
	Color string `yaml:"color"`
	Log   string `yaml:"log"`
}

// DefaultFilePath returns the conventional config file location
// (~/.config/gifnorm/config.yaml on Linux), or empty if the user config
// directory cannot be determined.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gifnorm", "config.yaml")
}

// ApplyFile overlays settings from the YAML file at path onto cfg.
// When explicit is false (the default location), a missing file is not an
// error; when the user passed --config, it is.
func ApplyFile(cfg *Config, path string, explicit bool) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if fc.FPS != nil {
		cfg.FPS = *fc.FPS
	}
	if fc.Width != nil {
		cfg.Width = *fc.Width
	}
	if fc.Color != "" {
		cfg.ColorMode = ColorMode(fc.Color)
	}
	if fc.Log != "" {
		cfg.LogFile = fc.Log
	}
	return nil
}
