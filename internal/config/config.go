/*
File : gplc/internal/config/config.go
*/
// Package config loads the optional `.gplc.yaml` project-default file:
// CLI flags always win, this only supplies fallbacks.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project-config file name searched for.
const FileName = ".gplc.yaml"

// Config holds the subset of `compile` defaults a project can pin.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	Verbose   bool   `yaml:"verbose"`
}

// Load searches startDir and its ancestors for FileName and parses the
// first one found. A missing file is not an error: Load returns a
// zero Config so CLI flags and the driver's own defaults still apply.
func Load(startDir string) (Config, error) {
	path, ok, err := find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Config{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// find walks upward from dir looking for FileName, stopping at the
// filesystem root.
func find(dir string) (path string, ok bool, err error) {
	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
