// Package config loads resolver settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/incpath/incpath/resolver"
)

// Config mirrors the on-disk YAML settings file:
//
//	parse:
//	  - src
//	include:
//	  - include
//	search:
//	  - third_party
//	respect_gitignore: true
type Config struct {
	Parse            []string `yaml:"parse"`
	Include          []string `yaml:"include"`
	Search           []string `yaml:"search"`
	RespectGitignore bool     `yaml:"respect_gitignore"`
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Settings converts the config into resolver settings. Relative entries are
// resolved against baseDir, typically the config file's directory.
func (c *Config) Settings(baseDir string) resolver.Settings {
	return resolver.Settings{
		ParseDirs:        resolveAll(baseDir, c.Parse),
		IncludeDirs:      resolveAll(baseDir, c.Include),
		SearchDirs:       resolveAll(baseDir, c.Search),
		RespectGitignore: c.RespectGitignore,
	}
}

func resolveAll(baseDir string, dirs []string) []string {
	if len(dirs) == 0 {
		return nil
	}
	resolved := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if filepath.IsAbs(dir) {
			resolved = append(resolved, dir)
			continue
		}
		resolved = append(resolved, filepath.Join(baseDir, dir))
	}
	return resolved
}
