// Package flags holds the settings flags shared by the resolve, graph, and
// watch commands.
package flags

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/incpath/incpath/config"
	"github.com/incpath/incpath/resolver"
)

// SettingsFlags collects the directory configuration common to all commands.
type SettingsFlags struct {
	Parse            []string
	Include          []string
	Search           []string
	ConfigPath       string
	RespectGitignore bool
}

// Register adds the settings flags to cmd.
func (f *SettingsFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.Parse, "parse", "p", nil, "Directories to parse for includes (comma-separated)")
	cmd.Flags().StringSliceVarP(&f.Include, "include", "I", nil, "Directories already known to be on the include path")
	cmd.Flags().StringSliceVarP(&f.Search, "search", "s", nil, "Directories searched as the candidate pool for resolution")
	cmd.Flags().StringVarP(&f.ConfigPath, "config", "c", "", "YAML settings file (flag directories are added on top)")
	cmd.Flags().BoolVar(&f.RespectGitignore, "respect-gitignore", false, "Skip gitignored files during discovery")
}

// Settings builds resolver settings from the config file (if any) plus the
// flag-provided directories. With no parse directory at all, the current
// directory is parsed.
func (f *SettingsFlags) Settings() (resolver.Settings, error) {
	var settings resolver.Settings

	if f.ConfigPath != "" {
		cfg, err := config.Load(f.ConfigPath)
		if err != nil {
			return settings, err
		}
		absConfig, err := filepath.Abs(f.ConfigPath)
		if err != nil {
			return settings, err
		}
		settings = cfg.Settings(filepath.Dir(absConfig))
	}

	settings.ParseDirs = append(settings.ParseDirs, f.Parse...)
	settings.IncludeDirs = append(settings.IncludeDirs, f.Include...)
	settings.SearchDirs = append(settings.SearchDirs, f.Search...)
	if f.RespectGitignore {
		settings.RespectGitignore = true
	}
	if len(settings.ParseDirs) == 0 {
		settings.ParseDirs = []string{"."}
	}

	return settings, nil
}
