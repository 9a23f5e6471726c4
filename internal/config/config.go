// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML-based configuration read from termctl.yaml via gopkg.in/yaml.v3

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration.
type Settings struct {
	// Unstable opens the gate for unstable ops (setRaw, consoleSize).
	Unstable bool `yaml:"unstable,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`
}

// GlobalConfigFile returns the path of the per-user settings file.
func GlobalConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "termctl", "termctl.yaml")
}

// ProjectConfigFile returns the path of the per-project settings file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, "termctl.yaml")
}

// Load reads and merges global and project-local settings. Project
// settings override global settings. Missing files are not errors.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// loadFile reads a Settings from a YAML file. Returns zero Settings if
// the file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings. Non-zero
// project values win.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global
	if project.Unstable {
		result.Unstable = true
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	return &result
}
