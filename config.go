package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigDir = ".zenn-importer"
	// slugLength is fixed; cmd/inspect expects the same length
	slugLength = 20
)

//go:embed config/settings.yaml
var defaultSettings string

//go:embed config/zenn-article-template.md
var defaultTemplate string

// ConfigOverrides holds flag values that take precedence over settings.yaml
type ConfigOverrides struct {
	SettingsPath    *string
	TemplatePath    *string
	InputFile       *string
	OutputDirectory *string
	Workers         *int
	ConvertHTML     *bool
}

// Settings represents the YAML configuration structure
type Settings struct {
	InputFile       string `yaml:"input_file"`
	OutputDirectory string `yaml:"output_directory"`
	Workers         int    `yaml:"workers"`
	ConvertHTML     bool   `yaml:"convert_html"`
}

// Config holds settings and overrides
type Config struct {
	Settings  *Settings
	Overrides *ConfigOverrides
}

// NewConfig loads settings and applies overrides on top of them
func NewConfig(overrides *ConfigOverrides) (*Config, error) {
	var settings *Settings
	var err error

	if overrides != nil && overrides.SettingsPath != nil {
		// Explicit settings file must exist
		settings, err = loadSettingsRequired(*overrides.SettingsPath)
	} else {
		settings, err = loadSettings(filepath.Join(defaultConfigDir, "settings.yaml"))
	}
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	settings.applyOverrides(overrides)
	settings.applyDefaults()

	return &Config{
		Settings:  settings,
		Overrides: overrides,
	}, nil
}

// GetTemplate returns the front matter template (from override file or embedded)
func (c *Config) GetTemplate() (string, error) {
	if c.Overrides != nil && c.Overrides.TemplatePath != nil {
		data, err := os.ReadFile(*c.Overrides.TemplatePath)
		if err != nil {
			return "", fmt.Errorf("reading template %s: %w", *c.Overrides.TemplatePath, err)
		}
		return string(data), nil
	}
	return defaultTemplate, nil
}

// loadSettings loads settings from YAML file with fallback to embedded defaults
func loadSettings(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if os.IsNotExist(err) {
		data = []byte(defaultSettings)
	} else if err != nil {
		return nil, err
	}
	return parseSettings(data)
}

// loadSettingsRequired loads settings from YAML file, failing if file doesn't exist
func loadSettingsRequired(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, err
	}
	return parseSettings(data)
}

func parseSettings(data []byte) (*Settings, error) {
	// Start from the embedded defaults so partial files keep sane values
	var settings Settings
	if err := yaml.Unmarshal([]byte(defaultSettings), &settings); err != nil {
		return nil, fmt.Errorf("parsing embedded settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}
	return &settings, nil
}

func (s *Settings) applyOverrides(o *ConfigOverrides) {
	if o == nil {
		return
	}
	if o.InputFile != nil {
		s.InputFile = *o.InputFile
	}
	if o.OutputDirectory != nil {
		s.OutputDirectory = *o.OutputDirectory
	}
	if o.Workers != nil {
		s.Workers = *o.Workers
	}
	if o.ConvertHTML != nil {
		s.ConvertHTML = *o.ConvertHTML
	}
}

func (s *Settings) applyDefaults() {
	if s.InputFile == "" {
		s.InputFile = "data4.json"
	}
	if s.OutputDirectory == "" {
		s.OutputDirectory = "."
	}
	if s.Workers <= 0 {
		s.Workers = runtime.NumCPU()
	}
}
