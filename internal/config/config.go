// Package config loads and validates the docrender configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docrender/internal/errors"
)

// Config represents the application configuration.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
}

// SiteConfig carries page-level presentation settings.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

// OutputConfig controls where and how pages are written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"`               // Clean output directory before generation
	Locations string `yaml:"locations,omitempty"` // "folders" (default) or "single-folder"
}

// ServerConfig controls the preview server.
type ServerConfig struct {
	Listen  string `yaml:"listen,omitempty"`
	Metrics bool   `yaml:"metrics,omitempty"`
}

// Default returns the configuration used when no file is given and as the
// basis for `docrender init`.
func Default() *Config {
	return &Config{
		Site:   SiteConfig{Title: "API Documentation"},
		Output: OutputConfig{Directory: "./site", Clean: true, Locations: "folders"},
		Server: ServerConfig{Listen: ":8080", Metrics: true},
	}
}

// Load loads configuration from the specified file. Environment variables in
// the YAML content are expanded before parsing.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.ConfigParseError(configPath, err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.ConfigParseError(configPath, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Site.Title == "" {
		c.Site.Title = def.Site.Title
	}
	if c.Output.Directory == "" {
		c.Output.Directory = def.Output.Directory
	}
	if c.Output.Locations == "" {
		c.Output.Locations = def.Output.Locations
	}
	if c.Server.Listen == "" {
		c.Server.Listen = def.Server.Listen
	}
}

// Validate rejects configurations the pipeline cannot act on.
func (c *Config) Validate() error {
	if c.Output.Directory == "" {
		return errors.ValidationFailed("output.directory", "must not be empty")
	}
	switch c.Output.Locations {
	case "folders", "single-folder":
	default:
		return errors.ValidationFailed("output.locations",
			fmt.Sprintf("unsupported value %q (want folders or single-folder)", c.Output.Locations))
	}
	return nil
}

// Init creates a new configuration file with default content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.New(errors.CategoryConfig, errors.SeverityFatal,
			"configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return errors.InternalError("failed to marshal default configuration", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal,
			"failed to write configuration file").WithContext("path", configPath)
	}
	return nil
}
