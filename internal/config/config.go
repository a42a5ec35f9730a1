// Package config provides YAML-based configuration with environment
// variable expansion and named observer sites.
package config

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Site is a named observer location.
type Site struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// Validate validates the site coordinates.
func (s Site) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Lat, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&s.Lon, validation.Min(-180.0), validation.Max(180.0)),
	)
}

// Config represents the application configuration.
type Config struct {
	// Size is the stamp edge length in pixels; 0 means the built-in default.
	Size float64 `yaml:"size"`

	// CatalogPath overrides the embedded star catalog when set.
	CatalogPath string `yaml:"catalog_path"`

	// VSOP87Dir points at the VSOP87 planet data files; empty disables
	// planet glyphs.
	VSOP87Dir string `yaml:"vsop87_dir"`

	// EclipticSteps is the number of solar-path samples; 0 disables the
	// ecliptic trace.
	EclipticSteps int `yaml:"ecliptic_steps"`

	LogLevel string `yaml:"log_level"`

	// DefaultSite names the entry in Sites used when no location is given
	// and geolocation fails.
	DefaultSite string          `yaml:"default_site"`
	Sites       map[string]Site `yaml:"sites"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Size:          0,
		EclipticSteps: 24,
		LogLevel:      "info",
		DefaultSite:   "rome",
		Sites: map[string]Site{
			"rome": {Lat: 41.9028, Lon: 12.4964},
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Size, validation.Min(0.0), validation.Max(4096.0)),
		validation.Field(&c.EclipticSteps, validation.Min(0), validation.Max(366)),
		validation.Field(&c.LogLevel, validation.In("", "debug", "info", "warn", "error")),
	); err != nil {
		return err
	}

	for name, site := range c.Sites {
		if err := site.Validate(); err != nil {
			return fmt.Errorf("site %q: %w", name, err)
		}
	}

	if c.DefaultSite != "" {
		if _, ok := c.Sites[c.DefaultSite]; !ok {
			return fmt.Errorf("default_site %q has no entry in sites", c.DefaultSite)
		}
	}
	return nil
}

// ResolveSite looks up a named site.
func (c *Config) ResolveSite(name string) (Site, bool) {
	site, ok := c.Sites[name]
	return site, ok
}

// Load reads a YAML configuration file over cfg with environment variable
// expansion, then validates the result.
func Load(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
