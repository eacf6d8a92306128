// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package config handles the qrgen defaults file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/m-spangenberg/qrgen/internal/render"
	"github.com/m-spangenberg/qrgen/internal/styles"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "qrgen.yaml"

// Defaults are the render settings applied when flags are not given.
type Defaults struct {
	Size    int    `yaml:"size,omitempty"`
	Level   string `yaml:"level,omitempty"`
	Palette string `yaml:"palette,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

// Config represents the qrgen.yaml configuration file.
type Config struct {
	Version  int      `yaml:"version"`
	Defaults Defaults `yaml:"defaults,omitempty"`
}

// New returns a config populated with the built-in defaults.
func New() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Defaults: Defaults{
			Size:    render.DefaultSize,
			Level:   render.DefaultLevel,
			Palette: "Classic",
			Output:  "qr.png",
		},
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Defaults.Size < 0 || c.Defaults.Size > render.MaxSize {
		return fmt.Errorf("size must be between 0 and %d", render.MaxSize)
	}
	switch c.Defaults.Level {
	case "", "L", "M", "Q", "H":
	default:
		return fmt.Errorf("unknown error correction level %q", c.Defaults.Level)
	}
	if p := c.Defaults.Palette; p != "" && p != styles.Custom {
		if _, ok := styles.Lookup(p); !ok {
			return fmt.Errorf("unknown palette %q", p)
		}
	}
	return nil
}
