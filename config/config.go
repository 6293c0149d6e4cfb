/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the arachim CLI.
package config

// DefaultFontSizePx is the font size assumed when neither the config
// file nor a flag provides one.
const DefaultFontSizePx = 16

// Config represents the arachim configuration. It supplies the default
// style context for the compute command and the value files for batch
// runs.
type Config struct {
	// FontSizePx is the element font size in pixels, the reference for
	// em and ex units.
	FontSizePx float64 `yaml:"fontSize" json:"fontSize"`

	// RootFontSizePx is the root element font size in pixels, the
	// reference for rem units. Falls back to FontSizePx when unset.
	RootFontSizePx float64 `yaml:"rootFontSize" json:"rootFontSize"`

	// Files are value-list files (one CSS value per line) for batch
	// runs. Paths support ** globs.
	Files []string `yaml:"files" json:"files"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		FontSizePx:     DefaultFontSizePx,
		RootFontSizePx: DefaultFontSizePx,
	}
}

// normalize fills unset numeric fields with their defaults.
func (c *Config) normalize() {
	if c.FontSizePx == 0 {
		c.FontSizePx = DefaultFontSizePx
	}
	if c.RootFontSizePx == 0 {
		c.RootFontSizePx = c.FontSizePx
	}
}
