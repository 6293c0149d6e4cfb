/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	arfs "bennypowers.dev/arachim/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "arachim"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/arachim.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem arfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case ".json":
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}

		cfg.normalize()
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem arfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandFiles expands glob patterns in Files and returns matching paths.
func (c *Config) ExpandFiles(filesystem arfs.FileSystem, rootDir string) ([]string, error) {
	var result []string

	for _, pattern := range c.Files {
		expanded, err := expandFilePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}

	return result, nil
}

// expandFilePath expands a single path, treating it as a glob when it
// contains glob characters.
func expandFilePath(filesystem arfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		// Not a glob, return the path directly (errors handled when
		// the file is read)
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// expandGlob expands a glob pattern against the filesystem.
func expandGlob(filesystem arfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		// doublestar handles both simple and ** globs
		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
