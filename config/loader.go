/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/emmet/data"
	"bennypowers.dev/emmet/internal/logger"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "emmet"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/emmet.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		raw, err := os.ReadFile(configPath)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("%s: %w", configPath, err)
			}
		}

		cfg.root = rootDir
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found. A config that
// exists but does not parse is reported and skipped rather than fatal.
func LoadOrDefault(rootDir string) *Config {
	cfg, err := Load(rootDir)
	if err != nil {
		logger.Warn("config: %v", err)
	}
	if cfg == nil {
		cfg = Default()
		cfg.root = rootDir
	}
	return cfg
}

// Tables builds the expansion tables: the embedded defaults, an optional
// preferences replacement, then each snippet overlay merged in order.
func (c *Config) Tables() (*data.Tables, error) {
	tables := data.Default()

	if c.Preferences == "" && len(c.Snippets) == 0 {
		return tables, nil
	}
	tables = tables.Clone()

	if c.Preferences != "" {
		raw, err := os.ReadFile(c.resolve(c.Preferences))
		if err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
		loaded, err := data.LoadPreferences(raw)
		if err != nil {
			return nil, err
		}
		tables.Tags = loaded.Tags
		tables.CSS = loaded.CSS
	}

	for _, spec := range c.Snippets {
		paths, err := c.expandOverlay(spec.Path)
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 && !spec.Optional {
			return nil, fmt.Errorf("snippet overlay %q matched no files", spec.Path)
		}
		for _, path := range paths {
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("snippet overlay: %w", err)
			}
			if err := tables.MergeSnippets(raw); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	return tables, nil
}

// expandOverlay resolves one overlay path, expanding doublestar globs
// against the config root. Matches come back sorted so merge order is
// stable.
func (c *Config) expandOverlay(pattern string) ([]string, error) {
	pattern = c.resolve(pattern)
	if !strings.ContainsAny(pattern, "*?[") {
		if _, err := os.Stat(pattern); err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, err
		}
		return []string{pattern}, nil
	}

	base, glob := doublestar.SplitPattern(filepath.ToSlash(pattern))
	matches, err := doublestar.Glob(os.DirFS(base), glob)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(base, m)
	}
	return paths, nil
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) || c.root == "" {
		return path
	}
	return filepath.Join(c.root, path)
}
