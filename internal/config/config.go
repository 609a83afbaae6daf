// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads the optional gemcase configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jwahlstedt/gemcase/internal/platform"
)

// Config is the user configuration. Every key is optional; the zero
// value is a fully working setup. Nothing here changes filter semantics,
// only where the catalog lives and how the session starts.
type Config struct {
	// Catalog is the catalog source: a file path or an http(s) URL.
	Catalog string `toml:"catalog"`
	// ContentRoot anchors relative content references.
	ContentRoot string `toml:"content_root"`
	// LogLevel overrides the default info level.
	LogLevel string `toml:"log_level"`
	// WorkMode seeds the work toggle at startup.
	WorkMode bool `toml:"work_mode"`
	// Category seeds the selected category at startup.
	Category string `toml:"category"`
}

// DefaultPath returns the config file location under XDG config home.
func DefaultPath() string {
	return filepath.Join(platform.GetConfigDir(), "config.toml")
}

// Load reads the config file at path. A missing file is not an error;
// it yields the zero config. A present but unparseable file is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadDefault loads the config from its default location.
func LoadDefault() (*Config, error) {
	return Load(DefaultPath())
}

// CatalogSource resolves where the catalog comes from, in precedence
// order: the --catalog flag, GEMCASE_CATALOG, the config key, the
// default data path.
func (c *Config) CatalogSource(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if env := os.Getenv("GEMCASE_CATALOG"); env != "" {
		return env
	}

	if c.Catalog != "" {
		return c.Catalog
	}

	return platform.DefaultCatalogPath()
}

// ResolveContentRoot anchors relative content references: the configured
// root wins; otherwise file-based catalogs use their own directory, and
// URL catalogs get no root.
func (c *Config) ResolveContentRoot(source string) string {
	if c.ContentRoot != "" {
		return platform.ExpandPath(c.ContentRoot)
	}

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return ""
	}

	return filepath.Dir(platform.ExpandPath(source))
}
