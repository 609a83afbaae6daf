// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// GetXDGConfigHome returns the XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns the XDG config directory with a custom
// environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// GetXDGDataHome returns the XDG data directory.
func GetXDGDataHome() string {
	return GetXDGDataHomeWithEnv(os.Getenv("XDG_DATA_HOME"))
}

// GetXDGDataHomeWithEnv returns the XDG data directory with a custom
// environment override for testing.
func GetXDGDataHomeWithEnv(xdgDataHome string) string {
	if xdgDataHome != "" {
		return xdgDataHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share")
	}

	return ""
}

// GetXDGStateHome returns the XDG state directory, where logs live.
func GetXDGStateHome() string {
	return GetXDGStateHomeWithEnv(os.Getenv("XDG_STATE_HOME"))
}

// GetXDGStateHomeWithEnv returns the XDG state directory with a custom
// environment override for testing.
func GetXDGStateHomeWithEnv(xdgStateHome string) string {
	if xdgStateHome != "" {
		return xdgStateHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}

	return ""
}

// GetConfigDir returns the gemcase config directory.
func GetConfigDir() string {
	return filepath.Join(GetXDGConfigHome(), "gemcase")
}

// GetDataDir returns the gemcase data directory, home of the default
// catalog document.
func GetDataDir() string {
	return filepath.Join(GetXDGDataHome(), "gemcase")
}

// GetLogDir returns the gemcase log directory.
func GetLogDir() string {
	return filepath.Join(GetXDGStateHome(), "gemcase", "logs")
}

// DefaultCatalogPath returns where the catalog document lives when no
// flag, environment variable, or config key points elsewhere.
func DefaultCatalogPath() string {
	return filepath.Join(GetDataDir(), "gems.jsonc")
}

// ExpandPath expands ~ and the XDG environment variables.
func ExpandPath(path string) string {
	return ExpandPathWithEnv(path, "", "")
}

// ExpandPathWithEnv expands paths with custom XDG values for testing.
func ExpandPathWithEnv(path, xdgConfigHome, xdgDataHome string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}

	if strings.HasPrefix(path, "$XDG_CONFIG_HOME") {
		configHome := xdgConfigHome
		if configHome == "" {
			configHome = GetXDGConfigHome()
		}

		if after, found := strings.CutPrefix(path, "$XDG_CONFIG_HOME"); found {
			return configHome + after
		}
	}

	if strings.HasPrefix(path, "$XDG_DATA_HOME") {
		dataHome := xdgDataHome
		if dataHome == "" {
			dataHome = GetXDGDataHome()
		}

		if after, found := strings.CutPrefix(path, "$XDG_DATA_HOME"); found {
			return dataHome + after
		}
	}

	return path
}
