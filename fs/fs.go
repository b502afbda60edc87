// Package fs persists diffshot state on the local filesystem.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultDataDir returns the default data directory for diffshot.
// Uses XDG_DATA_HOME if set, otherwise falls back to ~/.local/share/diffshot.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "diffshot")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "diffshot")
}

// DefaultConfigPath returns the default config file location.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/diffshot.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "diffshot", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "diffshot", "config.toml")
}
