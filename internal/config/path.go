// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDatabasePath is where the expense database lives unless the
// config says otherwise.
const DefaultDatabasePath = "~/.local/share/belegwerk/belegwerk.db"

// ExpandPath expands a leading ~ and $VAR style environment variables in
// a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}
