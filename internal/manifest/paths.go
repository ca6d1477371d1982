// Package manifest records which attack tables were generated, when, and
// with what content digest, so a deployment can verify its table files
// against the generator run that produced them.
package manifest

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "attacktables"

// DataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/attacktables/
// - Linux: ~/.local/share/attacktables/
// - Windows: %APPDATA%/attacktables/
func DataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Linux and other Unix-like: honor XDG_DATA_HOME, fall back to
		// ~/.local/share/.
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// DatabaseDir returns the directory holding the manifest database.
func DatabaseDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	dbDir := filepath.Join(dataDir, "manifest")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}

// TableDir returns the default directory for generated table files.
func TableDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	tableDir := filepath.Join(dataDir, "tables")
	if err := os.MkdirAll(tableDir, 0755); err != nil {
		return "", err
	}
	return tableDir, nil
}
