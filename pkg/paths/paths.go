package paths

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the user's config directory for segue.
//
// If the home directory cannot be determined, it falls back to a directory
// under the system temporary directory. This is a best-effort fallback and
// not intended to be a security boundary.
func GetConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp directory
		return filepath.Clean(filepath.Join(os.TempDir(), ".segue-config"))
	}
	return filepath.Clean(filepath.Join(homeDir, ".config", "segue"))
}

// GetDataDir returns the user's data directory for segue (themes, logs).
//
// If the home directory cannot be determined, it falls back to a directory
// under the system temporary directory.
func GetDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Clean(filepath.Join(os.TempDir(), ".segue"))
	}
	return filepath.Clean(filepath.Join(homeDir, ".segue"))
}

// GetStateDir returns the directory for session-scoped state files.
// State here is disposable: it only needs to outlive individual page
// processes within one terminal session.
func GetStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Clean(filepath.Join(dir, "segue"))
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Clean(filepath.Join(os.TempDir(), ".segue-state"))
	}
	return filepath.Clean(filepath.Join(homeDir, ".local", "state", "segue"))
}

// GetHomeDir returns the user's home directory.
//
// Returns an empty string if the home directory cannot be determined.
func GetHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Clean(homeDir)
}
