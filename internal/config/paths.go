package config

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the directory holding the global config file.
// DADGPT_CONFIG_DIR takes precedence, then $XDG_CONFIG_HOME/dadgpt, then
// ~/.config/dadgpt.
func ConfigDir() string {
	if dir := os.Getenv("DADGPT_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(getEnvOrDefault("XDG_CONFIG_HOME", defaultConfigHome()), "dadgpt")
}

// DataDir returns the directory holding dadgpt data (entity storage).
func DataDir() string {
	return filepath.Join(getEnvOrDefault("XDG_DATA_HOME", defaultDataHome()), "dadgpt")
}

// GlobalConfigPath returns the path of the global config file.
func GlobalConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// ProjectConfigPath returns the path of the project-local config file,
// discovered relative to directory.
func ProjectConfigPath(directory string) string {
	return filepath.Join(directory, "dadgpt.json")
}

// StoragePath returns the entity storage root.
func StoragePath() string {
	return filepath.Join(DataDir(), "storage")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func defaultConfigHome() string {
	return filepath.Join(os.Getenv("HOME"), ".config")
}

func defaultDataHome() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share")
}
