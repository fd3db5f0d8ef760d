package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - GIGAWALL_CONFIG_PATH: config file location (default: ~/.config/gigawall.toml)
//   - GIGAWALL_HOME: base directory for gigawall data (default: ~/.local/share/gigawall)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

// getConfigPath returns the config file path, checking GIGAWALL_CONFIG_PATH
// first, then falling back to the default ~/.config/gigawall.toml.
func getConfigPath() (string, error) {
	if path := os.Getenv("GIGAWALL_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "gigawall.toml"), nil
}

// getBaseDir returns the base directory for gigawall data, checking
// GIGAWALL_HOME first, then falling back to the XDG default
// ~/.local/share/gigawall.
func getBaseDir() (string, error) {
	if path := os.Getenv("GIGAWALL_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "gigawall"), nil
}
