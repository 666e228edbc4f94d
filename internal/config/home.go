package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirName is the per-project configuration directory.
const DirName = ".patterns"

// FileName is the configuration file inside DirName.
const FileName = "config.yaml"

// HomeEnv overrides the configuration directory when set.
const HomeEnv = "PATTERNS_HOME"

// GetPatternsHome returns the configuration directory.
// Priority order:
//  1. PATTERNS_HOME environment variable (if set)
//  2. .patterns under the current working directory
//
// The directory is not created; a missing directory simply means defaults.
func GetPatternsHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, DirName), nil
}

// DefaultConfigPath returns the config file path inside GetPatternsHome.
func DefaultConfigPath() (string, error) {
	home, err := GetPatternsHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName), nil
}
