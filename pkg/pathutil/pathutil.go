// Package pathutil provides utilities for safe path handling and validation.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigExtensions lists the file extensions accepted for configuration files.
var ConfigExtensions = []string{".yaml", ".yml", ".toml"}

// CleanPath returns the cleaned absolute form of path.
// Roster paths come straight from the command line, so relative
// paths (including ones that climb with ..) are allowed here.
func CleanPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("path is empty")
	}

	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("getting absolute path: %w", err)
	}
	return absPath, nil
}

// ValidateConfigPath validates a configuration file path.
// Config files are expected to be YAML or TOML files.
func ValidateConfigPath(path string) (string, error) {
	// Check for directory traversal attempts
	if strings.Contains(path, "..") {
		return "", fmt.Errorf("path contains directory traversal pattern: %s", path)
	}

	absPath, err := CleanPath(path)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	for _, allowed := range ConfigExtensions {
		if ext == allowed {
			return absPath, nil
		}
	}

	return "", fmt.Errorf("config file must have one of %s extensions, got %q", strings.Join(ConfigExtensions, ", "), ext)
}

// ValidateOutputPath validates an output file path for reports.
// It ensures the parent directory exists and the path is safe.
func ValidateOutputPath(path string) (string, error) {
	// Check for directory traversal attempts
	if strings.Contains(path, "..") {
		return "", fmt.Errorf("path contains directory traversal pattern: %s", path)
	}

	absPath, err := CleanPath(path)
	if err != nil {
		return "", err
	}

	// Check parent directory exists
	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return "", fmt.Errorf("parent directory does not exist: %s", dir)
	}

	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		return "", fmt.Errorf("output path is a directory: %s", absPath)
	}

	return absPath, nil
}
