package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetConfigDir returns the path to the tooloop configuration directory.
// The directory is located inside the user's configuration directory
// as <UserConfigDir>/tooloop, unless overridden by TOOLOOP_CONFIG_DIR.
func GetConfigDir() (string, error) {
	if home := os.Getenv("TOOLOOP_CONFIG_DIR"); home != "" {
		return home, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(cfg, "tooloop"), nil
}

// GetConversationsDir returns <configDir>/conversations
func GetConversationsDir(configDir string) string {
	return filepath.Join(configDir, "conversations")
}
