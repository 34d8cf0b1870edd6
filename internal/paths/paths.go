package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "flowmind"

// ConfigEnvVar overrides the configuration directory when set.
const ConfigEnvVar = "FLOWMIND_CONFIG_DIR"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the FlowMind configuration directory.
// FLOWMIND_CONFIG_DIR takes precedence over <ConfigHome>/flowmind.
func ConfigDir() string {
	if dir := os.Getenv(ConfigEnvVar); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
