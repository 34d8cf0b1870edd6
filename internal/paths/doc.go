// Package paths resolves where FlowMind keeps its configuration.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG conventions
// (~/.config/flowmind). Set FLOWMIND_CONFIG_DIR to use another directory.
package paths
