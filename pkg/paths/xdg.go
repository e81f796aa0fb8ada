// Package paths provides XDG-compliant path resolution for jobslots.
//
// Resolution order:
// 1. JOBSLOTS_HOME (portable root) → $JOBSLOTS_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/jobslots
// 3. Platform defaults → ~/.config/jobslots, ~/.local/state/jobslots
package paths

import (
	"os"
	"path/filepath"
)

const appName = "jobslots"

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if home := os.Getenv("JOBSLOTS_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if home := os.Getenv("JOBSLOTS_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the configuration directory holding the global
// jobslots.yml.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// StateDir returns the state directory. Used for logs.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// LogDir returns the default directory for log files.
func LogDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}
