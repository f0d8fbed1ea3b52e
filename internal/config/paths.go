package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the platform-specific file paths for credctl
type Paths struct {
	ConfigDir  string // ~/.config/credctl or equivalent
	ConfigFile string // ~/.config/credctl/config.toml
}

// GetPaths returns platform-specific paths for credctl.
// CREDCTL_CONFIG_DIR overrides the default, which is useful for tests.
func GetPaths() (*Paths, error) {
	configDir := os.Getenv("CREDCTL_CONFIG_DIR")
	if configDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("get config directory: %w", err)
		}
		configDir = filepath.Join(base, "credctl")
	}

	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.toml"),
	}, nil
}

// EnsureConfigDir creates the config directory if it does not exist
func (p *Paths) EnsureConfigDir() error {
	return os.MkdirAll(p.ConfigDir, 0o700)
}
