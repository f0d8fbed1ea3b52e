// Package config loads the credctl configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the credctl configuration file
type Config struct {
	UI     UIConfig     `toml:"ui"`
	Prompt PromptConfig `toml:"prompt"`
}

// UIConfig contains terminal rendering settings
type UIConfig struct {
	Color string `toml:"color"` // auto, always, never
}

// PromptConfig contains credential prompt settings
type PromptConfig struct {
	Lang    string `toml:"lang"`    // message language, empty = auto-detect
	Confirm bool   `toml:"confirm"` // ask for confirmation by default
}

// Default returns a config with sensible defaults
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Color: "auto",
		},
		Prompt: PromptConfig{
			Lang:    "",
			Confirm: false,
		},
	}
}

// Load loads the configuration from the default config file
func Load() (*Config, error) {
	paths, err := GetPaths()
	if err != nil {
		return nil, fmt.Errorf("get paths: %w", err)
	}

	return LoadFrom(paths.ConfigFile)
}

// LoadFrom loads the configuration from a specific file
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if no config file exists
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveTo saves the configuration to a specific file
func (c *Config) SaveTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[c.UI.Color] {
		return fmt.Errorf("invalid color mode: %s", c.UI.Color)
	}

	return nil
}
