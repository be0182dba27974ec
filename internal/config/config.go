// Package config handles configuration loading, saving, and defaults for VATScope
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/vatscope/vatscope/internal/vatsim"
)

// Config directories and files
var (
	ConfigDir  string
	ConfigFile string
)

func init() {
	homeDir, _ := os.UserHomeDir()
	ConfigDir = filepath.Join(homeDir, ".config", "vatscope")
	ConfigFile = filepath.Join(ConfigDir, "settings.json")
}

// DisplaySettings contains UI display options
type DisplaySettings struct {
	Theme string `json:"theme"`
}

// NetworkSettings contains data feed options
type NetworkSettings struct {
	StatusURL      string `json:"status_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// LoggingSettings contains log output options
type LoggingSettings struct {
	File    string `json:"file"`
	Verbose bool   `json:"verbose"`
}

// Config is the main configuration container
type Config struct {
	Display DisplaySettings `json:"display"`
	Network NetworkSettings `json:"network"`
	Logging LoggingSettings `json:"logging"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Display: DisplaySettings{
			Theme: "classic",
		},
		Network: NetworkSettings{
			StatusURL:      vatsim.DefaultStatusURL,
			TimeoutSeconds: 10,
		},
		Logging: LoggingSettings{
			File:    "vatscope.log",
			Verbose: false,
		},
	}
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	return os.MkdirAll(ConfigDir, 0755)
}

// Load loads configuration from file or returns defaults
func Load() (*Config, error) {
	if _, err := os.Stat(ConfigFile); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(ConfigFile)
	if err != nil {
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return DefaultConfig(), nil
	}

	return config, nil
}

// Save saves configuration to file
func Save(config *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigFile, data, 0644)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	return ConfigFile
}
