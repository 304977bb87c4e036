// ABOUTME: Dashboard configuration management.
// ABOUTME: Handles dataset location, listen address, and the dataset source factory.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/genzhealth/internal/dataset"
)

// DefaultHTTPAddr is where the web dashboard listens by default.
const DefaultHTTPAddr = "localhost:8501"

// Config stores dashboard configuration.
type Config struct {
	// DataFile is the CSV extract to load. Supports ~ expansion.
	// Defaults to GenZ_Health_Insights_BRFFS2023.csv in the working directory.
	DataFile string `json:"data_file,omitempty"`

	// HTTPAddr is the web dashboard listen address.
	HTTPAddr string `json:"http_addr,omitempty"`
}

// GetDataFile returns the configured dataset path with ~ expanded.
func (c *Config) GetDataFile() string {
	if c.DataFile == "" {
		return dataset.DefaultDataFile
	}
	return ExpandPath(c.DataFile)
}

// GetHTTPAddr returns the configured listen address, defaulting to
// DefaultHTTPAddr.
func (c *Config) GetHTTPAddr() string {
	if c.HTTPAddr == "" {
		return DefaultHTTPAddr
	}
	return c.HTTPAddr
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenSource returns the load-once dataset source for the configured file.
func (c *Config) OpenSource() *dataset.Source {
	return dataset.NewSource(c.GetDataFile())
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "genzhealth", "config.json")
}

// Load reads config from disk. A missing file yields an empty Config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
