package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/issue-marker/configs"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the config file looked up when none is given.
const DefaultConfigPath = ".github/issue-marker.yaml"

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	WriteDefaultConfig(force bool) error
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return &realManager{
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
// Values missing from the file keep their default.
func (c *realManager) GetConfig() (Config, error) {
	// Check if config file exists
	if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigFileNotFound, c.configPath)
	}

	// Read config file
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML over the defaults
	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to default if the file is missing.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}
	if _, statErr := os.Stat(c.configPath); os.IsNotExist(statErr) {
		return c.DefaultConfig(), nil
	}
	return Config{}, err
}

// WriteDefaultConfig writes the embedded default configuration to the config path.
func (c *realManager) WriteDefaultConfig(force bool) error {
	if _, err := os.Stat(c.configPath); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigFileExists, c.configPath)
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(c.configPath, configs.DefaultConfigYAML, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	return DefaultConfig()
}
