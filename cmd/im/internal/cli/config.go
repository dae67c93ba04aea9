// Package cli provides common configuration and wiring for the im CLI.
package cli

import (
	"os"

	"github.com/lerenn/issue-marker/pkg/config"
	"github.com/lerenn/issue-marker/pkg/logger"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose prints the run log as plain lines instead of debug commands.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Repository overrides the repository, as owner/name.
	Repository string
	// PullRequest overrides the pull request number.
	PullRequest int
)

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(ConfigPath)
}

// LoadConfig loads the configuration file, then the environment, then the flags.
func LoadConfig() (config.Config, error) {
	return loadConfig(NewConfigManager(), os.Getenv)
}

func loadConfig(manager config.Manager, getenv func(string) string) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}

	cfg, err := manager.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, err
	}

	// The event payload only fills the pull request when no flag did.
	if PullRequest > 0 {
		cfg.PullRequest = PullRequest
	}
	if err := config.ApplyEnvironment(&cfg, getenv); err != nil {
		return config.Config{}, err
	}
	if Repository != "" {
		if err := cfg.SetRepository(Repository); err != nil {
			return config.Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// NewLogger creates the logger matching the output flags.
func NewLogger() logger.Logger {
	switch {
	case Quiet:
		return logger.NewNoopLogger()
	case Verbose:
		return logger.NewActionsLogger()
	default:
		return logger.NewActionsLogger().AsDebug()
	}
}
