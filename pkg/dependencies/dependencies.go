// Package dependencies provides a centralized dependency container for the issue marker.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/issue-marker/pkg/board"
	"github.com/lerenn/issue-marker/pkg/classifier"
	"github.com/lerenn/issue-marker/pkg/config"
	"github.com/lerenn/issue-marker/pkg/forge"
	"github.com/lerenn/issue-marker/pkg/hooks"
	"github.com/lerenn/issue-marker/pkg/logger"
)

// Validation errors for missing dependencies.
var (
	ErrForgeMissing       = errors.New("forge dependency is required but not set")
	ErrConfigMissing      = errors.New("config dependency is required but not set")
	ErrLoggerMissing      = errors.New("logger dependency is required but not set")
	ErrHookManagerMissing = errors.New("hook manager dependency is required but not set")
	ErrClassifierMissing  = errors.New("classifier dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	Forge       forge.Forge
	// Board is optional; a nil board disables reconciliation.
	Board       board.Board
	Config      *config.Config
	Logger      logger.Logger
	HookManager hooks.HookManagerInterface
	Classifier  *classifier.Classifier
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	cfg := config.DefaultConfig()
	return &Dependencies{
		Config:      &cfg,
		Logger:      logger.NewNoopLogger(),
		HookManager: hooks.NewHookManager(),
		Classifier:  classifier.NewDefault(),
		// Note: Forge and Board are left nil as they need credentials
	}
}

// WithForge sets the forge and returns the instance for chaining.
func (d *Dependencies) WithForge(f forge.Forge) *Dependencies {
	d.Forge = f
	return d
}

// WithBoard sets the board and returns the instance for chaining.
func (d *Dependencies) WithBoard(b board.Board) *Dependencies {
	d.Board = b
	return d
}

// WithConfig sets the config and returns the instance for chaining.
// The classifier is rebuilt from the configured labels.
func (d *Dependencies) WithConfig(cfg *config.Config) *Dependencies {
	d.Config = cfg
	if cfg != nil {
		d.Classifier = classifier.New(cfg.Labels.ClassifierParams())
	}
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.HookManagerInterface) *Dependencies {
	d.HookManager = hm
	return d
}

// WithClassifier sets the classifier and returns the instance for chaining.
func (d *Dependencies) WithClassifier(c *classifier.Classifier) *Dependencies {
	d.Classifier = c
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.Forge == nil, ErrForgeMissing},
		{d.Config == nil, ErrConfigMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.HookManager == nil, ErrHookManagerMissing},
		{d.Classifier == nil, ErrClassifierMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
