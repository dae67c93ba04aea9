package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse    = errors.New("failed to parse config file")
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileExists   = errors.New("config file already exists")

	// Configuration validation errors.
	ErrRepositoryEmpty         = errors.New("repository owner and name cannot be empty")
	ErrPullRequestInvalid      = errors.New("pull request number must be positive")
	ErrTokenEmpty              = errors.New("github token cannot be empty")
	ErrMarkerEmpty             = errors.New("report marker cannot be empty")
	ErrHistoryStrategyInvalid  = errors.New("history strategy must be 'comments' or 'edits'")
	ErrLookupConcurrency       = errors.New("lookup concurrency must be positive")
	ErrZenHubWorkspaceRequired = errors.New("zenhub workspace is required when a zenhub key is set")

	// Environment errors.
	ErrEventPayload = errors.New("failed to read pull request event payload")
)
