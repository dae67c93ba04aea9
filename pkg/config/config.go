// Package config provides configuration management functionality for the issue marker.
package config

import (
	"fmt"
	"strings"

	"github.com/lerenn/issue-marker/pkg/classifier"
	"github.com/lerenn/issue-marker/pkg/history"
	"github.com/lerenn/issue-marker/pkg/report"
)

// Config represents the application configuration.
type Config struct {
	Repository        Repository `yaml:"repository,omitempty"`
	PullRequest       int        `yaml:"pull_request,omitempty"`
	GitHub            GitHub     `yaml:"github"`
	ZenHub            ZenHub     `yaml:"zenhub"`
	Report            Report     `yaml:"report"`
	Labels            Labels     `yaml:"labels"`
	HistoryStrategy   string     `yaml:"history_strategy"`
	LookupConcurrency int        `yaml:"lookup_concurrency"`
}

// Repository is the repository hosting the pull request.
type Repository struct {
	Owner string `yaml:"owner,omitempty"`
	Name  string `yaml:"name,omitempty"`
}

// String returns owner/name.
func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// GitHub holds the hosting API settings.
type GitHub struct {
	Token             string  `yaml:"token,omitempty"`
	APIURL            string  `yaml:"api_url,omitempty"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// ZenHub holds the tracking board settings.
type ZenHub struct {
	Key       string `yaml:"key,omitempty"`
	Workspace string `yaml:"workspace,omitempty"`
	APIURL    string `yaml:"api_url,omitempty"`
}

// Enabled reports whether board reconciliation is configured.
func (z ZenHub) Enabled() bool {
	return z.Key != ""
}

// Report holds the comment settings.
type Report struct {
	Marker string `yaml:"marker"`
}

// Labels configures issue classification.
type Labels struct {
	Blocking []string `yaml:"blocking"`
	Relink   string   `yaml:"relink"`
}

// ClassifierParams converts the labels into classifier parameters.
func (l Labels) ClassifierParams() classifier.Params {
	return classifier.Params{BlockingLabels: l.Blocking, RelinkLabel: l.Relink}
}

// DefaultConfig returns the default configuration. It matches configs/default.yaml.
func DefaultConfig() Config {
	params := classifier.DefaultParams()
	return Config{
		GitHub: GitHub{
			RequestsPerSecond: 10,
			Burst:             5,
		},
		ZenHub: ZenHub{
			APIURL: "https://api.zenhub.com/public/graphql",
		},
		Report: Report{
			Marker: report.DefaultMarker,
		},
		Labels: Labels{
			Blocking: params.BlockingLabels,
			Relink:   params.RelinkLabel,
		},
		HistoryStrategy:   history.StrategyComments,
		LookupConcurrency: 8,
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Repository.Owner == "" || c.Repository.Name == "" {
		return ErrRepositoryEmpty
	}
	if c.PullRequest <= 0 {
		return fmt.Errorf("%w: %d", ErrPullRequestInvalid, c.PullRequest)
	}
	if c.GitHub.Token == "" {
		return ErrTokenEmpty
	}
	if strings.TrimSpace(c.Report.Marker) == "" {
		return ErrMarkerEmpty
	}
	if _, err := history.New(c.HistoryStrategy); err != nil {
		return fmt.Errorf("%w: %q", ErrHistoryStrategyInvalid, c.HistoryStrategy)
	}
	if c.LookupConcurrency <= 0 {
		return fmt.Errorf("%w: %d", ErrLookupConcurrency, c.LookupConcurrency)
	}
	if c.ZenHub.Enabled() && c.ZenHub.Workspace == "" {
		return ErrZenHubWorkspaceRequired
	}
	return nil
}
