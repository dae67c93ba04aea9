package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnvironment.
const (
	EnvInputToken      = "INPUT_TOKEN"
	EnvGitHubToken     = "GITHUB_TOKEN"
	EnvZenHubKey       = "INPUT_ZENHUB-KEY"
	EnvZenHubWorkspace = "INPUT_ZENHUB-WORKSPACE"
	EnvRepository      = "GITHUB_REPOSITORY"
	EnvEventPath       = "GITHUB_EVENT_PATH"
	EnvAPIURL          = "GITHUB_API_URL"
)

// pullRequestEvent is the subset of a pull_request event payload we need.
type pullRequestEvent struct {
	Number      int `json:"number"`
	PullRequest struct {
		Number int `json:"number"`
	} `json:"pull_request"`
}

// LoadDotEnv loads a .env file from the working directory if present.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

// ApplyEnvironment overlays the GitHub Actions environment on cfg.
// Empty variables leave the current value untouched.
func ApplyEnvironment(cfg *Config, getenv func(string) string) error {
	if v := firstNonEmpty(getenv(EnvInputToken), getenv(EnvGitHubToken)); v != "" {
		cfg.GitHub.Token = v
	}
	if v := getenv(EnvAPIURL); v != "" {
		cfg.GitHub.APIURL = v
	}
	if v := getenv(EnvZenHubKey); v != "" {
		cfg.ZenHub.Key = v
	}
	if v := getenv(EnvZenHubWorkspace); v != "" {
		cfg.ZenHub.Workspace = v
	}
	if v := getenv(EnvRepository); v != "" {
		if err := cfg.SetRepository(v); err != nil {
			return err
		}
	}
	if path := getenv(EnvEventPath); path != "" && cfg.PullRequest == 0 {
		number, err := readPullRequestNumber(path)
		if err != nil {
			return err
		}
		if number > 0 {
			cfg.PullRequest = number
		}
	}
	return nil
}

// SetRepository sets the repository from an owner/name string.
func (c *Config) SetRepository(fullName string) error {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q", ErrRepositoryEmpty, fullName)
	}
	c.Repository = Repository{Owner: owner, Name: name}
	return nil
}

func readPullRequestNumber(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEventPayload, err)
	}
	var event pullRequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEventPayload, err)
	}
	if event.PullRequest.Number != 0 {
		return event.PullRequest.Number, nil
	}
	return event.Number, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
