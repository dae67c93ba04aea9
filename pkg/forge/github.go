package forge

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/time/rate"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
	// GitHubAPIURL is the public GitHub API.
	GitHubAPIURL = "https://api.github.com"
	// pageSize is the page size of every paginated call.
	pageSize = 100
)

// NewGitHubParams contains parameters for creating a GitHub forge.
type NewGitHubParams struct {
	Token string
	// APIURL selects a GitHub Enterprise Server instance when set.
	APIURL string
	// RequestsPerSecond paces API calls; zero or less disables pacing.
	RequestsPerSecond float64
	Burst             int
	// Client overrides the underlying client, mostly for tests.
	Client *github.Client
}

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client  *github.Client
	limiter *rate.Limiter
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub(params NewGitHubParams) (*GitHub, error) {
	client := params.Client
	if client == nil {
		client = github.NewClient(nil)
		if params.Token != "" {
			client = client.WithAuthToken(params.Token)
		}
		if params.APIURL != "" && strings.TrimSuffix(params.APIURL, "/") != GitHubAPIURL {
			enterprise, err := client.WithEnterpriseURLs(params.APIURL, params.APIURL)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidEnterpriseURL, err)
			}
			client = enterprise
		}
	}

	limit := rate.Inf
	burst := params.Burst
	if params.RequestsPerSecond > 0 {
		limit = rate.Limit(params.RequestsPerSecond)
	}
	if burst <= 0 {
		burst = 1
	}

	return &GitHub{
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// wait blocks until the limiter allows one more request.
func (g *GitHub) wait(ctx context.Context) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for GitHub API quota: %w", err)
	}
	return nil
}

// handleGitHubError handles GitHub API errors and returns appropriate error messages.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, what string) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrIssueNotFound, what)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: check the GitHub token", ErrUnauthorized)
		case http.StatusForbidden:
			// Check if it's rate limiting
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: GitHub API rate limit exceeded", ErrRateLimited)
			}
			return fmt.Errorf("%w: access forbidden to %s", ErrUnauthorized, what)
		}
	}
	return fmt.Errorf("failed to fetch %s: %w", what, err)
}
