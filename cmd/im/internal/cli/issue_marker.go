package cli

import (
	"github.com/lerenn/issue-marker/pkg/board"
	"github.com/lerenn/issue-marker/pkg/config"
	"github.com/lerenn/issue-marker/pkg/dependencies"
	"github.com/lerenn/issue-marker/pkg/forge"
	defaulthooks "github.com/lerenn/issue-marker/pkg/hooks/default"
	issuemarker "github.com/lerenn/issue-marker/pkg/issue-marker"
	"github.com/lerenn/issue-marker/pkg/logger"
)

// NewIssueMarker creates a new IssueMarker wired to GitHub and, when
// configured, to ZenHub.
func NewIssueMarker(cfg config.Config, log logger.Logger) (issuemarker.IssueMarker, error) {
	gh, err := forge.NewGitHub(forge.NewGitHubParams{
		Token:             cfg.GitHub.Token,
		APIURL:            cfg.GitHub.APIURL,
		RequestsPerSecond: cfg.GitHub.RequestsPerSecond,
		Burst:             cfg.GitHub.Burst,
	})
	if err != nil {
		return nil, err
	}

	hookManager, err := defaulthooks.NewDefaultHooksManager(log)
	if err != nil {
		return nil, err
	}

	deps := dependencies.New().
		WithForge(gh).
		WithConfig(&cfg).
		WithLogger(log).
		WithHookManager(hookManager)

	if cfg.ZenHub.Enabled() {
		zenHub, err := board.NewZenHub(board.NewZenHubParams{
			Key:          cfg.ZenHub.Key,
			Workspace:    cfg.ZenHub.Workspace,
			APIURL:       cfg.ZenHub.APIURL,
			Repositories: gh,
		}, board.WithLogger(log))
		if err != nil {
			return nil, err
		}
		deps = deps.WithBoard(zenHub)
	}

	return issuemarker.NewIssueMarker(issuemarker.NewIssueMarkerParams{
		Dependencies: deps,
	})
}
