package forge

import (
	"context"
	"fmt"
)

// GetPullRequest fetches the pull request author and live body.
func (g *GitHub) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}

	pr, resp, err := g.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, fmt.Sprintf("pull request %s/%s#%d", owner, repo, number))
	}

	return &PullRequest{
		Number:    pr.GetNumber(),
		Author:    pr.GetUser().GetLogin(),
		Body:      pr.GetBody(),
		UpdatedAt: pr.GetUpdatedAt().Time,
	}, nil
}

// GetRepositoryID returns the numeric id of a repository.
func (g *GitHub) GetRepositoryID(ctx context.Context, owner, repo string) (int64, error) {
	if err := g.wait(ctx); err != nil {
		return 0, err
	}

	repository, resp, err := g.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return 0, g.handleGitHubError(err, resp, fmt.Sprintf("repository %s/%s", owner, repo))
	}

	return repository.GetID(), nil
}
