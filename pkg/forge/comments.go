package forge

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v62/github"
)

// ListPriorComments returns the pull request comments starting with marker.
func (g *GitHub) ListPriorComments(ctx context.Context, owner, repo string, number int, marker string) ([]Comment, error) {
	var comments []Comment
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: pageSize},
	}

	for {
		if err := g.wait(ctx); err != nil {
			return nil, err
		}

		page, resp, err := g.client.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, g.handleGitHubError(err, resp, fmt.Sprintf("comments of %s/%s#%d", owner, repo, number))
		}

		for _, c := range page {
			if strings.HasPrefix(c.GetBody(), marker) {
				comments = append(comments, Comment{ID: c.GetID(), Body: c.GetBody()})
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return comments, nil
}

// DeleteComment deletes an issue comment.
func (g *GitHub) DeleteComment(ctx context.Context, owner, repo string, commentID int64) error {
	if err := g.wait(ctx); err != nil {
		return err
	}

	resp, err := g.client.Issues.DeleteComment(ctx, owner, repo, commentID)
	if err != nil {
		return g.handleGitHubError(err, resp, fmt.Sprintf("comment %d", commentID))
	}
	return nil
}

// CreateComment posts an issue comment on the pull request.
func (g *GitHub) CreateComment(ctx context.Context, owner, repo string, number int, body string) (*Comment, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}

	c, resp, err := g.client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return nil, g.handleGitHubError(err, resp, fmt.Sprintf("comment on %s/%s#%d", owner, repo, number))
	}

	return &Comment{ID: c.GetID(), Body: c.GetBody()}, nil
}
