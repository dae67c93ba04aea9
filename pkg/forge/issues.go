package forge

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/issue-marker/pkg/issue"
)

var repositoryURLPattern = regexp.MustCompile(`/repos/([^/]+)/([^/]+?)/?$`)

// GetIssueSnapshot fetches the current state of a referenced issue.
func (g *GitHub) GetIssueSnapshot(ctx context.Context, ref issue.Reference) (*issue.Snapshot, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}

	is, resp, err := g.client.Issues.Get(ctx, ref.Owner, ref.Repository, ref.IssueNumber)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, "issue "+ref.String())
	}

	canonical, err := canonicalReference(is, ref)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(is.Labels))
	for _, l := range is.Labels {
		labels = append(labels, l.GetName())
	}

	return &issue.Snapshot{
		Reference:   canonical,
		Labels:      labels,
		Open:        is.GetState() != "closed",
		PullRequest: is.IsPullRequest(),
	}, nil
}

// canonicalReference builds the reference from the repository URL returned
// by the API, which carries the current owner and repository names.
func canonicalReference(is *github.Issue, ref issue.Reference) (issue.Reference, error) {
	number := is.GetNumber()
	if number == 0 {
		number = ref.IssueNumber
	}

	repositoryURL := is.GetRepositoryURL()
	if repositoryURL == "" {
		return issue.Reference{Owner: ref.Owner, Repository: ref.Repository, IssueNumber: number}, nil
	}

	m := repositoryURLPattern.FindStringSubmatch(repositoryURL)
	if m == nil {
		return issue.Reference{}, fmt.Errorf("%w: %s", ErrInvalidRepositoryURL, repositoryURL)
	}
	return issue.Reference{Owner: m[1], Repository: m[2], IssueNumber: number}, nil
}
