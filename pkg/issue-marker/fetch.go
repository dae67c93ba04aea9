package issuemarker

import (
	"context"
	"fmt"

	"github.com/lerenn/issue-marker/pkg/history"
	"github.com/lerenn/issue-marker/pkg/hooks"
)

// fetch loads the pull request, the prior bot comments and, for the edits
// strategy, the body history.
func (m *realIssueMarker) fetch(ctx context.Context, state *runState, hctx *hooks.HookContext) error {
	owner, repo, number := state.pr.Owner, state.pr.Repository, state.pr.IssueNumber

	pull, err := m.deps.Forge.GetPullRequest(ctx, owner, repo, number)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	state.pull = pull

	comments, err := m.deps.Forge.ListPriorComments(ctx, owner, repo, number, m.marker())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	state.comments = comments
	m.VerbosePrint("Found %d prior report comment(s)", len(comments))

	state.bodies = nil
	if state.strategy.Name() == history.StrategyEdits {
		versions, err := m.deps.Forge.FetchBodyHistoryAscending(ctx, owner, repo, number)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFetchFailed, err)
		}
		for _, v := range versions {
			state.bodies = append(state.bodies, v.Body)
		}
		m.VerbosePrint("Found %d body edit(s)", len(versions))
	}

	// The live body is the last version.
	if len(state.bodies) == 0 || state.bodies[len(state.bodies)-1] != pull.Body {
		state.bodies = append(state.bodies, pull.Body)
	}

	hctx.Results["author"] = pull.Author
	hctx.Results["comments"] = len(comments)
	hctx.Results["versions"] = len(state.bodies)
	return nil
}
