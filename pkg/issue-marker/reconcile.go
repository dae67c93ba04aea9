package issuemarker

import (
	"context"

	"github.com/lerenn/issue-marker/pkg/hooks"
	"github.com/lerenn/issue-marker/pkg/issue"
	"github.com/lerenn/issue-marker/pkg/plan"
)

// reconcile diffs the linkable references against the prior linked set and
// applies the result to the board. Board failures are logged only.
func (m *realIssueMarker) reconcile(ctx context.Context, state *runState, hctx *hooks.HookContext) error {
	current := linkableSet(state.result.Entries)
	prior := state.strategy.PriorLinked(m.historyInput(state), m.resolver(state))

	p := plan.New(current, prior)
	state.result.Plan = p
	hctx.Results["toConnect"] = p.ToConnect.Keys()
	hctx.Results["toDisconnect"] = p.ToDisconnect.Keys()
	m.VerbosePrint("Plan: connect %v, disconnect %v", p.ToConnect.Keys(), p.ToDisconnect.Keys())

	if p.Empty() || state.dryRun {
		return nil
	}
	if m.deps.Board == nil {
		m.VerbosePrint("No board configured, skipping reconciliation")
		return nil
	}

	if p.ToConnect.Len() > 0 {
		if err := m.deps.Board.ConnectIssues(ctx, p.ToConnect.References(), state.pr); err != nil {
			m.VerbosePrint("Failed to connect issues on %s: %v", m.deps.Board.Name(), err)
		}
	}
	if p.ToDisconnect.Len() > 0 {
		if err := m.deps.Board.DisconnectIssues(ctx, p.ToDisconnect.References(), state.pr); err != nil {
			m.VerbosePrint("Failed to disconnect issues on %s: %v", m.deps.Board.Name(), err)
		}
	}
	return nil
}

// resolver maps a reference to its canonical form when it is linkable now.
func (m *realIssueMarker) resolver(state *runState) func(issue.Reference) (issue.Reference, bool) {
	return func(ref issue.Reference) (issue.Reference, bool) {
		snap, ok := state.snapshots[ref.WithDefaults(state.pr.Owner, state.pr.Repository).Key()]
		if !ok {
			return issue.Reference{}, false
		}
		if !m.deps.Classifier.Classify(*snap).Linkable() {
			return issue.Reference{}, false
		}
		return snap.Reference, true
	}
}
