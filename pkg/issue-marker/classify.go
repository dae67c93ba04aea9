package issuemarker

import (
	"context"
	"sync"

	"github.com/lerenn/issue-marker/pkg/forge"
	"github.com/lerenn/issue-marker/pkg/hooks"
	"github.com/lerenn/issue-marker/pkg/issue"
	"github.com/lerenn/issue-marker/pkg/report"
	"golang.org/x/sync/errgroup"
)

// classify looks up every candidate reference, deletes the prior comments
// meanwhile, then classifies the current references.
func (m *realIssueMarker) classify(ctx context.Context, state *runState, hctx *hooks.HookContext) error {
	var candidates issue.LinkSet
	for _, ref := range state.refs {
		candidates.Add(ref)
	}
	for _, ref := range state.strategy.Candidates(m.historyInput(state)) {
		candidates.Add(ref)
	}

	state.snapshots = m.lookupAndCleanup(ctx, state, candidates.References())

	var (
		entries []report.Entry
		seen    issue.LinkSet
	)
	for _, ref := range state.refs {
		snap, ok := state.snapshots[ref.Key()]
		if !ok {
			continue
		}
		// Two texts may resolve to the same canonical issue.
		if !seen.Add(snap.Reference) {
			continue
		}
		cl := m.deps.Classifier.Classify(*snap)
		m.VerbosePrint("%s: %s", snap.ID(), cl.Kind)
		entries = append(entries, report.Entry{Reference: snap.Reference, Classification: cl})
	}
	state.result.Entries = entries

	hctx.Results["entries"] = len(entries)
	hctx.Results["lookups"] = len(state.snapshots)
	return nil
}

// lookupAndCleanup fetches snapshots concurrently and, outside of dry runs,
// deletes the prior report comments in the same group. Per-item failures are
// logged and skipped.
func (m *realIssueMarker) lookupAndCleanup(
	ctx context.Context, state *runState, refs []issue.Reference) map[string]*issue.Snapshot {
	var (
		mu        sync.Mutex
		snapshots = make(map[string]*issue.Snapshot, len(refs))
		g         errgroup.Group
	)
	if limit := m.deps.Config.LookupConcurrency; limit > 0 {
		g.SetLimit(limit)
	}

	for _, ref := range refs {
		ref := ref
		g.Go(func() error {
			snap, err := m.deps.Forge.GetIssueSnapshot(ctx, ref)
			if err != nil {
				m.VerbosePrint("Skipping %s: %v", ref, err)
				return nil
			}
			mu.Lock()
			snapshots[ref.Key()] = snap
			mu.Unlock()
			return nil
		})
	}

	if !state.dryRun {
		for _, c := range state.comments {
			c := c
			g.Go(func() error {
				m.deleteComment(ctx, state, c)
				return nil
			})
		}
	}

	// Every goroutine reports its failure through the logger.
	_ = g.Wait()
	return snapshots
}

func (m *realIssueMarker) deleteComment(ctx context.Context, state *runState, c forge.Comment) {
	if err := m.deps.Forge.DeleteComment(ctx, state.pr.Owner, state.pr.Repository, c.ID); err != nil {
		m.VerbosePrint("Failed to delete comment %d: %v", c.ID, err)
		return
	}
	m.VerbosePrint("Deleted prior report comment %d", c.ID)
}
