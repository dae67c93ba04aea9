package issuemarker

import (
	"context"
	"fmt"

	"github.com/lerenn/issue-marker/pkg/forge"
	"github.com/lerenn/issue-marker/pkg/history"
	"github.com/lerenn/issue-marker/pkg/hooks"
	"github.com/lerenn/issue-marker/pkg/issue"
	"github.com/lerenn/issue-marker/pkg/issue-marker/consts"
	"github.com/lerenn/issue-marker/pkg/report"
)

// runState carries the values produced by each stage to the next.
type runState struct {
	id     string
	dryRun bool
	pr     issue.Reference

	strategy history.Strategy
	pull     *forge.PullRequest
	comments []forge.Comment
	bodies   []string

	raw       []issue.Reference
	refs      []issue.Reference
	snapshots map[string]*issue.Snapshot

	result Result
}

// Run executes the pipeline and publishes the report.
func (m *realIssueMarker) Run(ctx context.Context, params RunParams) (*Result, error) {
	return m.run(ctx, params, false)
}

// Plan executes the pipeline without side effects.
func (m *realIssueMarker) Plan(ctx context.Context, params RunParams) (*Result, error) {
	return m.run(ctx, params, true)
}

func (m *realIssueMarker) run(ctx context.Context, params RunParams, dryRun bool) (*Result, error) {
	pr, err := m.resolveParams(params)
	if err != nil {
		return nil, err
	}

	strategy, err := history.New(m.deps.Config.HistoryStrategy)
	if err != nil {
		return nil, err
	}

	state := &runState{
		id:       m.newID(),
		dryRun:   dryRun,
		pr:       pr,
		strategy: strategy,
	}
	state.result.RunID = state.id
	state.result.DryRun = dryRun

	runParams := map[string]interface{}{
		"pullRequest": pr.String(),
		"strategy":    strategy.Name(),
		"dryRun":      dryRun,
	}

	err = m.executeWithHooks(consts.Run, state.id, runParams, func(_ *hooks.HookContext) error {
		stages := []struct {
			name string
			fn   func(ctx context.Context, state *runState, hctx *hooks.HookContext) error
		}{
			{consts.Fetch, m.fetch},
			{consts.Parse, m.parse},
			{consts.Dedupe, m.dedupe},
			{consts.Classify, m.classify},
			{consts.Render, m.render},
			{consts.Reconcile, m.reconcile},
			{consts.Publish, m.publish},
		}
		for _, s := range stages {
			fn := s.fn
			if err := m.executeWithHooks(s.name, state.id, runParams, func(hctx *hooks.HookContext) error {
				return fn(ctx, state, hctx)
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &state.result, nil
}

// resolveParams fills params from the configuration and validates them.
func (m *realIssueMarker) resolveParams(params RunParams) (issue.Reference, error) {
	cfg := m.deps.Config
	if params.Owner == "" && params.Repository == "" {
		params.Owner, params.Repository = cfg.Repository.Owner, cfg.Repository.Name
	}
	if params.PullRequest == 0 {
		params.PullRequest = cfg.PullRequest
	}

	if params.Owner == "" || params.Repository == "" {
		return issue.Reference{}, ErrRepositoryMissing
	}
	if params.PullRequest <= 0 {
		return issue.Reference{}, fmt.Errorf("%w: got %d", ErrPullRequestMissing, params.PullRequest)
	}

	return issue.Reference{
		Owner:       params.Owner,
		Repository:  params.Repository,
		IssueNumber: params.PullRequest,
	}, nil
}

// parse extracts raw references from the current body.
func (m *realIssueMarker) parse(_ context.Context, state *runState, hctx *hooks.HookContext) error {
	state.raw = issue.Parse(state.bodies[len(state.bodies)-1])
	hctx.Results["references"] = len(state.raw)
	m.VerbosePrint("Found %d reference(s) in the body", len(state.raw))
	return nil
}

// dedupe fills the default repository and drops repeated references.
func (m *realIssueMarker) dedupe(_ context.Context, state *runState, hctx *hooks.HookContext) error {
	state.refs = issue.Deduplicate(state.raw, state.pr.Owner, state.pr.Repository)
	hctx.Results["references"] = len(state.refs)
	m.VerbosePrint("%d unique reference(s) after deduplication", len(state.refs))
	return nil
}

// render builds the report body.
func (m *realIssueMarker) render(_ context.Context, state *runState, _ *hooks.HookContext) error {
	renderer := report.NewRenderer(m.marker(), state.pr.Owner)
	state.result.Report = renderer.Render(state.result.Entries, state.pull.Author)
	return nil
}

// publish posts the report on the pull request.
func (m *realIssueMarker) publish(ctx context.Context, state *runState, hctx *hooks.HookContext) error {
	if state.dryRun {
		m.VerbosePrint("Dry run: report not published")
		return nil
	}

	comment, err := m.deps.Forge.CreateComment(ctx, state.pr.Owner, state.pr.Repository, state.pr.IssueNumber, state.result.Report)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}
	state.result.Comment = comment
	hctx.Results["commentID"] = comment.ID
	m.VerbosePrint("Published report comment %d", comment.ID)
	return nil
}

// linkableSet returns the canonical references of the linkable entries.
func linkableSet(entries []report.Entry) issue.LinkSet {
	var set issue.LinkSet
	for _, e := range entries {
		if e.Classification.Linkable() {
			set.Add(e.Reference)
		}
	}
	return set
}

// historyInput assembles what the history strategy reads.
func (m *realIssueMarker) historyInput(state *runState) history.Input {
	bodies := make([]string, 0, len(state.comments))
	for _, c := range state.comments {
		bodies = append(bodies, c.Body)
	}
	return history.Input{
		Owner:      state.pr.Owner,
		Repository: state.pr.Repository,
		Marker:     m.marker(),
		Bodies:     state.bodies,
		Comments:   bodies,
	}
}

func (m *realIssueMarker) marker() string {
	if m.deps.Config.Report.Marker == "" {
		return report.DefaultMarker
	}
	return m.deps.Config.Report.Marker
}
