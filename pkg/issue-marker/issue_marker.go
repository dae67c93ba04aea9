package issuemarker

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lerenn/issue-marker/pkg/dependencies"
	"github.com/lerenn/issue-marker/pkg/forge"
	"github.com/lerenn/issue-marker/pkg/hooks"
	"github.com/lerenn/issue-marker/pkg/logger"
	"github.com/lerenn/issue-marker/pkg/plan"
	"github.com/lerenn/issue-marker/pkg/report"
)

// IssueMarker interface provides the pull request issue linking pipeline.
type IssueMarker interface {
	// Run executes the pipeline and publishes the report.
	Run(ctx context.Context, params RunParams) (*Result, error)
	// Plan executes the pipeline without deleting comments, calling the board or publishing.
	Plan(ctx context.Context, params RunParams) (*Result, error)
	// SetLogger sets the logger for this instance.
	SetLogger(logger logger.Logger)
}

// RunParams selects the pull request to process.
// Zero values fall back to the configuration.
type RunParams struct {
	Owner       string
	Repository  string
	PullRequest int
}

// Result is the outcome of a run.
type Result struct {
	RunID   string
	Report  string
	Entries []report.Entry
	Plan    plan.Plan
	// Comment is the published comment, nil on a dry run.
	Comment *forge.Comment
	DryRun  bool
}

// NewIssueMarkerParams contains parameters for creating a new IssueMarker instance.
type NewIssueMarkerParams struct {
	Dependencies *dependencies.Dependencies
}

type realIssueMarker struct {
	deps  *dependencies.Dependencies
	newID func() string
}

// NewIssueMarker creates a new IssueMarker instance.
func NewIssueMarker(params NewIssueMarkerParams) (IssueMarker, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realIssueMarker{
		deps:  deps,
		newID: uuid.NewString,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (m *realIssueMarker) VerbosePrint(msg string, args ...interface{}) {
	if m.deps.Logger != nil {
		m.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this IssueMarker instance.
func (m *realIssueMarker) SetLogger(logger logger.Logger) {
	m.deps.Logger = logger
}

// executeWithHooks executes a stage with pre and post hooks.
func (m *realIssueMarker) executeWithHooks(
	stage, runID string, params map[string]interface{}, operation func(ctx *hooks.HookContext) error) error {
	ctx := hooks.NewHookContext(stage, runID, params)

	// Execute pre-hooks (if hook manager is available)
	if err := m.executePreHooks(stage, ctx); err != nil {
		return err
	}

	// Execute stage
	var resultErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				resultErr = fmt.Errorf("panic in %s: %v", stage, r)
			}
		}()
		resultErr = operation(ctx)
	}()

	// Update context with results
	ctx.Error = resultErr
	if resultErr == nil {
		ctx.Results["success"] = true
	}

	// Execute post-hooks or error-hooks (if hook manager is available)
	if hookErr := m.executeHooks(stage, ctx, resultErr); hookErr != nil {
		return hookErr
	}
	return resultErr
}

// executeHooks executes post-hooks or error-hooks based on the stage result.
func (m *realIssueMarker) executeHooks(stage string, ctx *hooks.HookContext, resultErr error) error {
	if m.deps.HookManager == nil {
		return nil
	}

	if resultErr != nil {
		return m.deps.HookManager.ExecuteErrorHooks(stage, ctx)
	}
	return m.deps.HookManager.ExecutePostHooks(stage, ctx)
}

// executePreHooks executes pre-hooks if hook manager is available.
func (m *realIssueMarker) executePreHooks(stage string, ctx *hooks.HookContext) error {
	if m.deps.HookManager == nil {
		return nil
	}
	return m.deps.HookManager.ExecutePreHooks(stage, ctx)
}
