// Package forge provides the code hosting adapter used to read pull request
// state and publish the issue report.
package forge

import (
	"context"
	"time"

	"github.com/lerenn/issue-marker/pkg/issue"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// PullRequest is the pull request metadata needed by a run.
type PullRequest struct {
	Number    int
	Author    string
	Body      string
	UpdatedAt time.Time
}

// BodyVersion is one version of a pull request body.
type BodyVersion struct {
	At   time.Time
	Body string
}

// Comment is an issue comment on a pull request.
type Comment struct {
	ID   int64
	Body string
}

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// GetPullRequest fetches the pull request author and live body.
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error)

	// FetchBodyHistoryAscending returns every recorded body edit, oldest first.
	// It fails with ErrHistoryCountMismatch when pages are missing.
	FetchBodyHistoryAscending(ctx context.Context, owner, repo string, number int) ([]BodyVersion, error)

	// GetIssueSnapshot fetches the current state of a referenced issue.
	GetIssueSnapshot(ctx context.Context, ref issue.Reference) (*issue.Snapshot, error)

	// ListPriorComments returns the pull request comments starting with marker.
	ListPriorComments(ctx context.Context, owner, repo string, number int, marker string) ([]Comment, error)

	// DeleteComment deletes an issue comment.
	DeleteComment(ctx context.Context, owner, repo string, commentID int64) error

	// CreateComment posts an issue comment on the pull request.
	CreateComment(ctx context.Context, owner, repo string, number int, body string) (*Comment, error)

	// GetRepositoryID returns the numeric id of a repository.
	GetRepositoryID(ctx context.Context, owner, repo string) (int64, error)
}
