// Package board links issues to pull requests on a project board.
package board

import (
	"context"

	"github.com/lerenn/issue-marker/pkg/issue"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=board.go -destination=mocks/board.gen.go -package=mocks

// Board interface defines the methods a project board must provide.
type Board interface {
	// Name returns the name of the board
	Name() string

	// ConnectIssues links every issue to the pull request.
	ConnectIssues(ctx context.Context, issues []issue.Reference, pr issue.Reference) error

	// DisconnectIssues removes the link between every issue and the pull request.
	DisconnectIssues(ctx context.Context, issues []issue.Reference, pr issue.Reference) error
}

// RepositoryIDResolver resolves the numeric id of a code hosting repository.
type RepositoryIDResolver interface {
	GetRepositoryID(ctx context.Context, owner, repo string) (int64, error)
}
