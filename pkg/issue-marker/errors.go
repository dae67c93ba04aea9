// Package issuemarker runs the pull request issue linking pipeline and its error definitions.
package issuemarker

import "errors"

// Error definitions for the issuemarker package.
var (
	// Input errors.
	ErrRepositoryMissing  = errors.New("repository owner and name are required")
	ErrPullRequestMissing = errors.New("pull request number is required")

	// Stage errors.
	ErrFetchFailed   = errors.New("failed to fetch pull request state")
	ErrPublishFailed = errors.New("failed to publish report comment")
)
