package issue

import "errors"

// Issue-specific error types.
var (
	ErrInvalidIssueReference = errors.New("invalid issue reference format")
	ErrInvalidIssueNumber    = errors.New("issue number must be a positive integer")
)
