package board

import "errors"

// Board-specific errors
var (
	ErrKeyEmpty            = errors.New("zenhub key is empty")
	ErrWorkspaceEmpty      = errors.New("zenhub workspace is empty")
	ErrWorkspaceNotFound   = errors.New("zenhub workspace not found")
	ErrResolverMissing     = errors.New("repository id resolver is missing")
	ErrIssueNotFound       = errors.New("issue not found on board")
	ErrUnexpectedStatus    = errors.New("unexpected zenhub API status")
	ErrGraphQL             = errors.New("zenhub graphql query failed")
	ErrConnectionFailed    = errors.New("failed to connect issue to pull request")
	ErrDisconnectionFailed = errors.New("failed to disconnect issue from pull request")
)
