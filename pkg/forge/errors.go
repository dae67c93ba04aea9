package forge

import "errors"

// Forge-specific errors
var (
	ErrIssueNotFound        = errors.New("issue not found")
	ErrRateLimited          = errors.New("rate limited by forge API")
	ErrUnauthorized         = errors.New("unauthorized access to forge API")
	ErrHistoryCountMismatch = errors.New("edit history count mismatch")
	ErrHistoryPagination    = errors.New("edit history pagination returned no cursor")
	ErrGraphQL              = errors.New("graphql query failed")
	ErrInvalidRepositoryURL = errors.New("invalid repository URL")
	ErrInvalidEnterpriseURL = errors.New("invalid GitHub API URL")
)
