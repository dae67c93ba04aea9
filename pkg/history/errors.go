package history

import "errors"

// Error definitions for history package.
var (
	ErrUnknownStrategy = errors.New("unknown history strategy")
)
