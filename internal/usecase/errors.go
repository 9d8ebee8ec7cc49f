package usecase

import "errors"

// Sentinel errors the HTTP layer translates into response codes. Wrap with
// %w so errors.Is sees them through fetch and validation chains.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrFetchFailed           = errors.New("results fetch failed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
