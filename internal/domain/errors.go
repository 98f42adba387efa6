package domain

import "errors"

// Sentinel errors callers can match with errors.Is.
var (
	// ErrMissingEnum means a domain group references an identifier that
	// the enum source does not define.
	ErrMissingEnum = errors.New("no matching enum entry")

	// ErrRefNotFound means a revision reference does not exist on the
	// upstream remote.
	ErrRefNotFound = errors.New("ref not found on remote")
)
