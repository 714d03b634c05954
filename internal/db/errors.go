package db

import "errors"

// Domain-level database error sentinels.
var (
	// ErrClassificationNotFound is returned when no row exists for a
	// section code. Classification tables have unassigned gaps, so a
	// miss on a valid code is expected, not exceptional.
	ErrClassificationNotFound = errors.New("classification not found")
)
