package merge_snapshot

import "errors"

var (
	// ErrInvalidInput is returned when the snapshot is missing or malformed.
	ErrInvalidInput = errors.New("merge_snapshot: invalid input data")

	// ErrInternal is returned for internal use case errors. The enclosing
	// transaction rolls back, leaving local state untouched.
	ErrInternal = errors.New("merge_snapshot: internal error")
)
