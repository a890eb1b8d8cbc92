package capacity

import "errors"

var (
	// ErrOverrideNotFound is returned when no override exists for the key.
	ErrOverrideNotFound = errors.New("capacity.repository: override not found")

	// ErrBuildQuery is returned when a SQL query cannot be built.
	ErrBuildQuery = errors.New("capacity.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute.
	ErrExecQuery = errors.New("capacity.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("capacity.repository: failed to scan row")
)
