package registration

import "errors"

var (
	// ErrRegistrationNotFound is returned when no registration matches the given id.
	ErrRegistrationNotFound = errors.New("registration.repository: registration not found")

	// ErrBuildQuery is returned when a SQL query cannot be built.
	ErrBuildQuery = errors.New("registration.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails to execute.
	ErrExecQuery = errors.New("registration.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("registration.repository: failed to scan row")
)
