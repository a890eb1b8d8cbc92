package create_registration

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("create_registration: invalid input data")

	// ErrUnknownIndustry is returned when the industry is not one of the known categories.
	ErrUnknownIndustry = errors.New("create_registration: unknown industry")

	// ErrPastDate is returned when the session date is before today.
	ErrPastDate = errors.New("create_registration: session date is in the past")

	// ErrSessionFull is returned when no seats remain for the session
	// at the moment of submission. No registration is created.
	ErrSessionFull = errors.New("create_registration: session is full")

	// ErrInternal is returned for internal use case errors.
	ErrInternal = errors.New("create_registration: internal error")
)
