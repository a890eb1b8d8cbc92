package registrations

import "errors"

var (
	// ErrRegistrationNotFound is returned when no registration matches the id.
	ErrRegistrationNotFound = errors.New("registration not found")

	// ErrUnknownIndustry is returned when the industry is not a known category.
	ErrUnknownIndustry = errors.New("unknown industry")

	// ErrInvalidInput is returned for missing or malformed input data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service errors.
	ErrInternal = errors.New("registrations service: internal error")
)
