package capacity

import "errors"

var (
	// ErrUnknownIndustry is returned when the industry is not a known category.
	ErrUnknownIndustry = errors.New("unknown industry")

	// ErrInvalidCapacity is returned for a negative total-seat count.
	ErrInvalidCapacity = errors.New("invalid capacity value")

	// ErrInvalidDate is returned for a malformed date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInternal is returned for internal service errors.
	ErrInternal = errors.New("capacity service: internal error")
)
