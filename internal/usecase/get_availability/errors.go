package get_availability

import "errors"

var (
	// ErrInvalidInput is returned for an unknown industry or an out-of-range year/month.
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal is returned for internal use case errors.
	ErrInternal = errors.New("get_availability: internal error")
)
