package cloudstore

import "errors"

var (
	// ErrTransport is returned for any network failure or non-2xx
	// response from the shared document endpoint. A failed attempt
	// leaves local state untouched; the caller may simply retry.
	ErrTransport = errors.New("cloudstore client: transport failure")

	// ErrInvalidResponse is returned when the endpoint answers with a
	// body that is not a valid document.
	ErrInvalidResponse = errors.New("cloudstore client: invalid response")

	// ErrInternal is returned for internal client errors.
	ErrInternal = errors.New("cloudstore client: internal error")
)
