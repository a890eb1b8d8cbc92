package syncbundle

import "errors"

var (
	// ErrDecode is returned when a sync code is not validly encoded or
	// does not decode to the expected bundle shape.
	ErrDecode = errors.New("syncbundle: invalid sync code")

	// ErrEncode is returned when a snapshot cannot be serialized.
	ErrEncode = errors.New("syncbundle: failed to encode bundle")
)
