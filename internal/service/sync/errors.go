package sync

import "errors"

var (
	// ErrCloudSyncDisabled is returned when the shared-endpoint sync is
	// not configured.
	ErrCloudSyncDisabled = errors.New("cloud sync is not configured")

	// ErrInternal is returned for internal service errors.
	ErrInternal = errors.New("sync service: internal error")
)
