package cloud_sync

import "context"

type SyncService interface {
	CloudPush(ctx context.Context) error
	CloudPull(ctx context.Context) (int, error)
}

// MergeRecorder counts merge attempts for the metrics endpoint.
type MergeRecorder interface {
	ObserveMerge(source, result string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
