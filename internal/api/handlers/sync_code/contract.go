package sync_code

import "context"

type SyncService interface {
	ExportCode(ctx context.Context) (string, error)
	ImportCode(ctx context.Context, code string) (int, error)
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
