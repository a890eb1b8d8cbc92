package sync

import (
	"context"

	"github.com/kmlee/safety-edu-booking/internal/domain"
	"github.com/kmlee/safety-edu-booking/internal/integrations/cloudstore"
	mergeSnapshot "github.com/kmlee/safety-edu-booking/internal/usecase/merge_snapshot"
)

// RegistrationRepository supplies the full local ledger for export.
type RegistrationRepository interface {
	GetAll(ctx context.Context) ([]domain.Registration, error)
}

// CapacityRepository supplies the full local override map for export.
type CapacityRepository interface {
	GetAll(ctx context.Context) (map[domain.OverrideKey]int, error)
}

// CloudStoreClient is the shared JSON-document endpoint.
type CloudStoreClient interface {
	Fetch(ctx context.Context) (*cloudstore.Document, error)
	Store(ctx context.Context, doc *cloudstore.Document) error
}

// MergeSnapshotUseCase applies a foreign snapshot to local state.
type MergeSnapshotUseCase interface {
	Execute(ctx context.Context, req *mergeSnapshot.Request) (*mergeSnapshot.Response, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
