package sync

import (
	"context"
	"fmt"

	"github.com/kmlee/safety-edu-booking/internal/domain"
	"github.com/kmlee/safety-edu-booking/internal/syncbundle"
	mergeSnapshot "github.com/kmlee/safety-edu-booking/internal/usecase/merge_snapshot"
)

// Service owns cross-device synchronization: the manual code exchange
// and the optional shared-document endpoint. Both paths reconcile
// foreign state through the same merge use case, so the local-wins
// policy is identical regardless of transport.
type Service struct {
	registrationRepo RegistrationRepository
	capacityRepo     CapacityRepository
	cloudClient      CloudStoreClient // nil when cloud sync is not configured
	mergeUseCase     MergeSnapshotUseCase
	logger           Logger
}

// NewService creates the sync service. cloudClient may be nil, in which
// case the cloud operations return ErrCloudSyncDisabled.
func NewService(
	registrationRepo RegistrationRepository,
	capacityRepo CapacityRepository,
	cloudClient CloudStoreClient,
	mergeUseCase MergeSnapshotUseCase,
	logger Logger,
) *Service {
	return &Service{
		registrationRepo: registrationRepo,
		capacityRepo:     capacityRepo,
		cloudClient:      cloudClient,
		mergeUseCase:     mergeUseCase,
		logger:           logger,
	}
}

// ExportCode serializes the full local state into the opaque sync code
// the user copies to another device.
func (s *Service) ExportCode(ctx context.Context) (string, error) {
	snapshot, err := s.localSnapshot(ctx)
	if err != nil {
		return "", err
	}

	code, err := syncbundle.Encode(snapshot)
	if err != nil {
		s.logger.Error("ExportCode: failed to encode bundle: %v", err)
		return "", fmt.Errorf("%w: ExportCode - encode: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCode: exported %d registrations, %d overrides",
		len(snapshot.Registrations), len(snapshot.Overrides))
	return code, nil
}

// ImportCode decodes a foreign sync code and merges it into local state.
// A malformed code yields syncbundle.ErrDecode before anything is
// touched, so local state is untouched on failure. Returns the number of
// newly added registrations.
func (s *Service) ImportCode(ctx context.Context, code string) (int, error) {
	snapshot, err := syncbundle.Decode(code)
	if err != nil {
		s.logger.Warn("ImportCode: decode failed: %v", err)
		return 0, err
	}

	result, err := s.mergeUseCase.Execute(ctx, &mergeSnapshot.Request{Snapshot: snapshot})
	if err != nil {
		s.logger.Error("ImportCode: merge failed: %v", err)
		return 0, err
	}

	s.logger.Info("ImportCode: merged code, %d registrations added", result.AddedRegistrations)
	return result.AddedRegistrations, nil
}

// CloudPush replaces the shared document with the full local state.
// Last push wins; the endpoint keeps no history.
func (s *Service) CloudPush(ctx context.Context) error {
	if s.cloudClient == nil {
		return ErrCloudSyncDisabled
	}

	snapshot, err := s.localSnapshot(ctx)
	if err != nil {
		return err
	}

	if err := s.cloudClient.Store(ctx, snapshotToDocument(snapshot)); err != nil {
		s.logger.Warn("CloudPush: store failed: %v", err)
		return err
	}

	s.logger.Info("CloudPush: pushed %d registrations, %d overrides",
		len(snapshot.Registrations), len(snapshot.Overrides))
	return nil
}

// CloudPull fetches the shared document and merges it into local state.
// Transport or schema failures leave local state untouched. Returns the
// number of newly added registrations.
func (s *Service) CloudPull(ctx context.Context) (int, error) {
	if s.cloudClient == nil {
		return 0, ErrCloudSyncDisabled
	}

	doc, err := s.cloudClient.Fetch(ctx)
	if err != nil {
		s.logger.Warn("CloudPull: fetch failed: %v", err)
		return 0, err
	}

	snapshot, err := documentToSnapshot(doc)
	if err != nil {
		s.logger.Warn("CloudPull: invalid document: %v", err)
		return 0, err
	}

	result, err := s.mergeUseCase.Execute(ctx, &mergeSnapshot.Request{Snapshot: snapshot})
	if err != nil {
		s.logger.Error("CloudPull: merge failed: %v", err)
		return 0, err
	}

	s.logger.Info("CloudPull: merged document, %d registrations added", result.AddedRegistrations)
	return result.AddedRegistrations, nil
}

func (s *Service) localSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	registrations, err := s.registrationRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("localSnapshot: failed to load registrations: %v", err)
		return nil, fmt.Errorf("%w: failed to load registrations: %v", ErrInternal, err)
	}

	overrides, err := s.capacityRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("localSnapshot: failed to load overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to load overrides: %v", ErrInternal, err)
	}

	return &domain.Snapshot{
		Registrations: registrations,
		Overrides:     overrides,
	}, nil
}
