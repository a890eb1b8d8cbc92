package merge_snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

// UseCase reconciles a foreign snapshot into the local state.
//
// Policy (both layers local-wins):
//   - registrations: union by id; a foreign id already present locally is
//     dropped, never overwrites.
//   - overrides: a foreign value is taken only for keys with no local
//     value; conflicting keys keep the local value.
//
// Both rules are expressed as insert-if-absent against storage, run in a
// single serializable transaction, so a failed merge changes nothing and
// repeating the same merge adds nothing (idempotent).
type UseCase struct {
	registrationRepo RegistrationRepository
	capacityRepo     CapacityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase creates the merge use case.
func NewUseCase(
	registrationRepo RegistrationRepository,
	capacityRepo CapacityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		registrationRepo: registrationRepo,
		capacityRepo:     capacityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute applies the foreign snapshot and reports how much was added.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Snapshot == nil {
		return nil, fmt.Errorf("%w: snapshot is required", ErrInvalidInput)
	}

	uc.logger.Info("MergeSnapshot: merging %d foreign registrations, %d overrides",
		len(req.Snapshot.Registrations), len(req.Snapshot.Overrides))

	var addedRegistrations, addedOverrides int

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for i := range req.Snapshot.Registrations {
			reg := req.Snapshot.Registrations[i]
			inserted, err := uc.registrationRepo.CreateIfAbsent(txCtx, &reg)
			if err != nil {
				uc.logger.Error("MergeSnapshot: failed to merge registration id=%s: %v", reg.ID, err)
				return fmt.Errorf("%w: failed to merge registration: %v", ErrInternal, err)
			}
			if inserted {
				addedRegistrations++
			}
		}

		for key, totalSeats := range req.Snapshot.Overrides {
			date, err := time.Parse(domain.DateFormat, key.Date)
			if err != nil {
				return fmt.Errorf("%w: invalid override date %q", ErrInvalidInput, key.Date)
			}
			inserted, err := uc.capacityRepo.CreateIfAbsent(txCtx, key.Industry, date, totalSeats)
			if err != nil {
				uc.logger.Error("MergeSnapshot: failed to merge override %s/%s: %v", key.Industry, key.Date, err)
				return fmt.Errorf("%w: failed to merge override: %v", ErrInternal, err)
			}
			if inserted {
				addedOverrides++
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("MergeSnapshot: added %d registrations, %d overrides", addedRegistrations, addedOverrides)

	return &Response{
		AddedRegistrations: addedRegistrations,
		AddedOverrides:     addedOverrides,
	}, nil
}
