package create_registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kmlee/safety-edu-booking/internal/domain"
	capacityRepo "github.com/kmlee/safety-edu-booking/internal/infra/storage/capacity"
)

// UseCase admits a new registration into the ledger.
//
// The capacity check and the insert run inside one serializable
// transaction so two concurrent submissions cannot both take the last
// seat. Double-booking by the same applicant is allowed by design: there
// is no uniqueness constraint across (applicant, phone, date).
type UseCase struct {
	registrationRepo RegistrationRepository
	capacityRepo     CapacityRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the admission use case.
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
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute validates and admits the submission.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRegistration: industry=%s, date=%s, applicant=%s",
		req.Industry, req.Date.Format(domain.DateFormat), req.Applicant)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRegistration: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if domain.IsPastDate(req.Date, now) {
		uc.logger.Warn("CreateRegistration: rejected past date %s", req.Date.Format(domain.DateFormat))
		return nil, ErrPastDate
	}

	reg := &domain.Registration{
		ID:        uuid.NewString(),
		Date:      req.Date,
		Industry:  req.Industry,
		Company:   req.Company,
		Applicant: req.Applicant,
		Phone:     req.Phone,
		CreatedAt: now,
	}
	reg.Normalize()

	var remaining int

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		totalSeats, err := uc.totalSeats(txCtx, req.Industry, req.Date)
		if err != nil {
			return err
		}

		booked, err := uc.registrationRepo.CountByDateAndIndustry(txCtx, req.Date, req.Industry)
		if err != nil {
			uc.logger.Error("CreateRegistration: failed to count registrations: %v", err)
			return fmt.Errorf("%w: failed to count registrations: %v", ErrInternal, err)
		}

		if domain.IsFull(totalSeats, booked) {
			uc.logger.Warn("CreateRegistration: session full, %d/%d seats taken for industry=%s date=%s",
				booked, totalSeats, req.Industry, req.Date.Format(domain.DateFormat))
			return ErrSessionFull
		}

		if err := uc.registrationRepo.Create(txCtx, reg); err != nil {
			uc.logger.Error("CreateRegistration: failed to create registration: %v", err)
			return fmt.Errorf("%w: failed to create registration: %v", ErrInternal, err)
		}

		remaining = domain.RemainingSeats(totalSeats, booked+1)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateRegistration: created id=%s, %d seats remaining", reg.ID, remaining)

	return &Response{
		ID:             reg.ID,
		Industry:       reg.Industry,
		Date:           reg.Date,
		Company:        reg.Company,
		Applicant:      reg.Applicant,
		Phone:          reg.Phone,
		CreatedAt:      reg.CreatedAt,
		RemainingSeats: remaining,
	}, nil
}

func (uc *UseCase) totalSeats(ctx context.Context, industry domain.Industry, date time.Time) (int, error) {
	override, err := uc.capacityRepo.Get(ctx, industry, date)
	if err != nil {
		if errors.Is(err, capacityRepo.ErrOverrideNotFound) {
			return domain.DefaultSeatCapacity, nil
		}
		uc.logger.Error("CreateRegistration: failed to get capacity override: %v", err)
		return 0, fmt.Errorf("%w: failed to get capacity override: %v", ErrInternal, err)
	}
	return override.TotalSeats, nil
}
