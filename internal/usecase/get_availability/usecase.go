package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

// UseCase computes the per-day seat availability an applicant sees on
// the booking calendar. Remaining seats are always recomputed from the
// ledger, never cached, so the answer is consistent with the current
// state by construction.
type UseCase struct {
	registrationRepo RegistrationRepository
	capacityRepo     CapacityRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(
	registrationRepo RegistrationRepository,
	capacityRepo CapacityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		registrationRepo: registrationRepo,
		capacityRepo:     capacityRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute returns availability for every day of the requested month.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	firstDay := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, now.Location())
	lastDay := firstDay.AddDate(0, 1, -1)

	counts, err := uc.registrationRepo.GetDailyCounts(ctx, req.Industry, firstDay, lastDay)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get daily counts: %v", err)
		return nil, fmt.Errorf("%w: failed to get daily counts: %v", ErrInternal, err)
	}

	overrides, err := uc.capacityRepo.GetByIndustryRange(ctx, req.Industry, firstDay, lastDay)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}

	days := make([]DayAvailability, 0, lastDay.Day())
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		key := domain.NewOverrideKey(req.Industry, day)
		totalSeats := domain.TotalSeats(overrides, key)
		booked := counts[key.Date]

		days = append(days, DayAvailability{
			Date:           key.Date,
			TotalSeats:     totalSeats,
			RemainingSeats: domain.RemainingSeats(totalSeats, booked),
			Full:           domain.IsFull(totalSeats, booked),
			Past:           domain.IsPastDate(day, now),
		})
	}

	uc.logger.Info("GetAvailability: industry=%s, %d-%02d, %d days", req.Industry, req.Year, req.Month, len(days))

	return &Response{
		Industry: req.Industry,
		Year:     req.Year,
		Month:    req.Month,
		Days:     days,
	}, nil
}

func validateRequest(req *Request) error {
	if !req.Industry.IsValid() {
		return fmt.Errorf("%w: unknown industry %q", ErrInvalidInput, req.Industry)
	}
	if req.Year < 2000 || req.Year > 2100 {
		return fmt.Errorf("%w: year %d out of range", ErrInvalidInput, req.Year)
	}
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidInput, req.Month)
	}
	return nil
}
