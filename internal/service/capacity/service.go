package capacity

import (
	"context"
	"fmt"
	"time"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

// Service owns the admin-side capacity overrides.
type Service struct {
	capacityRepo CapacityRepository
	logger       Logger
}

// NewService creates the capacity service.
func NewService(capacityRepo CapacityRepository, logger Logger) *Service {
	return &Service{
		capacityRepo: capacityRepo,
		logger:       logger,
	}
}

// SetOverride upserts the total-seat override for an (industry, date)
// pair. Zero is allowed (closes the session). Setting a value below the
// current booked count is also allowed: remaining seats clamp at zero
// rather than going negative, and existing registrations stay untouched.
func (s *Service) SetOverride(ctx context.Context, industry domain.Industry, rawDate string, totalSeats int) error {
	if !industry.IsValid() {
		s.logger.Warn("SetOverride: unknown industry %q", industry)
		return ErrUnknownIndustry
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		s.logger.Warn("SetOverride: invalid date %q", rawDate)
		return fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, rawDate)
	}

	if totalSeats < 0 {
		s.logger.Warn("SetOverride: negative capacity %d for %s/%s", totalSeats, industry, rawDate)
		return fmt.Errorf("%w: capacity must be >= 0, got %d", ErrInvalidCapacity, totalSeats)
	}

	if err := s.capacityRepo.Upsert(ctx, industry, date, totalSeats); err != nil {
		s.logger.Error("SetOverride: repository error for %s/%s: %v", industry, rawDate, err)
		return fmt.Errorf("%w: SetOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetOverride: industry=%s date=%s totalSeats=%d", industry, rawDate, totalSeats)
	return nil
}
