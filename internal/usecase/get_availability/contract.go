package get_availability

import (
	"context"
	"time"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

// RegistrationRepository supplies booked counts per session day.
type RegistrationRepository interface {
	GetDailyCounts(ctx context.Context, industry domain.Industry, from, to time.Time) (map[string]int, error)
}

// CapacityRepository supplies seat overrides for a date range.
type CapacityRepository interface {
	GetByIndustryRange(ctx context.Context, industry domain.Industry, from, to time.Time) (map[domain.OverrideKey]int, error)
}

// TimeProvider supplies the current time (overridable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current wall-clock time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
