package create_registration

import (
	"context"
	"time"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

// RegistrationRepository is the ledger surface the use case needs.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *domain.Registration) error
	CountByDateAndIndustry(ctx context.Context, date time.Time, industry domain.Industry) (int, error)
}

// CapacityRepository resolves per-(industry, date) seat overrides.
type CapacityRepository interface {
	Get(ctx context.Context, industry domain.Industry, date time.Time) (*domain.CapacityOverride, error)
}

// TransactionManager runs the capacity check and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
