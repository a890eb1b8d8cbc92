package merge_snapshot

import (
	"context"
	"time"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

// RegistrationRepository is the ledger surface the merge needs.
type RegistrationRepository interface {
	CreateIfAbsent(ctx context.Context, reg *domain.Registration) (bool, error)
}

// CapacityRepository is the override surface the merge needs.
type CapacityRepository interface {
	CreateIfAbsent(ctx context.Context, industry domain.Industry, date time.Time, totalSeats int) (bool, error)
}

// TransactionManager makes the merge all-or-nothing.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
