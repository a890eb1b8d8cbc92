package capacity

import (
	"context"
	"time"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

// CapacityRepository is the override surface the service needs.
type CapacityRepository interface {
	Upsert(ctx context.Context, industry domain.Industry, date time.Time, totalSeats int) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
