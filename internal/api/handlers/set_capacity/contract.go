package set_capacity

import (
	"context"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

type CapacityService interface {
	SetOverride(ctx context.Context, industry domain.Industry, rawDate string, totalSeats int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
