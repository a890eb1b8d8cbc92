package list_registrations

import (
	"context"

	"github.com/kmlee/safety-edu-booking/internal/domain"
	"github.com/kmlee/safety-edu-booking/internal/service/registrations/models"
)

type RegistrationService interface {
	ListByIndustry(ctx context.Context, industry domain.Industry) (*models.RegistrationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
