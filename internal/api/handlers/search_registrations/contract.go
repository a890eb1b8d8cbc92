package search_registrations

import (
	"context"

	"github.com/kmlee/safety-edu-booking/internal/service/registrations/models"
)

type RegistrationService interface {
	Search(ctx context.Context, req *models.SearchRequest) (*models.RegistrationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
