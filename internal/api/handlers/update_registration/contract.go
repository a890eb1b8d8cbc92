package update_registration

import (
	"context"

	"github.com/kmlee/safety-edu-booking/internal/service/registrations/models"
)

type RegistrationService interface {
	UpdateContact(ctx context.Context, id string, req *models.UpdateContactRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
