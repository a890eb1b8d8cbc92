package registrations

import (
	"context"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

// RegistrationRepository is the ledger surface the service needs.
type RegistrationRepository interface {
	GetByIndustry(ctx context.Context, industry domain.Industry) ([]domain.Registration, error)
	Search(ctx context.Context, applicant, phone string) ([]domain.Registration, error)
	UpdateContact(ctx context.Context, id, company, applicant, phone string) error
	Delete(ctx context.Context, id string) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
