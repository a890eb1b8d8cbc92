package models

import (
	"time"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

// UpdateContactRequest carries the admin edit of a registration's
// contact fields. Date, industry, id and createdAt are immutable.
type UpdateContactRequest struct {
	Company   string `json:"company"`
	Applicant string `json:"applicant"`
	Phone     string `json:"phone"`
}

// SearchRequest is the public registration lookup by the applicant.
type SearchRequest struct {
	Applicant string `json:"applicant"`
	Phone     string `json:"phone"`
}

// RegistrationResponse is one registration as shown to callers.
type RegistrationResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Industry  string `json:"industry"`
	Company   string `json:"company"`
	Applicant string `json:"applicant"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

// RegistrationListResponse wraps a list of registrations.
type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
	Total         int                    `json:"total"`
}

// FromDomainRegistration converts a domain registration to the response model.
func FromDomainRegistration(reg *domain.Registration) *RegistrationResponse {
	return &RegistrationResponse{
		ID:        reg.ID,
		Date:      reg.Date.Format(domain.DateFormat),
		Industry:  string(reg.Industry),
		Company:   reg.Company,
		Applicant: reg.Applicant,
		Phone:     reg.Phone,
		CreatedAt: reg.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainRegistrationList converts a slice of domain registrations.
func FromDomainRegistrationList(regs []domain.Registration) *RegistrationListResponse {
	list := make([]RegistrationResponse, 0, len(regs))
	for i := range regs {
		list = append(list, *FromDomainRegistration(&regs[i]))
	}
	return &RegistrationListResponse{
		Registrations: list,
		Total:         len(list),
	}
}
