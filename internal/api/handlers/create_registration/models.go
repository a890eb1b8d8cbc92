package create_registration

import (
	"time"

	"github.com/kmlee/safety-edu-booking/internal/domain"
	createRegistration "github.com/kmlee/safety-edu-booking/internal/usecase/create_registration"
)

// CreateRegistrationRequest HTTP request model
type CreateRegistrationRequest struct {
	Industry  string `json:"industry"`
	Date      string `json:"date"` // "2026-03-02"
	Company   string `json:"company"`
	Applicant string `json:"applicant"`
	Phone     string `json:"phone"`
}

// RegistrationResponse HTTP response model
type RegistrationResponse struct {
	ID             string `json:"id"`
	Industry       string `json:"industry"`
	Date           string `json:"date"`
	Company        string `json:"company"`
	Applicant      string `json:"applicant"`
	Phone          string `json:"phone"`
	CreatedAt      string `json:"createdAt"`
	RemainingSeats int    `json:"remainingSeats"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateRegistrationRequest) ToUseCaseRequest() (*createRegistration.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createRegistration.Request{
		Industry:  domain.Industry(r.Industry),
		Date:      date,
		Company:   r.Company,
		Applicant: r.Applicant,
		Phone:     r.Phone,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *createRegistration.Response) *RegistrationResponse {
	return &RegistrationResponse{
		ID:             resp.ID,
		Industry:       string(resp.Industry),
		Date:           resp.Date.Format(domain.DateFormat),
		Company:        resp.Company,
		Applicant:      resp.Applicant,
		Phone:          resp.Phone,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		RemainingSeats: resp.RemainingSeats,
	}
}
