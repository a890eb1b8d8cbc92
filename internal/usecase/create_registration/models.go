package create_registration

import (
	"time"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

// Request carries a new registration submission.
type Request struct {
	Industry  domain.Industry // target industry category
	Date      time.Time       // session day (day granularity)
	Company   string
	Applicant string
	Phone     string
}

// Response describes the created registration.
type Response struct {
	ID             string
	Industry       domain.Industry
	Date           time.Time
	Company        string
	Applicant      string
	Phone          string
	CreatedAt      time.Time
	RemainingSeats int // seats left after this admission
}
