package domain

import (
	"strings"
	"time"
)

// Registration represents a single training-session booking.
// Identity is the ID alone: two registrations describe the same
// real-world booking iff their IDs match, regardless of content.
type Registration struct {
	ID        string
	Date      time.Time // session day, day granularity
	Industry  Industry
	Company   string
	Applicant string
	Phone     string
	CreatedAt time.Time
}

// Normalize trims surrounding whitespace from the free-text contact fields.
func (r *Registration) Normalize() {
	r.Company = strings.TrimSpace(r.Company)
	r.Applicant = strings.TrimSpace(r.Applicant)
	r.Phone = strings.TrimSpace(r.Phone)
}

