package get_availability

import (
	getAvailability "github.com/kmlee/safety-edu-booking/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Industry string            `json:"industry"`
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Days     []DayAvailability `json:"days"`
}

// DayAvailability one calendar day of the requested month
type DayAvailability struct {
	Date           string `json:"date"`
	TotalSeats     int    `json:"totalSeats"`
	RemainingSeats int    `json:"remainingSeats"`
	Full           bool   `json:"full"`
	Past           bool   `json:"past"`
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayAvailability, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = DayAvailability{
			Date:           day.Date,
			TotalSeats:     day.TotalSeats,
			RemainingSeats: day.RemainingSeats,
			Full:           day.Full,
			Past:           day.Past,
		}
	}

	return &AvailabilityResponse{
		Industry: string(resp.Industry),
		Year:     resp.Year,
		Month:    resp.Month,
		Days:     days,
	}
}
