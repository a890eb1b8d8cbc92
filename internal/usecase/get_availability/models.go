package get_availability

import "github.com/kmlee/safety-edu-booking/internal/domain"

// Request asks for the availability of one industry over one calendar month.
type Request struct {
	Industry domain.Industry
	Year     int
	Month    int // 1..12
}

// DayAvailability describes one calendar day of the requested month.
type DayAvailability struct {
	Date           string // YYYY-MM-DD
	TotalSeats     int
	RemainingSeats int
	Full           bool
	Past           bool
}

// Response carries the per-day availability for the whole month.
type Response struct {
	Industry domain.Industry
	Year     int
	Month    int
	Days     []DayAvailability
}
