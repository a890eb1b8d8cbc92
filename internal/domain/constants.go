package domain

// Default configuration values
const (
	// DefaultSeatCapacity is the seat count used for any (industry, date)
	// pair without an explicit capacity override.
	DefaultSeatCapacity = 30
)

// Business validation constants
const (
	MaxCompanyLength   = 200
	MaxApplicantLength = 100
	MaxPhoneLength     = 30
)

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04:05" // display format for createdAt
)
