package domain

import "time"

// OverrideKey identifies a capacity override by industry and session day.
// A struct key with structural equality is used instead of a formatted
// "<industry>_<date>" string so the key can never collide on a delimiter.
type OverrideKey struct {
	Industry Industry
	Date     string // YYYY-MM-DD
}

// NewOverrideKey builds an OverrideKey from an industry and a session day.
func NewOverrideKey(industry Industry, date time.Time) OverrideKey {
	return OverrideKey{Industry: industry, Date: date.Format(DateFormat)}
}

// CapacityOverride is a persisted per-(industry, date) total-seat count.
// Absence of an override means DefaultSeatCapacity applies. An override
// may be set below the booked count; remaining seats clamp at zero.
type CapacityOverride struct {
	Industry   Industry
	Date       time.Time
	TotalSeats int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Key returns the map key for this override.
func (o *CapacityOverride) Key() OverrideKey {
	return NewOverrideKey(o.Industry, o.Date)
}
