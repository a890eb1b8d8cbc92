package domain

import "time"

// TotalSeats resolves the seat capacity for a key from a sparse override
// map, falling back to DefaultSeatCapacity when no override exists.
func TotalSeats(overrides map[OverrideKey]int, key OverrideKey) int {
	if total, ok := overrides[key]; ok {
		return total
	}
	return DefaultSeatCapacity
}

// RemainingSeats computes the seats left given a total capacity and the
// number of existing registrations. Never negative: an override set below
// the booked count yields zero, not a negative value.
func RemainingSeats(totalSeats, bookedCount int) int {
	remaining := totalSeats - bookedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsFull returns true if no seats remain.
func IsFull(totalSeats, bookedCount int) bool {
	return RemainingSeats(totalSeats, bookedCount) == 0
}

// IsPastDate returns true if date is strictly before today, compared at
// day granularity in now's location. Time of day is ignored.
func IsPastDate(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	todayOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(todayOnly)
}
