package set_capacity

// SetCapacityRequest HTTP request model
type SetCapacityRequest struct {
	TotalSeats int `json:"totalSeats"`
}
