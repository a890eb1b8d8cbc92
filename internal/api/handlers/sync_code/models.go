package sync_code

// ExportResponse carries the opaque sync code for the user to copy.
type ExportResponse struct {
	Code string `json:"code"`
}

// ImportRequest carries a sync code produced on another device.
type ImportRequest struct {
	Code string `json:"code"`
}

// ImportResponse reports the outcome of the merge.
type ImportResponse struct {
	AddedRegistrations int `json:"addedRegistrations"`
}
