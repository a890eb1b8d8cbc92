package cloud_sync

// PullResponse reports the outcome of the pull merge.
type PullResponse struct {
	AddedRegistrations int `json:"addedRegistrations"`
}
