package merge_snapshot

import "github.com/kmlee/safety-edu-booking/internal/domain"

// Request carries a decoded foreign snapshot to reconcile into the
// local ledger.
type Request struct {
	Snapshot *domain.Snapshot
}

// Response reports what the merge changed.
type Response struct {
	AddedRegistrations int // foreign registrations not previously known
	AddedOverrides     int // foreign overrides for keys with no local value
}
