package domain

// Snapshot is a complete copy of one device's booking state: the full
// registration ledger plus the capacity-override map. Snapshots are what
// the sync code and the shared cloud document carry between devices.
type Snapshot struct {
	Registrations []Registration
	Overrides     map[OverrideKey]int
}
