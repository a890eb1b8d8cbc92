package cloudstore

// Document is the shared JSON document stored at the cloud endpoint.
// The server keeps exactly one document; a POST replaces it entirely
// (last writer wins, no server-side conflict detection).
type Document struct {
	Registrations []DocumentRegistration `json:"registrations"`
	Overrides     []DocumentOverride     `json:"overrides"`
	UpdatedAt     int64                  `json:"updatedAt,omitempty"` // unix millis, informational only
}

// DocumentRegistration is one registration row inside the shared document.
type DocumentRegistration struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Industry  string `json:"industry"`
	Company   string `json:"company"`
	Applicant string `json:"applicant"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"` // RFC 3339
}

// DocumentOverride is one capacity override inside the shared document.
type DocumentOverride struct {
	Industry   string `json:"industry"`
	Date       string `json:"date"` // YYYY-MM-DD
	TotalSeats int    `json:"totalSeats"`
}
