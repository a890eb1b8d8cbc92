// Package syncbundle defines the versioned wire format of the opaque
// sync code exchanged between devices: a JSON document of the form
// {"version":1,"registrations":[...],"overrides":[...]} encoded with
// standard base64. Encoding is lossless; Decode(Encode(s)) == s.
package syncbundle

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

// Version is the current bundle schema version.
const Version = 1

type bundle struct {
	Version       int                `json:"version"`
	Registrations []registrationWire `json:"registrations"`
	Overrides     []overrideWire     `json:"overrides"`
}

type registrationWire struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Industry  string `json:"industry"`
	Company   string `json:"company"`
	Applicant string `json:"applicant"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"` // RFC 3339
}

type overrideWire struct {
	Industry   string `json:"industry"`
	Date       string `json:"date"` // YYYY-MM-DD
	TotalSeats int    `json:"totalSeats"`
}

// Encode serializes a snapshot into the opaque sync code.
func Encode(snapshot *domain.Snapshot) (string, error) {
	b := bundle{
		Version:       Version,
		Registrations: make([]registrationWire, 0, len(snapshot.Registrations)),
		Overrides:     make([]overrideWire, 0, len(snapshot.Overrides)),
	}

	for _, reg := range snapshot.Registrations {
		b.Registrations = append(b.Registrations, registrationWire{
			ID:        reg.ID,
			Date:      reg.Date.Format(domain.DateFormat),
			Industry:  string(reg.Industry),
			Company:   reg.Company,
			Applicant: reg.Applicant,
			Phone:     reg.Phone,
			CreatedAt: reg.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	for key, total := range snapshot.Overrides {
		b.Overrides = append(b.Overrides, overrideWire{
			Industry:   string(key.Industry),
			Date:       key.Date,
			TotalSeats: total,
		})
	}

	raw, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("%w: marshal bundle: %v", ErrEncode, err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode reverses Encode. Any malformed input — invalid base64, invalid
// JSON, an unsupported version, or content violating the schema — yields
// ErrDecode and no partial result.
func Decode(code string) (*domain.Snapshot, error) {
	raw, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrDecode, err)
	}

	var b bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrDecode, err)
	}

	if b.Version != Version {
		return nil, fmt.Errorf("%w: unsupported bundle version %d", ErrDecode, b.Version)
	}

	snapshot := &domain.Snapshot{
		Registrations: make([]domain.Registration, 0, len(b.Registrations)),
		Overrides:     make(map[domain.OverrideKey]int, len(b.Overrides)),
	}

	for _, wire := range b.Registrations {
		reg, err := decodeRegistration(wire)
		if err != nil {
			return nil, err
		}
		snapshot.Registrations = append(snapshot.Registrations, reg)
	}

	for _, wire := range b.Overrides {
		industry, ok := domain.ParseIndustry(wire.Industry)
		if !ok {
			return nil, fmt.Errorf("%w: unknown industry %q in override", ErrDecode, wire.Industry)
		}
		date, err := time.Parse(domain.DateFormat, wire.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid override date %q", ErrDecode, wire.Date)
		}
		if wire.TotalSeats < 0 {
			return nil, fmt.Errorf("%w: negative override capacity %d", ErrDecode, wire.TotalSeats)
		}
		snapshot.Overrides[domain.NewOverrideKey(industry, date)] = wire.TotalSeats
	}

	return snapshot, nil
}

func decodeRegistration(wire registrationWire) (domain.Registration, error) {
	if wire.ID == "" {
		return domain.Registration{}, fmt.Errorf("%w: registration without id", ErrDecode)
	}

	industry, ok := domain.ParseIndustry(wire.Industry)
	if !ok {
		return domain.Registration{}, fmt.Errorf("%w: unknown industry %q", ErrDecode, wire.Industry)
	}

	date, err := time.Parse(domain.DateFormat, wire.Date)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("%w: invalid registration date %q", ErrDecode, wire.Date)
	}

	createdAt, err := time.Parse(time.RFC3339, wire.CreatedAt)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("%w: invalid createdAt %q", ErrDecode, wire.CreatedAt)
	}

	return domain.Registration{
		ID:        wire.ID,
		Date:      date,
		Industry:  industry,
		Company:   wire.Company,
		Applicant: wire.Applicant,
		Phone:     wire.Phone,
		CreatedAt: createdAt,
	}, nil
}
