package sync

import (
	"fmt"
	"time"

	"github.com/kmlee/safety-edu-booking/internal/domain"
	"github.com/kmlee/safety-edu-booking/internal/integrations/cloudstore"
)

// snapshotToDocument converts local state into the shared-document shape.
func snapshotToDocument(snapshot *domain.Snapshot) *cloudstore.Document {
	doc := &cloudstore.Document{
		Registrations: make([]cloudstore.DocumentRegistration, 0, len(snapshot.Registrations)),
		Overrides:     make([]cloudstore.DocumentOverride, 0, len(snapshot.Overrides)),
	}

	for _, reg := range snapshot.Registrations {
		doc.Registrations = append(doc.Registrations, cloudstore.DocumentRegistration{
			ID:        reg.ID,
			Date:      reg.Date.Format(domain.DateFormat),
			Industry:  string(reg.Industry),
			Company:   reg.Company,
			Applicant: reg.Applicant,
			Phone:     reg.Phone,
			CreatedAt: reg.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	for key, totalSeats := range snapshot.Overrides {
		doc.Overrides = append(doc.Overrides, cloudstore.DocumentOverride{
			Industry:   string(key.Industry),
			Date:       key.Date,
			TotalSeats: totalSeats,
		})
	}

	return doc
}

// documentToSnapshot validates and converts a fetched shared document.
// Rows that violate the schema fail the whole conversion; a pull never
// applies a half-valid document.
func documentToSnapshot(doc *cloudstore.Document) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{
		Registrations: make([]domain.Registration, 0, len(doc.Registrations)),
		Overrides:     make(map[domain.OverrideKey]int, len(doc.Overrides)),
	}

	for _, row := range doc.Registrations {
		if row.ID == "" {
			return nil, fmt.Errorf("%w: registration without id", cloudstore.ErrInvalidResponse)
		}
		industry, ok := domain.ParseIndustry(row.Industry)
		if !ok {
			return nil, fmt.Errorf("%w: unknown industry %q", cloudstore.ErrInvalidResponse, row.Industry)
		}
		date, err := time.Parse(domain.DateFormat, row.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", cloudstore.ErrInvalidResponse, row.Date)
		}
		createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid createdAt %q", cloudstore.ErrInvalidResponse, row.CreatedAt)
		}

		snapshot.Registrations = append(snapshot.Registrations, domain.Registration{
			ID:        row.ID,
			Date:      date,
			Industry:  industry,
			Company:   row.Company,
			Applicant: row.Applicant,
			Phone:     row.Phone,
			CreatedAt: createdAt,
		})
	}

	for _, row := range doc.Overrides {
		industry, ok := domain.ParseIndustry(row.Industry)
		if !ok {
			return nil, fmt.Errorf("%w: unknown industry %q in override", cloudstore.ErrInvalidResponse, row.Industry)
		}
		date, err := time.Parse(domain.DateFormat, row.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid override date %q", cloudstore.ErrInvalidResponse, row.Date)
		}
		if row.TotalSeats < 0 {
			return nil, fmt.Errorf("%w: negative override capacity %d", cloudstore.ErrInvalidResponse, row.TotalSeats)
		}
		snapshot.Overrides[domain.NewOverrideKey(industry, date)] = row.TotalSeats
	}

	return snapshot, nil
}
