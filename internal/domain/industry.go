package domain

// Industry represents one of the fixed industry categories a training
// session is offered for. The set is closed; values outside Industries
// are rejected at the input boundary.
type Industry string

const (
	IndustryConstruction  Industry = "건설업"
	IndustryManufacturing Industry = "제조업"
	IndustryService       Industry = "서비스업"
	IndustryPublicSector  Industry = "공공기관"
)

// Industries lists every valid industry category in display order.
var Industries = []Industry{
	IndustryConstruction,
	IndustryManufacturing,
	IndustryService,
	IndustryPublicSector,
}

// IsValid returns true if the industry is one of the known categories.
func (i Industry) IsValid() bool {
	for _, known := range Industries {
		if i == known {
			return true
		}
	}
	return false
}

// ParseIndustry converts a raw string into an Industry.
// Returns false if the value is not a known category.
func ParseIndustry(raw string) (Industry, bool) {
	industry := Industry(raw)
	return industry, industry.IsValid()
}
