package models

// SizeBand is the terrace size band picked in the wizard, one of the three
// fixed options (2-5, 5-10, 10-20 m²).
type SizeBand struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// WizardState is a completed kit-finder questionnaire. It exists only for
// the duration of one wizard session.
type WizardState struct {
	TerraceSizeM2         *SizeBand        `json:"terrace_size_m2"`
	SurfaceType           SurfaceType      `json:"surface_type"`
	Exposure              Exposure         `json:"exposure"`
	Goals                 []Goal           `json:"goals"`
	MaintenancePreference MaintenanceLevel `json:"maintenance_preference"`
}

// FilterState holds the shop page facet selections. It is derived from
// UI/URL state and never persisted.
type FilterState struct {
	SizeCategory []SizeCategory     `json:"size_category"`
	Exposure     []Exposure         `json:"exposure"`
	Maintenance  []MaintenanceLevel `json:"maintenance"`
	Goals        []Goal             `json:"goals"`
	ProductType  []ProductType      `json:"product_type"`
	PriceRange   PriceRange         `json:"price_range"`
}

// PriceRange bounds the shop price filter. A zero Max means unbounded.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
