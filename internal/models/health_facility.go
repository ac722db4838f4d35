package models

// HealthFacility represents an existing health facility
type HealthFacility struct {
	ID            string  `json:"id" db:"id"`
	SubdistrictID string  `json:"subdistrict_id,omitempty" db:"subdistrict_id"`
	Name          string  `json:"name" db:"name"`
	Type          string  `json:"type" db:"type"`
	Latitude      float64 `json:"latitude" db:"latitude"`
	Longitude     float64 `json:"longitude" db:"longitude"`

	// CoverageRadius is resolved from the facility type catalog per run,
	// not persisted
	CoverageRadius float64 `json:"coverage_radius_m,omitempty" db:"-"`
}
