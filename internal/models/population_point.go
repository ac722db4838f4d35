package models

// PopulationPoint represents an aggregated population location within a sub-district
type PopulationPoint struct {
	ID              string  `json:"id" db:"id"`
	SubdistrictID   string  `json:"subdistrict_id,omitempty" db:"subdistrict_id"`
	Latitude        float64 `json:"latitude" db:"latitude"`
	Longitude       float64 `json:"longitude" db:"longitude"`
	PopulationCount int     `json:"population_count" db:"population_count"`
}
