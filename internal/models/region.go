package models

// Regency represents an administrative region (kabupaten/kota)
type Regency struct {
	ID           string `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Code         string `json:"code,omitempty" db:"code"`
	ProvinceName string `json:"province_name,omitempty" db:"province_name"`
}

// Subdistrict represents a sub-district (kecamatan) within a regency
type Subdistrict struct {
	ID              string  `json:"id" db:"id"`
	RegencyID       string  `json:"regency_id" db:"regency_id"`
	Name            string  `json:"name" db:"name"`
	PopulationCount int     `json:"population_count" db:"population_count"`
	AreaKm2         float64 `json:"area_km2" db:"area_km2"`
	PovertyLevel    float64 `json:"poverty_level" db:"poverty_level"` // 0.0 to 1.0
}
