package models

// SubdistrictScore is one ranked entry of the priority score analysis
type SubdistrictScore struct {
	SubdistrictID       string  `json:"sub_district_id"`
	SubdistrictName     string  `json:"sub_district_name"`
	GapFactor           float64 `json:"gap_factor"`
	EfficiencyFactor    float64 `json:"efficiency_factor"`
	VulnerabilityFactor float64 `json:"vulnerability_factor"`
	CompositeScore      float64 `json:"composite_score"`
	Rank                int     `json:"rank"`
}

// PriorityScoreData ranks a regency's sub-districts by need for new facilities
type PriorityScoreData struct {
	RegencyID         string             `json:"regency_id"`
	RegencyName       string             `json:"regency_name"`
	TotalSubdistricts int                `json:"total_sub_districts"`
	Subdistricts      []SubdistrictScore `json:"sub_districts"`
}

// HeatmapPoint carries the health access score of one population point
type HeatmapPoint struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	PopulationCount      int     `json:"population_count"`
	DistanceToFacilityKm float64 `json:"distance_to_facility_km"` // nearest existing facility
	AccessScore          float64 `json:"access_score"`            // 0 (no access) to 1 (at a facility)
}

// HeatmapData is the access heatmap for a regency
type HeatmapData struct {
	RegencyID               string         `json:"regency_id"`
	RegencyName             string         `json:"regency_name"`
	TotalPopulation         int            `json:"total_population"`
	PopulationOutsideRadius int            `json:"population_outside_radius"`
	ServiceRadiusKm         float64        `json:"service_radius_km"`
	Points                  []HeatmapPoint `json:"heatmap_points"`
}
