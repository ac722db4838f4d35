package models

// CandidateSite is a derived location (cluster centroid of underserved
// population points) considered for a new facility
type CandidateSite struct {
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	PopulationCount int     `json:"population_count"` // sum over member points
	SubdistrictID   string  `json:"subdistrict_id,omitempty"`

	// MemberIDs are the population point IDs assigned to this cluster at
	// generation time; marginal gain is recomputed against these each
	// allocator iteration
	MemberIDs []string `json:"member_ids,omitempty"`
}
