package models

import "time"

// Placement is a recommended new facility. List order is selection order.
type Placement struct {
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	FacilityType      string  `json:"facility_type"`
	EstimatedCost     float64 `json:"estimated_cost"`
	PopulationCovered int     `json:"population_covered"`
	CoverageRadiusKm  float64 `json:"coverage_radius_km"`
	SubdistrictID     string  `json:"sub_district_id,omitempty"`
	SubdistrictName   string  `json:"sub_district_name,omitempty"`
}

// SimulationResult is the output of one optimization run
type SimulationResult struct {
	ID                     string      `json:"id,omitempty" db:"id"`
	RegencyID              string      `json:"regency_id" db:"regency_id"`
	RegencyName            string      `json:"regency_name" db:"regency_name"`
	TotalBudget            float64     `json:"total_budget" db:"total_budget"`
	BudgetUsed             float64     `json:"budget_used" db:"budget_used"`
	FacilitiesRecommended  int         `json:"facilities_recommended" db:"facilities_recommended"`
	TotalPopulationCovered int         `json:"total_population_covered" db:"total_population_covered"`
	CoveragePercentage     float64     `json:"coverage_percentage" db:"coverage_percentage"`
	Placements             []Placement `json:"placements" db:"placements"`
	CreatedAt              time.Time   `json:"created_at,omitempty" db:"created_at"`
}

// SimulationRequest is the body of POST /api/v1/simulations
type SimulationRequest struct {
	RegencyID     string              `json:"regency_id" binding:"required"`
	Budget        float64             `json:"budget"`
	FacilityTypes FacilityTypeCatalog `json:"facility_types,omitempty"` // optional catalog override
}
