package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sehatmap/planner-backend-go/internal/models"
)

// SimulationRepository persists optimization runs for later retrieval
type SimulationRepository struct {
	db *sql.DB
}

// NewSimulationRepository creates a new simulation repository
func NewSimulationRepository(db *sql.DB) *SimulationRepository {
	return &SimulationRepository{db: db}
}

// Save stores a simulation result, assigning it an ID. Placements are
// serialized as JSON alongside the headline figures.
func (r *SimulationRepository) Save(result *models.SimulationResult) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	placements, err := json.Marshal(result.Placements)
	if err != nil {
		return fmt.Errorf("failed to encode placements: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO simulation_results
			(id, regency_id, regency_name, total_budget, budget_used,
			 facilities_recommended, total_population_covered, coverage_percentage, placements)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID, result.RegencyID, result.RegencyName, result.TotalBudget, result.BudgetUsed,
		result.FacilitiesRecommended, result.TotalPopulationCovered, result.CoveragePercentage,
		string(placements))
	if err != nil {
		return fmt.Errorf("failed to insert simulation result: %w", err)
	}
	return nil
}

// GetByID retrieves a stored simulation with its placements
func (r *SimulationRepository) GetByID(id string) (*models.SimulationResult, error) {
	row := r.db.QueryRow(`
		SELECT id, regency_id, regency_name, total_budget, budget_used,
		       facilities_recommended, total_population_covered, coverage_percentage,
		       placements, created_at
		FROM simulation_results WHERE id = ?`, id)

	result, err := scanSimulation(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("simulation %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation result: %w", err)
	}
	return result, nil
}

// List returns stored simulations, newest first, optionally filtered by regency
func (r *SimulationRepository) List(regencyID string, limit int) ([]models.SimulationResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `
		SELECT id, regency_id, regency_name, total_budget, budget_used,
		       facilities_recommended, total_population_covered, coverage_percentage,
		       placements, created_at
		FROM simulation_results`
	var args []interface{}
	if regencyID != "" {
		query += " WHERE regency_id = ?"
		args = append(args, regencyID)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation results: %w", err)
	}
	defer rows.Close()

	var results []models.SimulationResult
	for rows.Next() {
		result, err := scanSimulation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan simulation result: %w", err)
		}
		results = append(results, *result)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSimulation(row rowScanner) (*models.SimulationResult, error) {
	var result models.SimulationResult
	var placements string
	err := row.Scan(&result.ID, &result.RegencyID, &result.RegencyName,
		&result.TotalBudget, &result.BudgetUsed, &result.FacilitiesRecommended,
		&result.TotalPopulationCovered, &result.CoveragePercentage,
		&placements, &result.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(placements), &result.Placements); err != nil {
		return nil, fmt.Errorf("failed to decode placements: %w", err)
	}
	return &result, nil
}
