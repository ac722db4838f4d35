package repository

import (
	"database/sql"
	"fmt"

	"github.com/sehatmap/planner-backend-go/internal/models"
)

// PopulationRepository handles database access for population points
type PopulationRepository struct {
	db *sql.DB
}

// NewPopulationRepository creates a new population repository
func NewPopulationRepository(db *sql.DB) *PopulationRepository {
	return &PopulationRepository{db: db}
}

// GetByRegency returns every population point of a regency in a stable
// order. The order matters: it feeds the clustering step, and candidate
// site indices are part of the optimizer's tie-breaking.
func (r *PopulationRepository) GetByRegency(regencyID string) ([]models.PopulationPoint, error) {
	rows, err := r.db.Query(`
		SELECT pp.id, pp.subdistrict_id, pp.latitude, pp.longitude, pp.population_count
		FROM population_points pp
		JOIN subdistricts sd ON pp.subdistrict_id = sd.id
		WHERE sd.regency_id = ?
		ORDER BY pp.id`, regencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query population points: %w", err)
	}
	defer rows.Close()

	var points []models.PopulationPoint
	for rows.Next() {
		var p models.PopulationPoint
		if err := rows.Scan(&p.ID, &p.SubdistrictID, &p.Latitude, &p.Longitude, &p.PopulationCount); err != nil {
			return nil, fmt.Errorf("failed to scan population point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
