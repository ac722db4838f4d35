package repository

import (
	"database/sql"
	"fmt"

	"github.com/sehatmap/planner-backend-go/internal/models"
)

// FacilityRepository handles database access for existing health facilities
type FacilityRepository struct {
	db *sql.DB
}

// NewFacilityRepository creates a new facility repository
func NewFacilityRepository(db *sql.DB) *FacilityRepository {
	return &FacilityRepository{db: db}
}

// GetByRegency returns the existing health facilities of a regency
func (r *FacilityRepository) GetByRegency(regencyID string) ([]models.HealthFacility, error) {
	rows, err := r.db.Query(`
		SELECT hf.id, hf.subdistrict_id, hf.name, hf.type, hf.latitude, hf.longitude
		FROM health_facilities hf
		JOIN subdistricts sd ON hf.subdistrict_id = sd.id
		WHERE sd.regency_id = ?
		ORDER BY hf.id`, regencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query health facilities: %w", err)
	}
	defer rows.Close()

	var facilities []models.HealthFacility
	for rows.Next() {
		var f models.HealthFacility
		if err := rows.Scan(&f.ID, &f.SubdistrictID, &f.Name, &f.Type, &f.Latitude, &f.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan health facility: %w", err)
		}
		facilities = append(facilities, f)
	}
	return facilities, rows.Err()
}
