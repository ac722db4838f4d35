package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sehatmap/planner-backend-go/internal/models"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// RegionRepository handles database access for regencies and sub-districts
type RegionRepository struct {
	db *sql.DB
}

// NewRegionRepository creates a new region repository
func NewRegionRepository(db *sql.DB) *RegionRepository {
	return &RegionRepository{db: db}
}

// GetRegencies lists all regencies ordered by name
func (r *RegionRepository) GetRegencies() ([]models.Regency, error) {
	rows, err := r.db.Query(`SELECT id, name, code, province_name FROM regencies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query regencies: %w", err)
	}
	defer rows.Close()

	var regencies []models.Regency
	for rows.Next() {
		var reg models.Regency
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Code, &reg.ProvinceName); err != nil {
			return nil, fmt.Errorf("failed to scan regency: %w", err)
		}
		regencies = append(regencies, reg)
	}
	return regencies, rows.Err()
}

// GetRegencyByID retrieves a single regency
func (r *RegionRepository) GetRegencyByID(id string) (*models.Regency, error) {
	var reg models.Regency
	err := r.db.QueryRow(`SELECT id, name, code, province_name FROM regencies WHERE id = ?`, id).
		Scan(&reg.ID, &reg.Name, &reg.Code, &reg.ProvinceName)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("regency %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query regency: %w", err)
	}
	return &reg, nil
}

// GetSubdistricts lists the sub-districts of a regency
func (r *RegionRepository) GetSubdistricts(regencyID string) ([]models.Subdistrict, error) {
	rows, err := r.db.Query(`
		SELECT id, regency_id, name, population_count, area_km2, poverty_level
		FROM subdistricts
		WHERE regency_id = ?
		ORDER BY name`, regencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query subdistricts: %w", err)
	}
	defer rows.Close()

	var subdistricts []models.Subdistrict
	for rows.Next() {
		var sd models.Subdistrict
		if err := rows.Scan(&sd.ID, &sd.RegencyID, &sd.Name, &sd.PopulationCount, &sd.AreaKm2, &sd.PovertyLevel); err != nil {
			return nil, fmt.Errorf("failed to scan subdistrict: %w", err)
		}
		subdistricts = append(subdistricts, sd)
	}
	return subdistricts, rows.Err()
}

// GetSubdistrictName resolves a sub-district ID to its name, empty when unknown
func (r *RegionRepository) GetSubdistrictName(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	var name string
	err := r.db.QueryRow(`SELECT name FROM subdistricts WHERE id = ?`, id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query subdistrict name: %w", err)
	}
	return name, nil
}
