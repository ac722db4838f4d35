package service

import (
	"github.com/sehatmap/planner-backend-go/internal/models"
	"github.com/sehatmap/planner-backend-go/internal/repository"
)

// RegionService handles read access to the administrative region data
type RegionService struct {
	regions    *repository.RegionRepository
	facilities *repository.FacilityRepository
}

// NewRegionService creates a new region service
func NewRegionService(regions *repository.RegionRepository, facilities *repository.FacilityRepository) *RegionService {
	return &RegionService{regions: regions, facilities: facilities}
}

// GetRegencies lists all regencies
func (s *RegionService) GetRegencies() ([]models.Regency, error) {
	return s.regions.GetRegencies()
}

// GetRegencyByID retrieves a single regency
func (s *RegionService) GetRegencyByID(id string) (*models.Regency, error) {
	return s.regions.GetRegencyByID(id)
}

// GetSubdistricts lists the sub-districts of a regency
func (s *RegionService) GetSubdistricts(regencyID string) ([]models.Subdistrict, error) {
	return s.regions.GetSubdistricts(regencyID)
}

// GetFacilities lists the existing health facilities of a regency
func (s *RegionService) GetFacilities(regencyID string) ([]models.HealthFacility, error) {
	return s.facilities.GetByRegency(regencyID)
}
