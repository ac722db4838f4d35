package service

import (
	"context"

	"github.com/sehatmap/planner-backend-go/internal/analysis"
	"github.com/sehatmap/planner-backend-go/internal/cache"
	"github.com/sehatmap/planner-backend-go/internal/models"
	"github.com/sehatmap/planner-backend-go/internal/optimizer"
	"github.com/sehatmap/planner-backend-go/internal/repository"
)

// AnalysisService computes sub-district priority scores and access
// heatmaps, with redis-backed caching of the responses
type AnalysisService struct {
	regions    *repository.RegionRepository
	population *repository.PopulationRepository
	facilities *repository.FacilityRepository
	cache      *cache.Cache
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(regions *repository.RegionRepository, population *repository.PopulationRepository,
	facilities *repository.FacilityRepository, c *cache.Cache) *AnalysisService {
	return &AnalysisService{regions: regions, population: population, facilities: facilities, cache: c}
}

// PriorityScores ranks a regency's sub-districts by need for new facilities
func (s *AnalysisService) PriorityScores(ctx context.Context, regencyID string) (*models.PriorityScoreData, error) {
	key := cache.Key("priority_scores", regencyID)
	var cached models.PriorityScoreData
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	regency, subdistricts, points, facilities, err := s.loadRegion(regencyID)
	if err != nil {
		return nil, err
	}

	resolved := optimizer.ResolveRadii(facilities, models.DefaultFacilityTypeCatalog())
	data := analysis.PriorityScores(*regency, subdistricts, points, resolved)

	s.cache.Set(ctx, key, data)
	return &data, nil
}

// Heatmap computes the access heatmap for a regency
func (s *AnalysisService) Heatmap(ctx context.Context, regencyID string, serviceRadiusKm float64) (*models.HeatmapData, error) {
	if serviceRadiusKm <= 0 {
		serviceRadiusKm = analysis.DefaultServiceRadiusKm
	}
	key := cache.Key("heatmap", regencyID)
	if serviceRadiusKm == analysis.DefaultServiceRadiusKm {
		var cached models.HeatmapData
		if s.cache.Get(ctx, key, &cached) {
			return &cached, nil
		}
	}

	regency, _, points, facilities, err := s.loadRegion(regencyID)
	if err != nil {
		return nil, err
	}

	data := analysis.Heatmap(*regency, points, facilities, serviceRadiusKm)

	if serviceRadiusKm == analysis.DefaultServiceRadiusKm {
		s.cache.Set(ctx, key, data)
	}
	return &data, nil
}

func (s *AnalysisService) loadRegion(regencyID string) (*models.Regency, []models.Subdistrict, []models.PopulationPoint, []models.HealthFacility, error) {
	regency, err := s.regions.GetRegencyByID(regencyID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	subdistricts, err := s.regions.GetSubdistricts(regencyID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	points, err := s.population.GetByRegency(regencyID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	facilities, err := s.facilities.GetByRegency(regencyID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return regency, subdistricts, points, facilities, nil
}
