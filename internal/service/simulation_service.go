package service

import (
	"fmt"
	"log"

	"github.com/sehatmap/planner-backend-go/internal/models"
	"github.com/sehatmap/planner-backend-go/internal/optimizer"
	"github.com/sehatmap/planner-backend-go/internal/repository"
)

// SimulationService orchestrates one optimization run: load the region
// snapshot, run the optimizer, attach reporting names, persist the result.
type SimulationService struct {
	regions     *repository.RegionRepository
	population  *repository.PopulationRepository
	facilities  *repository.FacilityRepository
	simulations *repository.SimulationRepository

	maxClusters int
	clusterSeed int64
}

// NewSimulationService creates a new simulation service
func NewSimulationService(regions *repository.RegionRepository, population *repository.PopulationRepository,
	facilities *repository.FacilityRepository, simulations *repository.SimulationRepository,
	maxClusters int, clusterSeed int64) *SimulationService {
	return &SimulationService{
		regions:     regions,
		population:  population,
		facilities:  facilities,
		simulations: simulations,
		maxClusters: maxClusters,
		clusterSeed: clusterSeed,
	}
}

// RunSimulation executes the placement optimization for a regency and
// stores the result. Configuration errors from the optimizer and an
// unresolvable regency surface to the caller unchanged; degenerate inputs
// (no underserved population, budget below the cheapest type) produce a
// well-formed empty result.
func (s *SimulationService) RunSimulation(req models.SimulationRequest) (*models.SimulationResult, error) {
	regency, err := s.regions.GetRegencyByID(req.RegencyID)
	if err != nil {
		return nil, err
	}

	points, err := s.population.GetByRegency(req.RegencyID)
	if err != nil {
		return nil, err
	}
	facilities, err := s.facilities.GetByRegency(req.RegencyID)
	if err != nil {
		return nil, err
	}

	log.Printf("Simulation for regency %s: budget %.0f, %d population points, %d existing facilities",
		regency.Name, req.Budget, len(points), len(facilities))

	result, err := optimizer.Run(optimizer.Input{
		RegencyID:   regency.ID,
		RegencyName: regency.Name,
		Budget:      req.Budget,
		Catalog:     req.FacilityTypes,
		Points:      points,
		Facilities:  facilities,
		MaxClusters: s.maxClusters,
		Seed:        s.clusterSeed,
	})
	if err != nil {
		return nil, err
	}

	// resolve sub-district names for reporting
	for i := range result.Placements {
		name, err := s.regions.GetSubdistrictName(result.Placements[i].SubdistrictID)
		if err != nil {
			return nil, err
		}
		result.Placements[i].SubdistrictName = name
	}

	if err := s.simulations.Save(result); err != nil {
		return nil, fmt.Errorf("simulation succeeded but could not be stored: %w", err)
	}

	log.Printf("Simulation %s: %d facilities recommended, budget used %.0f, coverage %.2f%%",
		result.ID, result.FacilitiesRecommended, result.BudgetUsed, result.CoveragePercentage)
	return result, nil
}

// GetSimulation retrieves a stored simulation by ID
func (s *SimulationService) GetSimulation(id string) (*models.SimulationResult, error) {
	return s.simulations.GetByID(id)
}

// ListSimulations lists stored simulations, optionally filtered by regency
func (s *SimulationService) ListSimulations(regencyID string, limit int) ([]models.SimulationResult, error) {
	return s.simulations.List(regencyID, limit)
}
