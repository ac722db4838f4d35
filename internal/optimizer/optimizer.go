// Package optimizer implements the facility placement optimization engine:
// given a region's population points, its existing facilities, a facility
// type catalog and a budget, it recommends a ranked, budget-feasible set of
// new facility placements that greedily maximizes incremental population
// coverage per unit cost.
//
// A run is a pure, synchronous computation over an immutable input
// snapshot; concurrent runs over different inputs share no state.
package optimizer

import (
	"errors"
	"fmt"

	"github.com/sehatmap/planner-backend-go/internal/models"
)

// Defaults applied when Input leaves the knobs zero
const (
	DefaultMaxClusters = 10
	DefaultSeed        = 42
)

// Configuration errors, rejected before any computation starts
var (
	ErrEmptyCatalog   = errors.New("facility type catalog is empty")
	ErrInvalidCatalog = errors.New("invalid facility type catalog")
	ErrNegativeBudget = errors.New("budget must not be negative")
)

// Input is one optimization request. Catalog, points and facilities are
// treated as immutable for the duration of the run.
type Input struct {
	RegencyID   string
	RegencyName string
	Budget      float64
	Catalog     models.FacilityTypeCatalog // nil means the default two-tier catalog
	Points      []models.PopulationPoint
	Facilities  []models.HealthFacility
	MaxClusters int   // <=0 means DefaultMaxClusters
	Seed        int64 // <=0 means DefaultSeed
}

// Run executes the full pipeline: coverage partition, candidate site
// generation, greedy budget allocation, result aggregation.
func Run(in Input) (*models.SimulationResult, error) {
	catalog := in.Catalog
	if catalog == nil {
		catalog = models.DefaultFacilityTypeCatalog()
	}
	if err := validate(catalog, in.Budget); err != nil {
		return nil, err
	}

	maxClusters := in.MaxClusters
	if maxClusters <= 0 {
		maxClusters = DefaultMaxClusters
	}
	seed := in.Seed
	if seed <= 0 {
		seed = DefaultSeed
	}

	facilities := ResolveRadii(in.Facilities, catalog)
	cov := Partition(in.Points, facilities)
	sites := ClusterUnderserved(cov.Underserved, maxClusters, seed)

	alloc := newAllocator(sites, cov.Underserved, catalog, in.Budget)
	alloc.run()

	return aggregate(in, cov, alloc), nil
}

// validate rejects configuration errors before the pipeline starts. A zero
// budget is degenerate but valid and yields an empty placement list.
func validate(catalog models.FacilityTypeCatalog, budget float64) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}
	for _, name := range catalog.TypeNames() {
		spec := catalog[name]
		if spec.Cost <= 0 {
			return fmt.Errorf("%w: facility type %q has non-positive cost %v", ErrInvalidCatalog, name, spec.Cost)
		}
		if spec.CoverageRadius <= 0 {
			return fmt.Errorf("%w: facility type %q has non-positive coverage radius %v", ErrInvalidCatalog, name, spec.CoverageRadius)
		}
	}
	if budget < 0 {
		return ErrNegativeBudget
	}
	return nil
}

// ResolveRadii fills each facility's coverage radius from the catalog,
// leaving already-resolved values untouched.
func ResolveRadii(facilities []models.HealthFacility, catalog models.FacilityTypeCatalog) []models.HealthFacility {
	resolved := make([]models.HealthFacility, len(facilities))
	for i, f := range facilities {
		if f.CoverageRadius <= 0 {
			f.CoverageRadius = catalog.RadiusFor(f.Type)
		}
		resolved[i] = f
	}
	return resolved
}
