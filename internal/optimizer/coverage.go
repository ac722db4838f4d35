package optimizer

import (
	"github.com/sehatmap/planner-backend-go/internal/models"
	"github.com/sehatmap/planner-backend-go/internal/spatial"
)

// Coverage is the covered/underserved partition of a region's population
// against its existing facilities.
type Coverage struct {
	Covered     []models.PopulationPoint
	Underserved []models.PopulationPoint

	TotalPopulation   int
	CoveredPopulation int
}

// Partition splits population points into covered and underserved. A point
// is covered when it lies within the coverage radius of at least one
// existing facility (union semantics). Facilities must carry resolved radii.
func Partition(points []models.PopulationPoint, facilities []models.HealthFacility) Coverage {
	var cov Coverage
	for _, p := range points {
		cov.TotalPopulation += p.PopulationCount
		if servedBy(p, facilities) {
			cov.Covered = append(cov.Covered, p)
			cov.CoveredPopulation += p.PopulationCount
		} else {
			cov.Underserved = append(cov.Underserved, p)
		}
	}
	return cov
}

func servedBy(p models.PopulationPoint, facilities []models.HealthFacility) bool {
	for _, f := range facilities {
		d := spatial.HaversineDistance(p.Latitude, p.Longitude, f.Latitude, f.Longitude)
		if d <= f.CoverageRadius {
			return true
		}
	}
	return false
}
