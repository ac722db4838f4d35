package analysis

import (
	"math"

	"github.com/sehatmap/planner-backend-go/internal/models"
	"github.com/sehatmap/planner-backend-go/internal/spatial"
)

// DefaultServiceRadiusKm is the access radius used when the caller does not
// override it
const DefaultServiceRadiusKm = 5.0

// Heatmap computes a health access score per population point: distance to
// the nearest existing facility, linearly decayed over the service radius.
// Points with no facility in range score zero.
func Heatmap(regency models.Regency, points []models.PopulationPoint,
	facilities []models.HealthFacility, serviceRadiusKm float64) models.HeatmapData {

	if serviceRadiusKm <= 0 {
		serviceRadiusKm = DefaultServiceRadiusKm
	}

	data := models.HeatmapData{
		RegencyID:       regency.ID,
		RegencyName:     regency.Name,
		ServiceRadiusKm: serviceRadiusKm,
		Points:          make([]models.HeatmapPoint, 0, len(points)),
	}

	for _, p := range points {
		data.TotalPopulation += p.PopulationCount

		dKm := math.Inf(1)
		for _, f := range facilities {
			d := spatial.HaversineDistance(p.Latitude, p.Longitude, f.Latitude, f.Longitude) / 1000
			if d < dKm {
				dKm = d
			}
		}

		score := 0.0
		if !math.IsInf(dKm, 1) && dKm < serviceRadiusKm {
			score = 1 - dKm/serviceRadiusKm
		}
		if dKm > serviceRadiusKm || math.IsInf(dKm, 1) {
			data.PopulationOutsideRadius += p.PopulationCount
		}

		hp := models.HeatmapPoint{
			Latitude:        p.Latitude,
			Longitude:       p.Longitude,
			PopulationCount: p.PopulationCount,
			AccessScore:     score,
		}
		if !math.IsInf(dKm, 1) {
			hp.DistanceToFacilityKm = dKm
		}
		data.Points = append(data.Points, hp)
	}

	return data
}
