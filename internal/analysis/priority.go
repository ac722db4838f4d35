// Package analysis implements the sub-district priority scoring and access
// heatmap computations. These are independent of the placement optimizer:
// they read the same region snapshot but make no siting decisions.
package analysis

import (
	"sort"

	"github.com/sehatmap/planner-backend-go/internal/models"
	"github.com/sehatmap/planner-backend-go/internal/optimizer"
)

// Composite score weights
const (
	gapWeight           = 0.4
	efficiencyWeight    = 0.3
	vulnerabilityWeight = 0.3
)

// PriorityScores ranks a regency's sub-districts by need for new health
// facilities. The composite is a weighted sum of three factors in [0, 1]:
// gap (share of population outside existing coverage), efficiency (scarcity
// of facilities per capita) and vulnerability (poverty level).
func PriorityScores(regency models.Regency, subdistricts []models.Subdistrict,
	points []models.PopulationPoint, facilities []models.HealthFacility) models.PriorityScoreData {

	cov := optimizer.Partition(points, facilities)

	popBySub := make(map[string]int)
	uncoveredBySub := make(map[string]int)
	for _, p := range points {
		popBySub[p.SubdistrictID] += p.PopulationCount
	}
	for _, p := range cov.Underserved {
		uncoveredBySub[p.SubdistrictID] += p.PopulationCount
	}
	facilitiesBySub := make(map[string]int)
	for _, f := range facilities {
		facilitiesBySub[f.SubdistrictID]++
	}

	scores := make([]models.SubdistrictScore, 0, len(subdistricts))
	for _, sd := range subdistricts {
		pop := popBySub[sd.ID]
		if pop == 0 {
			pop = sd.PopulationCount
		}

		gap := 0.0
		if p := popBySub[sd.ID]; p > 0 {
			gap = float64(uncoveredBySub[sd.ID]) / float64(p)
		}

		// scarcity of facilities per 10k residents; 1 when none exist
		efficiency := 1.0
		if pop > 0 {
			per10k := float64(facilitiesBySub[sd.ID]) / float64(pop) * 10000
			efficiency = 1 / (1 + per10k)
		}

		vulnerability := clamp01(sd.PovertyLevel)

		scores = append(scores, models.SubdistrictScore{
			SubdistrictID:       sd.ID,
			SubdistrictName:     sd.Name,
			GapFactor:           gap,
			EfficiencyFactor:    efficiency,
			VulnerabilityFactor: vulnerability,
			CompositeScore:      gap*gapWeight + efficiency*efficiencyWeight + vulnerability*vulnerabilityWeight,
		})
	}

	// rank descending; equal scores order by ID for reproducibility
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].CompositeScore != scores[j].CompositeScore {
			return scores[i].CompositeScore > scores[j].CompositeScore
		}
		return scores[i].SubdistrictID < scores[j].SubdistrictID
	})
	for i := range scores {
		scores[i].Rank = i + 1
	}

	return models.PriorityScoreData{
		RegencyID:         regency.ID,
		RegencyName:       regency.Name,
		TotalSubdistricts: len(scores),
		Subdistricts:      scores,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
