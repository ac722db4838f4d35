package optimizer

import "github.com/sehatmap/planner-backend-go/internal/models"

// aggregate assembles the final result from the coverage partition and the
// allocator's committed placements. Pure bookkeeping, no decision logic.
func aggregate(in Input, cov Coverage, alloc *allocator) *models.SimulationResult {
	newlyCovered := alloc.newlyCoveredPopulation()

	// the percentage reflects overall access (pre-existing plus new
	// placements); the covered count reports what the recommendations add.
	// Zero population means there is no demand to address.
	pct := 100.0
	if cov.TotalPopulation > 0 {
		pct = float64(cov.CoveredPopulation+newlyCovered) / float64(cov.TotalPopulation) * 100
	}

	placements := alloc.placements
	if placements == nil {
		placements = []models.Placement{}
	}

	return &models.SimulationResult{
		RegencyID:              in.RegencyID,
		RegencyName:            in.RegencyName,
		TotalBudget:            in.Budget,
		BudgetUsed:             alloc.budgetUsed(),
		FacilitiesRecommended:  len(placements),
		TotalPopulationCovered: newlyCovered,
		CoveragePercentage:     pct,
		Placements:             placements,
	}
}
