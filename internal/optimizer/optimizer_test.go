package optimizer

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/sehatmap/planner-backend-go/internal/models"
)

func TestRunRejectsEmptyCatalog(t *testing.T) {
	_, err := Run(Input{Budget: 1000, Catalog: models.FacilityTypeCatalog{}})
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestRunRejectsInvalidCatalog(t *testing.T) {
	tests := []struct {
		name    string
		catalog models.FacilityTypeCatalog
	}{
		{"zero cost", models.FacilityTypeCatalog{"X": {Cost: 0, CoverageRadius: 5000}}},
		{"negative cost", models.FacilityTypeCatalog{"X": {Cost: -1, CoverageRadius: 5000}}},
		{"zero radius", models.FacilityTypeCatalog{"X": {Cost: 1000, CoverageRadius: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(Input{Budget: 1000, Catalog: tt.catalog})
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("err = %v, want ErrInvalidCatalog", err)
			}
		})
	}
}

func TestRunRejectsNegativeBudget(t *testing.T) {
	_, err := Run(Input{Budget: -1})
	if !errors.Is(err, ErrNegativeBudget) {
		t.Errorf("err = %v, want ErrNegativeBudget", err)
	}
}

func TestRunZeroBudget(t *testing.T) {
	result, err := Run(Input{
		Budget: 0,
		Points: []models.PopulationPoint{pointAt("p1", 0, 0, 100, "sd1")},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Placements) != 0 {
		t.Errorf("expected no placements, got %d", len(result.Placements))
	}
	if result.BudgetUsed != 0 {
		t.Errorf("BudgetUsed = %v, want 0", result.BudgetUsed)
	}
}

func TestRunZeroPopulation(t *testing.T) {
	result, err := Run(Input{Budget: 5_000_000_000})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.CoveragePercentage != 100 {
		t.Errorf("CoveragePercentage = %v, want 100 (no demand to address)", result.CoveragePercentage)
	}
	if len(result.Placements) != 0 || result.BudgetUsed != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestRunNoUnderservedPopulation(t *testing.T) {
	result, err := Run(Input{
		Budget:     5_000_000_000,
		Points:     []models.PopulationPoint{pointAt("p1", 0, 1000, 100, "sd1")},
		Facilities: []models.HealthFacility{facilityAt("f1", 0, 0, 0)}, // radius resolved from catalog
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.CoveragePercentage != 100 {
		t.Errorf("CoveragePercentage = %v, want 100", result.CoveragePercentage)
	}
	if len(result.Placements) != 0 || result.BudgetUsed != 0 {
		t.Errorf("expected zero spend with no underserved population, got %+v", result)
	}
}

func TestRunBudgetBelowCheapestFacility(t *testing.T) {
	// pre-existing coverage: 100 of 300 people
	result, err := Run(Input{
		Budget: models.DefaultPustuCost - 1,
		Points: []models.PopulationPoint{
			pointAt("served", 0, 1000, 100, "sd1"),
			pointAt("unserved", 90, 30000, 200, "sd2"),
		},
		Facilities: []models.HealthFacility{facilityAt("f1", 0, 0, 0)},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Placements) != 0 || result.BudgetUsed != 0 {
		t.Errorf("expected zero placements below cheapest cost, got %+v", result)
	}
	wantPct := 100.0 / 300.0 * 100
	if math.Abs(result.CoveragePercentage-wantPct) > 1e-9 {
		t.Errorf("CoveragePercentage = %v, want baseline %v", result.CoveragePercentage, wantPct)
	}
}

// referenceInput reproduces the documented reference run: 100,000 people,
// 10,500 already served, three isolated demand centers of 50,000 / 25,000 /
// 14,500, and a single-tier catalog at 2.25e9 per facility.
func referenceInput(budget float64) Input {
	return Input{
		RegencyID:   "3201",
		RegencyName: "Kabupaten Bogor",
		Budget:      budget,
		Catalog: models.FacilityTypeCatalog{
			"Puskesmas": {Cost: 2_250_000_000, CoverageRadius: 5000},
		},
		Points: []models.PopulationPoint{
			pointAt("served", 0, 1000, 10500, "sd0"),
			pointAt("a", 90, 30000, 50000, "sdA"),
			pointAt("b", 180, 30000, 25000, "sdB"),
			pointAt("c", 270, 30000, 14500, "sdC"),
		},
		Facilities: []models.HealthFacility{facilityAt("f1", 0, 0, 0)},
	}
}

func TestRunReferenceScenario(t *testing.T) {
	result, err := Run(referenceInput(5_000_000_000))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.FacilitiesRecommended != 2 {
		t.Errorf("FacilitiesRecommended = %d, want 2", result.FacilitiesRecommended)
	}
	if result.BudgetUsed != 4_500_000_000 {
		t.Errorf("BudgetUsed = %v, want 4500000000", result.BudgetUsed)
	}
	if result.TotalPopulationCovered != 75000 {
		t.Errorf("TotalPopulationCovered = %d, want 75000", result.TotalPopulationCovered)
	}
	if math.Abs(result.CoveragePercentage-85.5) > 1e-9 {
		t.Errorf("CoveragePercentage = %v, want 85.5", result.CoveragePercentage)
	}

	// selection order is efficiency order: the 50k center first
	if result.Placements[0].PopulationCovered != 50000 {
		t.Errorf("first placement covers %d, want 50000", result.Placements[0].PopulationCovered)
	}
	if result.Placements[1].PopulationCovered != 25000 {
		t.Errorf("second placement covers %d, want 25000", result.Placements[1].PopulationCovered)
	}
	for _, p := range result.Placements {
		if p.CoverageRadiusKm != 5 {
			t.Errorf("placement radius = %v km, want 5", p.CoverageRadiusKm)
		}
		if p.FacilityType != "Puskesmas" {
			t.Errorf("placement type = %q, want Puskesmas", p.FacilityType)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	in := Input{
		Budget: 6_000_000_000,
		Points: scatterPoints(30),
	}

	first, err := Run(in)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	second, err := Run(in)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	b1, _ := json.Marshal(first)
	b2, _ := json.Marshal(second)
	if string(b1) != string(b2) {
		t.Errorf("identical inputs produced different results:\n%s\n%s", b1, b2)
	}
}

func TestRunBudgetMonotonicity(t *testing.T) {
	budgets := []float64{
		0,
		models.DefaultPustuCost,
		models.DefaultPuskesmasCost,
		3_000_000_000,
		5_000_000_000,
		10_000_000_000,
	}

	prevCovered := -1
	prevPlacements := -1
	for _, budget := range budgets {
		result, err := Run(Input{
			Budget: budget,
			Points: []models.PopulationPoint{
				pointAt("a", 90, 30000, 40000, "sdA"),
				pointAt("b", 180, 30000, 20000, "sdB"),
				pointAt("c", 270, 30000, 10000, "sdC"),
			},
		})
		if err != nil {
			t.Fatalf("Run(budget=%v) error = %v", budget, err)
		}
		if result.BudgetUsed > budget {
			t.Errorf("budget %v: BudgetUsed %v exceeds budget", budget, result.BudgetUsed)
		}
		if result.CoveragePercentage < 0 || result.CoveragePercentage > 100 {
			t.Errorf("budget %v: CoveragePercentage %v out of range", budget, result.CoveragePercentage)
		}
		if result.TotalPopulationCovered < prevCovered {
			t.Errorf("budget %v: covered population decreased from %d to %d",
				budget, prevCovered, result.TotalPopulationCovered)
		}
		if len(result.Placements) < prevPlacements {
			t.Errorf("budget %v: placement count decreased from %d to %d",
				budget, prevPlacements, len(result.Placements))
		}
		prevCovered = result.TotalPopulationCovered
		prevPlacements = len(result.Placements)
	}
}

func TestRunInvariantsOnScatteredInput(t *testing.T) {
	in := Input{
		Budget:     4_000_000_000,
		Points:     scatterPoints(40),
		Facilities: []models.HealthFacility{facilityAt("f1", 0, 0, 0)},
	}

	result, err := Run(in)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.BudgetUsed > in.Budget {
		t.Errorf("BudgetUsed %v exceeds budget %v", result.BudgetUsed, in.Budget)
	}
	if result.CoveragePercentage < 0 || result.CoveragePercentage > 100 {
		t.Errorf("CoveragePercentage %v out of range", result.CoveragePercentage)
	}

	totalPop := 0
	for _, p := range in.Points {
		totalPop += p.PopulationCount
	}
	if result.TotalPopulationCovered > totalPop {
		t.Errorf("covered %d exceeds population in scope %d", result.TotalPopulationCovered, totalPop)
	}

	var placementSum int
	var costSum float64
	for _, p := range result.Placements {
		placementSum += p.PopulationCovered
		costSum += p.EstimatedCost
	}
	if placementSum != result.TotalPopulationCovered {
		t.Errorf("placement coverage sum %d != total newly covered %d (double counting?)",
			placementSum, result.TotalPopulationCovered)
	}
	if costSum != result.BudgetUsed {
		t.Errorf("placement cost sum %v != BudgetUsed %v", costSum, result.BudgetUsed)
	}
}
