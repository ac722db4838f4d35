package analysis

import (
	"math"
	"testing"

	"github.com/sehatmap/planner-backend-go/internal/models"
	"github.com/sehatmap/planner-backend-go/internal/spatial"
)

const (
	baseLat = -6.48
	baseLon = 106.85
)

func pointAt(id string, bearing, meters float64, pop int, subdistrict string) models.PopulationPoint {
	lat, lon := spatial.DestinationPoint(baseLat, baseLon, bearing, meters)
	return models.PopulationPoint{
		ID: id, SubdistrictID: subdistrict,
		Latitude: lat, Longitude: lon, PopulationCount: pop,
	}
}

func TestPriorityScoresRanking(t *testing.T) {
	regency := models.Regency{ID: "3201", Name: "Kabupaten Bogor"}
	subdistricts := []models.Subdistrict{
		{ID: "sdA", RegencyID: "3201", Name: "Kecamatan A", PovertyLevel: 0.1},
		{ID: "sdB", RegencyID: "3201", Name: "Kecamatan B", PovertyLevel: 0.8},
	}
	// sdA is fully covered by its facility; sdB has no facility at all
	points := []models.PopulationPoint{
		pointAt("a1", 0, 1000, 5000, "sdA"),
		pointAt("b1", 90, 40000, 5000, "sdB"),
	}
	facilities := []models.HealthFacility{
		{ID: "f1", SubdistrictID: "sdA", Type: "Puskesmas", Latitude: baseLat, Longitude: baseLon, CoverageRadius: 5000},
	}

	data := PriorityScores(regency, subdistricts, points, facilities)

	if data.TotalSubdistricts != 2 {
		t.Fatalf("TotalSubdistricts = %d, want 2", data.TotalSubdistricts)
	}
	if data.Subdistricts[0].SubdistrictID != "sdB" {
		t.Errorf("top ranked = %s, want the uncovered, poorer sdB", data.Subdistricts[0].SubdistrictID)
	}
	if data.Subdistricts[0].Rank != 1 || data.Subdistricts[1].Rank != 2 {
		t.Errorf("ranks = %d, %d, want 1, 2", data.Subdistricts[0].Rank, data.Subdistricts[1].Rank)
	}

	b := data.Subdistricts[0]
	if b.GapFactor != 1.0 {
		t.Errorf("sdB gap factor = %v, want 1.0 (nothing covered)", b.GapFactor)
	}
	if b.EfficiencyFactor != 1.0 {
		t.Errorf("sdB efficiency factor = %v, want 1.0 (no facilities)", b.EfficiencyFactor)
	}
	if b.VulnerabilityFactor != 0.8 {
		t.Errorf("sdB vulnerability factor = %v, want 0.8", b.VulnerabilityFactor)
	}

	want := 1.0*0.4 + 1.0*0.3 + 0.8*0.3
	if math.Abs(b.CompositeScore-want) > 1e-12 {
		t.Errorf("sdB composite = %v, want %v", b.CompositeScore, want)
	}

	a := data.Subdistricts[1]
	if a.GapFactor != 0 {
		t.Errorf("sdA gap factor = %v, want 0 (fully covered)", a.GapFactor)
	}
}

func TestPriorityScoresDeterministicOnTies(t *testing.T) {
	regency := models.Regency{ID: "r", Name: "R"}
	subdistricts := []models.Subdistrict{
		{ID: "sd2", Name: "Two", PovertyLevel: 0.5},
		{ID: "sd1", Name: "One", PovertyLevel: 0.5},
	}

	data := PriorityScores(regency, subdistricts, nil, nil)

	// identical scores: order falls back to ID
	if data.Subdistricts[0].SubdistrictID != "sd1" {
		t.Errorf("tie broken to %s, want sd1", data.Subdistricts[0].SubdistrictID)
	}
}
