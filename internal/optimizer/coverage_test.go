package optimizer

import (
	"testing"

	"github.com/sehatmap/planner-backend-go/internal/models"
	"github.com/sehatmap/planner-backend-go/internal/spatial"
)

// test region anchor, roughly Kabupaten Bogor
const (
	baseLat = -6.48
	baseLon = 106.85
)

// pointAt places a population point at a bearing/distance from the anchor
func pointAt(id string, bearing, meters float64, pop int, subdistrict string) models.PopulationPoint {
	lat, lon := spatial.DestinationPoint(baseLat, baseLon, bearing, meters)
	return models.PopulationPoint{
		ID:              id,
		SubdistrictID:   subdistrict,
		Latitude:        lat,
		Longitude:       lon,
		PopulationCount: pop,
	}
}

func facilityAt(id string, bearing, meters, radius float64) models.HealthFacility {
	lat, lon := spatial.DestinationPoint(baseLat, baseLon, bearing, meters)
	return models.HealthFacility{
		ID:             id,
		Name:           "Puskesmas " + id,
		Type:           "Puskesmas",
		Latitude:       lat,
		Longitude:      lon,
		CoverageRadius: radius,
	}
}

func TestPartitionNoFacilities(t *testing.T) {
	points := []models.PopulationPoint{
		pointAt("p1", 0, 0, 100, "sd1"),
		pointAt("p2", 90, 2000, 200, "sd1"),
	}

	cov := Partition(points, nil)

	if len(cov.Covered) != 0 {
		t.Errorf("expected no covered points, got %d", len(cov.Covered))
	}
	if len(cov.Underserved) != 2 {
		t.Errorf("expected 2 underserved points, got %d", len(cov.Underserved))
	}
	if cov.TotalPopulation != 300 {
		t.Errorf("TotalPopulation = %d, want 300", cov.TotalPopulation)
	}
	if cov.CoveredPopulation != 0 {
		t.Errorf("CoveredPopulation = %d, want 0", cov.CoveredPopulation)
	}
}

func TestPartitionEmptyPopulation(t *testing.T) {
	cov := Partition(nil, []models.HealthFacility{facilityAt("f1", 0, 0, 5000)})

	if len(cov.Covered) != 0 || len(cov.Underserved) != 0 {
		t.Errorf("expected empty partition, got %d covered / %d underserved",
			len(cov.Covered), len(cov.Underserved))
	}
	if cov.TotalPopulation != 0 {
		t.Errorf("TotalPopulation = %d, want 0", cov.TotalPopulation)
	}
}

func TestPartitionByRadius(t *testing.T) {
	points := []models.PopulationPoint{
		pointAt("inside", 0, 4900, 100, "sd1"),
		pointAt("outside", 0, 5200, 200, "sd1"),
	}
	facilities := []models.HealthFacility{facilityAt("f1", 0, 0, 5000)}

	cov := Partition(points, facilities)

	if len(cov.Covered) != 1 || cov.Covered[0].ID != "inside" {
		t.Fatalf("covered = %+v, want just %q", cov.Covered, "inside")
	}
	if len(cov.Underserved) != 1 || cov.Underserved[0].ID != "outside" {
		t.Fatalf("underserved = %+v, want just %q", cov.Underserved, "outside")
	}
	if cov.CoveredPopulation != 100 {
		t.Errorf("CoveredPopulation = %d, want 100", cov.CoveredPopulation)
	}
}

func TestPartitionUnionOfFacilities(t *testing.T) {
	// one point only in f1's range, another only in f2's
	points := []models.PopulationPoint{
		pointAt("near-f1", 0, 1000, 100, "sd1"),
		pointAt("near-f2", 90, 21000, 150, "sd2"),
		pointAt("nowhere", 180, 30000, 200, "sd3"),
	}
	facilities := []models.HealthFacility{
		facilityAt("f1", 0, 0, 3000),
		facilityAt("f2", 90, 20000, 3000),
	}

	cov := Partition(points, facilities)

	if len(cov.Covered) != 2 {
		t.Fatalf("expected 2 covered points, got %d", len(cov.Covered))
	}
	if len(cov.Underserved) != 1 || cov.Underserved[0].ID != "nowhere" {
		t.Fatalf("underserved = %+v, want just %q", cov.Underserved, "nowhere")
	}
}
