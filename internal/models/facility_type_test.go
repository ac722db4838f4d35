package models

import (
	"reflect"
	"testing"
)

func TestDefaultFacilityTypeCatalog(t *testing.T) {
	catalog := DefaultFacilityTypeCatalog()

	puskesmas, ok := catalog["Puskesmas"]
	if !ok || puskesmas.Cost != DefaultPuskesmasCost || puskesmas.CoverageRadius != DefaultPuskesmasRadius {
		t.Errorf("Puskesmas spec = %+v", puskesmas)
	}
	pustu, ok := catalog["Pustu"]
	if !ok || pustu.Cost != DefaultPustuCost || pustu.CoverageRadius != DefaultPustuRadius {
		t.Errorf("Pustu spec = %+v", pustu)
	}
}

func TestCatalogAggregates(t *testing.T) {
	catalog := DefaultFacilityTypeCatalog()

	if got := catalog.MinCost(); got != DefaultPustuCost {
		t.Errorf("MinCost() = %v, want %v", got, float64(DefaultPustuCost))
	}
	if got := catalog.MaxRadius(); got != DefaultPuskesmasRadius {
		t.Errorf("MaxRadius() = %v, want %v", got, DefaultPuskesmasRadius)
	}
	if got := catalog.TypeNames(); !reflect.DeepEqual(got, []string{"Puskesmas", "Pustu"}) {
		t.Errorf("TypeNames() = %v, want sorted [Puskesmas Pustu]", got)
	}
}

func TestCatalogRadiusFor(t *testing.T) {
	catalog := DefaultFacilityTypeCatalog()

	if got := catalog.RadiusFor("Pustu"); got != DefaultPustuRadius {
		t.Errorf("RadiusFor(Pustu) = %v, want %v", got, DefaultPustuRadius)
	}
	// unknown types fall back to the widest radius
	if got := catalog.RadiusFor("Klinik Swasta"); got != DefaultPuskesmasRadius {
		t.Errorf("RadiusFor(unknown) = %v, want %v", got, DefaultPuskesmasRadius)
	}
}
